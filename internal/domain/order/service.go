package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusPaid:      true,
	StatusCancelled: true,
}

type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log.With().Str("component", "order").Logger()}
}

func (s *Service) Create(ctx context.Context, o *Order) error {
	if o.VisitID == nil && (o.VisitNumber == nil || *o.VisitNumber == "") {
		return fmt.Errorf("order must reference a visit by id or visit number")
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("order must contain at least one item")
	}
	for i := range o.Items {
		if err := validateItem(&o.Items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	if !validStatuses[o.Status] {
		return fmt.Errorf("invalid status %q", o.Status)
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return err
	}
	s.log.Info().Str("order_id", o.ID.String()).Int("items", len(o.Items)).Msg("order created")
	return nil
}

func validateItem(li *LineItem) error {
	if li.Code == "" && li.Name == "" {
		return fmt.Errorf("item needs a code or a name")
	}
	switch li.Kind {
	case "", KindIndividual, KindPackage:
	default:
		return fmt.Errorf("invalid kind %q", li.Kind)
	}
	if li.Kind != KindPackage && (len(li.EmbeddedMembers) > 0 || li.PackageRef != nil) {
		return fmt.Errorf("package payload on a non-package item")
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, o *Order) error {
	if !validStatuses[o.Status] {
		return fmt.Errorf("invalid status %q", o.Status)
	}
	return s.repo.Update(ctx, o)
}

// Cancel marks an order cancelled without touching its line items.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.IsCancelled() {
		return nil
	}
	o.Status = StatusCancelled
	if err := s.repo.Update(ctx, o); err != nil {
		return err
	}
	s.log.Info().Str("order_id", id.String()).Msg("order cancelled")
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Order, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByVisitID(ctx context.Context, visitID uuid.UUID) ([]*Order, error) {
	return s.repo.ListByVisitID(ctx, visitID)
}

func (s *Service) ListByVisitNumber(ctx context.Context, vn string) ([]*Order, error) {
	return s.repo.ListByVisitNumber(ctx, vn)
}
