package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	visits Repository
}

func NewService(visits Repository) *Service {
	return &Service{visits: visits}
}

func (s *Service) Create(ctx context.Context, v *Visit) error {
	if v.VisitNumber == "" {
		return fmt.Errorf("visit_number is required")
	}
	if v.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if v.VisitDate == nil && v.VisitDateText == nil {
		now := time.Now()
		v.VisitDate = &now
	}
	return s.visits.Create(ctx, v)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Visit, error) {
	return s.visits.GetByID(ctx, id)
}

func (s *Service) GetByVisitNumber(ctx context.Context, visitNumber string) (*Visit, error) {
	return s.visits.GetByVisitNumber(ctx, visitNumber)
}

func (s *Service) Update(ctx context.Context, v *Visit) error {
	if v.ID == uuid.Nil {
		return fmt.Errorf("id is required")
	}
	return s.visits.Update(ctx, v)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.visits.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Visit, int, error) {
	return s.visits.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) FindInRange(ctx context.Context, from, to time.Time, department string) ([]*WithPatient, error) {
	return s.visits.FindInRange(ctx, from, to, department)
}
