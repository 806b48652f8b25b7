package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("order not found")

// Repository persists lab orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Order, int, error)

	// ListByVisitID returns orders linked through the typed foreign key.
	ListByVisitID(ctx context.Context, visitID uuid.UUID) ([]*Order, error)
	// ListByVisitNumber returns orders linked through the legacy text key.
	ListByVisitNumber(ctx context.Context, visitNumber string) ([]*Order, error)
	// ListByOrderDateRange returns all orders placed within [from, to].
	ListByOrderDateRange(ctx context.Context, from, to time.Time) ([]*Order, error)
}
