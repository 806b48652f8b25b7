package visit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, v *Visit) error
	GetByID(ctx context.Context, id uuid.UUID) (*Visit, error)
	GetByVisitNumber(ctx context.Context, visitNumber string) (*Visit, error)
	Update(ctx context.Context, v *Visit) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Visit, int, error)
	// FindInRange returns visits joined with patient demographics whose date
	// falls inside [from, to], matched against either the typed visit_date or
	// the legacy visit_date_text column. An empty department means no filter.
	FindInRange(ctx context.Context, from, to time.Time, department string) ([]*WithPatient, error)
}
