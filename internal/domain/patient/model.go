package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. LN is the clinic's running ledger
// number, printed on every receipt and sticker, and carried through to the
// test-matrix report rows.
type Patient struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	LN        string     `db:"ln" json:"ln"`
	Title     string     `db:"title" json:"title"`
	FirstName string     `db:"first_name" json:"first_name"`
	LastName  string     `db:"last_name" json:"last_name"`
	Gender    string     `db:"gender" json:"gender"`
	BirthDate *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Age       *int       `db:"age" json:"age,omitempty"`
	Height    *float64   `db:"height" json:"height,omitempty"`
	Rights    *string    `db:"rights" json:"rights,omitempty"`
	Phone     *string    `db:"phone" json:"phone,omitempty"`
	Address   *string    `db:"address" json:"address,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// DisplayName returns the patient's full name with title.
func (p *Patient) DisplayName() string {
	name := p.FirstName
	if p.LastName != "" {
		name += " " + p.LastName
	}
	if p.Title != "" {
		name = p.Title + " " + name
	}
	return name
}
