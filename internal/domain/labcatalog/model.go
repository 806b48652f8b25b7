package labcatalog

import (
	"time"

	"github.com/google/uuid"
)

// TestDefinition is one orderable laboratory test.
type TestDefinition struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Name      string    `db:"name" json:"name"`
	Category  string    `db:"category" json:"category,omitempty"`
	Price     float64   `db:"price" json:"price"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// PackageDefinition is a bundle of tests sold under one code and price.
// MemberTestIDs reference TestDefinition rows.
type PackageDefinition struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	Code          string      `db:"code" json:"code"`
	Name          string      `db:"name" json:"name"`
	Price         float64     `db:"price" json:"price"`
	MemberTestIDs []uuid.UUID `db:"member_test_ids" json:"member_test_ids"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`
}
