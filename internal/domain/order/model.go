package order

import (
	"time"

	"github.com/google/uuid"
)

// Order maps to the lab_order table. Two linkage schemes coexist in
// historical data: rows written before the visit table got UUID keys carry
// only VisitNumber, newer rows carry VisitID. Either one alone is a valid
// link; some rows carry both.
type Order struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	VisitID     *uuid.UUID `db:"visit_id" json:"visit_id,omitempty"`
	VisitNumber *string    `db:"visit_number" json:"visit_number,omitempty"`
	OrderDate   time.Time  `db:"order_date" json:"order_date"`
	TotalAmount float64    `db:"total_amount" json:"total_amount"`
	Status      string     `db:"status" json:"status"`
	Items       []LineItem `db:"items" json:"items"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Line item kinds. An absent kind means individual; old records never set it.
const (
	KindIndividual = "individual"
	KindPackage    = "package"
)

// Order statuses.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// LineItem is one purchased entry within an order: a single test or a
// bundled package. Package rows appear in two historical encodings, either
// with the member tests embedded inline (EmbeddedMembers) or with a
// reference to a package definition (PackageRef). Individual rows carry
// neither.
type LineItem struct {
	TestID          *uuid.UUID  `json:"test_id,omitempty"`
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	Price           float64     `json:"price"`
	Kind            string      `json:"kind,omitempty"`
	EmbeddedMembers []MemberRef `json:"embedded_members,omitempty"`
	PackageRef      *PackageRef `json:"package_ref,omitempty"`
}

// MemberRef identifies one member test of an embedded package line item.
type MemberRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PackageRef points at a package definition in the lab catalog.
type PackageRef struct {
	ID   *uuid.UUID `json:"id,omitempty"`
	Code string     `json:"code,omitempty"`
	Name string     `json:"name,omitempty"`
}

// IsPackage reports whether the item was sold as a bundle.
func (li *LineItem) IsPackage() bool {
	return li.Kind == KindPackage
}

// IsCancelled reports whether the order should be excluded from sales
// totals.
func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancelled
}
