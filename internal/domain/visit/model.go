package visit

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinilab/clinilab/internal/domain/patient"
)

// Visit maps to the visit table. Historical rows store the visit date in one
// of two ways: VisitDate is a real timestamp on rows written by the current
// intake screen, while VisitDateText holds a plain YYYY-MM-DD string on rows
// migrated from the legacy system. Range queries must consider both.
type Visit struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	VisitNumber   string     `db:"visit_number" json:"visit_number"`
	PatientID     uuid.UUID  `db:"patient_id" json:"patient_id"`
	VisitDate     *time.Time `db:"visit_date" json:"visit_date,omitempty"`
	VisitDateText *string    `db:"visit_date_text" json:"visit_date_text,omitempty"`
	Department    string     `db:"department" json:"department"`
	Weight        *float64   `db:"weight" json:"weight,omitempty"`
	Height        *float64   `db:"height" json:"height,omitempty"`
	Temperature   *float64   `db:"temperature" json:"temperature,omitempty"`
	Pulse         *int       `db:"pulse" json:"pulse,omitempty"`
	BPSystolic    *int       `db:"bp_systolic" json:"bp_systolic,omitempty"`
	BPDiastolic   *int       `db:"bp_diastolic" json:"bp_diastolic,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// WithPatient is a visit joined with its patient's demographics, the unit of
// input for the test-matrix report.
type WithPatient struct {
	Visit
	Patient patient.Patient `json:"patient"`
}

// EffectiveDate returns the best available date for the visit: the typed
// timestamp when present, otherwise the parsed legacy date string, otherwise
// the row's creation time. Legacy strings are interpreted in UTC; callers
// bucketing by clinic calendar day should use EffectiveDateIn.
func (v *Visit) EffectiveDate() time.Time {
	return v.EffectiveDateIn(time.UTC)
}

// EffectiveDateIn is EffectiveDate with legacy YYYY-MM-DD strings anchored in
// loc. A date-only string names a clinic calendar day; parsing it in UTC and
// then converting shifts it to the previous day in zones behind UTC.
func (v *Visit) EffectiveDateIn(loc *time.Location) time.Time {
	if v.VisitDate != nil {
		return *v.VisitDate
	}
	if v.VisitDateText != nil {
		if d, err := time.ParseInLocation("2006-01-02", *v.VisitDateText, loc); err == nil {
			return d
		}
	}
	return v.CreatedAt
}
