package report

import (
	"strings"

	"github.com/clinilab/clinilab/internal/domain/order"
	"github.com/clinilab/clinilab/internal/domain/visit"
)

// ReportRow is one visit's line in the test matrix. Built fresh per request
// and discarded with the response; never persisted.
type ReportRow struct {
	VisitNumber string          `json:"visit_number"`
	LN          string          `json:"ln"`
	Title       string          `json:"title"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Gender      string          `json:"gender"`
	Age         *int            `json:"age,omitempty"`
	Height      *float64        `json:"height,omitempty"`
	Rights      string          `json:"rights"`
	Flags       map[string]bool `json:"flags"`
}

var genderSynonyms = map[string]string{
	"male":   "Male",
	"m":      "Male",
	"ชาย":    "Male",
	"female": "Female",
	"f":      "Female",
	"หญิง":   "Female",
}

// normalizeGender folds recognized synonyms into the two canonical display
// values; anything else passes through unchanged.
func normalizeGender(g string) string {
	if canonical, ok := genderSynonyms[strings.ToLower(g)]; ok {
		return canonical
	}
	return g
}

// buildRow assembles one matrix row. All canonical columns start false;
// every line item of every order reachable under either linkage scheme is
// resolved and its columns set true. An order reachable via both schemes is
// processed twice, which is harmless because flag-setting is idempotent.
func buildRow(v *visit.WithPatient, orders []*order.Order, res Resolver, ref *RefData) ReportRow {
	flags := make(map[string]bool, len(Columns))
	for _, col := range Columns {
		flags[col] = false
	}

	for _, o := range orders {
		for _, item := range o.Items {
			for _, col := range res.Resolve(item, ref) {
				flags[col] = true
			}
		}
	}

	row := ReportRow{
		VisitNumber: v.VisitNumber,
		LN:          v.Patient.LN,
		Title:       v.Patient.Title,
		FirstName:   v.Patient.FirstName,
		LastName:    v.Patient.LastName,
		Gender:      normalizeGender(v.Patient.Gender),
		Age:         v.Patient.Age,
		Flags:       flags,
	}
	if v.Patient.Height != nil {
		row.Height = v.Patient.Height
	} else {
		row.Height = v.Height
	}
	if v.Patient.Rights != nil {
		row.Rights = *v.Patient.Rights
	}
	return row
}
