package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinilab/clinilab/internal/domain/order"
	"github.com/clinilab/clinilab/internal/domain/visit"
)

// Params are the raw report inputs as they arrive from the endpoint. Dates
// are strings because callers send either a plain date or a full timestamp,
// and an unparseable value falls back to the default window instead of
// failing the request.
type Params struct {
	DateFrom   string
	DateTo     string
	Department string
}

// Report is the full response payload.
type Report struct {
	Stats Stats       `json:"stats"`
	Data  []ReportRow `json:"data"`
}

// VisitSource is the slice of visit storage the engine reads.
type VisitSource interface {
	FindInRange(ctx context.Context, from, to time.Time, department string) ([]*visit.WithPatient, error)
}

// OrderSource fetches orders under both linkage schemes.
type OrderSource interface {
	ListByVisitID(ctx context.Context, visitID uuid.UUID) ([]*order.Order, error)
	ListByVisitNumber(ctx context.Context, visitNumber string) ([]*order.Order, error)
}

// Engine generates the test-matrix report. It performs no writes and holds
// no state between invocations; concurrent requests are fully independent.
type Engine struct {
	visits   VisitSource
	orders   OrderSource
	ref      CatalogSource
	resolver Resolver
	loc      *time.Location
	log      zerolog.Logger
	now      func() time.Time
}

func NewEngine(visits VisitSource, orders OrderSource, ref CatalogSource, resolver Resolver, loc *time.Location, log zerolog.Logger) *Engine {
	return &Engine{
		visits:   visits,
		orders:   orders,
		ref:      ref,
		resolver: resolver,
		loc:      loc,
		log:      log.With().Str("component", "report.engine").Logger(),
		now:      time.Now,
	}
}

const defaultWindowDays = 30

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateWindow normalizes the requested range: start to 00:00:00.000 and end
// to 23:59:59.999 of their days. A missing or unparseable endpoint switches
// the whole request to the trailing 30-day window ending now.
func (e *Engine) dateWindow(p Params) (time.Time, time.Time) {
	now := e.now().In(e.loc)
	from, okFrom := parseDate(p.DateFrom, e.loc)
	to, okTo := parseDate(p.DateTo, e.loc)
	if !okFrom || !okTo {
		return now.AddDate(0, 0, -defaultWindowDays), now
	}
	from = startOfDay(from)
	to = startOfDay(to).Add(24*time.Hour - time.Millisecond)
	return from, to
}

// Sentinel department values that mean "no filter".
var allDepartments = map[string]bool{
	"":           true,
	"all":        true,
	"ทุกหน่วยงาน": true,
}

func normalizeDepartment(d string) string {
	if allDepartments[d] {
		return ""
	}
	return strings.ReplaceAll(d, "_", " ")
}

// Generate builds the report. Store failures in the join stage are fatal
// and propagate; per-line-item resolution misses are not.
func (e *Engine) Generate(ctx context.Context, p Params) (*Report, error) {
	from, to := e.dateWindow(p)
	dept := normalizeDepartment(p.Department)

	visits, err := e.visits.FindInRange(ctx, from, to, dept)
	if err != nil {
		return nil, fmt.Errorf("report: loading visits: %w", err)
	}

	ref := LoadRefData(ctx, e.ref, e.log)

	rows := make([]ReportRow, 0, len(visits))
	ordersByVisit := make([][]*order.Order, len(visits))
	for i, v := range visits {
		byNumber, err := e.orders.ListByVisitNumber(ctx, v.VisitNumber)
		if err != nil {
			return nil, fmt.Errorf("report: loading orders for visit %s: %w", v.VisitNumber, err)
		}
		byID, err := e.orders.ListByVisitID(ctx, v.ID)
		if err != nil {
			return nil, fmt.Errorf("report: loading orders for visit %s: %w", v.VisitNumber, err)
		}
		// Orders linked both ways appear twice. The matrix tolerates that
		// because flags are idempotent.
		orders := append(byNumber, byID...)
		ordersByVisit[i] = orders
		rows = append(rows, buildRow(v, orders, e.resolver, ref))
	}

	stats := computeStats(visits, ordersByVisit, e.now(), e.loc, ref)

	e.log.Info().
		Time("from", from).
		Time("to", to).
		Str("department", dept).
		Int("rows", len(rows)).
		Msg("test-matrix report generated")

	return &Report{Stats: stats, Data: rows}, nil
}
