package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinilab/clinilab/internal/domain/order"
	"github.com/clinilab/clinilab/internal/domain/visit"
)

func TestHandler_Generate(t *testing.T) {
	ts := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	v := visitAt("V1", ts, "OPD")
	vs := &mockVisitSource{visits: []*visit.WithPatient{v}}
	os := &mockOrderSource{byNumber: map[string][]*order.Order{
		"V1": {{OrderDate: ts, Items: []order.LineItem{{Code: "CBC001"}}}},
	}}
	h := NewHandler(newTestEngine(vs, os, &mockCatalogSource{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/reports/test-matrix?date_from=2024-01-01&date_to=2024-01-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Generate(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Stats Stats       `json:"stats"`
		Data  []ReportRow `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("expected 1 row, got %d", len(body.Data))
	}
	if !body.Data[0].Flags["CBC"] {
		t.Error("expected CBC flag in response")
	}
}

func TestHandler_ExportStreamsWorkbook(t *testing.T) {
	ts := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	v := visitAt("V1", ts, "OPD")
	vs := &mockVisitSource{visits: []*visit.WithPatient{v}}
	h := NewHandler(newTestEngine(vs, &mockOrderSource{}, &mockCatalogSource{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/reports/test-matrix/export?date_from=2024-01-01&date_to=2024-01-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Export(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content type = %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected workbook bytes in response body")
	}
}
