package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type mockRepo struct {
	orders map[uuid.UUID]*Order
}

func newMockRepo() *mockRepo {
	return &mockRepo{orders: make(map[uuid.UUID]*Order)}
}

func (m *mockRepo) Create(_ context.Context, o *Order) error {
	m.orders[o.ID] = o
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (m *mockRepo) Update(_ context.Context, o *Order) error {
	if _, ok := m.orders[o.ID]; !ok {
		return ErrNotFound
	}
	m.orders[o.ID] = o
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.orders[id]; !ok {
		return ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Order, int, error) {
	var out []*Order
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, len(out), nil
}

func (m *mockRepo) ListByVisitID(_ context.Context, visitID uuid.UUID) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		if o.VisitID != nil && *o.VisitID == visitID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByVisitNumber(_ context.Context, vn string) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		if o.VisitNumber != nil && *o.VisitNumber == vn {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByOrderDateRange(_ context.Context, from, to time.Time) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		if !o.OrderDate.Before(from) && !o.OrderDate.After(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo, zerolog.Nop()), repo
}

func strPtr(s string) *string { return &s }

func TestCreate_RequiresVisitLink(t *testing.T) {
	svc, _ := newTestService()
	err := svc.Create(context.Background(), &Order{
		Items: []LineItem{{Code: "CBC001", Name: "CBC"}},
	})
	if err == nil {
		t.Fatal("expected error for order without visit link")
	}
}

func TestCreate_VisitNumberAloneIsEnough(t *testing.T) {
	svc, repo := newTestService()
	o := &Order{
		VisitNumber: strPtr("V2024-0001"),
		Items:       []LineItem{{Code: "CBC001", Name: "CBC"}},
	}
	if err := svc.Create(context.Background(), o); err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if o.Status != StatusPending {
		t.Errorf("expected default status pending, got %q", o.Status)
	}
	if o.OrderDate.IsZero() {
		t.Error("expected order date to default")
	}
	if len(repo.orders) != 1 {
		t.Errorf("expected 1 stored order, got %d", len(repo.orders))
	}
}

func TestCreate_RejectsEmptyItems(t *testing.T) {
	svc, _ := newTestService()
	err := svc.Create(context.Background(), &Order{VisitNumber: strPtr("V1")})
	if err == nil {
		t.Fatal("expected error for order without items")
	}
}

func TestCreate_RejectsPackagePayloadOnIndividual(t *testing.T) {
	svc, _ := newTestService()
	err := svc.Create(context.Background(), &Order{
		VisitNumber: strPtr("V1"),
		Items: []LineItem{{
			Code:            "CBC001",
			Name:            "CBC",
			EmbeddedMembers: []MemberRef{{Code: "X", Name: "Y"}},
		}},
	})
	if err == nil {
		t.Fatal("expected error for embedded members on a non-package item")
	}
}

func TestCancel_SetsStatusAndIsIdempotent(t *testing.T) {
	svc, repo := newTestService()
	o := &Order{
		VisitNumber: strPtr("V1"),
		Items:       []LineItem{{Code: "CBC001", Name: "CBC"}},
	}
	if err := svc.Create(context.Background(), o); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Cancel(context.Background(), o.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got := repo.orders[o.ID].Status; got != StatusCancelled {
		t.Errorf("expected status cancelled, got %q", got)
	}
	if err := svc.Cancel(context.Background(), o.ID); err != nil {
		t.Fatalf("second cancel: %v", err)
	}
}

func TestLineItem_IsPackage(t *testing.T) {
	cases := []struct {
		kind string
		want bool
	}{
		{"", false},
		{KindIndividual, false},
		{KindPackage, true},
	}
	for _, tc := range cases {
		li := LineItem{Kind: tc.kind}
		if got := li.IsPackage(); got != tc.want {
			t.Errorf("kind %q: IsPackage() = %v, want %v", tc.kind, got, tc.want)
		}
	}
}
