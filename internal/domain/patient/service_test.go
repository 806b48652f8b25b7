package patient

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) GetByLN(_ context.Context, ln string) (*Patient, error) {
	for _, p := range m.patients {
		if p.LN == ln {
			return p, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, len(result), nil
}

func (m *mockRepo) SearchByName(_ context.Context, q string, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		if strings.Contains(p.FirstName, q) || strings.Contains(p.LastName, q) || strings.Contains(p.LN, q) {
			result = append(result, p)
		}
	}
	return result, len(result), nil
}

func TestCreate_RequiresLN(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Create(context.Background(), &Patient{FirstName: "Somsak"})
	if err == nil {
		t.Fatal("expected error for missing ln")
	}
}

func TestCreate_RequiresFirstName(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Create(context.Background(), &Patient{LN: "LN0001"})
	if err == nil {
		t.Fatal("expected error for missing first_name")
	}
}

func TestCreate_RejectsUnknownGender(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Create(context.Background(), &Patient{LN: "LN0001", FirstName: "Somsak", Gender: "robot"})
	if err == nil {
		t.Fatal("expected error for invalid gender")
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p := &Patient{LN: "LN0001", FirstName: "Somsak", LastName: "Jai", Gender: "male"}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.LN != "LN0001" {
		t.Errorf("expected LN0001, got %s", got.LN)
	}

	byLN, err := svc.GetByLN(context.Background(), "LN0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byLN.ID != p.ID {
		t.Error("expected same patient by LN")
	}
}

func TestDisplayName(t *testing.T) {
	p := &Patient{Title: "Mr.", FirstName: "Somsak", LastName: "Jai"}
	if p.DisplayName() != "Mr. Somsak Jai" {
		t.Errorf("unexpected display name: %s", p.DisplayName())
	}

	p = &Patient{FirstName: "Somsak"}
	if p.DisplayName() != "Somsak" {
		t.Errorf("unexpected display name: %s", p.DisplayName())
	}
}
