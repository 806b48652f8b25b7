package labcatalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log.With().Str("component", "labcatalog").Logger()}
}

func (s *Service) CreateTest(ctx context.Context, t *TestDefinition) error {
	if t.Code == "" {
		return fmt.Errorf("test code is required")
	}
	if t.Name == "" {
		return fmt.Errorf("test name is required")
	}
	if t.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if err := s.repo.CreateTest(ctx, t); err != nil {
		return err
	}
	s.log.Info().Str("code", t.Code).Msg("test definition created")
	return nil
}

func (s *Service) GetTest(ctx context.Context, id uuid.UUID) (*TestDefinition, error) {
	return s.repo.GetTestByID(ctx, id)
}

func (s *Service) UpdateTest(ctx context.Context, t *TestDefinition) error {
	if t.Code == "" || t.Name == "" {
		return fmt.Errorf("test code and name are required")
	}
	return s.repo.UpdateTest(ctx, t)
}

func (s *Service) DeleteTest(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTest(ctx, id)
}

func (s *Service) ListTests(ctx context.Context) ([]*TestDefinition, error) {
	return s.repo.ListAllTests(ctx)
}

func (s *Service) CreatePackage(ctx context.Context, p *PackageDefinition) error {
	if p.Code == "" {
		return fmt.Errorf("package code is required")
	}
	if p.Name == "" {
		return fmt.Errorf("package name is required")
	}
	if len(p.MemberTestIDs) == 0 {
		return fmt.Errorf("package must contain at least one member test")
	}
	for _, id := range p.MemberTestIDs {
		if _, err := s.repo.GetTestByID(ctx, id); err != nil {
			return fmt.Errorf("member test %s: %w", id, err)
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if err := s.repo.CreatePackage(ctx, p); err != nil {
		return err
	}
	s.log.Info().Str("code", p.Code).Int("members", len(p.MemberTestIDs)).Msg("package definition created")
	return nil
}

func (s *Service) GetPackage(ctx context.Context, id uuid.UUID) (*PackageDefinition, error) {
	return s.repo.GetPackageByID(ctx, id)
}

func (s *Service) UpdatePackage(ctx context.Context, p *PackageDefinition) error {
	if p.Code == "" || p.Name == "" {
		return fmt.Errorf("package code and name are required")
	}
	if len(p.MemberTestIDs) == 0 {
		return fmt.Errorf("package must contain at least one member test")
	}
	return s.repo.UpdatePackage(ctx, p)
}

func (s *Service) DeletePackage(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePackage(ctx, id)
}

func (s *Service) ListPackages(ctx context.Context) ([]*PackageDefinition, error) {
	return s.repo.ListAllPackages(ctx)
}
