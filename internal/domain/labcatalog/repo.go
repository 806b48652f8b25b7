package labcatalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrTestNotFound    = errors.New("test definition not found")
	ErrPackageNotFound = errors.New("package definition not found")
)

// Repository persists the laboratory catalog.
type Repository interface {
	CreateTest(ctx context.Context, t *TestDefinition) error
	GetTestByID(ctx context.Context, id uuid.UUID) (*TestDefinition, error)
	UpdateTest(ctx context.Context, t *TestDefinition) error
	DeleteTest(ctx context.Context, id uuid.UUID) error
	// ListAllTests returns the whole test catalog. The catalog is small
	// enough that report building loads it wholesale.
	ListAllTests(ctx context.Context) ([]*TestDefinition, error)

	CreatePackage(ctx context.Context, p *PackageDefinition) error
	GetPackageByID(ctx context.Context, id uuid.UUID) (*PackageDefinition, error)
	UpdatePackage(ctx context.Context, p *PackageDefinition) error
	DeletePackage(ctx context.Context, id uuid.UUID) error
	ListAllPackages(ctx context.Context) ([]*PackageDefinition, error)
}
