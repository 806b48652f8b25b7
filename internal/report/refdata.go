package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinilab/clinilab/internal/domain/labcatalog"
)

// RefData is the catalog snapshot loaded once per report invocation. Both
// collections are small (tens to low hundreds of rows), so a wholesale read
// beats caching; catalogs change rarely and correctness matters more than
// latency here.
type RefData struct {
	Tests    []*labcatalog.TestDefinition
	Packages []*labcatalog.PackageDefinition
}

// CatalogSource is the slice of the lab catalog the report reads.
type CatalogSource interface {
	ListAllTests(ctx context.Context) ([]*labcatalog.TestDefinition, error)
	ListAllPackages(ctx context.Context) ([]*labcatalog.PackageDefinition, error)
}

// LoadRefData fetches the snapshot. A failure on either collection degrades
// resolution (fewer matches) but must not abort the report, so it logs a
// warning and continues with that collection empty.
func LoadRefData(ctx context.Context, src CatalogSource, log zerolog.Logger) *RefData {
	ref := &RefData{}
	tests, err := src.ListAllTests(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("loading test definitions failed, resolving without them")
	} else {
		ref.Tests = tests
	}
	pkgs, err := src.ListAllPackages(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("loading package definitions failed, resolving without them")
	} else {
		ref.Packages = pkgs
	}
	return ref
}

// FindTestByID returns the test definition with the given id, or nil.
func (r *RefData) FindTestByID(id uuid.UUID) *labcatalog.TestDefinition {
	for _, t := range r.Tests {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FindTestByDescriptor searches by a four-way cross match: historical rows
// inconsistently swapped code and name, so each of the two lookup values is
// compared against both fields.
func (r *RefData) FindTestByDescriptor(code, name string) *labcatalog.TestDefinition {
	for _, t := range r.Tests {
		if code != "" && (t.Code == code || t.Name == code) {
			return t
		}
		if name != "" && (t.Code == name || t.Name == name) {
			return t
		}
	}
	return nil
}

// FindPackage locates a package definition by id, then code, then name.
func (r *RefData) FindPackage(id *uuid.UUID, code, name string) *labcatalog.PackageDefinition {
	if id != nil {
		for _, p := range r.Packages {
			if p.ID == *id {
				return p
			}
		}
	}
	if code != "" {
		for _, p := range r.Packages {
			if p.Code == code {
				return p
			}
		}
	}
	if name != "" {
		for _, p := range r.Packages {
			if p.Name == name {
				return p
			}
		}
	}
	return nil
}

// FindPackageByDescriptor matches a package by code/name against both lookup
// values, mirroring FindTestByDescriptor.
func (r *RefData) FindPackageByDescriptor(code, name string) *labcatalog.PackageDefinition {
	for _, p := range r.Packages {
		if code != "" && (p.Code == code || p.Name == code) {
			return p
		}
		if name != "" && (p.Code == name || p.Name == name) {
			return p
		}
	}
	return nil
}
