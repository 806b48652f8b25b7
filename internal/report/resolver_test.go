package report

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinilab/clinilab/internal/domain/labcatalog"
	"github.com/clinilab/clinilab/internal/domain/order"
)

func newTestResolver() Resolver {
	return NewResolver(DefaultCatalog(), DefaultKeywordRules(), zerolog.Nop())
}

func sorted(cols []string) []string {
	out := append([]string(nil), cols...)
	sort.Strings(out)
	return out
}

func assertColumns(t *testing.T, got []string, want ...string) {
	t.Helper()
	g, w := sorted(got), sorted(want)
	if len(g) != len(w) {
		t.Fatalf("got columns %v, want %v", g, w)
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("got columns %v, want %v", g, w)
		}
	}
}

func TestResolve_IndividualByCode(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(order.LineItem{Code: "CBC001", Name: "whatever"}, &RefData{})
	assertColumns(t, got, "CBC")
}

func TestResolve_IndividualByNameWhenCodeMisses(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(order.LineItem{Code: "ZZZ999", Name: "Complete Blood Count"}, &RefData{})
	assertColumns(t, got, "CBC")
}

func TestResolve_UnknownItemYieldsNothing(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(order.LineItem{Code: "ZZZ999", Name: "Mystery Assay"}, &RefData{})
	if len(got) != 0 {
		t.Fatalf("expected no columns, got %v", got)
	}
}

func TestResolve_DirectMatchNotOverriddenByCrossLookup(t *testing.T) {
	// The same item resolvable by direct code match must resolve
	// identically whether or not the reference data would also match it.
	r := newTestResolver()
	item := order.LineItem{Code: "CBC001", Name: "CBC"}

	bare := r.Resolve(item, &RefData{})

	conflicting := &RefData{Tests: []*labcatalog.TestDefinition{
		{ID: uuid.New(), Code: "UA100", Name: "CBC001"},
	}}
	withRef := r.Resolve(item, conflicting)

	assertColumns(t, bare, "CBC")
	assertColumns(t, withRef, "CBC")
}

func TestResolve_CrossLookupSwappedFields(t *testing.T) {
	// Historical rows sometimes stored the code in the name field. The
	// cross-lookup must find the reference row either way and resolve its
	// real code.
	r := newTestResolver()
	ref := &RefData{Tests: []*labcatalog.TestDefinition{
		{ID: uuid.New(), Code: "GLU001", Name: "Sugar Test"},
	}}

	byName := r.Resolve(order.LineItem{Code: "Sugar Test"}, ref)
	assertColumns(t, byName, "FBS")

	byCodeInName := r.Resolve(order.LineItem{Name: "GLU001"}, ref)
	assertColumns(t, byCodeInName, "FBS")
}

func TestResolve_PackageEmbeddedMembers(t *testing.T) {
	r := newTestResolver()
	item := order.LineItem{
		Kind: order.KindPackage,
		Code: "PKG01",
		Name: "Basic Panel",
		EmbeddedMembers: []order.MemberRef{
			{Code: "CBC001"},
			{Code: "bad-code", Name: "Fasting Blood Sugar"},
			{Code: "nope", Name: "also nope"},
		},
	}
	got := r.Resolve(item, &RefData{})
	assertColumns(t, got, "CBC", "FBS")
}

func TestResolve_PackageByReference(t *testing.T) {
	r := newTestResolver()
	cbcID, gluID := uuid.New(), uuid.New()
	pkgID := uuid.New()
	ref := &RefData{
		Tests: []*labcatalog.TestDefinition{
			{ID: cbcID, Code: "CBC001", Name: "CBC"},
			{ID: gluID, Code: "GLU001", Name: "FBS"},
		},
		Packages: []*labcatalog.PackageDefinition{
			{ID: pkgID, Code: "PKG01", Name: "Basic Panel", MemberTestIDs: []uuid.UUID{cbcID, gluID}},
		},
	}

	byID := r.Resolve(order.LineItem{
		Kind: order.KindPackage, Code: "PKG01",
		PackageRef: &order.PackageRef{ID: &pkgID},
	}, ref)
	assertColumns(t, byID, "CBC", "FBS")

	byCode := r.Resolve(order.LineItem{
		Kind: order.KindPackage, Code: "PKG01",
		PackageRef: &order.PackageRef{Code: "PKG01"},
	}, ref)
	assertColumns(t, byCode, "CBC", "FBS")
}

func TestResolve_DanglingReferenceFallsThroughToDescriptor(t *testing.T) {
	// A referenced package whose definition is gone still resolves when
	// the raw descriptor matches a definition by code.
	r := newTestResolver()
	cbcID := uuid.New()
	missing := uuid.New()
	ref := &RefData{
		Tests: []*labcatalog.TestDefinition{
			{ID: cbcID, Code: "CBC001", Name: "CBC"},
		},
		Packages: []*labcatalog.PackageDefinition{
			{ID: uuid.New(), Code: "PKG01", Name: "Basic Panel", MemberTestIDs: []uuid.UUID{cbcID}},
		},
	}
	got := r.Resolve(order.LineItem{
		Kind: order.KindPackage, Code: "PKG01", Name: "Basic Panel",
		PackageRef: &order.PackageRef{ID: &missing, Code: "GONE"},
	}, ref)
	assertColumns(t, got, "CBC")
}

func TestResolve_PackageWithoutPayloadUsesDescriptor(t *testing.T) {
	r := newTestResolver()
	cbcID := uuid.New()
	ref := &RefData{
		Tests: []*labcatalog.TestDefinition{
			{ID: cbcID, Code: "CBC001", Name: "CBC"},
		},
		Packages: []*labcatalog.PackageDefinition{
			{ID: uuid.New(), Code: "PKG01", Name: "Basic Panel", MemberTestIDs: []uuid.UUID{cbcID}},
		},
	}
	got := r.Resolve(order.LineItem{Kind: order.KindPackage, Name: "Basic Panel"}, ref)
	assertColumns(t, got, "CBC")
}

func TestResolve_KeywordOverrideFluPanel(t *testing.T) {
	// "Flu A/B" resolves to no alias, but the keyword table forces both
	// influenza columns.
	r := newTestResolver()
	got := r.Resolve(order.LineItem{Kind: order.KindIndividual, Code: "Flu A/B", Name: "Flu Test"}, &RefData{})
	assertColumns(t, got, "Influenza A", "Influenza B")
}

func TestResolve_KeywordOverrideIsAdditive(t *testing.T) {
	// Keyword hits add to whatever the branches resolved; they never
	// replace it.
	r := newTestResolver()
	got := r.Resolve(order.LineItem{Code: "CBC001", Name: "CBC + Dengue screen"}, &RefData{})
	assertColumns(t, got, "CBC", "Dengue NS1", "Dengue IgM", "Dengue IgG")
}

func TestResolve_KeywordLeptospira(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(order.LineItem{Name: "Leptospira Ab"}, &RefData{})
	assertColumns(t, got, "Leptospira IgM", "Leptospira IgG")
}
