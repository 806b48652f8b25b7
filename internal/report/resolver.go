package report

import (
	"github.com/rs/zerolog"

	"github.com/clinilab/clinilab/internal/domain/labcatalog"
	"github.com/clinilab/clinilab/internal/domain/order"
)

// Resolver maps one order line item to zero or more canonical columns. It is
// an ordered chain of strategies, each returning a possibly-empty set; the
// results are unioned and the keyword override is applied last. No branch
// ever fails hard: missing data means the branch contributes nothing, and
// sibling branches and sibling items are unaffected.
type Resolver struct {
	catalog  Catalog
	keywords []KeywordRule
	log      zerolog.Logger
}

func NewResolver(catalog Catalog, keywords []KeywordRule, log zerolog.Logger) Resolver {
	return Resolver{
		catalog:  catalog,
		keywords: keywords,
		log:      log.With().Str("component", "report.resolver").Logger(),
	}
}

// Resolve runs the strategy chain for one line item.
//
// Branch order: embedded package members, referenced package definition,
// direct catalog match, reference-data cross-lookup, package-by-descriptor.
// A referenced package whose definition cannot be found still falls through
// to the descriptor-based branches, because legacy rows often carry a usable
// code or name even when the reference is dangling.
func (r Resolver) Resolve(item order.LineItem, ref *RefData) []string {
	flags := make(map[string]struct{})

	switch {
	case item.IsPackage() && len(item.EmbeddedMembers) > 0:
		addAll(flags, r.packageEmbedded(item))

	case item.IsPackage() && item.PackageRef != nil:
		got := r.packageReferenced(item, ref)
		addAll(flags, got)
		if len(got) == 0 {
			addAll(flags, r.crossLookup(item, ref))
			addAll(flags, r.packageByDescriptor(item, ref))
		}

	case !item.IsPackage():
		direct := r.individualDirect(item)
		addAll(flags, direct)
		if len(direct) == 0 {
			addAll(flags, r.crossLookup(item, ref))
		}

	default:
		// A package row with neither embedded members nor a reference.
		addAll(flags, r.packageByDescriptor(item, ref))
	}

	applyKeywords(r.keywords, item.Code, item.Name, flags)

	if len(flags) == 0 {
		r.log.Debug().
			Str("code", item.Code).
			Str("name", item.Name).
			Str("kind", item.Kind).
			Msg("line item resolved to no columns")
		return nil
	}

	out := make([]string, 0, len(flags))
	for col := range flags {
		out = append(out, col)
	}
	return out
}

// packageEmbedded resolves each embedded member independently, code first
// then name, unioning the results.
func (r Resolver) packageEmbedded(item order.LineItem) []string {
	var out []string
	for _, m := range item.EmbeddedMembers {
		if cols := r.catalog.Resolve(m.Code); len(cols) > 0 {
			out = append(out, cols...)
			continue
		}
		out = append(out, r.catalog.Resolve(m.Name)...)
	}
	return out
}

// packageReferenced locates the package definition (id, then code, then
// name) and feeds each member test's code through the catalog. A dangling
// reference or member yields nothing for that member only.
func (r Resolver) packageReferenced(item order.LineItem, ref *RefData) []string {
	pr := item.PackageRef
	def := ref.FindPackage(pr.ID, pr.Code, pr.Name)
	if def == nil {
		return nil
	}
	return r.expandDefinition(def, ref)
}

// individualDirect is the plain catalog path: code first, then name.
func (r Resolver) individualDirect(item order.LineItem) []string {
	if cols := r.catalog.Resolve(item.Code); len(cols) > 0 {
		return cols
	}
	return r.catalog.Resolve(item.Name)
}

// crossLookup handles items whose descriptor exists in the reference data
// but not in the alias table, with the code/name four-way cross match.
func (r Resolver) crossLookup(item order.LineItem, ref *RefData) []string {
	def := ref.FindTestByDescriptor(item.Code, item.Name)
	if def == nil {
		return nil
	}
	return r.catalog.Resolve(def.Code)
}

// packageByDescriptor is the legacy fallback: match a package definition by
// the item's raw code/name and expand its members.
func (r Resolver) packageByDescriptor(item order.LineItem, ref *RefData) []string {
	def := ref.FindPackageByDescriptor(item.Code, item.Name)
	if def == nil {
		return nil
	}
	return r.expandDefinition(def, ref)
}

// expandDefinition resolves each member test id of a package definition: the
// id is looked up in the reference data and the matching definition's code
// goes through the catalog. Dangling member ids are skipped.
func (r Resolver) expandDefinition(def *labcatalog.PackageDefinition, ref *RefData) []string {
	var out []string
	for _, id := range def.MemberTestIDs {
		td := ref.FindTestByID(id)
		if td == nil {
			continue
		}
		out = append(out, r.catalog.Resolve(td.Code)...)
	}
	return out
}

func addAll(flags map[string]struct{}, cols []string) {
	for _, c := range cols {
		flags[c] = struct{}{}
	}
}
