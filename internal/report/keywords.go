package report

import "strings"

// KeywordRule forces a set of canonical columns whenever a line item's raw
// code or name contains the substring. Rules are additive only: they set
// flags on top of whatever the resolver branches produced, never clear one.
// Some product names denote a multi-analyte panel the alias table cannot
// express as a single entry; this small table is cheaper to maintain than
// enumerating every historical product name.
type KeywordRule struct {
	Substring string
	Columns   []string
}

// DefaultKeywordRules is the production override table. Matching is
// case-insensitive substring containment.
func DefaultKeywordRules() []KeywordRule {
	return []KeywordRule{
		{Substring: "flu", Columns: []string{"Influenza A", "Influenza B"}},
		{Substring: "influenza", Columns: []string{"Influenza A", "Influenza B"}},
		{Substring: "dengue", Columns: []string{"Dengue NS1", "Dengue IgM", "Dengue IgG"}},
		{Substring: "leptospira", Columns: []string{"Leptospira IgM", "Leptospira IgG"}},
	}
}

// applyKeywords adds every column forced by a rule whose substring occurs in
// either descriptor. It fires regardless of what the branch chain resolved.
func applyKeywords(rules []KeywordRule, code, name string, flags map[string]struct{}) {
	lowCode := strings.ToLower(code)
	lowName := strings.ToLower(name)
	for _, r := range rules {
		if !strings.Contains(lowCode, r.Substring) && !strings.Contains(lowName, r.Substring) {
			continue
		}
		for _, col := range r.Columns {
			flags[col] = struct{}{}
		}
	}
}
