// Package storefront holds the page controllers that translate UI state
// into retail requests and reconcile responses back into display state.
package storefront

import (
	"strings"
)

// SelectedFilters maps facet keys to their selected values, preserving
// the order keys were first selected in. An empty value set for a key is
// equivalent to the key being absent.
type SelectedFilters struct {
	keys   []string
	values map[string][]string
}

func NewSelectedFilters() *SelectedFilters {
	return &SelectedFilters{values: make(map[string][]string)}
}

// Set replaces the value set for key. An empty or nil slice removes the
// key entirely, so toggling a facet off leaves no residue.
func (f *SelectedFilters) Set(key string, values []string) {
	if len(values) == 0 {
		f.delete(key)
		return
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = append([]string(nil), values...)
}

func (f *SelectedFilters) delete(key string) {
	if _, ok := f.values[key]; !ok {
		return
	}
	delete(f.values, key)
	for i, k := range f.keys {
		if k == key {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
}

func (f *SelectedFilters) Get(key string) []string {
	return f.values[key]
}

// Keys returns the facet keys in insertion order.
func (f *SelectedFilters) Keys() []string {
	return append([]string(nil), f.keys...)
}

func (f *SelectedFilters) IsZero() bool {
	return len(f.keys) == 0
}

func (f *SelectedFilters) Clone() *SelectedFilters {
	clone := NewSelectedFilters()
	for _, k := range f.keys {
		clone.Set(k, f.values[k])
	}
	return clone
}

// FilterSyntax selects the clause grammar emitted by the expression
// builder. SyntaxANY is canonical; SyntaxLegacyOR reproduces the older
// `key: "a" OR "b"` form and exists only for backends that still expect
// it.
type FilterSyntax int

const (
	SyntaxANY FilterSyntax = iota
	SyntaxLegacyOR
)

// BuildFilterExpression composes the conjunctive filter string for a
// search or listing request: the category clause first when a category
// constraint is active, then one clause per selected facet key in
// insertion order, all joined with " AND ". Values are double-quoted
// verbatim; embedded quotes pass through unescaped.
func BuildFilterExpression(filters *SelectedFilters, categoryName string) string {
	return BuildFilterExpressionSyntax(filters, categoryName, SyntaxANY)
}

func BuildFilterExpressionSyntax(filters *SelectedFilters, categoryName string, syntax FilterSyntax) string {
	var clauses []string
	if categoryName != "" {
		clauses = append(clauses, clause("categories", []string{categoryName}, syntax))
	}
	if filters != nil {
		for _, key := range filters.Keys() {
			values := filters.Get(key)
			if len(values) == 0 {
				continue
			}
			clauses = append(clauses, clause(key, values, syntax))
		}
	}
	return strings.Join(clauses, " AND ")
}

func clause(key string, values []string, syntax FilterSyntax) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	if syntax == SyntaxLegacyOR {
		return key + ": " + strings.Join(quoted, " OR ")
	}
	return key + ": ANY(" + strings.Join(quoted, ", ") + ")"
}
