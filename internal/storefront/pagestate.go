package storefront

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Sort keys accepted by the search backend. Anything else decodes to
// relevance (empty string).
var sortKeys = map[string]bool{
	"":           true,
	"price asc":  true,
	"price desc": true,
	"title asc":  true,
	"title desc": true,
}

// SortOptions lists the selectable sort orders for rendering, relevance
// first.
func SortOptions() []string {
	return []string{"", "price asc", "price desc", "title asc", "title desc"}
}

// PageState is the single serializable value describing a search page:
// free-text query, 1-based page, sort key, and selected facet filters.
// The URL query string is its only durable representation, with one
// canonical encode/decode pair so no second state store can diverge
// from it.
type PageState struct {
	Query   string
	Page    int
	SortBy  string
	Filters *SelectedFilters
}

func NewPageState() PageState {
	return PageState{Page: 1, Filters: NewSelectedFilters()}
}

const filterParamPrefix = "f."

// DecodePageState reads state from URL query values: q, page, sort, and
// one f.<facetKey> parameter (repeatable) per selected facet.
func DecodePageState(q url.Values) PageState {
	state := NewPageState()
	state.Query = q.Get("q")

	if raw := strings.TrimSpace(q.Get("page")); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			state.Page = clampPage(page)
		}
	}

	if sort := q.Get("sort"); sortKeys[sort] {
		state.SortBy = sort
	}

	// url.Values is a map, so facet-key order is not preserved across a
	// reload; sort to keep decoding deterministic.
	var facetKeys []string
	for key := range q {
		if strings.HasPrefix(key, filterParamPrefix) {
			facetKeys = append(facetKeys, key)
		}
	}
	sort.Strings(facetKeys)
	for _, key := range facetKeys {
		var selected []string
		for _, v := range q[key] {
			if v != "" {
				selected = append(selected, v)
			}
		}
		state.Filters.Set(key[len(filterParamPrefix):], selected)
	}
	return state
}

// EncodeQuery is the inverse of DecodePageState. Defaults (page 1,
// relevance sort, no filters) are omitted to keep URLs short.
func (s PageState) EncodeQuery() url.Values {
	q := url.Values{}
	if s.Query != "" {
		q.Set("q", s.Query)
	}
	if s.Page > 1 {
		q.Set("page", strconv.Itoa(s.Page))
	}
	if s.SortBy != "" {
		q.Set("sort", s.SortBy)
	}
	if s.Filters != nil {
		for _, key := range s.Filters.Keys() {
			for _, v := range s.Filters.Get(key) {
				q.Add(filterParamPrefix+key, v)
			}
		}
	}
	return q
}
