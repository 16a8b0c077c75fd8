package main

import (
	"net/http"

	"shopfront/internal/storefront"
)

// searchView is everything the results template needs, with all
// navigation URLs precomputed so the template stays declarative.
type searchView struct {
	Snap        storefront.Snapshot
	HasFetched  bool
	Pages       []pageLink
	SortOptions []sortOption
	Facets      []facetGroup
}

type pageLink struct {
	Number  int
	URL     string
	Current bool
}

type sortOption struct {
	Value    string
	Label    string
	URL      string
	Selected bool
}

type facetGroup struct {
	Key    string
	Values []facetValueLink
}

type facetValueLink struct {
	Value    string
	Count    int
	URL      string
	Selected bool
}

var sortLabels = map[string]string{
	"":           "Relevance",
	"price asc":  "Price: low to high",
	"price desc": "Price: high to low",
	"title asc":  "Title: A-Z",
	"title desc": "Title: Z-A",
}

func (app *application) searchHandler(w http.ResponseWriter, r *http.Request) {
	state := storefront.DecodePageState(r.URL.Query())

	ctrl := storefront.NewSearchController(app.retail, requestVisitor(app.visitorID(r)), app.config.pageSize)
	ctrl.SetState(state)

	snap := ctrl.Execute(r.Context())

	view := searchView{
		Snap:        snap,
		HasFetched:  ctrl.HasFetched(),
		Pages:       buildPageLinks(ctrl.State(), snap.Pagination.TotalPages),
		SortOptions: buildSortOptions(ctrl.State()),
		Facets:      buildFacetGroups(ctrl.State(), snap),
	}

	title := "Search"
	if snap.Query != "" {
		title = snap.Query + " - Search"
	}
	app.render(w, r, "search", title, view)
}

func searchURL(state storefront.PageState) string {
	encoded := state.EncodeQuery().Encode()
	if encoded == "" {
		return "/search"
	}
	return "/search?" + encoded
}

func buildPageLinks(state storefront.PageState, totalPages int) []pageLink {
	links := make([]pageLink, 0, totalPages)
	for n := 1; n <= totalPages; n++ {
		s := state
		s.Filters = state.Filters.Clone()
		s.Page = n
		links = append(links, pageLink{
			Number:  n,
			URL:     searchURL(s),
			Current: n == state.Page,
		})
	}
	return links
}

func buildSortOptions(state storefront.PageState) []sortOption {
	opts := make([]sortOption, 0, len(storefront.SortOptions()))
	for _, value := range storefront.SortOptions() {
		s := state
		s.Filters = state.Filters.Clone()
		s.SortBy = value
		s.Page = 1 // sort change restarts pagination
		opts = append(opts, sortOption{
			Value:    value,
			Label:    sortLabels[value],
			URL:      searchURL(s),
			Selected: value == state.SortBy,
		})
	}
	return opts
}

func buildFacetGroups(state storefront.PageState, snap storefront.Snapshot) []facetGroup {
	groups := make([]facetGroup, 0, len(snap.Facets))
	for _, facet := range snap.Facets {
		group := facetGroup{Key: facet.Key}
		selected := map[string]bool{}
		for _, v := range state.Filters.Get(facet.Key) {
			selected[v] = true
		}

		for _, fv := range facet.Values {
			s := state
			s.Filters = state.Filters.Clone()
			s.Filters.Set(facet.Key, toggleValue(state.Filters.Get(facet.Key), fv.Value))
			s.Page = 1 // filter change restarts pagination

			group.Values = append(group.Values, facetValueLink{
				Value:    fv.Value,
				Count:    fv.Count,
				URL:      searchURL(s),
				Selected: selected[fv.Value],
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// toggleValue adds value to the selection if absent, removes it if
// present.
func toggleValue(current []string, value string) []string {
	out := make([]string, 0, len(current)+1)
	found := false
	for _, v := range current {
		if v == value {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, value)
	}
	return out
}
