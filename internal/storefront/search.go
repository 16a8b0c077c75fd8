package storefront

import (
	"context"
	"sync"

	"shopfront/internal/retail"
)

// Phase is the lifecycle state of one query's fetch cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

// SearchService is the slice of the retail client the search controller
// needs.
type SearchService interface {
	Search(ctx context.Context, params retail.SearchParams) (*retail.SearchResponse, error)
}

// VisitorProvider yields the visitor id scoping every request.
type VisitorProvider interface {
	GetOrCreate() (string, error)
}

// Snapshot is the immutable view the presentation layer renders from.
// On failure the last successful Results/Facets/TotalSize are still
// present; Err carries the display message.
type Snapshot struct {
	Query      string
	SortBy     string
	Filters    *SelectedFilters
	Results    []retail.SearchResult
	Facets     []retail.Facet
	TotalSize  int
	Pagination Pagination
	Err        string
	Phase      Phase
}

// SearchController owns the translation between page state and search
// requests. Responses are applied atomically: a failed request leaves
// prior results untouched and only sets the error; a success replaces
// results, facets and total together and clears the error.
//
// Overlapping calls are resolved with a monotonic sequence number: only
// the response belonging to the most recently issued request is applied,
// so a slow superseded fetch can never overwrite newer results.
type SearchController struct {
	svc      SearchService
	visitors VisitorProvider
	pageSize int

	// onScroll runs after a page change, standing in for the UI's
	// scroll-to-top side effect.
	onScroll func()

	mu        sync.Mutex
	state     PageState
	results   []retail.SearchResult
	facets    []retail.Facet
	totalSize int
	errMsg    string
	phase     Phase
	issued    uint64
	applied   uint64
	fetched   bool
}

type SearchControllerOption func(*SearchController)

func WithScrollHook(fn func()) SearchControllerOption {
	return func(c *SearchController) { c.onScroll = fn }
}

func NewSearchController(svc SearchService, visitors VisitorProvider, pageSize int, opts ...SearchControllerOption) *SearchController {
	if pageSize <= 0 {
		pageSize = retail.DefaultPageSize
	}
	c := &SearchController{
		svc:      svc,
		visitors: visitors,
		pageSize: pageSize,
		state:    NewPageState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetState replaces the whole page state, normally from a decoded URL.
func (c *SearchController) SetState(state PageState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if state.Filters == nil {
		state.Filters = NewSelectedFilters()
	}
	state.Page = clampPage(state.Page)
	c.state = state
}

// State returns a copy of the current page state for URL encoding.
func (c *SearchController) State() PageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := c.state
	state.Filters = c.state.Filters.Clone()
	return state
}

// Execute assembles the request from the current page state and visitor
// id, issues it, and reconciles the response.
func (c *SearchController) Execute(ctx context.Context) Snapshot {
	visitorID, err := c.visitors.GetOrCreate()
	if err != nil {
		// Visitor-id failures degrade to an anonymous request rather
		// than failing the page.
		visitorID = ""
	}

	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.phase = PhaseLoading
	params := retail.SearchParams{
		Query:     c.state.Query,
		VisitorID: visitorID,
		PageSize:  c.pageSize,
		Offset:    Pagination{Page: c.state.Page, PageSize: c.pageSize}.Offset(),
		Filter:    BuildFilterExpression(c.state.Filters, ""),
		OrderBy:   c.state.SortBy,
	}
	c.mu.Unlock()

	resp, err := c.svc.Search(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer request has been issued since; this response is stale and
	// must not touch displayed state.
	if seq < c.issued || seq <= c.applied {
		return c.snapshotLocked()
	}
	c.applied = seq

	if err != nil {
		c.phase = PhaseFailure
		c.errMsg = err.Error()
		return c.snapshotLocked()
	}

	c.phase = PhaseSuccess
	c.errMsg = ""
	c.results = resp.Results
	c.facets = resp.Facets
	c.totalSize = resp.TotalSize
	c.fetched = true
	return c.snapshotLocked()
}

// OnQueryChange replaces the active query (e.g. a selected suggestion)
// and immediately runs a full search from page 1.
func (c *SearchController) OnQueryChange(ctx context.Context, query string) Snapshot {
	c.mu.Lock()
	c.state.Query = query
	c.state.Page = 1
	c.mu.Unlock()
	return c.Execute(ctx)
}

// OnFilterChange replaces the value set for one facet key. Any filter
// change invalidates the current page position.
func (c *SearchController) OnFilterChange(ctx context.Context, key string, values []string) Snapshot {
	c.mu.Lock()
	c.state.Filters.Set(key, values)
	c.state.Page = 1
	c.mu.Unlock()
	return c.Execute(ctx)
}

// OnSortChange sets the sort key and returns to page 1.
func (c *SearchController) OnSortChange(ctx context.Context, sortBy string) Snapshot {
	c.mu.Lock()
	if !sortKeys[sortBy] {
		sortBy = ""
	}
	c.state.SortBy = sortBy
	c.state.Page = 1
	c.mu.Unlock()
	return c.Execute(ctx)
}

// OnPageChange moves to another page, leaving filters and sort alone,
// and requests the scroll-to-top side effect.
func (c *SearchController) OnPageChange(ctx context.Context, page int) Snapshot {
	c.mu.Lock()
	c.state.Page = clampPage(page)
	c.mu.Unlock()
	snap := c.Execute(ctx)
	if c.onScroll != nil {
		c.onScroll()
	}
	return snap
}

// Snapshot returns the current display state without fetching.
func (c *SearchController) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// HasFetched reports whether any request has completed successfully; a
// page that never succeeded shows only the error, not stale results.
func (c *SearchController) HasFetched() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetched
}

func (c *SearchController) snapshotLocked() Snapshot {
	p := Pagination{Page: c.state.Page, PageSize: c.pageSize}
	p.ComputeMeta(c.totalSize)

	return Snapshot{
		Query:      c.state.Query,
		SortBy:     c.state.SortBy,
		Filters:    c.state.Filters.Clone(),
		Results:    c.results,
		Facets:     c.facets,
		TotalSize:  c.totalSize,
		Pagination: p,
		Err:        c.errMsg,
		Phase:      c.phase,
	}
}
