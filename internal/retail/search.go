package retail

import (
	"context"
	"net/url"
	"strconv"
)

const (
	DefaultPageSize       = 20
	DefaultMaxSuggestions = 5
)

// SearchParams carries the semantic fields of one search call; the
// wrapper translates them to the proxy's wire names.
type SearchParams struct {
	Query      string
	VisitorID  string
	PageSize   int
	Offset     int
	Filter     string
	OrderBy    string
	FacetSpecs []map[string]any
}

type searchRequestBody struct {
	Query      string           `json:"query"`
	VisitorID  string           `json:"visitor_id"`
	PageSize   int              `json:"page_size"`
	Offset     int              `json:"offset"`
	Filter     string           `json:"filter"`
	OrderBy    string           `json:"order_by"`
	FacetSpecs []map[string]any `json:"facet_specs,omitempty"`
}

// Search executes one search query against the proxy.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	if params.PageSize <= 0 {
		params.PageSize = DefaultPageSize
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	if params.VisitorID == "" {
		params.VisitorID = anonymousVisitor()
	}

	body := searchRequestBody{
		Query:      params.Query,
		VisitorID:  params.VisitorID,
		PageSize:   params.PageSize,
		Offset:     params.Offset,
		Filter:     params.Filter,
		OrderBy:    params.OrderBy,
		FacetSpecs: params.FacetSpecs,
	}

	var out SearchResponse
	if err := c.do(ctx, "POST", "/api/search", nil, body, &out); err != nil {
		return nil, err
	}
	normalizeSearchResponse(&out)
	return &out, nil
}

// Autocomplete fetches typeahead suggestions scoped to a visitor.
func (c *Client) Autocomplete(ctx context.Context, query, visitorID string, maxSuggestions int) (*AutocompleteResponse, error) {
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	if visitorID == "" {
		visitorID = anonymousVisitor()
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("visitor_id", visitorID)
	q.Set("max_suggestions", strconv.Itoa(maxSuggestions))

	var out AutocompleteResponse
	if err := c.do(ctx, "GET", "/api/search/autocomplete", q, nil, &out); err != nil {
		return nil, err
	}
	if out.Suggestions == nil {
		out.Suggestions = []Suggestion{}
	}
	return &out, nil
}

// normalizeSearchResponse guarantees non-nil slices and a usable title
// on every product, so renderers never branch on missing data.
func normalizeSearchResponse(resp *SearchResponse) {
	if resp.Results == nil {
		resp.Results = []SearchResult{}
	}
	if resp.Facets == nil {
		resp.Facets = []Facet{}
	}
	for i := range resp.Results {
		normalizeProduct(&resp.Results[i].Product)
		if resp.Results[i].ID == "" {
			resp.Results[i].ID = resp.Results[i].Product.ID
		}
	}
}

func normalizeProduct(p *Product) {
	if p.ID == "" && p.Name != "" {
		// Resource names look like projects/.../products/<id>.
		for i := len(p.Name) - 1; i >= 0; i-- {
			if p.Name[i] == '/' {
				p.ID = p.Name[i+1:]
				break
			}
		}
	}
	if p.Title == "" {
		p.Title = "Product " + p.ID
	}
	if p.Availability == "" {
		p.Availability = "UNKNOWN"
	}
}
