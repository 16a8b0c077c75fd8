package retail

// Wire types for the retail backend proxy. Responses are normalized into
// these shapes once, at the wrapper boundary, so nothing downstream has
// to deal with missing or duck-typed fields.

type PriceInfo struct {
	CurrencyCode  string   `json:"currency_code"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Cost          *float64 `json:"cost,omitempty"`
}

type Image struct {
	URI    string `json:"uri"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type Product struct {
	ID           string              `json:"id"`
	Name         string              `json:"name,omitempty"`
	Title        string              `json:"title"`
	Description  string              `json:"description,omitempty"`
	Categories   []string            `json:"categories,omitempty"`
	Brands       []string            `json:"brands,omitempty"`
	PriceInfo    *PriceInfo          `json:"price_info,omitempty"`
	Availability string              `json:"availability,omitempty"`
	URI          string              `json:"uri,omitempty"`
	Images       []Image             `json:"images,omitempty"`
	Attributes   map[string][]string `json:"attributes,omitempty"`
}

// FirstImage returns the URI of the primary product image, or "".
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URI
}

type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type Facet struct {
	Key    string       `json:"key"`
	Values []FacetValue `json:"values"`
}

// SearchResult pairs the backend's result id with the fully-typed
// product payload.
type SearchResult struct {
	ID      string  `json:"id"`
	Product Product `json:"product"`
}

type SearchResponse struct {
	Results          []SearchResult `json:"results"`
	Facets           []Facet        `json:"facets"`
	TotalSize        int            `json:"total_size"`
	AttributionToken string         `json:"attribution_token,omitempty"`
	NextPageToken    string         `json:"next_page_token,omitempty"`
	CorrectedQuery   string         `json:"corrected_query,omitempty"`
}

type Suggestion struct {
	Suggestion string         `json:"suggestion"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type AutocompleteResponse struct {
	Suggestions      []Suggestion `json:"suggestions"`
	AttributionToken string       `json:"attribution_token,omitempty"`
}

type ListProductsResponse struct {
	Products      []Product `json:"products"`
	NextPageToken string    `json:"next_page_token"`
}

type Category struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count,omitempty"`
}

type RecommendationModel struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	RequiresProductID bool   `json:"requires_product_id,omitempty"`
}

type RecommendResult struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type RecommendResponse struct {
	Results []RecommendResult `json:"results"`
}
