package storefront

import (
	"context"
	"strings"
	"sync"

	"shopfront/internal/retail"
)

// ProductLister is the slice of the retail client used for cursor-based
// category browsing.
type ProductLister interface {
	ListProducts(ctx context.Context, params retail.ListProductsParams) (*retail.ListProductsResponse, error)
}

// CategoryLister resolves slugs to display names via the categories
// endpoint.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]retail.Category, error)
}

// NameResolver lets a branding document answer slug lookups before the
// network is consulted.
type NameResolver interface {
	CategoryName(slug string) (string, bool)
}

// CategorySnapshot is the render state of one category browse page. The
// listing backend exposes only forward continuation tokens, so
// TotalEstimate is an approximation, never an exact count.
type CategorySnapshot struct {
	Slug          string
	Name          string
	Products      []retail.Product
	Page          int
	PageSize      int
	HasNext       bool
	TotalEstimate int
	Err           string
	Phase         Phase
}

// CategoryController drives category browsing: it resolves the slug to
// a display name before the first listing request (requests must not
// fire until resolution completes), then pages forward through the
// catalog, remembering each page's continuation token so earlier pages
// stay reachable.
type CategoryController struct {
	products   ProductLister
	categories CategoryLister
	branding   NameResolver
	pageSize   int
	slug       string

	mu       sync.Mutex
	name     string
	resolved bool
	// tokens[i] is the continuation token that fetches page i+1;
	// tokens[0] is always "".
	tokens   []string
	items    []retail.Product
	hasNext  bool
	estimate int
	errMsg   string
	phase    Phase
	page     int
}

func NewCategoryController(products ProductLister, categories CategoryLister, branding NameResolver, slug string, pageSize int) *CategoryController {
	if pageSize <= 0 {
		pageSize = retail.DefaultPageSize
	}
	return &CategoryController{
		products:   products,
		categories: categories,
		branding:   branding,
		pageSize:   pageSize,
		slug:       slug,
		tokens:     []string{""},
		page:       1,
	}
}

// Seed primes the continuation token that fetches page, for callers
// that round-trip tokens through the URL instead of holding the
// controller in memory between requests.
func (c *CategoryController) Seed(page int, token string) {
	page = clampPage(page)
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.tokens) < page {
		c.tokens = append(c.tokens, "")
	}
	if page > 1 {
		c.tokens[page-1] = token
	}
}

// Resolve determines the category's display name: branding document
// first, then the categories service, then a deterministic title-cased
// slug when both fail. Resolution never fails the page.
func (c *CategoryController) Resolve(ctx context.Context) string {
	c.mu.Lock()
	if c.resolved {
		name := c.name
		c.mu.Unlock()
		return name
	}
	c.mu.Unlock()

	name := ""
	if c.branding != nil {
		if n, ok := c.branding.CategoryName(c.slug); ok {
			name = n
		}
	}
	if name == "" && c.categories != nil {
		if cats, err := c.categories.ListCategories(ctx); err == nil {
			for _, cat := range cats {
				if cat.Slug == c.slug {
					name = cat.Name
					break
				}
			}
		}
	}
	if name == "" {
		name = TitleCaseSlug(c.slug)
	}

	c.mu.Lock()
	c.name = name
	c.resolved = true
	c.mu.Unlock()
	return name
}

// Execute loads the requested page. The category name is resolved first
// if it has not been yet.
func (c *CategoryController) Execute(ctx context.Context, page int) CategorySnapshot {
	name := c.Resolve(ctx)
	page = clampPage(page)

	c.mu.Lock()
	c.page = page
	c.phase = PhaseLoading
	token := ""
	if page-1 < len(c.tokens) {
		token = c.tokens[page-1]
	}
	filter := BuildFilterExpression(nil, name)
	c.mu.Unlock()

	resp, err := c.products.ListProducts(ctx, retail.ListProductsParams{
		PageSize:  c.pageSize,
		PageToken: token,
		Filter:    filter,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.phase = PhaseFailure
		c.errMsg = err.Error()
		return c.snapshotLocked()
	}

	c.phase = PhaseSuccess
	c.errMsg = ""
	c.items = resp.Products
	c.hasNext = resp.NextPageToken != ""

	// Record the token that reaches the next page.
	if resp.NextPageToken != "" {
		for len(c.tokens) <= page {
			c.tokens = append(c.tokens, "")
		}
		if c.tokens[page] == "" {
			c.tokens[page] = resp.NextPageToken
		}
	}

	// No total count on this path; estimate from position. At least one
	// more page exists when a token came back.
	if resp.NextPageToken != "" {
		c.estimate = page*c.pageSize + 1
	} else {
		c.estimate = (page-1)*c.pageSize + len(resp.Products)
	}
	return c.snapshotLocked()
}

// NextToken returns the continuation token that fetches the page after
// the current one, or "" when the end of the listing has been reached.
func (c *CategoryController) NextToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page < len(c.tokens) {
		return c.tokens[c.page]
	}
	return ""
}

func (c *CategoryController) snapshotLocked() CategorySnapshot {
	return CategorySnapshot{
		Slug:          c.slug,
		Name:          c.name,
		Products:      c.items,
		Page:          c.page,
		PageSize:      c.pageSize,
		HasNext:       c.hasNext,
		TotalEstimate: c.estimate,
		Err:           c.errMsg,
		Phase:         c.phase,
	}
}

// TitleCaseSlug converts "home-garden" into "Home Garden", the fallback
// display name when no lookup source knows the slug.
func TitleCaseSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
