package storefront

import (
	"context"
	"sync"
	"time"

	"shopfront/internal/debounce"
	"shopfront/internal/retail"
)

// MinSuggestQueryLen is the shortest query worth completing; anything
// shorter clears the suggestion list instead of hitting the backend.
const MinSuggestQueryLen = 2

// AutocompleteService is the slice of the retail client the suggestion
// controller needs.
type AutocompleteService interface {
	Autocomplete(ctx context.Context, query, visitorID string, maxSuggestions int) (*retail.AutocompleteResponse, error)
}

// AutocompleteController keeps the typeahead suggestion list for the
// active visitor. Interactive consumers feed keystrokes through
// OnQueryChange, which debounces before fetching to bound request rate;
// GetSuggestions is the direct entry point for already-quiesced input.
type AutocompleteController struct {
	svc      AutocompleteService
	visitors VisitorProvider
	max      int

	mu          sync.Mutex
	suggestions []retail.Suggestion

	debouncer *debounce.Debouncer[string]
	// onUpdate fires after a debounced fetch replaces the list.
	onUpdate func([]retail.Suggestion)
}

func NewAutocompleteController(svc AutocompleteService, visitors VisitorProvider, maxSuggestions int) *AutocompleteController {
	if maxSuggestions <= 0 {
		maxSuggestions = retail.DefaultMaxSuggestions
	}
	c := &AutocompleteController{
		svc:      svc,
		visitors: visitors,
		max:      maxSuggestions,
	}
	c.debouncer = debounce.New(debounce.DefaultWindow, func(q string) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		suggestions, _ := c.GetSuggestions(ctx, q)
		if c.onUpdate != nil {
			c.onUpdate(suggestions)
		}
	})
	return c
}

// SetUpdateHook registers the callback run after each debounced fetch.
func (c *AutocompleteController) SetUpdateHook(fn func([]retail.Suggestion)) {
	c.onUpdate = fn
}

// OnQueryChange feeds a raw input change into the debouncer; the fetch
// fires only once the input has been stable for the full window.
func (c *AutocompleteController) OnQueryChange(query string) {
	c.debouncer.Set(query)
}

// GetSuggestions fetches suggestions for query, replacing the current
// list. Queries shorter than MinSuggestQueryLen clear the list and make
// no request. A failed fetch also clears the list; stale suggestions
// are worse than none.
func (c *AutocompleteController) GetSuggestions(ctx context.Context, query string) ([]retail.Suggestion, error) {
	if len(query) < MinSuggestQueryLen {
		c.setSuggestions(nil)
		return nil, nil
	}

	visitorID, err := c.visitors.GetOrCreate()
	if err != nil {
		visitorID = ""
	}

	resp, err := c.svc.Autocomplete(ctx, query, visitorID, c.max)
	if err != nil {
		c.setSuggestions(nil)
		return nil, err
	}

	c.setSuggestions(resp.Suggestions)
	return resp.Suggestions, nil
}

// Suggestions returns the current list.
func (c *AutocompleteController) Suggestions() []retail.Suggestion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suggestions
}

// Clear empties the suggestion list and cancels any pending debounced
// fetch.
func (c *AutocompleteController) Clear() {
	c.debouncer.Stop()
	c.setSuggestions(nil)
}

func (c *AutocompleteController) setSuggestions(s []retail.Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.suggestions = s
}
