package retail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zap.NewNop().Sugar())
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": status < 300, "data": data})
}

func TestSearchSendsWireFields(t *testing.T) {
	var got map[string]any
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeEnvelope(w, http.StatusOK, SearchResponse{TotalSize: 25})
	}))

	resp, err := client.Search(context.Background(), SearchParams{
		Query:     "drill",
		VisitorID: "visitor_demo_alice",
		PageSize:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, resp.TotalSize)

	assert.Equal(t, "drill", got["query"])
	assert.Equal(t, "visitor_demo_alice", got["visitor_id"])
	assert.Equal(t, float64(10), got["page_size"])
	assert.Equal(t, float64(0), got["offset"])
	assert.Equal(t, "", got["filter"])
	assert.Equal(t, "", got["order_by"])
}

func TestSearchDefaultsAndAnonymousVisitor(t *testing.T) {
	var got map[string]any
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeEnvelope(w, http.StatusOK, SearchResponse{})
	}))

	resp, err := client.Search(context.Background(), SearchParams{Query: "paint"})
	require.NoError(t, err)

	assert.Equal(t, float64(DefaultPageSize), got["page_size"])
	assert.Regexp(t, `^visitor_[0-9a-f]{16}$`, got["visitor_id"])
	assert.NotNil(t, resp.Results, "results slice must be non-nil on empty responses")
	assert.NotNil(t, resp.Facets)
}

func TestSearchNormalizesProducts(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{
			"results": []map[string]any{
				{"id": "", "product": map[string]any{"name": "projects/p/locations/global/catalogs/c/branches/0/products/sku-42"}},
			},
			"total_size": 1,
		})
	}))

	resp, err := client.Search(context.Background(), SearchParams{Query: "x"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	p := resp.Results[0].Product
	assert.Equal(t, "sku-42", p.ID, "id must be recovered from the resource name")
	assert.Equal(t, "Product sku-42", p.Title)
	assert.Equal(t, "UNKNOWN", p.Availability)
	assert.Equal(t, "sku-42", resp.Results[0].ID)
}

func TestErrorMessagePreference(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{
			name: "server error field wins",
			body: map[string]any{"success": false, "error": "quota exceeded", "detail": "other"},
			want: "quota exceeded",
		},
		{
			name: "detail field second",
			body: map[string]any{"success": false, "detail": "catalog not found"},
			want: "catalog not found",
		},
		{
			name: "generic fallback",
			body: map[string]any{"success": false},
			want: "server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(tt.body)
			}))

			_, err := client.Search(context.Background(), SearchParams{Query: "x"})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Message)
			assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		})
	}
}

func TestNetworkFailureTranslated(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing is listening anymore

	client := NewClient(url, zap.NewNop().Sugar())
	_, err := client.Search(context.Background(), SearchParams{Query: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "no response from server", apiErr.Message)
}

func TestAutocompleteQueryParams(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/search/autocomplete", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "dri", q.Get("query"))
		assert.Equal(t, "visitor_demo_bob", q.Get("visitor_id"))
		assert.Equal(t, "5", q.Get("max_suggestions"))
		writeEnvelope(w, http.StatusOK, AutocompleteResponse{
			Suggestions: []Suggestion{{Suggestion: "drill"}, {Suggestion: "drill bits"}},
		})
	}))

	resp, err := client.Autocomplete(context.Background(), "dri", "visitor_demo_bob", 0)
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, "drill", resp.Suggestions[0].Suggestion)
}

func TestGetProduct(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products/sku-1", r.URL.Path)
		writeEnvelope(w, http.StatusOK, Product{ID: "sku-1", Title: "Cordless Drill"})
	}))

	p, err := client.GetProduct(context.Background(), "sku-1")
	require.NoError(t, err)
	assert.Equal(t, "Cordless Drill", p.Title)

	_, err = client.GetProduct(context.Background(), "")
	require.Error(t, err)
}

func TestListProductsPassesToken(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("page_size"))
		assert.Equal(t, "tok-2", q.Get("page_token"))
		assert.Equal(t, `categories: ANY("Apparel")`, q.Get("filter"))
		writeEnvelope(w, http.StatusOK, ListProductsResponse{
			Products:      []Product{{ID: "sku-9", Title: "Raincoat"}},
			NextPageToken: "tok-3",
		})
	}))

	resp, err := client.ListProducts(context.Background(), ListProductsParams{
		PageToken: "tok-2",
		Filter:    `categories: ANY("Apparel")`,
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-3", resp.NextPageToken)
	require.Len(t, resp.Products, 1)
}

func TestListCategories(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/categories", r.URL.Path)
		writeEnvelope(w, http.StatusOK, []Category{
			{Name: "Home & Garden", Slug: "home-garden", Count: 120},
			{Name: "Apparel", Slug: "apparel", Count: 80},
		})
	}))

	cats, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "home-garden", cats[0].Slug)
}

func TestRecommendRequiresVisitor(t *testing.T) {
	called := false
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		writeEnvelope(w, http.StatusOK, RecommendResponse{})
	}))

	_, err := client.Recommend(context.Background(), RecommendParams{Model: "similar_items"})
	require.Error(t, err)
	assert.False(t, called, "validation must fail before any network call")

	_, err = client.Recommend(context.Background(), RecommendParams{
		Model:     "similar_items",
		VisitorID: "visitor_demo_alice",
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestRecommendationModels(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/recommendations/models", r.URL.Path)
		writeEnvelope(w, http.StatusOK, []RecommendationModel{
			{ID: "similar_items", Name: "Similar Items", RequiresProductID: true},
			{ID: "recommended_for_you", Name: "Recommended For You"},
		})
	}))

	models, err := client.RecommendationModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.True(t, models[0].RequiresProductID)
}
