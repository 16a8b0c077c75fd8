package retail

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type ListProductsParams struct {
	PageSize  int
	PageToken string
	Filter    string
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	if productID == "" {
		return nil, &APIError{Message: "product id is required"}
	}

	var out Product
	path := fmt.Sprintf("/api/products/%s", url.PathEscape(productID))
	if err := c.do(ctx, "GET", path, nil, nil, &out); err != nil {
		return nil, err
	}
	normalizeProduct(&out)
	return &out, nil
}

// ListProducts pages through the catalog with forward-only continuation
// tokens. The proxy exposes no total count on this path.
func (c *Client) ListProducts(ctx context.Context, params ListProductsParams) (*ListProductsResponse, error) {
	if params.PageSize <= 0 {
		params.PageSize = DefaultPageSize
	}

	q := url.Values{}
	q.Set("page_size", strconv.Itoa(params.PageSize))
	q.Set("page_token", params.PageToken)
	q.Set("filter", params.Filter)

	var out ListProductsResponse
	if err := c.do(ctx, "GET", "/api/products", q, nil, &out); err != nil {
		return nil, err
	}
	if out.Products == nil {
		out.Products = []Product{}
	}
	for i := range out.Products {
		normalizeProduct(&out.Products[i])
	}
	return &out, nil
}
