package retail

import "context"

// ListCategories returns the catalog's categories, most populous first
// (the proxy sorts by count before answering).
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.do(ctx, "GET", "/api/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Category{}
	}
	return out, nil
}
