package retail

import "context"

const DefaultRecommendPageSize = 10

type RecommendParams struct {
	Model     string
	VisitorID string
	ProductID string
	PageSize  int
	Filter    string
	Params    map[string]any
}

type recommendRequestBody struct {
	Model     string         `json:"model"`
	VisitorID string         `json:"visitor_id"`
	ProductID string         `json:"product_id,omitempty"`
	PageSize  int            `json:"page_size"`
	Filter    string         `json:"filter"`
	Params    map[string]any `json:"params,omitempty"`
}

// Recommend asks the named model for predictions. Recommendation calls
// are meaningless without a visitor, so a missing id fails before any
// network traffic.
func (c *Client) Recommend(ctx context.Context, params RecommendParams) (*RecommendResponse, error) {
	if params.VisitorID == "" {
		return nil, &APIError{Message: "visitor id is required for recommendations"}
	}
	if params.Model == "" {
		return nil, &APIError{Message: "recommendation model is required"}
	}
	if params.PageSize <= 0 {
		params.PageSize = DefaultRecommendPageSize
	}

	body := recommendRequestBody{
		Model:     params.Model,
		VisitorID: params.VisitorID,
		ProductID: params.ProductID,
		PageSize:  params.PageSize,
		Filter:    params.Filter,
		Params:    params.Params,
	}

	var out RecommendResponse
	if err := c.do(ctx, "POST", "/api/recommendations", nil, body, &out); err != nil {
		return nil, err
	}
	if out.Results == nil {
		out.Results = []RecommendResult{}
	}
	return &out, nil
}

// RecommendationModels lists the serving models the proxy exposes.
func (c *Client) RecommendationModels(ctx context.Context) ([]RecommendationModel, error) {
	var out []RecommendationModel
	if err := c.do(ctx, "GET", "/api/recommendations/models", nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []RecommendationModel{}
	}
	return out, nil
}
