package storefront

import "math"

// Pagination holds page position and the metadata computed from a total
// count once a response is in hand.
type Pagination struct {
	PageSize   int  `json:"page_size"`
	Page       int  `json:"page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Offset converts the 1-based page into the request offset. Callers
// clamp Page to >= 1 before asking for it.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ComputeMeta fills the derived fields after the total count is known.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.PageSize > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.PageSize)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = (p.Page * p.PageSize) < total
}

// clampPage normalizes arbitrary input to a valid 1-based page number.
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
