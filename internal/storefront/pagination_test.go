package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationOffset(t *testing.T) {
	tests := []struct {
		page, pageSize, want int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{3, 20, 40},
		{3, 10, 20},
		{1, 1, 0},
		{100, 25, 2475},
	}
	for _, tt := range tests {
		p := Pagination{Page: tt.page, PageSize: tt.pageSize}
		assert.Equal(t, tt.want, p.Offset(), "page=%d size=%d", tt.page, tt.pageSize)
	}
}

func TestPaginationComputeMeta(t *testing.T) {
	p := Pagination{Page: 1, PageSize: 10}
	p.ComputeMeta(25)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = Pagination{Page: 3, PageSize: 10}
	p.ComputeMeta(25)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = Pagination{Page: 1, PageSize: 10}
	p.ComputeMeta(0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, clampPage(0))
	assert.Equal(t, 1, clampPage(-5))
	assert.Equal(t, 7, clampPage(7))
}
