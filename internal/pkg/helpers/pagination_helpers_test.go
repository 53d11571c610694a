package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 20, wantOffset: 0, wantLimit: 20},
		{name: "third page", page: 3, size: 10, wantOffset: 20, wantLimit: 10},
		{name: "zero size falls back", page: 2, size: 0, wantOffset: 10, wantLimit: 10},
		{name: "oversized page size falls back", page: 1, size: 500, wantOffset: 0, wantLimit: 10},
		{name: "page below one falls back", page: 0, size: 5, wantOffset: 0, wantLimit: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(45), info.TotalItems)
}

func TestNewPaginationInfo_Empty(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, int64(0), info.TotalItems)
}

func TestNewPaginationInfo_PageBeyondLast(t *testing.T) {
	info := NewPaginationInfo(15, 9, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 2, info.TotalPages)
}
