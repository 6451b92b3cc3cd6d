package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/hostel-desk/internal/domain"
)

func intPtr(i int) *int { return &i }

func TestNewPaginationParams_Defaults(t *testing.T) {
	p := domain.NewPaginationParams(nil, nil)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)
}

func TestNewPaginationParams_CapsLimit(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(2), intPtr(10_000))

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 500, p.Limit)
}

func TestNewPaginationParams_IgnoresNonPositive(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(0), intPtr(-3))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)
}

func TestPaginationParams_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		params domain.PaginationParams
		total  int
		lo, hi int
	}{
		{"no limit returns everything", domain.PaginationParams{Page: 1}, 7, 0, 7},
		{"no limit second page is empty", domain.PaginationParams{Page: 2}, 7, 7, 7},
		{"first page", domain.PaginationParams{Page: 1, Limit: 3}, 7, 0, 3},
		{"last partial page", domain.PaginationParams{Page: 3, Limit: 3}, 7, 6, 7},
		{"past the end", domain.PaginationParams{Page: 9, Limit: 3}, 7, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.params.Bounds(tt.total)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}
