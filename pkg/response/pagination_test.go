package response

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name     string
		total    int
		size     int
		expected int
	}{
		{name: "exact", total: 100, size: 10, expected: 10},
		{name: "partial last page", total: 95, size: 10, expected: 10},
		{name: "one extra item", total: 101, size: 10, expected: 11},
		{name: "single item", total: 1, size: 10, expected: 1},
		{name: "empty collection", total: 0, size: 10, expected: 0},
		{name: "zero page size", total: 100, size: 0, expected: 0},
		{name: "zero page size empty", total: 0, size: 0, expected: 0},
		{name: "negative page size", total: 100, size: -5, expected: 0},
		{name: "page size larger than total", total: 3, size: 50, expected: 1},
		{name: "max int", total: math.MaxInt, size: 2, expected: math.MaxInt/2 + 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TotalPages(tc.total, tc.size))
		})
	}
}

func TestTotalPagesMatchesCeiling(t *testing.T) {
	for total := 0; total <= 200; total++ {
		for size := 1; size <= 25; size++ {
			want := int(math.Ceil(float64(total) / float64(size)))
			require.Equal(t, want, TotalPages(total, size), "total=%d size=%d", total, size)
		}
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		info := NewPaginationInfo(100, 1, 10)
		assert.Equal(t, PaginationInfo{
			TotalItems:  100,
			CurrentPage: 1,
			PageSize:    10,
			TotalPages:  10,
			HasPrevious: false,
			HasNext:     true,
		}, info)
	})

	t.Run("middle page", func(t *testing.T) {
		info := NewPaginationInfo(95, 5, 10)
		assert.Equal(t, 10, info.TotalPages)
		assert.True(t, info.HasPrevious)
		assert.True(t, info.HasNext)
	})

	t.Run("last page", func(t *testing.T) {
		info := NewPaginationInfo(95, 10, 10)
		assert.True(t, info.HasPrevious)
		assert.False(t, info.HasNext)
	})

	t.Run("page past the end is not clamped", func(t *testing.T) {
		info := NewPaginationInfo(30, 50, 10)
		assert.Equal(t, 50, info.CurrentPage)
		assert.Equal(t, 3, info.TotalPages)
		assert.True(t, info.HasPrevious)
		assert.False(t, info.HasNext)
	})

	t.Run("zero page size", func(t *testing.T) {
		info := NewPaginationInfo(42, 1, 0)
		assert.Equal(t, 0, info.TotalPages)
		assert.False(t, info.HasPrevious)
		assert.False(t, info.HasNext)
	})

	t.Run("page zero", func(t *testing.T) {
		info := NewPaginationInfo(42, 0, 10)
		assert.False(t, info.HasPrevious)
		assert.True(t, info.HasNext)
	})
}

func TestPaginationFlagsBoundaries(t *testing.T) {
	for total := 0; total <= 60; total += 7 {
		for size := 0; size <= 12; size++ {
			for page := -1; page <= 10; page++ {
				info := NewPaginationInfo(total, page, size)
				assert.Equal(t, page <= 1, !info.HasPrevious, "total=%d size=%d page=%d", total, size, page)
				assert.Equal(t, page >= info.TotalPages, !info.HasNext, "total=%d size=%d page=%d", total, size, page)
			}
		}
	}
}
