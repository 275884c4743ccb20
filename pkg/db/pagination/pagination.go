package pagination

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination is embedded into query structs bound by gin.
type Pagination struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

// Normalize returns a copy with page >= 1 and page size in [1, maxSize].
// A zero page size takes defaultSize.
func (p Pagination) Normalize(defaultSize, maxSize int) Pagination {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if defaultSize > maxSize {
		defaultSize = maxSize
	}

	out := p
	if out.Page < 1 {
		out.Page = 1
	}
	switch {
	case out.PageSize <= 0:
		out.PageSize = defaultSize
	case out.PageSize > maxSize:
		out.PageSize = maxSize
	}
	return out
}

// Offset is the number of rows before the page. It saturates at
// math.MaxInt instead of overflowing, so a huge page always lands past the
// end of the collection.
func (p Pagination) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) Limit() int {
	return p.PageSize
}
