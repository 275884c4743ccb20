package response

// PaginationInfo describes where a page sits inside a paged collection.
// TotalPages, HasPrevious and HasNext are derived; build it with
// NewPaginationInfo.
type PaginationInfo struct {
	TotalItems  int  `json:"totalItems"`
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// NewPaginationInfo computes the derived fields. currentPage is not clamped,
// so a page past the end simply reports HasNext=false.
func NewPaginationInfo(totalItems, currentPage, pageSize int) PaginationInfo {
	totalPages := TotalPages(totalItems, pageSize)
	return PaginationInfo{
		TotalItems:  totalItems,
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}

// TotalPages is ceil(totalItems / pageSize), or 0 when pageSize is not
// positive.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	pages := totalItems / pageSize
	if totalItems%pageSize != 0 {
		pages++
	}
	return pages
}
