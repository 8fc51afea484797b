package pkg

import "math"

// PageMeta describes one page of a listing.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// Page is one page of items plus its metadata.
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

// NewPage builds a Page with computed TotalPages (ceil of total/pageSize;
// zero when there are no rows). A nil items slice serializes as [].
func NewPage[T any](items []T, total int64, page, pageSize int) *Page[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items: items,
		Meta: PageMeta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	}
}

// PageOffset converts 1-based page numbers to a row offset.
func PageOffset(page, pageSize int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * pageSize
}
