package domain

// PaginatedResult bundles one page of items with the paging metadata the
// transport layer echoes back to clients.
type PaginatedResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// NewPaginatedResult creates a PaginatedResult for a zero-based page index.
func NewPaginatedResult[T any](items []T, total int64, page, size int) PaginatedResult[T] {
	return PaginatedResult[T]{Items: items, Total: total, Page: page, Size: size}
}
