// Package query holds storage-agnostic paging helpers for list queries.
package query

import "litreview/internal/shared/constants"

// PageFilter is a 1-based page request. Out-of-range values fall back to
// the defaults in constants.
type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) page() int {
	if f.Page < 1 {
		return constants.DefaultPage
	}
	return f.Page
}

func (f PageFilter) Offset() int {
	return (f.page() - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize < 1 {
		return constants.DefaultPageSize
	}
	if f.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return f.PageSize
}
