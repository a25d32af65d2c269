package services

import "assetfolio/internal/pagination"

// pageSlice applies pagination to an already-loaded list. Asset lists
// are loaded whole so category totals cover every record, then sliced
// for the response page.
func pageSlice[T any](all []T, page pagination.PageRequest) []T {
	start := page.Offset()
	if start >= len(all) {
		return []T{}
	}
	end := start + page.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
