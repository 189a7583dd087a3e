package catalog

import "github.com/stokpilot/stokpilot/internal/core/domain"

// PerPageMenu is the fixed set of page sizes the UI offers.
var PerPageMenu = []int{6, 12, 24, 48}

const DefaultPerPage = 12

// Paginate derives the visible window and the page count from an already
// filtered and sorted collection. Pages are 1-based. The page count is
// never below 1, so an empty collection renders as one empty page.
// A page beyond the last yields an empty window; clamping is the
// caller's job.
func Paginate(ps []domain.Product, page, perPage int) ([]domain.Product, int) {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}

	totalPages := (len(ps) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * perPage
	if start >= len(ps) {
		return []domain.Product{}, totalPages
	}

	end := min(start+perPage, len(ps))
	return ps[start:end], totalPages
}

// PageNumbers lists the page buttons to render, using -1 for an
// ellipsis gap once there are more than seven pages.
func PageNumbers(current, total int) []int {
	if total <= 7 {
		nums := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			nums = append(nums, i)
		}
		return nums
	}

	switch {
	case current <= 3:
		return []int{1, 2, 3, 4, -1, total}
	case current >= total-2:
		return []int{1, -1, total - 3, total - 2, total - 1, total}
	default:
		return []int{1, -1, current - 1, current, current + 1, -1, total}
	}
}
