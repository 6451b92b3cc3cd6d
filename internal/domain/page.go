package domain

// PaginationParams carries page/limit values from the HTTP layer to the board view.
// Page is 1-indexed. A zero Limit means "every room on one page", which is what
// the front desk screen wants; API clients can still page through large hotels.
type PaginationParams struct {
	Page  int
	Limit int
}

// maxLimit caps a single page so one request cannot render an arbitrary grid.
const maxLimit = 500

// NewPaginationParams builds a PaginationParams from optional query params.
// Nil or non-positive values fall back to page=1 and no limit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, maxLimit)
	}
	return p
}

// Bounds returns the half-open [lo, hi) slice window of this page over a
// sequence of total items. Pages past the end yield an empty window.
func (p PaginationParams) Bounds(total int) (lo, hi int) {
	if p.Limit == 0 {
		if p.Page > 1 {
			return total, total
		}
		return 0, total
	}
	lo = min((p.Page-1)*p.Limit, total)
	hi = min(lo+p.Limit, total)
	return lo, hi
}
