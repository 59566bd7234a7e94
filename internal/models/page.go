package models

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination carries the requested page and page size. Invalid values silently
// fall back to defaults rather than erroring.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize returns a copy with out-of-range values replaced by defaults:
// page < 1 becomes 1, limit < 1 becomes 10.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset returns the row offset of the normalized page.
func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// PageMeta describes one page of a filtered listing. Total is computed against
// the same filter predicate as the page itself.
type PageMeta struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Total     int64 `json:"total"`
	PageCount int   `json:"page_count"`
}

// NewPageMeta derives the page count from the total. An empty result set has
// a page count of zero, not one.
func NewPageMeta(p Pagination, total int64) PageMeta {
	n := p.Normalize()

	pageCount := 0
	if total > 0 {
		pageCount = int((total + int64(n.Limit) - 1) / int64(n.Limit))
	}

	return PageMeta{
		Page:      n.Page,
		Limit:     n.Limit,
		Total:     total,
		PageCount: pageCount,
	}
}

// TransactionPage is one page of a filtered transaction listing.
type TransactionPage struct {
	Items []Transaction `json:"items"`
	Meta  PageMeta      `json:"meta"`
}
