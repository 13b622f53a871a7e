package utils

// PageBounds holds the default and the allowed range for page sizes.
type PageBounds struct {
	Default int
	Min     int
	Max     int
}

// DefaultPageBounds returns the standard bounds: 10 items, clamped to [3,50].
func DefaultPageBounds() PageBounds {
	return PageBounds{Default: 10, Min: 3, Max: 50}
}

func (b PageBounds) normalized() PageBounds {
	if b.Min < 1 {
		b.Min = 1
	}
	if b.Max < b.Min {
		b.Max = b.Min
	}
	b.Default = clamp(b.Default, b.Min, b.Max)
	return b
}

// Page is one slice of a list plus the bookkeeping a client needs to ask
// for the next one.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
}

// Paginate slices items into the requested page. It is total over its
// inputs: a zero limit falls back to the default, limit is clamped to the
// bounds, a zero page means the first one and page is clamped to
// [1, totalPages]. totalPages is never below 1, even for an empty list.
func Paginate[T any](items []T, page, limit int, bounds PageBounds) Page[T] {
	bounds = bounds.normalized()
	if limit == 0 {
		limit = bounds.Default
	}
	limit = clamp(limit, bounds.Min, bounds.Max)

	total := len(items)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	if page == 0 {
		page = 1
	}
	page = clamp(page, 1, totalPages)

	start := (page - 1) * limit
	end := min(start+limit, total)
	out := make([]T, 0, end-start)
	out = append(out, items[start:end]...)

	return Page[T]{
		Items:      out,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
