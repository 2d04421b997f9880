package feed

import "strconv"

// PageSize is the fixed number of items per feed page.
const PageSize = 6

// Page is one window of the merged feed.
type Page struct {
	Items      []Item
	Number     int
	TotalPages int
	TotalItems int
	HasNext    bool
	HasPrev    bool
}

// ParsePage interprets a raw page query parameter. Non-numeric or missing
// values fall back to page 1; clamping against the upper bound happens in
// Paginate once the item count is known.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate slices items into the requested 1-based page. Out-of-range page
// numbers clamp to the nearest valid page; an empty input yields a valid
// empty first page.
func Paginate(items []Item, page int) Page {
	total := len(items)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
