package catalog

import "github.com/ororso11/m-led/internal/modules/products"

// DefaultPageSize matches the public catalog grid.
const DefaultPageSize = 30

// windowSize is the sliding run of page buttons around the current page.
const windowSize = 5

// PageItem is one pagination control: either a numbered page button or an
// ellipsis gap marker.
type PageItem struct {
	Number   int  `json:"number,omitempty"`
	Active   bool `json:"active,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

type Pagination struct {
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalItems int        `json:"totalItems"`
	TotalPages int        `json:"totalPages"`
	HasPrev    bool       `json:"hasPrev"`
	HasNext    bool       `json:"hasNext"`
	Items      []PageItem `json:"items"`
}

// Slice returns the page-th slice of the filtered list plus the pagination
// view model. Pages outside [1, totalPages] are clamped.
func Slice(filtered []products.Record, page, size int) ([]products.Record, Pagination) {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(filtered)
	totalPages := (total + size - 1) / size
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return filtered[start:end], Pagination{
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		Items:      pageItems(page, totalPages),
	}
}

// pageItems builds the button row: first page, a five-wide window centered
// on the current page (clamped at the boundaries), the last page, and
// ellipsis markers wherever a gap exists.
func pageItems(page, totalPages int) []PageItem {
	if totalPages <= 1 {
		return nil
	}

	start := page - windowSize/2
	if start < 1 {
		start = 1
	}
	end := start + windowSize - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start < windowSize-1 {
		start = end - windowSize + 1
		if start < 1 {
			start = 1
		}
	}

	var items []PageItem
	if start > 1 {
		items = append(items, PageItem{Number: 1})
		if start > 2 {
			items = append(items, PageItem{Ellipsis: true})
		}
	}
	for i := start; i <= end; i++ {
		items = append(items, PageItem{Number: i, Active: i == page})
	}
	if end < totalPages {
		if end < totalPages-1 {
			items = append(items, PageItem{Ellipsis: true})
		}
		items = append(items, PageItem{Number: totalPages})
	}
	return items
}
