// Package catalog implements the catalog browsing rules: kind filter, search
// and pagination.
package catalog

import (
	"strings"

	"pos/internal/domain/entity"
)

// Filter returns the items that match the kind filter and whose name or sku
// contains the search term, ignoring case. Order is preserved.
func Filter(items entity.Catalog, ui entity.UIState) entity.Catalog {
	term := strings.ToLower(strings.TrimSpace(ui.SearchTerm))

	out := make(entity.Catalog, 0, len(items))
	for _, item := range items {
		if !ui.Filter.Matches(item.Kind) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.SKU), term) {
			continue
		}
		out = append(out, item)
	}

	return out
}

// Page is one slice of a filtered catalog.
type Page struct {
	Items      entity.Catalog `json:"items"`
	TotalCount int            `json:"totalCount"`
	TotalPages int            `json:"totalPages"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}

// Paginate slices filtered into the 1-indexed page. A page outside
// [1, TotalPages] yields no items; clamping is left to the caller.
// A non-positive pageSize falls back to entity.DefaultPageSize.
func Paginate(filtered entity.Catalog, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = entity.DefaultPageSize
	}

	total := len(filtered)
	result := Page{
		Items:      entity.Catalog{},
		TotalCount: total,
		TotalPages: TotalPages(total, pageSize),
		Page:       page,
		PageSize:   pageSize,
	}

	if page < 1 || page > result.TotalPages {
		return result
	}

	start := (page - 1) * pageSize
	if start >= total {
		return result
	}
	end := min(start+pageSize, total)
	result.Items = filtered[start:end].Clone()

	return result
}

// TotalPages is the number of pages needed for total items, at least one.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total == 0 {
		return 1
	}

	return (total-1)/pageSize + 1
}

// ClampPage moves page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	return max(1, min(page, totalPages))
}
