// Package catalog implements the public catalog's filtering, pagination
// and filter-option logic over the mirrored product list.
package catalog

import (
	"strings"

	"github.com/ororso11/m-led/internal/modules/products"
	"github.com/ororso11/m-led/internal/modules/schema"
)

// Filters is the ephemeral per-request filter state.
type Filters struct {
	Search      string
	PrimaryType string              // empty or ALL imposes no constraint
	Categories  map[string][]string // multi-select per non-primary category key
}

// Apply returns the records satisfying every active predicate, in input
// order. Predicates short-circuit per product: search keyword, then
// primary classification, then each multi-select category.
func Apply(records []products.Record, f Filters) []products.Record {
	out := make([]products.Record, 0, len(records))
	for _, rec := range records {
		if Matches(rec, f) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether one product passes the filter state.
func Matches(rec products.Record, f Filters) bool {
	if kw := strings.TrimSpace(f.Search); kw != "" {
		kw = strings.ToLower(kw)
		if !strings.Contains(strings.ToLower(rec.Name), kw) &&
			!strings.Contains(strings.ToLower(rec.Specs), kw) &&
			!strings.Contains(strings.ToLower(rec.ProductNumber), kw) {
			return false
		}
	}

	if f.PrimaryType != "" && f.PrimaryType != schema.AllValue {
		if rec.Categories[schema.PrimaryCategoryKey] != f.PrimaryType {
			return false
		}
	}

	for key, selected := range f.Categories {
		if key == schema.PrimaryCategoryKey || len(selected) == 0 {
			continue
		}
		value, ok := rec.Categories[key]
		if !ok {
			return false
		}
		if !contains(selected, value) {
			return false
		}
	}
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
