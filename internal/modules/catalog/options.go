package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ororso11/m-led/internal/modules/products"
	"github.com/ororso11/m-led/internal/modules/schema"
)

// FilterGroup is one sidebar filter: a category key, its display label and
// the selectable values actually present on products.
type FilterGroup struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// CollectOptions derives the filter sidebar from the live product mirror:
// for every declared non-primary category, the distinct values found on
// products, sorted per the category's rule. Categories with no values on
// any product produce no group. Groups come out in key order so the
// response is stable.
func CollectOptions(records []products.Record, categories map[string]schema.CategoryDefinition) []FilterGroup {
	keys := make([]string, 0, len(categories))
	for key := range categories {
		if key != schema.PrimaryCategoryKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var groups []FilterGroup
	for _, key := range keys {
		seen := map[string]bool{}
		var values []string
		for _, rec := range records {
			if v := rec.Categories[key]; v != "" && !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		SortValues(key, values)

		label := categories[key].Label
		if label == "" {
			label = strings.ToUpper(key)
		}
		groups = append(groups, FilterGroup{Key: key, Label: label, Values: values})
	}
	return groups
}

// SortValues orders filter-option values in place. Wattage values sort
// numerically with the "and above" sentinel (trailing '+') last; color
// temperatures sort numerically with non-numeric values after, broken
// lexicographically; everything else is lexicographic.
func SortValues(key string, values []string) {
	switch key {
	case "watt":
		sort.SliceStable(values, func(i, j int) bool {
			a, b := values[i], values[j]
			aPlus, bPlus := strings.HasSuffix(a, "+"), strings.HasSuffix(b, "+")
			if aPlus != bPlus {
				return bPlus
			}
			return leadingInt(a) < leadingInt(b)
		})
	case "cct":
		sort.SliceStable(values, func(i, j int) bool {
			a, b := values[i], values[j]
			an, aok := numericPrefix(a)
			bn, bok := numericPrefix(b)
			switch {
			case aok && bok:
				return an < bn
			case aok:
				return true
			case bok:
				return false
			default:
				return a < b
			}
		})
	default:
		sort.Strings(values)
	}
}

// leadingInt parses the integer prefix of a value like "10W" or "20-30W".
func leadingInt(s string) int {
	n, _ := numericPrefix(s)
	return n
}

func numericPrefix(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
