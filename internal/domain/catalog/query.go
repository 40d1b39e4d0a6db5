package catalog

import (
	"slices"
	"strings"
)

// SortKey selects the listing order.
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortRating      SortKey = "rating"
)

// Query is a listing request.
type Query struct {
	Search   string
	Category string
	Sort     SortKey
}

// Matches reports whether p passes the search and category filters.
func (q Query) Matches(p Product) bool {
	if q.Category != "" && q.Category != AllCategories && p.Category != q.Category {
		return false
	}

	needle := strings.ToLower(q.Search)
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}

	return slices.ContainsFunc(p.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), needle)
	})
}

// List filters then sorts the catalog. userRecs are product names from the
// user's latest analysis and only affect the recommended order.
func List(q Query, userRecs []string) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if q.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	Sort(filtered, q.Sort, userRecs)

	return filtered
}

// Sort orders items in place. Every order is stable.
func Sort(items []Product, key SortKey, userRecs []string) {
	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(items, func(a, b Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(items, func(a, b Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortRating:
		slices.SortStableFunc(items, func(a, b Product) int {
			return cmpFloatDesc(a.Rating, b.Rating)
		})
	case SortRecommended, "":
		recs := make(map[string]struct{}, len(userRecs))
		for _, name := range userRecs {
			recs[name] = struct{}{}
		}
		slices.SortStableFunc(items, func(a, b Product) int {
			_, aRec := recs[a.Name]
			_, bRec := recs[b.Name]
			if c := cmpBoolFirst(aRec, bRec); c != 0 {
				return c
			}

			return cmpBoolFirst(a.Recommended, b.Recommended)
		})
	}
}

// ValidSort reports whether key is a known sort key.
func ValidSort(key SortKey) bool {
	switch key {
	case SortRecommended, SortPriceAsc, SortPriceDesc, SortRating:
		return true
	default:
		return false
	}
}

func cmpBoolFirst(a, b bool) int {
	switch {
	case a && !b:
		return -1
	case !a && b:
		return 1
	default:
		return 0
	}
}

func cmpFloatDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
