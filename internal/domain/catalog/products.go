// Package catalog holds the static shop catalog and its filter/sort rules.
package catalog

import "github.com/shopspring/decimal"

// Product is a read-only catalog entry.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	Tags        []string        `json:"tags"`
	Recommended bool            `json:"recommended"`
}

const imageQuery = "?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"

var products = []Product{
	{
		ID:          1,
		Name:        "Gentle Foaming Cleanser",
		Category:    "Cleanser",
		Price:       decimal.RequireFromString("24.99"),
		Image:       "https://images.pexels.com/photos/3737579/pexels-photo-3737579.jpeg" + imageQuery,
		Description: "A gentle foaming cleanser that removes impurities without stripping the skin.",
		Rating:      4.7,
		Reviews:     124,
		Tags:        []string{"sensitive skin", "oily skin"},
		Recommended: true,
	},
	{
		ID:          2,
		Name:        "Vitamin C Serum",
		Category:    "Serum",
		Price:       decimal.RequireFromString("38.50"),
		Image:       "https://images.pexels.com/photos/3685530/pexels-photo-3685530.jpeg" + imageQuery,
		Description: "Brightening serum with 15% vitamin C to reduce hyperpigmentation and boost collagen.",
		Rating:      4.9,
		Reviews:     89,
		Tags:        []string{"brightening", "anti-aging"},
		Recommended: true,
	},
	{
		ID:          3,
		Name:        "Oil-Free Moisturizer",
		Category:    "Moisturizer",
		Price:       decimal.RequireFromString("29.00"),
		Image:       "https://images.pexels.com/photos/3685523/pexels-photo-3685523.jpeg" + imageQuery,
		Description: "Lightweight, oil-free moisturizer providing 24-hour hydration without clogging pores.",
		Rating:      4.5,
		Reviews:     156,
		Tags:        []string{"oily skin", "combination skin"},
		Recommended: true,
	},
	{
		ID:          4,
		Name:        "Hyaluronic Acid Toner",
		Category:    "Toner",
		Price:       decimal.RequireFromString("22.00"),
		Image:       "https://images.pexels.com/photos/4465124/pexels-photo-4465124.jpeg" + imageQuery,
		Description: "Alcohol-free toner with hyaluronic acid to hydrate and prepare skin for treatment products.",
		Rating:      4.6,
		Reviews:     78,
		Tags:        []string{"dry skin", "hydrating"},
	},
	{
		ID:          5,
		Name:        "Retinol Night Cream",
		Category:    "Treatment",
		Price:       decimal.RequireFromString("42.99"),
		Image:       "https://images.pexels.com/photos/3685523/pexels-photo-3685523.jpeg" + imageQuery,
		Description: "Anti-aging night cream with retinol to reduce fine lines and improve skin texture.",
		Rating:      4.8,
		Reviews:     112,
		Tags:        []string{"anti-aging", "night care"},
	},
	{
		ID:          6,
		Name:        "SPF 50 Sunscreen",
		Category:    "Sunscreen",
		Price:       decimal.RequireFromString("19.95"),
		Image:       "https://images.pexels.com/photos/7319158/pexels-photo-7319158.jpeg" + imageQuery,
		Description: "Broad-spectrum SPF 50 sunscreen that's lightweight and doesn't leave a white cast.",
		Rating:      4.4,
		Reviews:     203,
		Tags:        []string{"sun protection", "daily use"},
	},
	{
		ID:          7,
		Name:        "Clay Purifying Mask",
		Category:    "Mask",
		Price:       decimal.RequireFromString("28.00"),
		Image:       "https://images.pexels.com/photos/6621462/pexels-photo-6621462.jpeg" + imageQuery,
		Description: "Deep-cleansing clay mask that draws out impurities and reduces excess oil.",
		Rating:      4.7,
		Reviews:     95,
		Tags:        []string{"oily skin", "weekly treatment"},
	},
	{
		ID:          8,
		Name:        "Brightening Eye Cream",
		Category:    "Eye Care",
		Price:       decimal.RequireFromString("34.50"),
		Image:       "https://images.pexels.com/photos/4465821/pexels-photo-4465821.jpeg" + imageQuery,
		Description: "Targeted eye cream that reduces dark circles and puffiness while brightening the under-eye area.",
		Rating:      4.6,
		Reviews:     67,
		Tags:        []string{"anti-aging", "brightening"},
	},
}

// All returns a copy of the catalog in its static order.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)

	return out
}

// Find looks a product up by id.
func Find(id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}

	return Product{}, false
}

// AllCategories is the category filter value matching everything.
const AllCategories = "all"

// Categories returns "all" followed by each distinct category in catalog order.
func Categories() []string {
	seen := make(map[string]struct{}, len(products))
	out := []string{AllCategories}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}

	return out
}
