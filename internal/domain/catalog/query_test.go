package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(items []Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}

	return out
}

func TestList_SearchVitamin(t *testing.T) {
	got := List(Query{Search: "vitamin", Category: AllCategories}, nil)
	assert.Equal(t, []string{"Vitamin C Serum"}, names(got))
}

func TestList_SearchMatchesTagsCaseInsensitive(t *testing.T) {
	got := List(Query{Search: "OILY SKIN", Sort: SortPriceAsc}, nil)
	assert.Equal(t, []string{"Gentle Foaming Cleanser", "Clay Purifying Mask", "Oil-Free Moisturizer"}, names(got))
}

func TestList_CategoryIsExact(t *testing.T) {
	got := List(Query{Category: "Mask"}, nil)
	assert.Equal(t, []string{"Clay Purifying Mask"}, names(got))

	assert.Empty(t, List(Query{Category: "mask"}, nil))
	assert.Empty(t, List(Query{Search: "serum", Category: "Cleanser"}, nil))
}

func TestSort_Recommended(t *testing.T) {
	t.Run("flag only keeps catalog order within groups", func(t *testing.T) {
		got := List(Query{Sort: SortRecommended}, nil)
		assert.Equal(t, []string{
			"Gentle Foaming Cleanser",
			"Vitamin C Serum",
			"Oil-Free Moisturizer",
			"Hyaluronic Acid Toner",
			"Retinol Night Cream",
			"SPF 50 Sunscreen",
			"Clay Purifying Mask",
			"Brightening Eye Cream",
		}, names(got))
	})

	t.Run("user recommendations come first", func(t *testing.T) {
		got := List(Query{Sort: SortRecommended}, []string{"Brightening Eye Cream", "Oil-Free Moisturizer", "Caffeine Eye Serum"})
		assert.Equal(t, []string{
			"Oil-Free Moisturizer",
			"Brightening Eye Cream",
			"Gentle Foaming Cleanser",
			"Vitamin C Serum",
			"Hyaluronic Acid Toner",
			"Retinol Night Cream",
			"SPF 50 Sunscreen",
			"Clay Purifying Mask",
		}, names(got))
	})
}

func TestSort_PriceAndRating(t *testing.T) {
	asc := List(Query{Sort: SortPriceAsc}, nil)
	assert.Equal(t, "SPF 50 Sunscreen", asc[0].Name)
	assert.Equal(t, "Retinol Night Cream", asc[len(asc)-1].Name)

	desc := List(Query{Sort: SortPriceDesc}, nil)
	assert.Equal(t, "Retinol Night Cream", desc[0].Name)

	// 4.7 tie: catalog order is preserved.
	rating := List(Query{Sort: SortRating}, nil)
	assert.Equal(t, []string{"Vitamin C Serum", "Retinol Night Cream", "Gentle Foaming Cleanser", "Clay Purifying Mask"}, names(rating[:4]))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"all", "Cleanser", "Serum", "Moisturizer", "Toner", "Treatment", "Sunscreen", "Mask", "Eye Care"}, Categories())
}

func TestFind(t *testing.T) {
	p, ok := Find(2)
	assert.True(t, ok)
	assert.Equal(t, "38.5", p.Price.String())

	_, ok = Find(99)
	assert.False(t, ok)
}
