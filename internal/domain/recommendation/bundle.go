package recommendation

import (
	domainerrors "jild/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// Kind identifies one of the two canned bundles.
type Kind string

const (
	KindAcne       Kind = "acne"
	KindDarkCircle Kind = "dark_circle"
)

// AcneLabel is the detector class mapped to the acne bundle.
const AcneLabel = "Acne"

// Tab is a routine view.
type Tab string

const (
	TabMorning Tab = "morning"
	TabEvening Tab = "evening"
	TabWeekly  Tab = "weekly"
)

// Tabs lists the routine tabs in display order.
var Tabs = []Tab{TabMorning, TabEvening, TabWeekly}

// Product is a bundle product card.
type Product struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	PriceLabel  string          `json:"price_label"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// RoutineStep is one line of a routine tab.
type RoutineStep struct {
	Step    string `json:"step"`
	Product string `json:"product"`
}

// Routine is the three-tab regimen.
type Routine struct {
	Morning []RoutineStep `json:"morning"`
	Evening []RoutineStep `json:"evening"`
	Weekly  []RoutineStep `json:"weekly"`
}

// Bundle is a fixed set of products plus a routine.
type Bundle struct {
	Kind     Kind      `json:"kind"`
	Products []Product `json:"products"`
	Routine  Routine   `json:"routine"`
}

// Tab returns the steps of one routine tab.
func (b Bundle) Tab(tab Tab) ([]RoutineStep, error) {
	switch tab {
	case TabMorning:
		return b.Routine.Morning, nil
	case TabEvening:
		return b.Routine.Evening, nil
	case TabWeekly:
		return b.Routine.Weekly, nil
	default:
		return nil, domainerrors.ErrUnknownTab.WithDetails(string(tab))
	}
}

// ProductNames lists the bundle's product names in order.
func (b Bundle) ProductNames() []string {
	names := make([]string, 0, len(b.Products))
	for _, p := range b.Products {
		names = append(names, p.Name)
	}

	return names
}

// BundleFor maps a detected class to its bundle.
func BundleFor(label string) Bundle {
	if label == AcneLabel {
		return AcneBundle()
	}

	return DarkCircleBundle()
}

func product(name, price, image, description string) Product {
	d := decimal.RequireFromString(price)

	return Product{
		Name:        name,
		Price:       d,
		PriceLabel:  "$" + d.StringFixed(2),
		Image:       image,
		Description: description,
	}
}

// AcneBundle is recommended when the primary detection is Acne.
func AcneBundle() Bundle {
	return Bundle{
		Kind: KindAcne,
		Products: []Product{
			product("Salicylic Acid Cleanser", "18.99",
				"https://images.pexels.com/photos/3737579/pexels-photo-3737579.jpeg",
				"Helps unclog pores and reduce acne breakouts"),
			product("Benzoyl Peroxide Treatment", "14.50",
				"https://images.pexels.com/photos/3685530/pexels-photo-3685530.jpeg",
				"Targets acne-causing bacteria and reduces inflammation"),
			product("Oil-Free Moisturizer", "22.00",
				"https://images.pexels.com/photos/3685523/pexels-photo-3685523.jpeg",
				"Hydrates without clogging pores"),
		},
		Routine: Routine{
			Morning: []RoutineStep{
				{Step: "Cleanser", Product: "Salicylic Acid Cleanser"},
				{Step: "Treatment", Product: "Benzoyl Peroxide Spot Treatment"},
				{Step: "Moisturizer", Product: "Oil-Free Moisturizer with SPF"},
			},
			Evening: []RoutineStep{
				{Step: "Cleanser", Product: "Gentle Foaming Cleanser"},
				{Step: "Treatment", Product: "Niacinamide Serum"},
				{Step: "Moisturizer", Product: "Oil-Free Night Cream"},
			},
			Weekly: []RoutineStep{
				{Step: "Exfoliation", Product: "Chemical Exfoliant (AHA/BHA)"},
				{Step: "Mask", Product: "Clay Mask for Oil Control"},
			},
		},
	}
}

// DarkCircleBundle is recommended for every other outcome.
func DarkCircleBundle() Bundle {
	return Bundle{
		Kind: KindDarkCircle,
		Products: []Product{
			product("Caffeine Eye Serum", "24.99",
				"https://images.pexels.com/photos/4465821/pexels-photo-4465821.jpeg",
				"Reduces puffiness and dark circles"),
			product("Vitamin C Eye Cream", "28.50",
				"https://images.pexels.com/photos/4465124/pexels-photo-4465124.jpeg",
				"Brightens under-eye area and reduces pigmentation"),
			product("Retinol Eye Treatment", "32.00",
				"https://images.pexels.com/photos/7319158/pexels-photo-7319158.jpeg",
				"Stimulates collagen production to reduce dark circles"),
		},
		Routine: Routine{
			Morning: []RoutineStep{
				{Step: "Cleanser", Product: "Gentle Hydrating Cleanser"},
				{Step: "Eye Treatment", Product: "Caffeine Eye Serum"},
				{Step: "Moisturizer", Product: "Hydrating Moisturizer with SPF"},
			},
			Evening: []RoutineStep{
				{Step: "Cleanser", Product: "Creamy Cleanser"},
				{Step: "Eye Treatment", Product: "Retinol Eye Cream"},
				{Step: "Moisturizer", Product: "Rich Night Cream"},
			},
			Weekly: []RoutineStep{
				{Step: "Treatment", Product: "Eye Mask for Dark Circles"},
				{Step: "Massage", Product: "Under-eye Massage with Jade Roller"},
			},
		},
	}
}
