package wizard

import (
	"regexp"
	"slices"
	"strings"
)

// NoneOption is the exclusive checklist member meaning "nothing applies".
const NoneOption = "None"

// MaxConcerns caps the primary concern checklist.
const MaxConcerns = 3

// Age bounds accepted by the personal info form.
const (
	MinAge = 16
	MaxAge = 100
)

// Conditions is the existing-conditions checklist.
var Conditions = []string{
	"Acne",
	"Eczema",
	"Psoriasis",
	"Rosacea",
	"Melasma",
	"Hyperpigmentation",
	"Dermatitis",
	NoneOption,
}

// Allergies is the allergy checklist.
var Allergies = []string{
	"Fragrances",
	"Preservatives",
	"Essential Oils",
	"Sulfates",
	"Parabens",
	"Lanolin",
	NoneOption,
}

// SkinTypes are the radio values of the skin type question.
var SkinTypes = []string{"oily", "dry", "combination", "normal", "sensitive"}

// Concerns is the primary concern checklist.
var Concerns = []string{
	"acne",
	"blackheads",
	"wrinkles",
	"fine lines",
	"dark spots",
	"uneven texture",
	"redness",
	"dullness",
	"large pores",
	"dehydration",
	"dark circles",
	"sun damage",
}

// MaritalStatuses are the select values of the marital status question.
var MaritalStatuses = []string{"single", "married", "divorced", "widowed", "prefer-not-to-say"}

var locationPattern = regexp.MustCompile(`^[^,]+,\s*[^,]+$`)

// ValidLocation reports whether s looks like "City, Country".
func ValidLocation(s string) bool {
	return locationPattern.MatchString(strings.TrimSpace(s))
}

// ChecklistOptions returns the vocabulary of a checklist field.
func ChecklistOptions(field ChecklistField) ([]string, bool) {
	switch field {
	case ChecklistConditions:
		return Conditions, true
	case ChecklistAllergies:
		return Allergies, true
	case ChecklistConcerns:
		return Concerns, true
	default:
		return nil, false
	}
}

// ValidChecklistItem reports whether item belongs to the vocabulary of field.
// Unknown fields report false.
func ValidChecklistItem(field ChecklistField, item string) bool {
	options, ok := ChecklistOptions(field)

	return ok && slices.Contains(options, item)
}

// ValidAge reports whether age is within the accepted bounds.
func ValidAge(age int) bool {
	return age >= MinAge && age <= MaxAge
}

// Options bundles every vocabulary for form rendering.
type Options struct {
	Steps           []StepInfo `json:"steps"`
	Conditions      []string   `json:"conditions"`
	Allergies       []string   `json:"allergies"`
	SkinTypes       []string   `json:"skin_types"`
	Concerns        []string   `json:"concerns"`
	MaxConcerns     int        `json:"max_concerns"`
	MaritalStatuses []string   `json:"marital_statuses"`
	MinAge          int        `json:"min_age"`
	MaxAge          int        `json:"max_age"`
}

// StepInfo describes a step for the stepper header.
type StepInfo struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Title string `json:"title"`
}

// AllOptions returns the form vocabularies.
func AllOptions() Options {
	steps := make([]StepInfo, 0, len(Steps))
	for _, s := range Steps {
		steps = append(steps, StepInfo{Index: s.Index(), Key: s.String(), Title: s.Title()})
	}

	return Options{
		Steps:           steps,
		Conditions:      Conditions,
		Allergies:       Allergies,
		SkinTypes:       SkinTypes,
		Concerns:        Concerns,
		MaxConcerns:     MaxConcerns,
		MaritalStatuses: MaritalStatuses,
		MinAge:          MinAge,
		MaxAge:          MaxAge,
	}
}
