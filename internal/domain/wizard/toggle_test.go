package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	tests := []struct {
		name string
		set  []string
		item string
		want []string
	}{
		{"add to empty", []string{}, "Acne", []string{"Acne"}},
		{"add second", []string{"Acne"}, "Eczema", []string{"Acne", "Eczema"}},
		{"remove existing", []string{"Acne", "Eczema"}, "Acne", []string{"Eczema"}},
		{"none clears others", []string{"Acne", "Eczema"}, NoneOption, []string{NoneOption}},
		{"none stays selected", []string{NoneOption}, NoneOption, []string{NoneOption}},
		{"other item drops none", []string{NoneOption}, "Rosacea", []string{"Rosacea"}},
		{"nil set", nil, "Acne", []string{"Acne"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Toggle(tt.set, tt.item, NoneOption))
		})
	}
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	set := []string{"Acne", "Eczema"}
	_ = Toggle(set, "Acne", NoneOption)
	_ = Toggle(set, NoneOption, NoneOption)

	assert.Equal(t, []string{"Acne", "Eczema"}, set)
}

func TestToggle_NeverMixesNoneWithOthers(t *testing.T) {
	set := []string{}
	sequence := []string{"Acne", NoneOption, "Eczema", "Rosacea", NoneOption, "Melasma", "Melasma"}

	for _, item := range sequence {
		set = Toggle(set, item, NoneOption)
		if len(set) > 1 {
			assert.NotContains(t, set, NoneOption)
		}
	}
}

func TestToggleCapped(t *testing.T) {
	full := []string{"acne", "redness", "dullness"}

	t.Run("fourth add is ignored", func(t *testing.T) {
		got := ToggleCapped(full, "wrinkles", MaxConcerns)
		assert.Equal(t, full, got)
	})

	t.Run("deselect frees a slot", func(t *testing.T) {
		got := ToggleCapped(full, "redness", MaxConcerns)
		assert.Equal(t, []string{"acne", "dullness"}, got)

		got = ToggleCapped(got, "wrinkles", MaxConcerns)
		assert.Equal(t, []string{"acne", "dullness", "wrinkles"}, got)
	})

	t.Run("input untouched", func(t *testing.T) {
		_ = ToggleCapped(full, "acne", MaxConcerns)
		assert.Equal(t, []string{"acne", "redness", "dullness"}, full)
	})
}

func TestExclusiveHonored(t *testing.T) {
	assert.True(t, ExclusiveHonored(nil, NoneOption))
	assert.True(t, ExclusiveHonored([]string{NoneOption}, NoneOption))
	assert.True(t, ExclusiveHonored([]string{"Acne", "Eczema"}, NoneOption))
	assert.False(t, ExclusiveHonored([]string{NoneOption, "Acne"}, NoneOption))
	assert.False(t, ExclusiveHonored([]string{"Acne", NoneOption}, NoneOption))
}

func TestValidChecklistItem(t *testing.T) {
	assert.True(t, ValidChecklistItem(ChecklistConditions, "Rosacea"))
	assert.True(t, ValidChecklistItem(ChecklistAllergies, NoneOption))
	assert.True(t, ValidChecklistItem(ChecklistConcerns, "dark circles"))
	assert.False(t, ValidChecklistItem(ChecklistConcerns, NoneOption))
	assert.False(t, ValidChecklistItem(ChecklistAllergies, "Peanuts"))
	assert.False(t, ValidChecklistItem(ChecklistField("hobbies"), "Acne"))
}
