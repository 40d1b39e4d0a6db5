package recommendation

import (
	"encoding/json"
	"testing"

	domainerrors "jild/internal/domain/errors"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimary_TieBreaksOnFirst(t *testing.T) {
	detections := []Detection{
		{Class: "Acne", Confidence: 0.81},
		{Class: "DarkCircles", Confidence: 0.81},
	}

	got, ok := Primary(detections)
	require.True(t, ok)
	assert.Equal(t, "Acne", got.Class)

	reversed := []Detection{detections[1], detections[0]}
	got, ok = Primary(reversed)
	require.True(t, ok)
	assert.Equal(t, "DarkCircles", got.Class)
}

func TestPrimary_StrictMax(t *testing.T) {
	detections := []Detection{
		{Class: "DarkCircles", Confidence: 0.4},
		{Class: "Acne", Confidence: 0.92},
		{Class: "DarkCircles", Confidence: 0.91},
	}

	got, ok := Primary(detections)
	require.True(t, ok)
	assert.Equal(t, "Acne", got.Class)

	_, ok = Primary(nil)
	assert.False(t, ok)
}

func TestRender_TieYieldsAcneBundle(t *testing.T) {
	raw := json.RawMessage(`{"detections":[{"class":"Acne","confidence":0.81},{"class":"DarkCircles","confidence":0.81}]}`)

	out := Render(raw)
	assert.Equal(t, KindAcne, out.Bundle.Kind)
	assert.Equal(t, []string{"Salicylic Acid Cleanser", "Benzoyl Peroxide Treatment", "Oil-Free Moisturizer"}, out.Bundle.ProductNames())
	assert.Equal(t, "Acne (81.0%)", out.Detections[0].Label)
}

func TestRender_NonAcneYieldsDarkCircleBundle(t *testing.T) {
	raw := json.RawMessage(`{"detections":[{"class":"Wrinkles","confidence":0.5}],"annotated_image":"abc","image_format":"jpg"}`)

	out := Render(raw)
	assert.Equal(t, KindDarkCircle, out.Bundle.Kind)
	assert.Equal(t, "data:image/jpeg;base64,abc", out.AnnotatedImage)
	assert.Empty(t, out.Message)
}

func TestRender_EmptyAndUnknownShapes(t *testing.T) {
	for _, raw := range []string{`{"detections":[]}`, `{"predictions":"?"}`, `[1,2,3]`} {
		out := Render(json.RawMessage(raw))
		assert.False(t, out.Pending, raw)
		assert.Equal(t, NoDetectionsMessage, out.Message, raw)
		assert.Nil(t, out.Primary, raw)
	}

	assert.True(t, Render(nil).Pending)
	assert.True(t, Render(json.RawMessage("null")).Pending)
}

func TestBundle_Tabs(t *testing.T) {
	b := AcneBundle()

	morning, err := b.Tab(TabMorning)
	require.NoError(t, err)
	want := []RoutineStep{
		{Step: "Cleanser", Product: "Salicylic Acid Cleanser"},
		{Step: "Treatment", Product: "Benzoyl Peroxide Spot Treatment"},
		{Step: "Moisturizer", Product: "Oil-Free Moisturizer with SPF"},
	}
	if diff := cmp.Diff(want, morning); diff != "" {
		t.Errorf("morning routine mismatch (-want +got):\n%s", diff)
	}

	weekly, err := DarkCircleBundle().Tab(TabWeekly)
	require.NoError(t, err)
	assert.Len(t, weekly, 2)

	_, err = b.Tab(Tab("midnight"))
	assert.ErrorIs(t, err, domainerrors.ErrUnknownTab)
}

func TestProductPriceLabel(t *testing.T) {
	assert.Equal(t, "$14.50", AcneBundle().Products[1].PriceLabel)
	assert.Equal(t, "$32.00", DarkCircleBundle().Products[2].PriceLabel)
}
