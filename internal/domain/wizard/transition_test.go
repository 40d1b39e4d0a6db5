package wizard

import (
	"encoding/json"
	"testing"

	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_HealthGate(t *testing.T) {
	tests := []struct {
		name         string
		pregnant     bool
		regularCycle bool
		blocked      bool
	}{
		{"pregnant", true, true, true},
		{"irregular cycle", false, false, true},
		{"both", true, false, true},
		{"eligible", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := NewDraft()
			draft.HealthInfo.Pregnant = tt.pregnant
			draft.HealthInfo.RegularCycle = tt.regularCycle

			tr, err := Advance(StepHealthInfo, draft)
			if tt.blocked {
				require.ErrorIs(t, err, domainerrors.ErrHealthGate)
				assert.Nil(t, tr.Save)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, StepSkinConcerns, tr.To)
			assert.Equal(t, false, tr.Save["pregnant"])
			assert.Equal(t, true, tr.Save["regular_cycle"])
		})
	}
}

func TestAdvance_SavesSectionPerStep(t *testing.T) {
	draft := NewDraft()
	draft.PersonalInfo = PersonalInfo{Name: "Amira", Age: 29, Location: "Cairo, Egypt", MaritalStatus: "single"}
	draft.SkinConcerns = SkinConcerns{SkinType: "oily", PrimaryConcerns: []string{"acne"}, CurrentProducts: "toner"}

	tr, err := Advance(StepPersonalInfo, draft)
	require.NoError(t, err)
	assert.Equal(t, StepHealthInfo, tr.To)
	assert.Equal(t, map[string]any{
		"name":           "Amira",
		"age":            29,
		"location":       "Cairo, Egypt",
		"marital_status": "single",
	}, tr.Save)

	tr, err = Advance(StepSkinConcerns, draft)
	require.NoError(t, err)
	assert.Equal(t, StepPhotoUpload, tr.To)
	assert.Equal(t, "oily", tr.Save["skin_type"])
	assert.Equal(t, []string{"acne"}, tr.Save["primary_concerns"])
	assert.False(t, tr.Completed)
}

func TestAdvance_PhotoStepCompletes(t *testing.T) {
	draft := NewDraft()
	draft.SetPhotoResult(json.RawMessage(`{"detections":[]}`))

	tr, err := Advance(StepPhotoUpload, draft)
	require.NoError(t, err)
	assert.Equal(t, StepResults, tr.To)
	assert.True(t, tr.Completed)
	assert.Equal(t, true, tr.Save["completed"])
	assert.JSONEq(t, `{"detections":[]}`, string(tr.Result))
}

func TestAdvance_ResultsIsTerminal(t *testing.T) {
	_, err := Advance(StepResults, NewDraft())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestRetreat(t *testing.T) {
	_, err := Retreat(StepPersonalInfo)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	_, err = Retreat(StepResults)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	prev, err := Retreat(StepPhotoUpload)
	require.NoError(t, err)
	assert.Equal(t, StepSkinConcerns, prev)
}

func TestDraft_UpdateField(t *testing.T) {
	draft := NewDraft()

	require.NoError(t, draft.UpdateField(SectionPersonalInfo, json.RawMessage(`{"name":"Lina"}`)))
	require.NoError(t, draft.UpdateField(SectionPersonalInfo, json.RawMessage(`{"age":31}`)))
	assert.Equal(t, "Lina", draft.PersonalInfo.Name)
	assert.Equal(t, 31, draft.PersonalInfo.Age)

	require.NoError(t, draft.UpdateField(SectionHealthInfo, json.RawMessage(`{"pregnant":true}`)))
	assert.True(t, draft.HealthInfo.Pregnant)
	assert.True(t, draft.HealthInfo.RegularCycle)

	require.NoError(t, draft.UpdateField(SectionPhotoResult, json.RawMessage(`{"x":1}`)))
	assert.JSONEq(t, `{"x":1}`, string(draft.PhotoResult))

	require.NoError(t, draft.UpdateField(SectionPhotoResult, json.RawMessage(`null`)))
	assert.Nil(t, draft.PhotoResult)

	err := draft.UpdateField(Section("bogus"), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, domainerrors.ErrUnknownSection)
}

func TestRehydrate(t *testing.T) {
	t.Run("no record", func(t *testing.T) {
		draft, step := Rehydrate(nil)
		assert.Equal(t, StepPersonalInfo, step)
		assert.True(t, draft.HealthInfo.RegularCycle)
		assert.False(t, draft.HealthInfo.Pregnant)
	})

	t.Run("completed with photo result starts at results", func(t *testing.T) {
		rec := &entity.Questionnaire{
			Name:        "Noor",
			Completed:   true,
			PhotoResult: json.RawMessage(`{"detections":[{"class":"Acne","confidence":0.9}]}`),
		}
		draft, step := Rehydrate(rec)
		assert.Equal(t, StepResults, step)
		assert.Equal(t, "Noor", draft.PersonalInfo.Name)
	})

	t.Run("completed without photo result starts at beginning", func(t *testing.T) {
		pregnant := false
		rec := &entity.Questionnaire{Completed: true, Pregnant: &pregnant}
		_, step := Rehydrate(rec)
		assert.Equal(t, StepPersonalInfo, step)
	})
}

func TestStep_Controls(t *testing.T) {
	assert.False(t, StepPersonalInfo.CanRetreat())
	assert.True(t, StepHealthInfo.CanRetreat())
	assert.False(t, StepResults.CanRetreat())
	assert.False(t, StepResults.CanAdvance())
	assert.Equal(t, "Photo Upload", StepPhotoUpload.Title())
}
