package wizard

import (
	"encoding/json"

	domainerrors "jild/internal/domain/errors"
)

// Transition is the outcome of a forward move.
type Transition struct {
	From Step
	To   Step
	// Save holds the snake_case columns to persist before the move commits.
	Save map[string]any
	// Completed marks the move that finishes the questionnaire.
	Completed bool
	// Result is the photo result forwarded to the Results step.
	Result json.RawMessage
}

// HealthGateBlocks reports whether the health answers exclude the user.
func HealthGateBlocks(h HealthInfo) bool {
	return h.Pregnant || !h.RegularCycle
}

// Advance computes the forward move from step for draft. The caller must
// persist Save and only then move to To; on error the step does not change.
func Advance(step Step, draft Draft) (Transition, error) {
	if !step.CanAdvance() {
		return Transition{}, domainerrors.ErrInvalidTransition.WithDetails("results step is terminal")
	}

	if step == StepHealthInfo && HealthGateBlocks(draft.HealthInfo) {
		return Transition{}, domainerrors.ErrHealthGate
	}

	t := Transition{
		From: step,
		To:   step + 1,
		Save: SectionFields(step, draft),
	}

	if step == StepPhotoUpload {
		t.Completed = true
		t.Result = draft.PhotoResult
	}

	return t, nil
}

// Retreat computes the backward move from step.
func Retreat(step Step) (Step, error) {
	if !step.CanRetreat() {
		return step, domainerrors.ErrInvalidTransition.WithDetails("back is disabled on this step")
	}

	return step - 1, nil
}

// SectionFields returns the columns persisted when leaving step.
func SectionFields(step Step, draft Draft) map[string]any {
	switch step {
	case StepPersonalInfo:
		p := draft.PersonalInfo

		return map[string]any{
			"name":           p.Name,
			"age":            p.Age,
			"location":       p.Location,
			"marital_status": p.MaritalStatus,
		}
	case StepHealthInfo:
		h := draft.HealthInfo

		return map[string]any{
			"existing_conditions": nonNil(h.ExistingConditions),
			"allergies":           nonNil(h.Allergies),
			"medications":         h.Medications,
			"regular_cycle":       h.RegularCycle,
			"pregnant":            h.Pregnant,
		}
	case StepSkinConcerns:
		s := draft.SkinConcerns

		return map[string]any{
			"skin_type":        s.SkinType,
			"primary_concerns": nonNil(s.PrimaryConcerns),
			"current_products": s.CurrentProducts,
		}
	case StepPhotoUpload:
		fields := map[string]any{"completed": true}
		if draft.PhotoResult != nil {
			fields["photo_url"] = draft.PhotoResult
		}

		return fields
	default:
		return nil
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
