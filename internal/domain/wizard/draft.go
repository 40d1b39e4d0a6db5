package wizard

import (
	"bytes"
	"encoding/json"
	"slices"

	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/errors"
)

// Section names a mergeable part of the draft.
type Section string

const (
	SectionPersonalInfo Section = "personal_info"
	SectionHealthInfo   Section = "health_info"
	SectionSkinConcerns Section = "skin_concerns"
	SectionPhotoResult  Section = "photo_result"
)

// PersonalInfo is step 0.
type PersonalInfo struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Location      string `json:"location"`
	MaritalStatus string `json:"marital_status"`
}

// HealthInfo is step 1.
type HealthInfo struct {
	ExistingConditions []string `json:"existing_conditions"`
	Allergies          []string `json:"allergies"`
	Medications        string   `json:"medications"`
	RegularCycle       bool     `json:"regular_cycle"`
	Pregnant           bool     `json:"pregnant"`
}

// SkinConcerns is step 2.
type SkinConcerns struct {
	SkinType        string   `json:"skin_type"`
	PrimaryConcerns []string `json:"primary_concerns"`
	CurrentProducts string   `json:"current_products"`
}

// Draft is the in-memory questionnaire a user is filling in.
type Draft struct {
	PersonalInfo PersonalInfo    `json:"personal_info"`
	HealthInfo   HealthInfo      `json:"health_info"`
	SkinConcerns SkinConcerns    `json:"skin_concerns"`
	PhotoResult  json.RawMessage `json:"photo_result"`
}

// NewDraft returns an empty draft with the health defaults set.
func NewDraft() Draft {
	return Draft{
		HealthInfo: HealthInfo{
			ExistingConditions: []string{},
			Allergies:          []string{},
			RegularCycle:       true,
			Pregnant:           false,
		},
		SkinConcerns: SkinConcerns{
			PrimaryConcerns: []string{},
		},
	}
}

// Clone returns a deep copy of the draft.
func (d Draft) Clone() Draft {
	out := d
	out.HealthInfo.ExistingConditions = slices.Clone(d.HealthInfo.ExistingConditions)
	out.HealthInfo.Allergies = slices.Clone(d.HealthInfo.Allergies)
	out.SkinConcerns.PrimaryConcerns = slices.Clone(d.SkinConcerns.PrimaryConcerns)
	out.PhotoResult = bytes.Clone(d.PhotoResult)

	return out
}

type personalInfoPatch struct {
	Name          *string `json:"name"`
	Age           *int    `json:"age"`
	Location      *string `json:"location"`
	MaritalStatus *string `json:"marital_status"`
}

type healthInfoPatch struct {
	ExistingConditions []string `json:"existing_conditions"`
	Allergies          []string `json:"allergies"`
	Medications        *string  `json:"medications"`
	RegularCycle       *bool    `json:"regular_cycle"`
	Pregnant           *bool    `json:"pregnant"`
}

type skinConcernsPatch struct {
	SkinType        *string  `json:"skin_type"`
	PrimaryConcerns []string `json:"primary_concerns"`
	CurrentProducts *string  `json:"current_products"`
}

// UpdateField merges patch into the named section, or replaces the photo
// result. Keys absent from patch keep their current value.
func (d *Draft) UpdateField(section Section, patch json.RawMessage) error {
	switch section {
	case SectionPersonalInfo:
		var p personalInfoPatch
		if err := json.Unmarshal(patch, &p); err != nil {
			return errors.Wrap(err, "decode personal info patch")
		}
		setIf(&d.PersonalInfo.Name, p.Name)
		setIf(&d.PersonalInfo.Age, p.Age)
		setIf(&d.PersonalInfo.Location, p.Location)
		setIf(&d.PersonalInfo.MaritalStatus, p.MaritalStatus)
	case SectionHealthInfo:
		var p healthInfoPatch
		if err := json.Unmarshal(patch, &p); err != nil {
			return errors.Wrap(err, "decode health info patch")
		}
		if p.ExistingConditions != nil {
			d.HealthInfo.ExistingConditions = p.ExistingConditions
		}
		if p.Allergies != nil {
			d.HealthInfo.Allergies = p.Allergies
		}
		setIf(&d.HealthInfo.Medications, p.Medications)
		setIf(&d.HealthInfo.RegularCycle, p.RegularCycle)
		setIf(&d.HealthInfo.Pregnant, p.Pregnant)
	case SectionSkinConcerns:
		var p skinConcernsPatch
		if err := json.Unmarshal(patch, &p); err != nil {
			return errors.Wrap(err, "decode skin concerns patch")
		}
		setIf(&d.SkinConcerns.SkinType, p.SkinType)
		if p.PrimaryConcerns != nil {
			d.SkinConcerns.PrimaryConcerns = p.PrimaryConcerns
		}
		setIf(&d.SkinConcerns.CurrentProducts, p.CurrentProducts)
	case SectionPhotoResult:
		d.SetPhotoResult(patch)
	default:
		return domainerrors.ErrUnknownSection.WithDetails(string(section))
	}

	return nil
}

// SetPhotoResult replaces the photo result; a JSON null clears it.
func (d *Draft) SetPhotoResult(raw json.RawMessage) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		d.PhotoResult = nil

		return
	}
	d.PhotoResult = bytes.Clone(trimmed)
}

// ChecklistField names a multi-select list of the draft.
type ChecklistField string

const (
	ChecklistConditions ChecklistField = "existing_conditions"
	ChecklistAllergies  ChecklistField = "allergies"
	ChecklistConcerns   ChecklistField = "primary_concerns"
)

// ToggleOption flips item in the named checklist using that list's rule.
func (d *Draft) ToggleOption(field ChecklistField, item string) error {
	switch field {
	case ChecklistConditions:
		d.HealthInfo.ExistingConditions = Toggle(d.HealthInfo.ExistingConditions, item, NoneOption)
	case ChecklistAllergies:
		d.HealthInfo.Allergies = Toggle(d.HealthInfo.Allergies, item, NoneOption)
	case ChecklistConcerns:
		d.SkinConcerns.PrimaryConcerns = ToggleCapped(d.SkinConcerns.PrimaryConcerns, item, MaxConcerns)
	default:
		return domainerrors.ErrUnknownSection.WithDetails(string(field))
	}

	return nil
}

// Rehydrate rebuilds a draft from a stored record and picks the starting
// step: Results when the record is completed and carries a photo result.
func Rehydrate(rec *entity.Questionnaire) (Draft, Step) {
	draft := NewDraft()
	if rec == nil {
		return draft, StepPersonalInfo
	}

	draft.PersonalInfo = PersonalInfo{
		Name:          rec.Name,
		Age:           rec.Age,
		Location:      rec.Location,
		MaritalStatus: rec.MaritalStatus,
	}
	if rec.ExistingConditions != nil {
		draft.HealthInfo.ExistingConditions = slices.Clone(rec.ExistingConditions)
	}
	if rec.Allergies != nil {
		draft.HealthInfo.Allergies = slices.Clone(rec.Allergies)
	}
	draft.HealthInfo.Medications = rec.Medications
	if rec.RegularCycle != nil {
		draft.HealthInfo.RegularCycle = *rec.RegularCycle
	}
	if rec.Pregnant != nil {
		draft.HealthInfo.Pregnant = *rec.Pregnant
	}
	draft.SkinConcerns.SkinType = rec.SkinType
	if rec.PrimaryConcerns != nil {
		draft.SkinConcerns.PrimaryConcerns = slices.Clone(rec.PrimaryConcerns)
	}
	draft.SkinConcerns.CurrentProducts = rec.CurrentProducts
	draft.SetPhotoResult(rec.PhotoResult)

	if rec.Completed && draft.PhotoResult != nil {
		return draft, StepResults
	}

	return draft, StepPersonalInfo
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
