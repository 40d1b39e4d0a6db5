// Package wizard models the five-step skincare questionnaire as an explicit
// state machine over a draft of user answers.
package wizard

// Step is one of the five wizard screens.
type Step int

const (
	StepPersonalInfo Step = iota
	StepHealthInfo
	StepSkinConcerns
	StepPhotoUpload
	StepResults
)

// Steps lists every step in display order.
var Steps = []Step{
	StepPersonalInfo,
	StepHealthInfo,
	StepSkinConcerns,
	StepPhotoUpload,
	StepResults,
}

var stepTitles = map[Step]string{
	StepPersonalInfo: "Personal Information",
	StepHealthInfo:   "Health Information",
	StepSkinConcerns: "Skin Concerns",
	StepPhotoUpload:  "Photo Upload",
	StepResults:      "Results",
}

var stepKeys = map[Step]string{
	StepPersonalInfo: "personal_info",
	StepHealthInfo:   "health_info",
	StepSkinConcerns: "skin_concerns",
	StepPhotoUpload:  "photo_upload",
	StepResults:      "results",
}

// Title is the stepper label.
func (s Step) Title() string {
	return stepTitles[s]
}

// String returns the machine key of the step.
func (s Step) String() string {
	if key, ok := stepKeys[s]; ok {
		return key
	}

	return "unknown"
}

// Index is the zero-based position of the step.
func (s Step) Index() int {
	return int(s)
}

// Valid reports whether s is one of the five known steps.
func (s Step) Valid() bool {
	return s >= StepPersonalInfo && s <= StepResults
}

// Terminal reports whether the step has no forward transition.
func (s Step) Terminal() bool {
	return s == StepResults
}

// CanRetreat reports whether the back control is enabled on this step.
func (s Step) CanRetreat() bool {
	return s > StepPersonalInfo && s < StepResults
}

// CanAdvance reports whether the next control is enabled on this step.
func (s Step) CanAdvance() bool {
	return s.Valid() && !s.Terminal()
}
