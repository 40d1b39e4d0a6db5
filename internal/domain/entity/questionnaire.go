package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Questionnaire is the stored mirror of a user's wizard answers, one per user.
// Pointer booleans distinguish "never answered" from false.
type Questionnaire struct {
	UserID             uuid.UUID
	Name               string
	Age                int
	Location           string
	MaritalStatus      string
	ExistingConditions []string
	Allergies          []string
	Medications        string
	RegularCycle       *bool
	Pregnant           *bool
	SkinType           string
	PrimaryConcerns    []string
	CurrentProducts    string
	PhotoResult        json.RawMessage // raw inference response, passed through untouched
	Completed          bool
	UpdatedAt          time.Time
}

// SkinAnalysis records the products recommended after a completed questionnaire.
type SkinAnalysis struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	PrimaryLabel    string
	Recommendations []string
	CreatedAt       time.Time
}
