package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuestionnaireModel mirrors the 'questionnaires' table: one row per user,
// columns named after the wizard's snake_case field keys.
type QuestionnaireModel struct {
	UserID             uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name               string                      `gorm:"type:varchar(100)"`
	Age                int                         `gorm:"type:integer"`
	Location           string                      `gorm:"type:varchar(255)"`
	MaritalStatus      string                      `gorm:"type:varchar(50)"`
	ExistingConditions datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Allergies          datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Medications        string                      `gorm:"type:text"`
	RegularCycle       *bool
	Pregnant           *bool
	SkinType           string                      `gorm:"type:varchar(50)"`
	PrimaryConcerns    datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	CurrentProducts    string                      `gorm:"type:text"`
	PhotoURL           datatypes.JSON              `gorm:"column:photo_url;type:jsonb"`
	Completed          bool                        `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuestionnaireModel) TableName() string {
	return "questionnaires"
}

// RecommendationItem is one element of skin_analyses.recommendations.
type RecommendationItem struct {
	Name string `json:"name"`
}

// SkinAnalysisModel mirrors the 'skin_analyses' table.
type SkinAnalysisModel struct {
	ID              uuid.UUID                               `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID                               `gorm:"type:uuid;not null;index:idx_skin_analyses_user_created,priority:1"`
	PrimaryLabel    string                                  `gorm:"type:varchar(100)"`
	Recommendations datatypes.JSONSlice[RecommendationItem] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt       time.Time                               `gorm:"index:idx_skin_analyses_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (SkinAnalysisModel) TableName() string {
	return "skin_analyses"
}
