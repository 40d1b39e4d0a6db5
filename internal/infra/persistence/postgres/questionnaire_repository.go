package postgres

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/repository"
	"jild/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// questionnaireColumns are the columns the wizard is allowed to write.
var questionnaireColumns = map[string]struct{}{
	"name":                {},
	"age":                 {},
	"location":            {},
	"marital_status":      {},
	"existing_conditions": {},
	"allergies":           {},
	"medications":         {},
	"regular_cycle":       {},
	"pregnant":            {},
	"skin_type":           {},
	"primary_concerns":    {},
	"current_products":    {},
	"photo_url":           {},
	"completed":           {},
}

// questionnaireRepository implements the repository.QuestionnaireRepository interface.
type questionnaireRepository struct {
	db *gorm.DB
}

// NewQuestionnaireRepository is the constructor for questionnaireRepository.
func NewQuestionnaireRepository(db *gorm.DB) repository.QuestionnaireRepository {
	return &questionnaireRepository{db: db}
}

// FindByUserID reads the stored answers of a user. fresh forces the primary
// so a rehydrate right after a save never sees a lagging replica.
func (repo *questionnaireRepository) FindByUserID(ctx context.Context, userID uuid.UUID, fresh bool) (*entity.Questionnaire, error) {
	var questionnaireM model.QuestionnaireModel

	db := repo.db.WithContext(ctx)
	if fresh {
		db = db.Clauses(dbresolver.Write)
	}

	if err := db.Where("user_id = ?", userID).First(&questionnaireM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionnaireNotFound
		}

		return nil, errors.Wrap(err, "failed to find questionnaire")
	}

	return toQuestionnaireDomain(&questionnaireM), nil
}

// UpsertFields merges the given columns into the user's row.
func (repo *questionnaireRepository) UpsertFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	now := time.Now()
	values := map[string]any{
		"user_id":    userID,
		"created_at": now,
		"updated_at": now,
	}
	updateColumns := make([]string, 0, len(fields)+1)

	for column, value := range fields {
		if _, ok := questionnaireColumns[column]; !ok {
			return errors.Errorf("unknown questionnaire column %q", column)
		}

		values[column] = toColumnValue(value)
		updateColumns = append(updateColumns, column)
	}

	slices.Sort(updateColumns)
	updateColumns = append(updateColumns, "updated_at")

	err := repo.db.WithContext(ctx).
		Model(&model.QuestionnaireModel{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(updateColumns),
		}).
		Create(values).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert questionnaire")
	}

	return nil
}

// toColumnValue converts wizard payload values into their column representation.
func toColumnValue(value any) any {
	switch v := value.(type) {
	case []string:
		if v == nil {
			v = []string{}
		}

		return datatypes.NewJSONSlice(v)
	case json.RawMessage:
		if len(v) == 0 {
			return nil
		}

		return datatypes.JSON(v)
	default:
		return v
	}
}

// skinAnalysisRepository implements the repository.SkinAnalysisRepository interface.
type skinAnalysisRepository struct {
	db *gorm.DB
}

// NewSkinAnalysisRepository is the constructor for skinAnalysisRepository.
func NewSkinAnalysisRepository(db *gorm.DB) repository.SkinAnalysisRepository {
	return &skinAnalysisRepository{db: db}
}

// Create appends an analysis record.
func (repo *skinAnalysisRepository) Create(ctx context.Context, analysis *entity.SkinAnalysis) error {
	items := make([]model.RecommendationItem, 0, len(analysis.Recommendations))
	for _, name := range analysis.Recommendations {
		items = append(items, model.RecommendationItem{Name: name})
	}

	analysisM := &model.SkinAnalysisModel{
		ID:              analysis.ID,
		UserID:          analysis.UserID,
		PrimaryLabel:    analysis.PrimaryLabel,
		Recommendations: datatypes.NewJSONSlice(items),
	}

	if err := repo.db.WithContext(ctx).Create(analysisM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create skin analysis")
	}

	analysis.ID = analysisM.ID
	analysis.CreatedAt = analysisM.CreatedAt

	return nil
}

// FindLatestByUserID returns the most recent analysis of a user.
func (repo *skinAnalysisRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.SkinAnalysis, error) {
	var analysisM model.SkinAnalysisModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&analysisM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSkinAnalysisNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest skin analysis")
	}

	names := make([]string, 0, len(analysisM.Recommendations))
	for _, item := range analysisM.Recommendations {
		names = append(names, item.Name)
	}

	return &entity.SkinAnalysis{
		ID:              analysisM.ID,
		UserID:          analysisM.UserID,
		PrimaryLabel:    analysisM.PrimaryLabel,
		Recommendations: names,
		CreatedAt:       analysisM.CreatedAt,
	}, nil
}

// --- Mapper Functions ---

func toQuestionnaireDomain(data *model.QuestionnaireModel) *entity.Questionnaire {
	return &entity.Questionnaire{
		UserID:             data.UserID,
		Name:               data.Name,
		Age:                data.Age,
		Location:           data.Location,
		MaritalStatus:      data.MaritalStatus,
		ExistingConditions: []string(data.ExistingConditions),
		Allergies:          []string(data.Allergies),
		Medications:        data.Medications,
		RegularCycle:       data.RegularCycle,
		Pregnant:           data.Pregnant,
		SkinType:           data.SkinType,
		PrimaryConcerns:    []string(data.PrimaryConcerns),
		CurrentProducts:    data.CurrentProducts,
		PhotoResult:        photoResult(data.PhotoURL),
		Completed:          data.Completed,
		UpdatedAt:          data.UpdatedAt,
	}
}

// photoResult maps a NULL or empty photo_url column to no result.
func photoResult(raw datatypes.JSON) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	return json.RawMessage(raw)
}
