package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"jild/config"
	"jild/internal/domain/constants"
	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/recommendation"
	"jild/internal/domain/repository"
	"jild/internal/domain/service"
	"jild/internal/domain/wizard"
	"jild/internal/infra/metrics"
	mockRepo "jild/internal/mocks/repository"
	mockService "jild/internal/mocks/service"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const acneResult = `{"detections":[{"class":"Acne","confidence":0.81},{"class":"DarkCircles","confidence":0.81}]}`

type questionnaireServiceFixtures struct {
	service           usecase.QuestionnaireUsecase
	questionnaireRepo *mockRepo.MockQuestionnaireRepository
	analysisRepo      *mockRepo.MockSkinAnalysisRepository
	publisher         *mockService.MockEventPublisher
}

func createTestQuestionnaireService(t *testing.T) questionnaireServiceFixtures {
	questionnaireRepo := mockRepo.NewMockQuestionnaireRepository(t)
	analysisRepo := mockRepo.NewMockSkinAnalysisRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	srv, err := NewQuestionnaireService(QuestionnaireServiceParams{
		QuestionnaireRepo: questionnaireRepo,
		AnalysisRepo:      analysisRepo,
		Publisher:         publisher,
		Metrics:           metrics.New(),
		Config:            &config.Config{Wizard: &config.CacheConfig{Size: 16, TTL: time.Hour}},
		Logger:            slog.Default(),
	})
	require.NoError(t, err)

	return questionnaireServiceFixtures{
		service:           srv,
		questionnaireRepo: questionnaireRepo,
		analysisRepo:      analysisRepo,
		publisher:         publisher,
	}
}

func (f questionnaireServiceFixtures) expectFreshStart(ctx context.Context, userID uuid.UUID) {
	f.questionnaireRepo.EXPECT().
		FindByUserID(ctx, userID, true).
		Return(nil, repository.ErrQuestionnaireNotFound).
		Once()
}

func TestQuestionnaireService_Load_NewUserStartsAtPersonalInfo(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.expectFreshStart(ctx, userID)

	state, err := fx.service.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepPersonalInfo, state.Step)
	assert.Equal(t, "personal_info", state.StepKey)
	assert.False(t, state.CanRetreat)
	assert.True(t, state.CanAdvance)
	assert.True(t, state.Draft.HealthInfo.RegularCycle)
	assert.Nil(t, state.Results)

	// second load is served from memory
	_, err = fx.service.Load(ctx, userID)
	require.NoError(t, err)
}

func TestQuestionnaireService_Load_CompletedRecordStartsAtResults(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.questionnaireRepo.EXPECT().
		FindByUserID(ctx, userID, true).
		Return(&entity.Questionnaire{
			UserID:      userID,
			Name:        "Jane",
			Completed:   true,
			PhotoResult: json.RawMessage(acneResult),
		}, nil)

	state, err := fx.service.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepResults, state.Step)
	assert.False(t, state.CanAdvance)
	assert.False(t, state.CanRetreat)
	require.NotNil(t, state.Results)
	assert.Equal(t, recommendation.KindAcne, state.Results.Bundle.Kind)
	assert.Equal(t, "Jane", state.Draft.PersonalInfo.Name)
}

func TestQuestionnaireService_Load_StoreError(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.questionnaireRepo.EXPECT().
		FindByUserID(ctx, userID, true).
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.Load(ctx, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load questionnaire")
}

func TestQuestionnaireService_Advance_PersistsSection(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.expectFreshStart(ctx, userID)

	_, err := fx.service.UpdateField(ctx, userID, wizard.SectionPersonalInfo,
		json.RawMessage(`{"name":"Jane","age":29,"location":"Riyadh","marital_status":"single"}`))
	require.NoError(t, err)

	fx.questionnaireRepo.EXPECT().
		UpsertFields(ctx, userID, map[string]any{
			"name":           "Jane",
			"age":            29,
			"location":       "Riyadh",
			"marital_status": "single",
		}).
		Return(nil)

	state, err := fx.service.Advance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepHealthInfo, state.Step)
	assert.True(t, state.CanRetreat)
}

func TestQuestionnaireService_Advance_HealthGateBlocksWithoutSaving(t *testing.T) {
	tests := []struct {
		name  string
		patch string
	}{
		{name: "pregnant", patch: `{"pregnant":true,"regular_cycle":true}`},
		{name: "irregular cycle", patch: `{"pregnant":false,"regular_cycle":false}`},
		{name: "both", patch: `{"pregnant":true,"regular_cycle":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestQuestionnaireService(t)
			ctx := context.Background()
			userID := uuid.New()
			fx.expectFreshStart(ctx, userID)

			fx.questionnaireRepo.EXPECT().UpsertFields(ctx, userID, mock.Anything).Return(nil).Once()
			_, err := fx.service.Advance(ctx, userID)
			require.NoError(t, err)

			_, err = fx.service.UpdateField(ctx, userID, wizard.SectionHealthInfo, json.RawMessage(tt.patch))
			require.NoError(t, err)

			_, err = fx.service.Advance(ctx, userID)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrHealthGate))

			state, err := fx.service.Load(ctx, userID)
			require.NoError(t, err)
			assert.Equal(t, wizard.StepHealthInfo, state.Step)
			fx.questionnaireRepo.AssertNumberOfCalls(t, "UpsertFields", 1)
		})
	}
}

func TestQuestionnaireService_Advance_SaveFailureKeepsStep(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.expectFreshStart(ctx, userID)

	fx.questionnaireRepo.EXPECT().
		UpsertFields(ctx, userID, mock.Anything).
		Return(errors.New("write timeout")).
		Once()

	_, err := fx.service.Advance(ctx, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSaveFailed))

	state, err := fx.service.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepPersonalInfo, state.Step)

	// a manual retry goes through
	fx.questionnaireRepo.EXPECT().UpsertFields(ctx, userID, mock.Anything).Return(nil).Once()
	state, err = fx.service.Advance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepHealthInfo, state.Step)
}

func TestQuestionnaireService_Advance_ConcurrentSaveRejected(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.expectFreshStart(ctx, userID)

	started := make(chan struct{})
	release := make(chan struct{})
	fx.questionnaireRepo.EXPECT().
		UpsertFields(ctx, userID, mock.Anything).
		RunAndReturn(func(context.Context, uuid.UUID, map[string]interface{}) error {
			close(started)
			<-release

			return nil
		}).
		Once()

	done := make(chan error, 1)
	go func() {
		_, err := fx.service.Advance(ctx, userID)
		done <- err
	}()
	<-started

	_, err := fx.service.Advance(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrSaveInProgress))

	_, err = fx.service.Retreat(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrSaveInProgress))

	close(release)
	require.NoError(t, <-done)

	state, err := fx.service.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepHealthInfo, state.Step)
}

func TestQuestionnaireService_Advance_CompletesQuestionnaire(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.expectFreshStart(ctx, userID)

	fx.questionnaireRepo.EXPECT().UpsertFields(ctx, userID, mock.Anything).Return(nil).Times(3)
	for range 3 {
		_, err := fx.service.Advance(ctx, userID)
		require.NoError(t, err)
	}

	require.NoError(t, fx.service.SetPhotoResult(ctx, userID, json.RawMessage(acneResult)))

	fx.questionnaireRepo.EXPECT().
		UpsertFields(ctx, userID, mock.MatchedBy(func(fields map[string]interface{}) bool {
			return fields["completed"] == true && fields["photo_url"] != nil
		})).
		Return(nil).
		Once()
	fx.analysisRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.SkinAnalysis) bool {
			return a.UserID == userID && a.PrimaryLabel == "Acne" && len(a.Recommendations) > 0
		})).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.Event) bool {
			return e.Type == constants.EventQuestionnaireCompleted && e.UserID == userID.String()
		})).
		Return(nil)

	state, err := fx.service.Advance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepResults, state.Step)
	require.NotNil(t, state.Results)
	require.NotNil(t, state.Results.Primary)
	assert.Equal(t, "Acne", state.Results.Primary.Class)

	_, err = fx.service.Advance(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))

	_, err = fx.service.Retreat(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))

	_, err = fx.service.UpdateField(ctx, userID, wizard.SectionPersonalInfo, json.RawMessage(`{"name":"X"}`))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestQuestionnaireService_Advance_CompletionSideEffectsAreBestEffort(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.expectFreshStart(ctx, userID)

	fx.questionnaireRepo.EXPECT().UpsertFields(ctx, userID, mock.Anything).Return(nil).Times(4)
	fx.analysisRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	require.NoError(t, fx.service.SetPhotoResult(ctx, userID, json.RawMessage(acneResult)))

	var state *usecase.WizardState
	var err error
	for range 4 {
		state, err = fx.service.Advance(ctx, userID)
		require.NoError(t, err)
	}
	assert.Equal(t, wizard.StepResults, state.Step)
	require.NotNil(t, state.Results)
	require.NotNil(t, state.Results.Primary)
	assert.Equal(t, "Acne", state.Results.Primary.Class)
}

func TestQuestionnaireService_Advance_CompletionWithoutPhotoRecordsNothing(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.expectFreshStart(ctx, userID)

	fx.questionnaireRepo.EXPECT().UpsertFields(ctx, userID, mock.Anything).Return(nil).Times(4)

	var state *usecase.WizardState
	var err error
	for range 4 {
		state, err = fx.service.Advance(ctx, userID)
		require.NoError(t, err)
	}
	assert.Equal(t, wizard.StepResults, state.Step)
	require.NotNil(t, state.Results)
	assert.True(t, state.Results.Pending)

	fx.analysisRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestQuestionnaireService_SetPhotoResult_KeepsCompletedResult(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.questionnaireRepo.EXPECT().
		FindByUserID(ctx, userID, true).
		Return(&entity.Questionnaire{
			UserID:      userID,
			Completed:   true,
			PhotoResult: json.RawMessage(acneResult),
		}, nil).
		Once()

	err := fx.service.SetPhotoResult(ctx, userID, json.RawMessage(`{"detections":[{"class":"DarkCircles","confidence":0.9}]}`))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))

	result, err := fx.service.PhotoResult(ctx, userID)
	require.NoError(t, err)
	assert.JSONEq(t, acneResult, string(result))
}

func TestQuestionnaireService_Retreat(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.expectFreshStart(ctx, userID)

	_, err := fx.service.Retreat(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))

	fx.questionnaireRepo.EXPECT().UpsertFields(ctx, userID, mock.Anything).Return(nil).Once()
	_, err = fx.service.Advance(ctx, userID)
	require.NoError(t, err)

	state, err := fx.service.Retreat(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepPersonalInfo, state.Step)
}

func TestQuestionnaireService_ToggleOption(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.expectFreshStart(ctx, userID)

	_, err := fx.service.ToggleOption(ctx, userID, wizard.ChecklistConditions, "Acne")
	require.NoError(t, err)
	state, err := fx.service.ToggleOption(ctx, userID, wizard.ChecklistConditions, wizard.NoneOption)
	require.NoError(t, err)
	assert.Equal(t, []string{wizard.NoneOption}, state.Draft.HealthInfo.ExistingConditions)

	for _, c := range []string{"acne", "redness", "dullness", "wrinkles"} {
		state, err = fx.service.ToggleOption(ctx, userID, wizard.ChecklistConcerns, c)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"acne", "redness", "dullness"}, state.Draft.SkinConcerns.PrimaryConcerns)

	_, err = fx.service.ToggleOption(ctx, userID, wizard.ChecklistField("hobbies"), "x")
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownSection))
}

func TestQuestionnaireService_PhotoResult(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.expectFreshStart(ctx, userID)

	result, err := fx.service.PhotoResult(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, result)

	require.NoError(t, fx.service.SetPhotoResult(ctx, userID, json.RawMessage(acneResult)))
	result, err = fx.service.PhotoResult(ctx, userID)
	require.NoError(t, err)
	assert.JSONEq(t, acneResult, string(result))
}
