package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/wizard"
	mockusecase "jild/internal/mocks/usecase"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuestionnaireTestEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockusecase.MockQuestionnaireUsecase) {
	questionnaireUC := mockusecase.NewMockQuestionnaireUsecase(t)
	h := NewQuestionnaireHandler(QuestionnaireHandlerParams{
		QuestionnaireUC: questionnaireUC,
		Logger:          newDiscardLogger(),
	})

	e := newTestEcho()
	g := e.Group("/questionnaire")
	if userID != uuid.Nil {
		g.Use(signedInAs(userID))
	}
	g.GET("", h.Load)
	g.GET("/options", h.Options)
	g.PATCH("/fields/:section", h.UpdateField)
	g.POST("/checklists/:field/toggle", h.ToggleOption)
	g.POST("/advance", h.Advance)
	g.POST("/retreat", h.Retreat)

	return e, questionnaireUC
}

func stateAt(step wizard.Step) *usecase.WizardState {
	return &usecase.WizardState{
		Step:       step,
		StepKey:    step.String(),
		Title:      step.Title(),
		CanAdvance: step != wizard.StepResults,
		CanRetreat: step != wizard.StepPersonalInfo && step != wizard.StepResults,
	}
}

func TestQuestionnaireHandler_Load(t *testing.T) {
	userID := uuid.New()
	e, questionnaireUC := newQuestionnaireTestEcho(t, userID)

	questionnaireUC.EXPECT().Load(mock.Anything, userID).Return(stateAt(wizard.StepSkinConcerns), nil)

	rec := doJSON(e, http.MethodGet, "/questionnaire", "")

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeData[map[string]any](t, rec)
	assert.Equal(t, "skin_concerns", state["step_key"])
	assert.Equal(t, "Skin Concerns", state["title"])
}

func TestQuestionnaireHandler_RequiresSignIn(t *testing.T) {
	e, _ := newQuestionnaireTestEcho(t, uuid.Nil)

	rec := doJSON(e, http.MethodPost, "/questionnaire/advance", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, rec).Error.Code)
}

func TestQuestionnaireHandler_Options(t *testing.T) {
	e, _ := newQuestionnaireTestEcho(t, uuid.New())

	rec := doJSON(e, http.MethodGet, "/questionnaire/options", "")

	require.Equal(t, http.StatusOK, rec.Code)
	options := decodeData[wizard.Options](t, rec)
	assert.Equal(t, wizard.SkinTypes, options.SkinTypes)
	assert.Contains(t, options.Conditions, wizard.NoneOption)
}

func TestQuestionnaireHandler_UpdateField_PassesRawPatch(t *testing.T) {
	userID := uuid.New()
	e, questionnaireUC := newQuestionnaireTestEcho(t, userID)
	body := `{"name":"Jane","age":30,"location":"Amman, Jordan"}`

	questionnaireUC.EXPECT().
		UpdateField(mock.Anything, userID, wizard.SectionPersonalInfo, json.RawMessage(body)).
		Return(stateAt(wizard.StepPersonalInfo), nil)

	rec := doJSON(e, http.MethodPatch, "/questionnaire/fields/personal_info", body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQuestionnaireHandler_UpdateField_Validation(t *testing.T) {
	tests := []struct {
		name    string
		section string
		body    string
		details map[string]any
	}{
		{
			name:    "age below minimum",
			section: "personal_info",
			body:    `{"age":12}`,
			details: map[string]any{"age": "gte=16"},
		},
		{
			name:    "location without country",
			section: "personal_info",
			body:    `{"location":"Amman"}`,
			details: map[string]any{"location": "location"},
		},
		{
			name:    "unknown marital status",
			section: "personal_info",
			body:    `{"marital_status":"complicated"}`,
			details: map[string]any{"marital_status": "marital"},
		},
		{
			name:    "four concerns",
			section: "skin_concerns",
			body:    `{"primary_concerns":["acne","redness","dullness","wrinkles"]}`,
			details: map[string]any{"primary_concerns": "max=3"},
		},
		{
			name:    "unknown skin type",
			section: "skin_concerns",
			body:    `{"skin_type":"shiny"}`,
			details: map[string]any{"skin_type": "skintype"},
		},
		{
			name:    "unknown allergy",
			section: "health_info",
			body:    `{"allergies":["Pollen"]}`,
			details: map[string]any{"allergies[0]": "allergy"},
		},
		{
			name:    "none with another condition",
			section: "health_info",
			body:    `{"existing_conditions":["None","Acne"]}`,
			details: map[string]any{"existing_conditions": "noneexclusive"},
		},
		{
			name:    "none with another allergy",
			section: "health_info",
			body:    `{"allergies":["Sulfates","None"]}`,
			details: map[string]any{"allergies": "noneexclusive"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newQuestionnaireTestEcho(t, uuid.New())

			rec := doJSON(e, http.MethodPatch, "/questionnaire/fields/"+tt.section, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Equal(t, tt.details, env.Error.Details)
		})
	}
}

func TestQuestionnaireHandler_UpdateField_UnknownSection(t *testing.T) {
	e, _ := newQuestionnaireTestEcho(t, uuid.New())

	rec := doJSON(e, http.MethodPatch, "/questionnaire/fields/lifestyle", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "UNKNOWN_SECTION", env.Error.Code)
	assert.Equal(t, "lifestyle", env.Error.Details)
}

func TestQuestionnaireHandler_UpdateField_MalformedJSON(t *testing.T) {
	e, _ := newQuestionnaireTestEcho(t, uuid.New())

	rec := doJSON(e, http.MethodPatch, "/questionnaire/fields/personal_info", `{"age":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
}

func TestQuestionnaireHandler_UpdateField_PhotoResultIsNotInterpreted(t *testing.T) {
	userID := uuid.New()
	e, questionnaireUC := newQuestionnaireTestEcho(t, userID)
	body := `{"anything":[1,2,3]}`

	questionnaireUC.EXPECT().
		UpdateField(mock.Anything, userID, wizard.SectionPhotoResult, json.RawMessage(body)).
		Return(stateAt(wizard.StepPhotoUpload), nil)

	rec := doJSON(e, http.MethodPatch, "/questionnaire/fields/photo_result", body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQuestionnaireHandler_ToggleOption(t *testing.T) {
	userID := uuid.New()
	e, questionnaireUC := newQuestionnaireTestEcho(t, userID)

	questionnaireUC.EXPECT().
		ToggleOption(mock.Anything, userID, wizard.ChecklistAllergies, wizard.NoneOption).
		Return(stateAt(wizard.StepHealthInfo), nil)

	rec := doJSON(e, http.MethodPost, "/questionnaire/checklists/allergies/toggle", `{"item":"None"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQuestionnaireHandler_ToggleOption_RequiresItem(t *testing.T) {
	e, _ := newQuestionnaireTestEcho(t, uuid.New())

	rec := doJSON(e, http.MethodPost, "/questionnaire/checklists/allergies/toggle", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"item": "required"}, decodeEnvelope(t, rec).Error.Details)
}

func TestQuestionnaireHandler_ToggleOption_RejectsItemOutsideChecklist(t *testing.T) {
	tests := []struct {
		name  string
		field string
		item  string
		rule  string
	}{
		{name: "unknown allergy", field: "allergies", item: "Peanuts", rule: "allergy"},
		{name: "unknown condition", field: "existing_conditions", item: "Sunburn", rule: "condition"},
		{name: "none is not a concern", field: "primary_concerns", item: "None", rule: "concern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newQuestionnaireTestEcho(t, uuid.New())

			rec := doJSON(e, http.MethodPost, "/questionnaire/checklists/"+tt.field+"/toggle", `{"item":"`+tt.item+`"}`)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Equal(t, map[string]any{"item": tt.rule}, env.Error.Details)
		})
	}
}

func TestQuestionnaireHandler_Advance(t *testing.T) {
	userID := uuid.New()
	e, questionnaireUC := newQuestionnaireTestEcho(t, userID)

	questionnaireUC.EXPECT().Advance(mock.Anything, userID).Return(stateAt(wizard.StepHealthInfo), nil)

	rec := doJSON(e, http.MethodPost, "/questionnaire/advance", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "health_info", decodeData[map[string]any](t, rec)["step_key"])
}

func TestQuestionnaireHandler_Advance_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "health gate", err: domainerrors.ErrHealthGate, status: http.StatusUnprocessableEntity, code: "HEALTH_SCREENING_REJECTED"},
		{name: "save in flight", err: domainerrors.ErrSaveInProgress, status: http.StatusConflict, code: "SAVE_IN_PROGRESS"},
		{name: "store rejected write", err: domainerrors.ErrSaveFailed, status: http.StatusBadGateway, code: "SAVE_FAILED"},
		{name: "terminal step", err: domainerrors.ErrInvalidTransition, status: http.StatusConflict, code: "INVALID_STEP_TRANSITION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			e, questionnaireUC := newQuestionnaireTestEcho(t, userID)

			questionnaireUC.EXPECT().Advance(mock.Anything, userID).Return(nil, tt.err)

			rec := doJSON(e, http.MethodPost, "/questionnaire/advance", "")

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestQuestionnaireHandler_Retreat(t *testing.T) {
	userID := uuid.New()
	e, questionnaireUC := newQuestionnaireTestEcho(t, userID)

	questionnaireUC.EXPECT().Retreat(mock.Anything, userID).Return(stateAt(wizard.StepPersonalInfo), nil)

	rec := doJSON(e, http.MethodPost, "/questionnaire/retreat", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
