package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"jild/internal/delivery/api/middleware"
	"jild/internal/delivery/api/response"
	"jild/internal/delivery/api/validator"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/wizard"
	"jild/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuestionnaireHandlerParams holds dependencies for QuestionnaireHandler, injected by Fx.
type QuestionnaireHandlerParams struct {
	fx.In

	QuestionnaireUC usecase.QuestionnaireUsecase
	Logger          *slog.Logger
}

// QuestionnaireHandler drives the wizard of the signed-in user.
type QuestionnaireHandler struct {
	questionnaireUC usecase.QuestionnaireUsecase
	logger          *slog.Logger
}

// NewQuestionnaireHandler is the constructor for QuestionnaireHandler
func NewQuestionnaireHandler(params QuestionnaireHandlerParams) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		questionnaireUC: params.QuestionnaireUC,
		logger:          params.Logger,
	}
}

// Section patches. Every key is optional; only the keys present are merged.
type (
	PersonalInfoPatch struct {
		Name          *string `json:"name" validate:"omitempty,max=100"`
		Age           *int    `json:"age" validate:"omitempty,gte=16,lte=100"`
		Location      *string `json:"location" validate:"omitempty,location"`
		MaritalStatus *string `json:"marital_status" validate:"omitempty,marital"`
	}

	HealthInfoPatch struct {
		ExistingConditions []string `json:"existing_conditions" validate:"omitempty,noneexclusive,dive,condition"`
		Allergies          []string `json:"allergies" validate:"omitempty,noneexclusive,dive,allergy"`
		Medications        *string  `json:"medications" validate:"omitempty,max=1000"`
		RegularCycle       *bool    `json:"regular_cycle"`
		Pregnant           *bool    `json:"pregnant"`
	}

	SkinConcernsPatch struct {
		SkinType        *string  `json:"skin_type" validate:"omitempty,skintype"`
		PrimaryConcerns []string `json:"primary_concerns" validate:"omitempty,max=3,dive,concern"`
		CurrentProducts *string  `json:"current_products" validate:"omitempty,max=1000"`
	}
)

// checklistItemRules names the rule reported for an item outside a
// checklist's vocabulary, matching the section patch tags.
var checklistItemRules = map[wizard.ChecklistField]string{
	wizard.ChecklistConditions: "condition",
	wizard.ChecklistAllergies:  "allergy",
	wizard.ChecklistConcerns:   "concern",
}

// ToggleOptionRequest flips one checklist member.
type ToggleOptionRequest struct {
	Item string `json:"item" validate:"required,max=100"`
}

// Load returns the wizard, rehydrated from the saved questionnaire on first use.
func (h *QuestionnaireHandler) Load(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not signed in")
	}

	state, err := h.questionnaireUC.Load(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// Options returns the form vocabularies and step titles.
func (h *QuestionnaireHandler) Options(c echo.Context) error {
	return response.Success(c, http.StatusOK, wizard.AllOptions())
}

// UpdateField merges the request body into one draft section. Nothing is saved
// until Advance.
func (h *QuestionnaireHandler) UpdateField(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not signed in")
	}

	section := wizard.Section(c.Param("section"))
	body, err := io.ReadAll(c.Request().Body)
	if err != nil || !json.Valid(body) {
		return response.BindingError(c, "Request body must be JSON")
	}

	var target any
	switch section {
	case wizard.SectionPersonalInfo:
		target = &PersonalInfoPatch{}
	case wizard.SectionHealthInfo:
		target = &HealthInfoPatch{}
	case wizard.SectionSkinConcerns:
		target = &SkinConcernsPatch{}
	case wizard.SectionPhotoResult:
		// Passed through as-is; the inference response shape is not ours.
	default:
		return response.HandleAppError(c, domainerrors.ErrUnknownSection.WithDetails(string(section)))
	}

	if target != nil {
		if err := json.Unmarshal(body, target); err != nil {
			return response.BindingError(c, "Invalid "+string(section)+" input")
		}
		if err := c.Validate(target); err != nil {
			return response.ValidationFailed(c, "Please check the highlighted fields", validator.FieldErrors(err))
		}
	}

	state, err := h.questionnaireUC.UpdateField(c.Request().Context(), userID, section, body)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// ToggleOption applies the checklist rule of :field ("None" exclusivity or the
// three-concern cap) to one item.
func (h *QuestionnaireHandler) ToggleOption(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not signed in")
	}

	var req ToggleOptionRequest
	if ok, err := bindAndValidate(c, &req, "Invalid checklist input"); !ok {
		return err
	}

	field := wizard.ChecklistField(c.Param("field"))
	if rule, known := checklistItemRules[field]; known && !wizard.ValidChecklistItem(field, req.Item) {
		return response.ValidationFailed(c, "Please check the highlighted fields", map[string]string{"item": rule})
	}

	state, err := h.questionnaireUC.ToggleOption(c.Request().Context(), userID, field, req.Item)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// Advance saves the current step and moves forward.
func (h *QuestionnaireHandler) Advance(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not signed in")
	}

	state, err := h.questionnaireUC.Advance(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// Retreat moves back one step.
func (h *QuestionnaireHandler) Retreat(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not signed in")
	}

	state, err := h.questionnaireUC.Retreat(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}
