package handler

import (
	"io"
	"log/slog"
	"net/http"

	"jild/internal/delivery/api/middleware"
	"jild/internal/delivery/api/response"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/recommendation"
	"jild/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// photoFormField is the multipart field carrying the photo.
const photoFormField = "image"

// AnalysisHandlerParams holds dependencies for AnalysisHandler, injected by Fx.
type AnalysisHandlerParams struct {
	fx.In

	AnalysisUC usecase.AnalysisUsecase
	Logger     *slog.Logger
}

// AnalysisHandler accepts photos and serves the rendered results.
type AnalysisHandler struct {
	analysisUC usecase.AnalysisUsecase
	logger     *slog.Logger
}

// NewAnalysisHandler is the constructor for AnalysisHandler
func NewAnalysisHandler(params AnalysisHandlerParams) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUC: params.AnalysisUC,
		logger:     params.Logger,
	}
}

// UploadPhoto analyzes one multipart photo. When the inference call fails the
// error body still carries the preview.
func (h *AnalysisHandler) UploadPhoto(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not signed in")
	}

	fileHeader, err := c.FormFile(photoFormField)
	if middleware.IsBodyTooLarge(err) {
		return response.HandleAppError(c, domainerrors.ErrImageTooLarge)
	}
	if err != nil {
		return response.BindingError(c, "Please choose a photo to upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded photo")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "read uploaded photo")
	}

	output, err := h.analysisUC.Analyze(c.Request().Context(), userID, &usecase.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Data:        data,
	})
	if err != nil {
		if output != nil && errors.Is(err, domainerrors.ErrAnalysisFailed) {
			return response.FailWithData(c, err, map[string]string{"preview": output.Preview})
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Results renders the current analysis result.
func (h *AnalysisHandler) Results(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not signed in")
	}

	rendered, err := h.analysisUC.Results(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rendered)
}

// RoutineTab returns the morning, evening or weekly routine.
func (h *AnalysisHandler) RoutineTab(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not signed in")
	}

	tab := recommendation.Tab(c.Param("tab"))
	steps, err := h.analysisUC.RoutineTab(c.Request().Context(), userID, tab)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"tab":   tab,
		"steps": steps,
	})
}

// ResultsQRCode serves a PNG QR code linking to the results page.
func (h *AnalysisHandler) ResultsQRCode(c echo.Context) error {
	png, err := h.analysisUC.ResultsQRCode(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
