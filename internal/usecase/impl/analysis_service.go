package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"jild/config"
	deliverycontext "jild/internal/delivery/context"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/recommendation"
	"jild/internal/domain/service"
	"jild/internal/infra/metrics"
	"jild/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const photoKeyPrefix = "photos"

type analysisService struct {
	inference     service.InferenceClient
	photoStore    service.PhotoStore
	questionnaire usecase.QuestionnaireUsecase
	qrCodeService service.QRCodeService
	maxImageBytes int64
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// AnalysisServiceParams holds dependencies for AnalysisService, injected by Fx.
type AnalysisServiceParams struct {
	fx.In

	Inference     service.InferenceClient
	PhotoStore    service.PhotoStore
	Questionnaire usecase.QuestionnaireUsecase
	QRCodeService service.QRCodeService
	Metrics       *metrics.Metrics
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAnalysisService is the constructor for analysisService.
func NewAnalysisService(params AnalysisServiceParams) usecase.AnalysisUsecase {
	maxImageBytes := int64(5 << 20)
	if params.Config.Inference != nil && params.Config.Inference.MaxImageBytes > 0 {
		maxImageBytes = params.Config.Inference.MaxImageBytes
	}

	return &analysisService{
		inference:     params.Inference,
		photoStore:    params.PhotoStore,
		questionnaire: params.Questionnaire,
		qrCodeService: params.QRCodeService,
		maxImageBytes: maxImageBytes,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}
}

func (srv *analysisService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Analyze validates the upload, sends it to the inference endpoint and hands
// the raw result to the wizard. The preview is returned even when the call
// fails; the wizard keeps its previous result in that case.
func (srv *analysisService) Analyze(ctx context.Context, userID uuid.UUID, upload *usecase.Upload) (*usecase.AnalysisOutput, error) {
	detected, err := srv.validate(upload)
	if err != nil {
		return nil, err
	}

	contentType := upload.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = detected.String()
	}

	output := &usecase.AnalysisOutput{
		Preview: "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(upload.Data),
	}

	img := service.Image{
		Filename:    upload.Filename,
		ContentType: contentType,
		Data:        upload.Data,
	}
	srv.archive(ctx, userID, detected.Extension(), img)

	raw, err := srv.inference.Predict(ctx, img)
	if err != nil {
		reason := err.Error()
		var predictErr *service.PredictError
		if errors.As(err, &predictErr) {
			reason = predictErr.Reason
		}
		srv.log(ctx).Warn("Photo analysis failed",
			slog.Any("userID", userID),
			slog.Any("error", err),
		)

		return output, domainerrors.ErrAnalysisFailed.WithMessage("Failed to analyze image: " + reason)
	}

	if err := srv.questionnaire.SetPhotoResult(ctx, userID, raw); err != nil {
		return output, errors.Wrap(err, "failed to store photo result")
	}

	rendered := recommendation.Render(raw)
	output.Result = raw
	output.Rendered = &rendered

	return output, nil
}

// validate rejects anything that is not an image or is too large. Both the
// declared type and the sniffed content must be images.
func (srv *analysisService) validate(upload *usecase.Upload) (*mimetype.MIME, error) {
	if upload == nil || len(upload.Data) == 0 {
		srv.metrics.PhotoRejectionsTotal.WithLabelValues("empty").Inc()

		return nil, domainerrors.ErrNotAnImage.WithDetails("empty upload")
	}

	detected := mimetype.Detect(upload.Data)
	declared := strings.ToLower(upload.ContentType)
	if (declared != "" && declared != "application/octet-stream" && !strings.HasPrefix(declared, "image/")) ||
		!strings.HasPrefix(detected.String(), "image/") {
		srv.metrics.PhotoRejectionsTotal.WithLabelValues("not_image").Inc()

		return nil, domainerrors.ErrNotAnImage.WithDetails(detected.String())
	}

	size := upload.Size
	if size < int64(len(upload.Data)) {
		size = int64(len(upload.Data))
	}
	if size > srv.maxImageBytes {
		srv.metrics.PhotoRejectionsTotal.WithLabelValues("too_large").Inc()

		return nil, domainerrors.ErrImageTooLarge
	}

	return detected, nil
}

func (srv *analysisService) archive(ctx context.Context, userID uuid.UUID, ext string, img service.Image) {
	if srv.photoStore == nil {
		return
	}

	key := photoKeyPrefix + "/" + userID.String() + "/" + uuid.NewString() + ext
	if err := srv.photoStore.Save(ctx, key, img); err != nil {
		srv.log(ctx).Warn("Failed to archive photo", slog.String("key", key), slog.Any("error", err))
	}
}

// Results renders the user's current photo result.
func (srv *analysisService) Results(ctx context.Context, userID uuid.UUID) (*recommendation.Rendered, error) {
	raw, err := srv.questionnaire.PhotoResult(ctx, userID)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, domainerrors.ErrResultsNotReady
	}

	rendered := recommendation.Render(raw)

	return &rendered, nil
}

// RoutineTab returns one tab of the recommended routine.
func (srv *analysisService) RoutineTab(ctx context.Context, userID uuid.UUID, tab recommendation.Tab) ([]recommendation.RoutineStep, error) {
	rendered, err := srv.Results(ctx, userID)
	if err != nil {
		return nil, err
	}

	return rendered.Bundle.Tab(tab)
}

// ResultsQRCode encodes the public results link.
func (srv *analysisService) ResultsQRCode(_ context.Context) ([]byte, error) {
	png, err := srv.qrCodeService.GenerateLinkQR(srv.qrCodeService.ResultsURL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate results QR code")
	}

	return png, nil
}
