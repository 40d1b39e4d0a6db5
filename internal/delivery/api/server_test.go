package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jild/config"
	apimiddleware "jild/internal/delivery/api/middleware"
	"jild/internal/delivery/api/router"
	"jild/internal/delivery/api/router/handler"
	deliverycontext "jild/internal/delivery/context"
	"jild/internal/domain/service"
	"jild/internal/domain/wizard"
	"jild/internal/infra/metrics"
	mockusecase "jild/internal/mocks/usecase"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo            *echo.Echo
	sessionUC       *mockusecase.MockSessionUsecase
	questionnaireUC *mockusecase.MockQuestionnaireUsecase
	analysisUC      *mockusecase.MockAnalysisUsecase
	shopUC          *mockusecase.MockShopUsecase
}

func newTestConfig(staticDir string) *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "8M"
	cfg.HTTP.StaticDir = staticDir
	cfg.Cart = &config.CacheConfig{Size: 10, TTL: time.Hour}
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := &testServer{
		sessionUC:       mockusecase.NewMockSessionUsecase(t),
		questionnaireUC: mockusecase.NewMockQuestionnaireUsecase(t),
		analysisUC:      mockusecase.NewMockAnalysisUsecase(t),
		shopUC:          mockusecase.NewMockShopUsecase(t),
	}

	ts.echo = NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: metrics.New(),
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				AuthUC: mockusecase.NewMockAuthUsecase(t), Logger: logger,
			}),
			SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{
				SessionUC: ts.sessionUC, Logger: logger,
			}),
			QuestionnaireHandler: handler.NewQuestionnaireHandler(handler.QuestionnaireHandlerParams{
				QuestionnaireUC: ts.questionnaireUC, Logger: logger,
			}),
			AnalysisHandler: handler.NewAnalysisHandler(handler.AnalysisHandlerParams{
				AnalysisUC: ts.analysisUC, Logger: logger,
			}),
			ShopHandler: handler.NewShopHandler(handler.ShopHandlerParams{
				ShopUC: ts.shopUC, Config: cfg, Logger: logger,
			}),
			ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
				ProfileUC: mockusecase.NewMockProfileUsecase(t), Logger: logger,
			}),
			DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
				DeviceUC: mockusecase.NewMockDeviceUsecase(t), Logger: logger,
			}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(ts.sessionUC),
			Config:         cfg,
		},
	})

	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t, newTestConfig(""))

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t, newTestConfig(""))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := ts.do(req)

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t, newTestConfig(""))

	for _, path := range []string{"/api/v1/questionnaire", "/api/v1/analysis/results", "/api/v1/profile", "/api/v1/devices"} {
		rec := ts.do(httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestServer_InvalidTokenIsRejected(t *testing.T) {
	ts := newTestServer(t, newTestConfig(""))

	ts.sessionUC.EXPECT().CurrentSession(mock.Anything, "expired").Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/questionnaire", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
	rec := ts.do(req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestServer_SignedInQuestionnaire(t *testing.T) {
	ts := newTestServer(t, newTestConfig(""))
	userID := uuid.New()

	ts.sessionUC.EXPECT().
		CurrentSession(mock.Anything, "good").
		Return(&service.SessionIdentity{UserID: userID, Email: "jane@example.com"}, nil)
	ts.questionnaireUC.EXPECT().
		Load(mock.Anything, userID).
		Return(&usecase.WizardState{Step: wizard.StepPersonalInfo, StepKey: "personal_info"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/questionnaire", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"step_key":"personal_info"`)
}

func TestServer_ShopIsOpenToAnonymousVisitors(t *testing.T) {
	ts := newTestServer(t, newTestConfig(""))

	ts.shopUC.EXPECT().Categories().Return([]string{"all"})

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/shop/categories", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := newTestServer(t, newTestConfig(""))

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, newTestConfig(""))

	ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	rec := ts.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `jild_http_requests_total{method="GET",route="/health",status="200"}`)
}

func TestServer_ServesSinglePageApp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<div id=root></div>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	ts := newTestServer(t, newTestConfig(dir))

	for _, path := range []string{"/", "/shop", "/ai-recommendations", "/reset-password"} {
		rec := ts.do(httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "<div id=root></div>", rec.Body.String(), path)
	}

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/app.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "console.log"))
}

func photoUpload(t *testing.T, size int) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", "face.jpg")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0xff}, size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, router.PhotoUploadPath, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")

	return req
}

func TestServer_PhotoUploadSizeLimit(t *testing.T) {
	cfg, err := config.LoadWithEnv[config.Config]("config", "../../../config")
	require.NoError(t, err)
	require.NotNil(t, cfg.Inference)

	t.Run("photo above the image limit", func(t *testing.T) {
		ts := newTestServer(t, cfg)
		ts.sessionUC.EXPECT().
			CurrentSession(mock.Anything, "good").
			Return(&service.SessionIdentity{UserID: uuid.New()}, nil)

		rec := ts.do(photoUpload(t, 6*1024*1024))

		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"IMAGE_TOO_LARGE"`)
		assert.Contains(t, rec.Body.String(), "Image must be less than 5MB")
	})

	t.Run("photo far above the request limit", func(t *testing.T) {
		ts := newTestServer(t, cfg)
		ts.sessionUC.EXPECT().
			CurrentSession(mock.Anything, "good").
			Return(&service.SessionIdentity{UserID: uuid.New()}, nil)

		rec := ts.do(photoUpload(t, 12*1024*1024))

		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"IMAGE_TOO_LARGE"`)
	})

	t.Run("photo within the limit reaches analysis", func(t *testing.T) {
		ts := newTestServer(t, cfg)
		userID := uuid.New()
		ts.sessionUC.EXPECT().
			CurrentSession(mock.Anything, "good").
			Return(&service.SessionIdentity{UserID: userID}, nil)
		ts.analysisUC.EXPECT().
			Analyze(mock.Anything, userID, mock.MatchedBy(func(u *usecase.Upload) bool {
				return u.Size == int64(cfg.Inference.MaxImageBytes)
			})).
			Return(&usecase.AnalysisOutput{Preview: "data:image/jpeg;base64,"}, nil)

		rec := ts.do(photoUpload(t, int(cfg.Inference.MaxImageBytes)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_OtherRoutesKeepRequestLimit(t *testing.T) {
	cfg := newTestConfig("")
	cfg.HTTP.MaxRequestBodySize = "1KB"
	ts := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", strings.NewReader(strings.Repeat("a", 2048)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := ts.do(req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}
