package inference

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"jild/config"
	"jild/internal/domain/service"
	"jild/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) service.InferenceClient {
	t.Helper()

	c, err := NewClient(Params{
		Config: &config.Config{Inference: &config.InferenceConfig{
			BaseURL:           baseURL,
			Timeout:           2 * time.Second,
			RequestsPerSecond: 100,
			Burst:             10,
		}},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: metrics.New(),
	})
	require.NoError(t, err)

	return c
}

func testImage() service.Image {
	return service.Image{Filename: "face.png", ContentType: "image/png", Data: []byte("\x89PNG\r\n\x1a\nfake")}
}

func TestPredict_SendsMultipartAndPassesBodyThrough(t *testing.T) {
	const body = `{"detections":[{"class":"Acne","confidence":0.81}],"extra":{"kept":true}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "face.png", header.Filename)
		assert.Equal(t, testImage().Data, data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	raw, err := newTestClient(t, server.URL+"/").Predict(context.Background(), testImage())
	require.NoError(t, err)
	assert.JSONEq(t, body, string(raw))
}

func TestPredict_NonSuccessStatus(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Predict(context.Background(), testImage())
	require.Error(t, err)

	var predictErr *service.PredictError
	require.True(t, errors.As(err, &predictErr))
	assert.Equal(t, http.StatusInternalServerError, predictErr.StatusCode)
	assert.Equal(t, "analysis service returned status 500", predictErr.Reason)
	assert.Equal(t, int32(1), calls.Load(), "no retry")
}

func TestPredict_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	_, err := newTestClient(t, baseURL).Predict(context.Background(), testImage())

	var predictErr *service.PredictError
	require.True(t, errors.As(err, &predictErr))
	assert.Zero(t, predictErr.StatusCode)
	assert.Equal(t, "inference service unreachable", predictErr.Reason)
}

func TestPredict_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Predict(context.Background(), testImage())

	var predictErr *service.PredictError
	require.True(t, errors.As(err, &predictErr))
	assert.Equal(t, "analysis service returned invalid JSON", predictErr.Reason)
}

func TestPredict_CancelledContextSkipsRequest(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, server.URL).Predict(ctx, testImage())
	assert.Error(t, err)
	assert.Zero(t, calls.Load())
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Params{Config: &config.Config{}, Metrics: metrics.New()})
	assert.Error(t, err)
}
