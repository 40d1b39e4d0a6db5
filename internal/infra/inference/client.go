// Package inference talks to the external skin classification endpoint.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"jild/config"
	"jild/internal/domain/service"
	"jild/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	predictPath  = "/predict"
	imageField   = "image"
	maxBodyBytes = 32 << 20
)

type client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// Params defines the dependencies of the inference client
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// NewClient builds the client from the inference config section.
func NewClient(params Params) (service.InferenceClient, error) {
	cfg := params.Config.Inference
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("inference base URL is required")
	}

	return &client{
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + predictPath,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		logger:     params.Logger,
		metrics:    params.Metrics,
	}, nil
}

// Predict uploads img as the multipart field "image" and returns the decoded
// response body untouched. It never retries.
func (c *client) Predict(ctx context.Context, img service.Image) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &service.PredictError{Reason: "too many analysis requests", Err: err}
	}

	body, contentType, err := encodeImage(img)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.InferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.InferenceRequestsTotal.WithLabelValues("network_error").Inc()

		return nil, &service.PredictError{Reason: "inference service unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.metrics.InferenceRequestsTotal.WithLabelValues("network_error").Inc()

		return nil, &service.PredictError{StatusCode: resp.StatusCode, Reason: "failed to read analysis response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.InferenceRequestsTotal.WithLabelValues("http_error").Inc()
		c.logger.WarnContext(ctx, "Inference endpoint returned an error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(raw, 256)),
		)

		return nil, &service.PredictError{StatusCode: resp.StatusCode, Reason: fmt.Sprintf("analysis service returned status %d", resp.StatusCode)}
	}

	if !json.Valid(raw) {
		c.metrics.InferenceRequestsTotal.WithLabelValues("http_error").Inc()

		return nil, &service.PredictError{StatusCode: resp.StatusCode, Reason: "analysis service returned invalid JSON"}
	}

	c.metrics.InferenceRequestsTotal.WithLabelValues("success").Inc()

	return json.RawMessage(raw), nil
}

func encodeImage(img service.Image) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	filename := img.Filename
	if filename == "" {
		filename = "photo"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, imageField, filename))
	header.Set("Content-Type", img.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}
	if _, err := part.Write(img.Data); err != nil {
		return nil, "", errors.WithStack(err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	return buf, writer.FormDataContentType(), nil
}

func truncate(raw []byte, n int) string {
	if len(raw) <= n {
		return string(raw)
	}

	return string(raw[:n]) + "..."
}
