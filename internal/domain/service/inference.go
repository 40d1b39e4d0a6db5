package service

import (
	"context"
	"encoding/json"
)

// Image is an uploaded photo.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PredictError is a failed inference call. Reason is safe to show to users.
type PredictError struct {
	StatusCode int // 0 when no response was received
	Reason     string
	Err        error
}

func (e *PredictError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}

	return e.Reason
}

func (e *PredictError) Unwrap() error {
	return e.Err
}

// InferenceClient calls the external skin classification endpoint.
type InferenceClient interface {
	// Predict uploads img and returns the decoded response body untouched.
	Predict(ctx context.Context, img Image) (json.RawMessage, error)
}

// PhotoStore archives accepted photos.
type PhotoStore interface {
	// Save writes img and returns its storage key.
	Save(ctx context.Context, key string, img Image) error
}
