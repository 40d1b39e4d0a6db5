package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"jild/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(cfg *config.Config) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return buf, newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_SkipsRecordNotFound(t *testing.T) {
	buf, l := newBufferedGormLogger(nil)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsFailures(t *testing.T) {
	buf, l := newBufferedGormLogger(nil)

	l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.SlowQueryThreshold = time.Millisecond
	buf, l := newBufferedGormLogger(cfg)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_QuietBelowInfo(t *testing.T) {
	buf, l := newBufferedGormLogger(nil)

	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	l.Info(context.Background(), "hello %s", "world")

	assert.Empty(t, buf.String())
}
