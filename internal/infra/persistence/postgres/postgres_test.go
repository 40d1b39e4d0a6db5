package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"jild/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestPoolMonitorObserve_ExportsWaits(t *testing.T) {
	m := metrics.New()
	monitor := &poolMonitor{metrics: m}

	before := testutil.ToFloat64(m.DBPoolWaitTotal)
	monitor.observe(context.Background(),
		sql.DBStats{WaitCount: 2},
		sql.DBStats{WaitCount: 5, WaitDuration: 30 * time.Millisecond, InUse: 7},
	)

	assert.InDelta(t, before+3, testutil.ToFloat64(m.DBPoolWaitTotal), 0.0001)
	assert.InDelta(t, 7, testutil.ToFloat64(m.DBPoolInUse), 0.0001)
}

func TestToColumnValue(t *testing.T) {
	empty, ok := toColumnValue([]string(nil)).(datatypes.JSONSlice[string])
	require.True(t, ok)
	value, err := empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	assert.Nil(t, toColumnValue(json.RawMessage(nil)))
	assert.Equal(t, datatypes.JSON(`{"detections":[]}`), toColumnValue(json.RawMessage(`{"detections":[]}`)))
	assert.Equal(t, 42, toColumnValue(42))
}

func TestPhotoResult_NullIsEmpty(t *testing.T) {
	assert.Nil(t, photoResult(nil))
	assert.Nil(t, photoResult([]byte("null")))
	assert.JSONEq(t, `{"detections":[]}`, string(photoResult([]byte(`{"detections":[]}`))))
}
