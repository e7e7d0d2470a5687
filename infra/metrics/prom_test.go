package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/cleanplan/core/metrics"
	"github.com/kilianp07/cleanplan/core/model"
)

func TestPromSinkRecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, s.RecordRun(coremetrics.RunEvent{Tasks: 615, Placed: 615, SpanDays: 136, BasePrice: 12.5, Margin: -100, Duration: time.Millisecond}))
	require.NoError(t, s.RecordRun(coremetrics.RunEvent{Tasks: 10, Placed: 8, Unplaced: 2}))

	assert.Equal(t, 1.0, testutil.ToFloat64(s.runs.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.runs.WithLabelValues("false")))
	assert.Equal(t, 10.0, testutil.ToFloat64(s.tasks))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.unplaced))
}

func TestPromSinkTaskMix(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	require.NoError(t, s.RecordTaskMix([]coremetrics.TaskMix{
		{Class: model.Lift, Kind: model.FullClean, Count: 120},
		{Class: model.Shuttle, Kind: model.OneOff, Count: 15},
	}))
	assert.Equal(t, 120.0, testutil.ToFloat64(s.mix.WithLabelValues("lift", "full")))
	assert.Equal(t, 2, testutil.CollectAndCount(s.mix))
}

func TestPromSinkReuseRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	b, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	require.NoError(t, a.RecordRun(coremetrics.RunEvent{Tasks: 3}))
	assert.Equal(t, 3.0, testutil.ToFloat64(b.tasks))
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	require.NoError(t, s.RecordRun(coremetrics.RunEvent{Tasks: 7}))

	rr := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "cleanplan_last_run_tasks 7")
}
