package metrics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/cleanplan/core/metrics"
	"github.com/kilianp07/cleanplan/core/model"
	"github.com/kilianp07/cleanplan/infra/logger"
)

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSink(logger.NewWithWriter(&buf, "metrics", "debug"))
	require.NoError(t, s.RecordRun(coremetrics.RunEvent{RunID: "r1", Tasks: 4, Unplaced: 1}))
	require.NoError(t, s.RecordTaskMix([]coremetrics.TaskMix{{Class: model.Lift, Kind: model.InteriorOnly, Count: 2}}))
	out := buf.String()
	assert.Contains(t, out, `"run_id":"r1"`)
	assert.Contains(t, out, `"unplaced":1`)
	assert.Contains(t, out, `"lift_interior":2`)
}
