package metrics

import (
	coremetrics "github.com/kilianp07/cleanplan/core/metrics"
	"github.com/kilianp07/cleanplan/infra/logger"
)

// LogSink writes run events as structured log lines.
type LogSink struct {
	log logger.Logger
}

// NewLogSink returns a LogSink; a nil logger uses the "metrics" component logger.
func NewLogSink(l logger.Logger) *LogSink {
	if l == nil {
		l = logger.New("metrics")
	}
	return &LogSink{log: l}
}

func (s *LogSink) RecordRun(ev coremetrics.RunEvent) error {
	s.log.Infow("planning run", map[string]any{
		"run_id":       ev.RunID,
		"tasks":        ev.Tasks,
		"placed":       ev.Placed,
		"unplaced":     ev.Unplaced,
		"span_days":    ev.SpanDays,
		"working_days": ev.WorkingDays,
		"utilization":  ev.Utilization,
		"base_price":   ev.BasePrice,
		"margin":       ev.Margin,
		"duration_ms":  ev.Duration.Milliseconds(),
	})
	return nil
}

func (s *LogSink) RecordTaskMix(mix []coremetrics.TaskMix) error {
	fields := make(map[string]any, len(mix))
	for _, m := range mix {
		fields[m.Class.String()+"_"+m.Kind.String()] = m.Count
	}
	s.log.Debugw("task mix", fields)
	return nil
}
