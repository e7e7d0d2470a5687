package metrics

import (
	"time"

	"github.com/kilianp07/cleanplan/core/model"
)

// RunEvent summarises one planning run.
type RunEvent struct {
	RunID       string
	Tasks       int
	Placed      int
	Unplaced    int
	SpanDays    int
	WorkingDays int
	Utilization float64
	BasePrice   float64
	Margin      float64
	Duration    time.Duration
	Time        time.Time
}

// MetricsSink records planning runs for observability purposes.
type MetricsSink interface {
	RecordRun(ev RunEvent) error
}

// TaskMix counts generated tasks per fleet class and service kind.
type TaskMix struct {
	Class model.FleetClass  `json:"class"`
	Kind  model.ServiceKind `json:"kind"`
	Count int               `json:"count"`
}

// TaskMixRecorder is implemented by sinks able to record the task mix.
type TaskMixRecorder interface {
	RecordTaskMix(mix []TaskMix) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error      { return nil }
func (NopSink) RecordTaskMix([]TaskMix) error { return nil }

// MixOf counts tasks per class and kind in a stable order.
func MixOf(tasks []model.Task) []TaskMix {
	type key struct {
		c model.FleetClass
		k model.ServiceKind
	}
	counts := map[key]int{}
	var order []key
	for _, t := range tasks {
		k := key{t.Vehicle.Class, t.Kind}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]TaskMix, len(order))
	for i, k := range order {
		out[i] = TaskMix{Class: k.c, Kind: k.k, Count: counts[k]}
	}
	return out
}
