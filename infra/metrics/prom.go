package metrics

import (
	"strconv"

	coremetrics "github.com/kilianp07/cleanplan/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink exposes planning runs as Prometheus metrics.
type PromSink struct {
	runs        *prometheus.CounterVec
	duration    prometheus.Histogram
	tasks       prometheus.Gauge
	unplaced    prometheus.Gauge
	spanDays    prometheus.Gauge
	utilization prometheus.Gauge
	basePrice   prometheus.Gauge
	margin      prometheus.Gauge
	mix         *prometheus.GaugeVec
}

// NewPromSink registers planning metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered by a previous sink are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	}
	s := &PromSink{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cleanplan_runs_total",
			Help: "Number of planning runs",
		}, []string{"complete"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cleanplan_run_duration_seconds",
			Help:    "Time spent generating, scheduling and pricing one run",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		tasks:       gauge("cleanplan_last_run_tasks", "Tasks generated by the last run"),
		unplaced:    gauge("cleanplan_last_run_unplaced_tasks", "Tasks left unscheduled by the last run"),
		spanDays:    gauge("cleanplan_last_run_span_days", "Calendar days covered by the last schedule"),
		utilization: gauge("cleanplan_last_run_utilization_ratio", "Mean daily load over the daily hour cap"),
		basePrice:   gauge("cleanplan_last_run_base_price_euros", "Recommended base price per task"),
		margin:      gauge("cleanplan_last_run_margin_euros", "Revenue target minus monthly cost"),
		mix: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cleanplan_last_run_tasks_by_kind",
			Help: "Tasks generated by the last run per fleet class and service kind",
		}, []string{"class", "kind"}),
	}

	var err error
	if s.runs, err = register(reg, s.runs); err != nil {
		return nil, err
	}
	if s.duration, err = register(reg, s.duration); err != nil {
		return nil, err
	}
	for _, g := range []*prometheus.Gauge{&s.tasks, &s.unplaced, &s.spanDays, &s.utilization, &s.basePrice, &s.margin} {
		if *g, err = register(reg, *g); err != nil {
			return nil, err
		}
	}
	if s.mix, err = register(reg, s.mix); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordRun updates the run counters and last-run gauges.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	s.runs.WithLabelValues(strconv.FormatBool(ev.Unplaced == 0)).Inc()
	s.duration.Observe(ev.Duration.Seconds())
	s.tasks.Set(float64(ev.Tasks))
	s.unplaced.Set(float64(ev.Unplaced))
	s.spanDays.Set(float64(ev.SpanDays))
	s.utilization.Set(ev.Utilization)
	s.basePrice.Set(ev.BasePrice)
	s.margin.Set(ev.Margin)
	return nil
}

// RecordTaskMix replaces the per-kind task gauges.
func (s *PromSink) RecordTaskMix(mix []coremetrics.TaskMix) error {
	s.mix.Reset()
	for _, m := range mix {
		s.mix.WithLabelValues(m.Class.String(), m.Kind.String()).Set(float64(m.Count))
	}
	return nil
}
