package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/cleanplan/config"
	coremetrics "github.com/kilianp07/cleanplan/core/metrics"
	"github.com/kilianp07/cleanplan/core/model"
	"github.com/kilianp07/cleanplan/core/pricing"
	"github.com/kilianp07/cleanplan/core/scheduler"
	"github.com/kilianp07/cleanplan/core/tasks"
	"github.com/kilianp07/cleanplan/infra/logger"
	_ "github.com/kilianp07/cleanplan/infra/metrics" // built-in sinks
)

// Report is the outcome of one planning run.
type Report struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Fleet       config.FleetConfig `json:"fleet"`
	StartDate   time.Time          `json:"start_date"`
	Months      int                `json:"months"`
	Tasks       []model.Task       `json:"-"`
	Schedule    scheduler.Schedule `json:"-"`
	Stats       scheduler.Stats    `json:"stats"`
	Pricing     pricing.Result     `json:"pricing"`
}

// Summary is the JSON friendly digest of a Report.
type Summary struct {
	RunID       string                `json:"run_id"`
	Tasks       int                   `json:"tasks"`
	Placed      int                   `json:"placed"`
	Unplaced    int                   `json:"unplaced"`
	Complete    bool                  `json:"complete"`
	Start       *time.Time            `json:"start,omitempty"`
	End         *time.Time            `json:"end,omitempty"`
	SpanDays    int                   `json:"span_days"`
	WorkingDays int                   `json:"working_days"`
	Utilization float64               `json:"utilization"`
	TaskMix     []coremetrics.TaskMix `json:"task_mix"`
	Pricing     pricing.Result        `json:"pricing"`
}

// Summary condenses the report.
func (r *Report) Summary() Summary {
	return Summary{
		RunID:       r.RunID,
		Tasks:       len(r.Tasks),
		Placed:      len(r.Schedule.Tasks),
		Unplaced:    r.Schedule.Unplaced,
		Complete:    r.Schedule.Complete(),
		Start:       r.Schedule.Start,
		End:         r.Schedule.End,
		SpanDays:    r.Schedule.SpanDays,
		WorkingDays: r.Stats.WorkingDays,
		Utilization: r.Stats.Utilization,
		TaskMix:     coremetrics.MixOf(r.Tasks),
		Pricing:     r.Pricing,
	}
}

// Service runs the generate, schedule and price pipeline from a validated
// configuration.
type Service struct {
	cfg   config.Config
	start time.Time
	gen   *tasks.Generator
	sched *scheduler.Scheduler
	sink  coremetrics.MetricsSink
	log   logger.Logger
	now   func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithSink overrides the metrics sink built from the configuration.
func WithSink(s coremetrics.MetricsSink) Option { return func(svc *Service) { svc.sink = s } }

// WithLogger overrides the service logger.
func WithLogger(l logger.Logger) Option { return func(svc *Service) { svc.log = l } }

// WithClock sets the time source used for report timestamps.
func WithClock(now func() time.Time) Option { return func(svc *Service) { svc.now = now } }

// New creates a Service from the configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("service: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	start, err := cfg.Horizon.Start()
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	gen, err := tasks.NewGenerator(cfg.Durations)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	sched, err := scheduler.New(cfg.Scheduler)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	svc := &Service{cfg: *cfg, start: start, gen: gen, sched: sched, now: time.Now}
	for _, o := range opts {
		o(svc)
	}
	if svc.log == nil {
		svc.log = logger.New("service")
	}
	if svc.sink == nil {
		sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
		if err != nil {
			return nil, fmt.Errorf("metrics sink: %w", err)
		}
		svc.sink = sink
	}
	return svc, nil
}

// Config returns a copy of the configuration the service runs with.
func (s *Service) Config() config.Config { return s.cfg }

// Run computes a full report. It fails only on cancellation or invalid
// parameters; an incomplete schedule is reported, not returned as an error.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	began := time.Now()
	runID := uuid.NewString()

	params, err := tasks.NewParams(
		model.NewFleet(model.Shuttle, s.cfg.Fleet.Shuttles),
		model.NewFleet(model.Lift, s.cfg.Fleet.Lifts),
		s.cfg.Frequencies.Full,
		s.cfg.Frequencies.Interior,
		s.cfg.Frequencies.OneOffPct,
		s.cfg.Horizon.Months,
	)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	list := s.gen.Generate(params)
	s.log.Debugw("tasks generated", map[string]any{
		"run_id":             runID,
		"tasks":              len(list),
		"effective_interior": params.EffectiveInteriorFreq(),
		"oneoff_per_month":   params.OneOffPerMonth(),
	})

	plan, err := s.sched.Schedule(list, s.start)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if !plan.Complete() {
		s.log.Warnf("run %s: schedule incomplete, %d of %d tasks not placed within %d working days",
			runID, plan.Unplaced, len(list), s.cfg.Scheduler.MaxWorkingDays)
	}
	stats := scheduler.ComputeStats(plan, s.cfg.Scheduler.DailyHoursCap)

	in := pricing.Inputs{
		Salary:             s.cfg.Finance.Salary,
		AmortizationTotal:  s.cfg.Finance.Investment,
		AmortizationMonths: s.cfg.Finance.AmortizationMonths,
		RevenueTarget:      s.cfg.Finance.RevenueTarget,
		TaskCount:          len(list),
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	prices := pricing.Compute(in)

	rep := &Report{
		RunID:       runID,
		GeneratedAt: s.now(),
		Fleet:       s.cfg.Fleet,
		StartDate:   s.start,
		Months:      s.cfg.Horizon.Months,
		Tasks:       list,
		Schedule:    plan,
		Stats:       stats,
		Pricing:     prices,
	}
	s.record(rep, time.Since(began))
	return rep, nil
}

func (s *Service) record(rep *Report, took time.Duration) {
	ev := coremetrics.RunEvent{
		RunID:       rep.RunID,
		Tasks:       len(rep.Tasks),
		Placed:      len(rep.Schedule.Tasks),
		Unplaced:    rep.Schedule.Unplaced,
		SpanDays:    rep.Schedule.SpanDays,
		WorkingDays: rep.Stats.WorkingDays,
		Utilization: rep.Stats.Utilization,
		BasePrice:   rep.Pricing.BasePrice,
		Margin:      rep.Pricing.Margin,
		Duration:    took,
		Time:        rep.GeneratedAt,
	}
	if err := s.sink.RecordRun(ev); err != nil {
		s.log.Errorf("record run %s: %v", rep.RunID, err)
	}
	if rec, ok := s.sink.(coremetrics.TaskMixRecorder); ok {
		if err := rec.RecordTaskMix(coremetrics.MixOf(rep.Tasks)); err != nil {
			s.log.Errorf("record task mix %s: %v", rep.RunID, err)
		}
	}
}
