package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/kilianp07/cleanplan/core/model"
)

// Schedule is the outcome of a planning run.
type Schedule struct {
	Tasks []model.ScheduledTask `json:"tasks"`
	// Start and End are the dates of the first and last placed task, nil
	// when nothing was placed.
	Start    *time.Time `json:"start,omitempty"`
	End      *time.Time `json:"end,omitempty"`
	SpanDays int        `json:"span_days"`
	// Unplaced counts input tasks left out once the working-day bound was
	// reached. Placed tasks always form a prefix of the input.
	Unplaced int `json:"unplaced"`
}

// Complete reports whether every input task was placed.
func (s Schedule) Complete() bool { return s.Unplaced == 0 }

// Scheduler places tasks for a single agent.
type Scheduler struct {
	Config SchedulerConfig
}

// New returns a Scheduler after validating cfg.
func New(cfg SchedulerConfig) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{Config: cfg}, nil
}

// Schedule assigns each task, in order, to the current working day if it
// still fits under the daily cap and otherwise moves on to the next working
// day. Working days are counted from start inclusive. A task longer than the
// daily cap can never fit: the day cursor then runs up to MaxWorkingDays and
// that task and all following ones are reported in Unplaced.
func (s *Scheduler) Schedule(tasks []model.Task, start time.Time) (Schedule, error) {
	if err := s.Config.Validate(); err != nil {
		return Schedule{}, err
	}
	for i, t := range tasks {
		if !(t.Hours >= 0) || math.IsInf(t.Hours, 0) {
			return Schedule{}, fmt.Errorf("schedule: task %d (%s %s) has invalid duration %v", i, t.Vehicle.ID, t.Kind, t.Hours)
		}
	}

	days := newWorkdays(start, s.Config.WorkdaysPerWeek, s.Config.MaxWorkingDays)
	day, ok := days.next()
	used := 0.0
	out := Schedule{Tasks: make([]model.ScheduledTask, 0, len(tasks))}

	for _, t := range tasks {
		for ok && used+t.Hours > s.Config.DailyHoursCap {
			day, ok = days.next()
			used = 0
		}
		if !ok {
			break
		}
		out.Tasks = append(out.Tasks, model.ScheduledTask{Task: t, Date: day, Agent: s.Config.AgentID})
		used += t.Hours
	}

	out.Unplaced = len(tasks) - len(out.Tasks)
	if n := len(out.Tasks); n > 0 {
		first, last := out.Tasks[0].Date, out.Tasks[n-1].Date
		out.Start, out.End = &first, &last
		out.SpanDays = calendarDays(first, last) + 1
	}
	return out, nil
}

// workdays yields working days lazily, at most limit of them.
type workdays struct {
	cur     time.Time
	perWeek int
	left    int
}

func newWorkdays(start time.Time, perWeek, limit int) *workdays {
	y, m, d := start.Date()
	return &workdays{cur: time.Date(y, m, d, 0, 0, 0, 0, start.Location()), perWeek: perWeek, left: limit}
}

func (w *workdays) next() (time.Time, bool) {
	if w.left <= 0 {
		return time.Time{}, false
	}
	for !IsWorkday(w.cur, w.perWeek) {
		w.cur = w.cur.AddDate(0, 0, 1)
	}
	day := w.cur
	w.cur = w.cur.AddDate(0, 0, 1)
	w.left--
	return day, true
}

// WeekdayIndex returns the day of week with Monday as 0 and Sunday as 6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWorkday reports whether t falls within the first perWeek days of its
// Monday-based week.
func IsWorkday(t time.Time, perWeek int) bool {
	return WeekdayIndex(t) < perWeek
}

// calendarDays counts whole days between two midnights, ignoring DST shifts.
func calendarDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
