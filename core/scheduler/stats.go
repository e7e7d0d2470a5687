package scheduler

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DayLoad is the number of hours planned on one date.
type DayLoad struct {
	Date  time.Time `json:"date"`
	Hours float64   `json:"hours"`
	Tasks int       `json:"tasks"`
}

// Stats summarises how a schedule fills the working days.
type Stats struct {
	WorkingDays int       `json:"working_days"`
	TotalHours  float64   `json:"total_hours"`
	MeanHours   float64   `json:"mean_hours"`
	StdDevHours float64   `json:"stddev_hours"`
	MaxHours    float64   `json:"max_hours"`
	Utilization float64   `json:"utilization"` // mean load over the daily cap
	Loads       []DayLoad `json:"loads"`
}

// ComputeStats groups the placed tasks of s by date. Days without any task,
// such as days skipped after an overflowing task, are not counted.
func ComputeStats(s Schedule, dailyCap float64) Stats {
	var loads []DayLoad
	for _, t := range s.Tasks {
		n := len(loads)
		if n == 0 || !loads[n-1].Date.Equal(t.Date) {
			loads = append(loads, DayLoad{Date: t.Date})
			n++
		}
		loads[n-1].Hours += t.Hours
		loads[n-1].Tasks++
	}
	st := Stats{WorkingDays: len(loads), Loads: loads}
	if len(loads) == 0 {
		return st
	}
	hours := make([]float64, len(loads))
	for i, l := range loads {
		hours[i] = l.Hours
	}
	st.TotalHours = floats.Sum(hours)
	st.MaxHours = floats.Max(hours)
	st.MeanHours, st.StdDevHours = stat.MeanStdDev(hours, nil)
	if len(hours) == 1 {
		st.StdDevHours = 0
	}
	if dailyCap > 0 {
		st.Utilization = st.MeanHours / dailyCap
	}
	return st
}
