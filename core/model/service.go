package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ServiceKind is the type of cleaning performed on a vehicle.
type ServiceKind int

const (
	// FullClean is a complete cleaning, interior included.
	FullClean ServiceKind = iota
	// InteriorOnly is limited to the vehicle interior.
	InteriorOnly
	// OneOff is an ad-hoc intervention with a generic duration.
	OneOff
)

func (k ServiceKind) String() string {
	switch k {
	case FullClean:
		return "full"
	case InteriorOnly:
		return "interior"
	case OneOff:
		return "oneoff"
	default:
		return "unknown"
	}
}

// Label returns the display name written in the planning export.
func (k ServiceKind) Label() string {
	switch k {
	case FullClean:
		return "Complet"
	case InteriorOnly:
		return "Intérieur seul"
	case OneOff:
		return "Ponctuelle"
	default:
		return "Inconnu"
	}
}

func (k ServiceKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ServiceKind) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "full":
		*k = FullClean
	case "interior":
		*k = InteriorOnly
	case "oneoff":
		*k = OneOff
	default:
		return fmt.Errorf("unknown service kind %q", string(b))
	}
	return nil
}

// DurationTable maps fleet class and service kind to a duration in hours.
// It is passed by value so a generator never observes later changes.
type DurationTable struct {
	ShuttleFull     float64 `json:"shuttle_full"`
	ShuttleInterior float64 `json:"shuttle_interior"`
	LiftFull        float64 `json:"lift_full"`
	LiftInterior    float64 `json:"lift_interior"`
	OneOff          float64 `json:"oneoff"`
}

// DefaultDurations returns the reference durations in hours.
func DefaultDurations() DurationTable {
	return DurationTable{
		ShuttleFull:     1.5,
		ShuttleInterior: 0.75,
		LiftFull:        2.0,
		LiftInterior:    1.0,
		OneOff:          1.0,
	}
}

// For returns the duration of kind on a vehicle of the given class.
// One-off interventions use the generic duration regardless of class.
func (d DurationTable) For(class FleetClass, kind ServiceKind) float64 {
	if kind == OneOff {
		return d.OneOff
	}
	switch class {
	case Lift:
		if kind == FullClean {
			return d.LiftFull
		}
		return d.LiftInterior
	default:
		if kind == FullClean {
			return d.ShuttleFull
		}
		return d.ShuttleInterior
	}
}

// Validate checks that every duration is finite and strictly positive.
func (d DurationTable) Validate() error {
	vals := []struct {
		name string
		v    float64
	}{
		{"shuttle_full", d.ShuttleFull},
		{"shuttle_interior", d.ShuttleInterior},
		{"lift_full", d.LiftFull},
		{"lift_interior", d.LiftInterior},
		{"oneoff", d.OneOff},
	}
	var errs []error
	for _, v := range vals {
		if !(v.v > 0) || math.IsInf(v.v, 0) {
			errs = append(errs, fmt.Errorf("duration %s must be a positive finite number, got %v", v.name, v.v))
		}
	}
	return errors.Join(errs...)
}

// Task is one cleaning job to perform.
type Task struct {
	Vehicle Vehicle     `json:"vehicle"`
	Kind    ServiceKind `json:"kind"`
	Hours   float64     `json:"hours"`
}

// ScheduledTask is a Task placed on a calendar day for an agent.
type ScheduledTask struct {
	Task
	Date  time.Time `json:"date"`
	Agent string    `json:"agent"`
}
