package tasks

import (
	"errors"
	"fmt"

	"github.com/kilianp07/cleanplan/core/model"
)

// ErrInvalidParams is wrapped by every validation failure of NewParams.
var ErrInvalidParams = errors.New("invalid task parameters")

// Params holds validated generator inputs. Build it with NewParams; the
// generator assumes the invariants it checks.
type Params struct {
	Shuttles     []model.Vehicle
	Lifts        []model.Vehicle
	FullFreq     int // full cleans per vehicle per month
	InteriorFreq int // interior cleans per vehicle per month, as entered
	OneOffPct    int // share of the fleet receiving a one-off each month
	Months       int
}

// NewParams validates the raw inputs and returns Params.
func NewParams(shuttles, lifts []model.Vehicle, fullFreq, interiorFreq, oneOffPct, months int) (Params, error) {
	var errs []error
	if fullFreq < 0 {
		errs = append(errs, fmt.Errorf("full frequency must be >= 0, got %d", fullFreq))
	}
	if interiorFreq < 0 {
		errs = append(errs, fmt.Errorf("interior frequency must be >= 0, got %d", interiorFreq))
	}
	if oneOffPct < 0 || oneOffPct > 100 {
		errs = append(errs, fmt.Errorf("one-off percentage must be in [0,100], got %d", oneOffPct))
	}
	if months < 1 {
		errs = append(errs, fmt.Errorf("months must be >= 1, got %d", months))
	}
	errs = append(errs, checkClass(shuttles, model.Shuttle)...)
	errs = append(errs, checkClass(lifts, model.Lift)...)
	seen := make(map[string]struct{}, len(shuttles)+len(lifts))
	for _, v := range append(append([]model.Vehicle{}, shuttles...), lifts...) {
		if v.ID == "" {
			errs = append(errs, errors.New("vehicle id must not be empty"))
			continue
		}
		if _, dup := seen[v.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate vehicle id %s", v.ID))
		}
		seen[v.ID] = struct{}{}
	}
	if len(errs) > 0 {
		return Params{}, fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
	}
	return Params{
		Shuttles:     shuttles,
		Lifts:        lifts,
		FullFreq:     fullFreq,
		InteriorFreq: interiorFreq,
		OneOffPct:    oneOffPct,
		Months:       months,
	}, nil
}

func checkClass(fleet []model.Vehicle, want model.FleetClass) []error {
	var errs []error
	for _, v := range fleet {
		if v.Class != want {
			errs = append(errs, fmt.Errorf("vehicle %s is a %s, listed with %s vehicles", v.ID, v.Class, want))
		}
	}
	return errs
}

// EffectiveInteriorFreq is the monthly interior-only count per vehicle once
// the interior part of full cleans is discounted.
func (p Params) EffectiveInteriorFreq() int {
	return max(p.InteriorFreq-p.FullFreq, 0)
}

// FleetSize returns the number of shuttles and lifts.
func (p Params) FleetSize() int { return len(p.Shuttles) + len(p.Lifts) }

// OneOffPerMonth returns floor(fleet * pct / 100).
func (p Params) OneOffPerMonth() int {
	return p.FleetSize() * p.OneOffPct / 100
}

// Count returns the number of tasks Generate produces for p.
func Count(p Params) int {
	recurring := p.Months * p.FleetSize() * (p.FullFreq + p.EffectiveInteriorFreq())
	if p.FleetSize() == 0 {
		return recurring
	}
	return recurring + p.OneOffPerMonth()*p.Months
}
