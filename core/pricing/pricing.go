// Package pricing derives a recommended price per service from monthly costs,
// a revenue target and the number of tasks to perform.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/kilianp07/cleanplan/core/model"
)

// Price multipliers applied to the base price.
const (
	FullCleanMultiplier    = 1.2
	InteriorOnlyMultiplier = 0.8
	OneOffMultiplier       = 1.5
)

// ErrInvalidInputs is wrapped by Inputs.Validate failures.
var ErrInvalidInputs = errors.New("invalid pricing inputs")

// Inputs are the monthly financial figures of the activity.
type Inputs struct {
	Salary             float64 `json:"salary"`
	AmortizationTotal  float64 `json:"amortization_total"`
	AmortizationMonths int     `json:"amortization_months"`
	RevenueTarget      float64 `json:"revenue_target"`
	TaskCount          int     `json:"task_count"`
}

// Validate rejects inputs Compute cannot handle.
func (in Inputs) Validate() error {
	var errs []error
	if !finiteNonNeg(in.Salary) {
		errs = append(errs, fmt.Errorf("salary must be a finite amount >= 0, got %v", in.Salary))
	}
	if !finiteNonNeg(in.AmortizationTotal) {
		errs = append(errs, fmt.Errorf("amortization total must be a finite amount >= 0, got %v", in.AmortizationTotal))
	}
	if in.AmortizationMonths < 1 {
		errs = append(errs, fmt.Errorf("amortization months must be >= 1, got %d", in.AmortizationMonths))
	}
	if !finiteNonNeg(in.RevenueTarget) {
		errs = append(errs, fmt.Errorf("revenue target must be a finite amount >= 0, got %v", in.RevenueTarget))
	}
	if in.TaskCount < 0 {
		errs = append(errs, fmt.Errorf("task count must be >= 0, got %d", in.TaskCount))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInputs, errors.Join(errs...))
	}
	return nil
}

// PriceRow is one line of the price table.
type PriceRow struct {
	Label string            `json:"label"`
	Class *model.FleetClass `json:"class,omitempty"`
	Kind  model.ServiceKind `json:"kind"`
	Price float64           `json:"price"`
}

// CostBreakdown splits the total monthly cost between salary and
// amortization, in percent.
type CostBreakdown struct {
	SalaryPct       float64 `json:"salary_pct"`
	AmortizationPct float64 `json:"amortization_pct"`
}

// Result holds the derived prices and cost figures.
type Result struct {
	BasePrice           float64    `json:"base_price"`
	Table               []PriceRow `json:"table"`
	MonthlyAmortization float64    `json:"monthly_amortization"`
	TotalMonthlyCost    float64    `json:"total_monthly_cost"`
	// Margin is the revenue target minus the monthly cost; negative when the
	// target does not cover costs.
	Margin    float64       `json:"margin"`
	Breakdown CostBreakdown `json:"breakdown"`
}

// Compute derives prices from in. A zero task count yields a zero base
// price. Callers validate in beforehand.
func Compute(in Inputs) Result {
	monthly := in.AmortizationTotal / float64(in.AmortizationMonths)
	cost := in.Salary + monthly
	base := 0.0
	if in.TaskCount > 0 {
		base = (cost + in.RevenueTarget) / float64(in.TaskCount)
	}
	res := Result{
		BasePrice:           base,
		Table:               Table(base),
		MonthlyAmortization: monthly,
		TotalMonthlyCost:    cost,
		Margin:              in.RevenueTarget - cost,
	}
	if cost > 0 {
		res.Breakdown = CostBreakdown{
			SalaryPct:       in.Salary / cost * 100,
			AmortizationPct: monthly / cost * 100,
		}
	}
	return res
}

// Multiplier returns the price multiplier for kind.
func Multiplier(kind model.ServiceKind) float64 {
	switch kind {
	case model.FullClean:
		return FullCleanMultiplier
	case model.InteriorOnly:
		return InteriorOnlyMultiplier
	default:
		return OneOffMultiplier
	}
}

// Table builds the five-row price table from base. Both fleet classes share
// the same multiplier per kind.
func Table(base float64) []PriceRow {
	lift, shuttle := model.Lift, model.Shuttle
	row := func(label string, class *model.FleetClass, kind model.ServiceKind) PriceRow {
		return PriceRow{Label: label, Class: class, Kind: kind, Price: base * Multiplier(kind)}
	}
	return []PriceRow{
		row("Nettoyage complet ambulift", &lift, model.FullClean),
		row("Nettoyage intérieur ambulift", &lift, model.InteriorOnly),
		row("Nettoyage complet navette", &shuttle, model.FullClean),
		row("Nettoyage intérieur navette", &shuttle, model.InteriorOnly),
		row("Intervention ponctuelle", nil, model.OneOff),
	}
}

func finiteNonNeg(v float64) bool { return v >= 0 && !math.IsInf(v, 0) }
