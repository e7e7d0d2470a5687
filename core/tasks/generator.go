package tasks

import (
	"fmt"

	"github.com/kilianp07/cleanplan/core/model"
)

// Generator builds task lists using a fixed duration table.
type Generator struct {
	durations model.DurationTable
}

// NewGenerator returns a Generator after validating the duration table.
func NewGenerator(d model.DurationTable) (*Generator, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("task generator: %w", err)
	}
	return &Generator{durations: d}, nil
}

// Durations returns the table used by the generator.
func (g *Generator) Durations() model.DurationTable { return g.durations }

// Generate expands p into tasks. Shuttles come first, then lifts, each
// vehicle contributing its full cleans for the whole horizon followed by its
// interior-only cleans. One-off interventions are appended last and cycle
// through the combined fleet.
func (g *Generator) Generate(p Params) []model.Task {
	out := make([]model.Task, 0, Count(p))
	interior := p.EffectiveInteriorFreq()

	recurring := func(fleet []model.Vehicle) {
		for _, v := range fleet {
			full := g.durations.For(v.Class, model.FullClean)
			for i := 0; i < p.FullFreq*p.Months; i++ {
				out = append(out, model.Task{Vehicle: v, Kind: model.FullClean, Hours: full})
			}
			in := g.durations.For(v.Class, model.InteriorOnly)
			for i := 0; i < interior*p.Months; i++ {
				out = append(out, model.Task{Vehicle: v, Kind: model.InteriorOnly, Hours: in})
			}
		}
	}
	recurring(p.Shuttles)
	recurring(p.Lifts)

	n := p.FleetSize()
	if n == 0 {
		return out
	}
	fleet := make([]model.Vehicle, 0, n)
	fleet = append(fleet, p.Shuttles...)
	fleet = append(fleet, p.Lifts...)
	total := p.OneOffPerMonth() * p.Months
	for i := 0; i < total; i++ {
		out = append(out, model.Task{Vehicle: fleet[i%n], Kind: model.OneOff, Hours: g.durations.OneOff})
	}
	return out
}
