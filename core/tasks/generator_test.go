package tasks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/cleanplan/core/model"
)

func newGen(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(model.DefaultDurations())
	require.NoError(t, err)
	return g
}

func mustParams(t *testing.T, s, l, full, interior, pct, months int) Params {
	t.Helper()
	p, err := NewParams(model.NewFleet(model.Shuttle, s), model.NewFleet(model.Lift, l), full, interior, pct, months)
	require.NoError(t, err)
	return p
}

func TestGenerateCount(t *testing.T) {
	cases := []struct {
		name                          string
		s, l, full, interior, pct, mo int
	}{
		{"defaults", 30, 20, 2, 4, 10, 3},
		{"no interior", 5, 5, 3, 1, 0, 2},
		{"only shuttles", 7, 0, 1, 5, 50, 1},
		{"empty fleet", 0, 0, 2, 4, 100, 3},
		{"floor one-offs", 3, 0, 0, 0, 50, 4},
	}
	g := newGen(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := mustParams(t, c.s, c.l, c.full, c.interior, c.pct, c.mo)
			fleet := c.s + c.l
			want := c.mo * fleet * (c.full + max(c.interior-c.full, 0))
			if fleet > 0 {
				want += fleet * c.pct / 100 * c.mo
			}
			got := g.Generate(p)
			assert.Len(t, got, want)
			assert.Equal(t, want, Count(p))
		})
	}
}

func TestGenerateDefaultsTotal(t *testing.T) {
	// 50 vehicles * 3 months * (2 full + 2 interior) + 5 one-offs * 3 months
	tasks := newGen(t).Generate(mustParams(t, 30, 20, 2, 4, 10, 3))
	assert.Len(t, tasks, 615)
}

func TestGenerateNoDoubleCount(t *testing.T) {
	g := newGen(t)
	for _, interior := range []int{0, 1, 2, 3} {
		tasks := g.Generate(mustParams(t, 4, 4, 3, interior, 0, 2))
		for _, task := range tasks {
			assert.NotEqual(t, model.InteriorOnly, task.Kind, "interior=%d", interior)
		}
	}
}

func TestGenerateOrdering(t *testing.T) {
	tasks := newGen(t).Generate(mustParams(t, 2, 1, 1, 2, 100, 2))
	var got []string
	for _, task := range tasks {
		got = append(got, task.Vehicle.ID+":"+task.Kind.String())
	}
	want := []string{
		"Nav1:full", "Nav1:full", "Nav1:interior", "Nav1:interior",
		"Nav2:full", "Nav2:full", "Nav2:interior", "Nav2:interior",
		"Help1:full", "Help1:full", "Help1:interior", "Help1:interior",
		"Nav1:oneoff", "Nav2:oneoff", "Help1:oneoff",
		"Nav1:oneoff", "Nav2:oneoff", "Help1:oneoff",
	}
	assert.Equal(t, want, got)
}

func TestGenerateDurations(t *testing.T) {
	d := model.DefaultDurations()
	for _, task := range newGen(t).Generate(mustParams(t, 2, 2, 1, 2, 50, 1)) {
		assert.Equal(t, d.For(task.Vehicle.Class, task.Kind), task.Hours)
	}
}

func TestGenerateEmptyFleetNoOneOffs(t *testing.T) {
	tasks := newGen(t).Generate(mustParams(t, 0, 0, 2, 4, 100, 12))
	assert.Empty(t, tasks)
}

func TestNewParamsValidation(t *testing.T) {
	dup := []model.Vehicle{{ID: "A"}, {ID: "A"}}
	cases := []struct {
		name string
		fn   func() error
	}{
		{"negative full", func() error { _, err := NewParams(nil, nil, -1, 0, 0, 1); return err }},
		{"negative interior", func() error { _, err := NewParams(nil, nil, 0, -2, 0, 1); return err }},
		{"pct over 100", func() error { _, err := NewParams(nil, nil, 0, 0, 101, 1); return err }},
		{"zero months", func() error { _, err := NewParams(nil, nil, 0, 0, 0, 0); return err }},
		{"duplicate ids", func() error { _, err := NewParams(dup, nil, 0, 0, 0, 1); return err }},
		{"empty id", func() error { _, err := NewParams([]model.Vehicle{{}}, nil, 0, 0, 0, 1); return err }},
		{"lift among shuttles", func() error {
			_, err := NewParams([]model.Vehicle{{ID: "Help1", Class: model.Lift}}, nil, 0, 0, 0, 1)
			return err
		}},
		{"shuttle among lifts", func() error {
			_, err := NewParams(nil, model.NewFleet(model.Shuttle, 1), 0, 0, 0, 1)
			return err
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.fn()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParams))
		})
	}
}

func TestNewGeneratorRejectsBadDurations(t *testing.T) {
	d := model.DefaultDurations()
	d.ShuttleInterior = 0
	_, err := NewGenerator(d)
	assert.Error(t, err)
}
