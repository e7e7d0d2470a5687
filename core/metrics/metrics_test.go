package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/cleanplan/core/factory"
	"github.com/kilianp07/cleanplan/core/model"
)

func TestMixOf(t *testing.T) {
	nav := model.Vehicle{ID: "Nav1", Class: model.Shuttle}
	help := model.Vehicle{ID: "Help1", Class: model.Lift}
	mix := MixOf([]model.Task{
		{Vehicle: nav, Kind: model.FullClean},
		{Vehicle: nav, Kind: model.FullClean},
		{Vehicle: help, Kind: model.InteriorOnly},
		{Vehicle: nav, Kind: model.OneOff},
	})
	assert.Equal(t, []TaskMix{
		{Class: model.Shuttle, Kind: model.FullClean, Count: 2},
		{Class: model.Lift, Kind: model.InteriorOnly, Count: 1},
		{Class: model.Shuttle, Kind: model.OneOff, Count: 1},
	}, mix)
	assert.Empty(t, MixOf(nil))
}

func TestConfigEnabled(t *testing.T) {
	var c Config
	assert.False(t, c.Enabled("prometheus"))
	c.Sinks = append(c.Sinks, factory.ModuleConfig{Type: "prometheus"})
	assert.True(t, c.Enabled("prometheus"))
}
