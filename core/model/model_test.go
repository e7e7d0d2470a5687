package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFleetIDs(t *testing.T) {
	shuttles := NewFleet(Shuttle, 3)
	require.Len(t, shuttles, 3)
	assert.Equal(t, "Nav1", shuttles[0].ID)
	assert.Equal(t, "Nav3", shuttles[2].ID)
	lifts := NewFleet(Lift, 2)
	assert.Equal(t, "Help2", lifts[1].ID)
	assert.Equal(t, Lift, lifts[1].Class)
	assert.Nil(t, NewFleet(Lift, 0))
}

func TestDurationTableFor(t *testing.T) {
	d := DefaultDurations()
	assert.Equal(t, 2.0, d.For(Lift, FullClean))
	assert.Equal(t, 1.0, d.For(Lift, InteriorOnly))
	assert.Equal(t, 1.5, d.For(Shuttle, FullClean))
	assert.Equal(t, 0.75, d.For(Shuttle, InteriorOnly))
	assert.Equal(t, 1.0, d.For(Shuttle, OneOff))
	assert.Equal(t, 1.0, d.For(Lift, OneOff))
}

func TestDurationTableValidate(t *testing.T) {
	assert.NoError(t, DefaultDurations().Validate())
	d := DefaultDurations()
	d.LiftFull = 0
	d.OneOff = -1
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lift_full")
	assert.Contains(t, err.Error(), "oneoff")
}

func TestDurationTableValidateNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		d := DefaultDurations()
		d.ShuttleFull = v
		assert.ErrorContains(t, d.Validate(), "shuttle_full", "value %v", v)
	}
}

func TestKindJSON(t *testing.T) {
	b, err := json.Marshal(Task{Vehicle: Vehicle{ID: "Nav1", Class: Shuttle}, Kind: InteriorOnly, Hours: 0.75})
	require.NoError(t, err)
	assert.JSONEq(t, `{"vehicle":{"id":"Nav1","class":"shuttle"},"kind":"interior","hours":0.75}`, string(b))

	var task Task
	require.NoError(t, json.Unmarshal(b, &task))
	assert.Equal(t, InteriorOnly, task.Kind)
	assert.Equal(t, Shuttle, task.Vehicle.Class)

	var k ServiceKind
	assert.Error(t, k.UnmarshalText([]byte("wash")))
}
