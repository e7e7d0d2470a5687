package model

import (
	"fmt"
	"strings"
)

// FleetClass identifies one of the two vehicle families of the fleet.
type FleetClass int

const (
	// Shuttle is a PRM shuttle ("navette").
	Shuttle FleetClass = iota
	// Lift is an ambulift.
	Lift
)

// String returns the stable key used in configuration and JSON.
func (c FleetClass) String() string {
	switch c {
	case Shuttle:
		return "shuttle"
	case Lift:
		return "lift"
	default:
		return "unknown"
	}
}

// Label returns the display name used in exported tables.
func (c FleetClass) Label() string {
	switch c {
	case Shuttle:
		return "navette"
	case Lift:
		return "ambulift"
	default:
		return "inconnu"
	}
}

// IDPrefix returns the prefix of generated vehicle identifiers.
func (c FleetClass) IDPrefix() string {
	switch c {
	case Shuttle:
		return "Nav"
	case Lift:
		return "Help"
	default:
		return "Veh"
	}
}

func (c FleetClass) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *FleetClass) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "shuttle", "navette":
		*c = Shuttle
	case "lift", "ambulift":
		*c = Lift
	default:
		return fmt.Errorf("unknown fleet class %q", string(b))
	}
	return nil
}

// Vehicle is a fleet member. It carries no state beyond its identity.
type Vehicle struct {
	ID    string     `json:"id"`
	Class FleetClass `json:"class"`
}

// NewFleet returns count vehicles of the given class numbered from 1,
// e.g. Nav1..NavN for shuttles.
func NewFleet(class FleetClass, count int) []Vehicle {
	if count <= 0 {
		return nil
	}
	out := make([]Vehicle, count)
	for i := range out {
		out[i] = Vehicle{ID: fmt.Sprintf("%s%d", class.IDPrefix(), i+1), Class: class}
	}
	return out
}
