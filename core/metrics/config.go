package metrics

import "github.com/kilianp07/cleanplan/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}

// Enabled reports whether a sink of the given type is configured.
func (c Config) Enabled(typ string) bool {
	for _, s := range c.Sinks {
		if s.Type == typ {
			return true
		}
	}
	return false
}
