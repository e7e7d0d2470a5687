package scheduler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default planning constraints.
const (
	DefaultDailyHoursCap   = 7.0
	DefaultWorkdaysPerWeek = 5
	DefaultMaxWorkingDays  = 1000
	DefaultAgentID         = "Agent1"
)

// ErrInvalidConfig is wrapped by SchedulerConfig.Validate failures.
var ErrInvalidConfig = errors.New("invalid scheduler config")

// SchedulerConfig defines planning parameters loaded from configuration.
type SchedulerConfig struct {
	DailyHoursCap   float64 `json:"daily_hours_cap" yaml:"daily_hours_cap"`
	WorkdaysPerWeek int     `json:"workdays_per_week" yaml:"workdays_per_week"`
	// MaxWorkingDays bounds the number of candidate working days scanned.
	MaxWorkingDays int    `json:"max_working_days" yaml:"max_working_days"`
	AgentID        string `json:"agent_id" yaml:"agent_id"`
}

// DefaultConfig returns a 7h day, 5 day week, single agent configuration.
func DefaultConfig() SchedulerConfig {
	c := SchedulerConfig{}
	c.SetDefaults()
	return c
}

// SetDefaults fills zero values.
func (c *SchedulerConfig) SetDefaults() {
	if c.DailyHoursCap == 0 {
		c.DailyHoursCap = DefaultDailyHoursCap
	}
	if c.WorkdaysPerWeek == 0 {
		c.WorkdaysPerWeek = DefaultWorkdaysPerWeek
	}
	if c.MaxWorkingDays == 0 {
		c.MaxWorkingDays = DefaultMaxWorkingDays
	}
	if c.AgentID == "" {
		c.AgentID = DefaultAgentID
	}
}

// Validate checks the configuration bounds.
func (c SchedulerConfig) Validate() error {
	switch {
	case !(c.DailyHoursCap > 0 && c.DailyHoursCap <= 24):
		return fmt.Errorf("%w: daily_hours_cap must be in (0,24], got %v", ErrInvalidConfig, c.DailyHoursCap)
	case c.WorkdaysPerWeek < 1 || c.WorkdaysPerWeek > 7:
		return fmt.Errorf("%w: workdays_per_week must be in [1,7], got %d", ErrInvalidConfig, c.WorkdaysPerWeek)
	case c.MaxWorkingDays < 1:
		return fmt.Errorf("%w: max_working_days must be >= 1, got %d", ErrInvalidConfig, c.MaxWorkingDays)
	case strings.TrimSpace(c.AgentID) == "":
		return fmt.Errorf("%w: agent_id is required", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig loads SchedulerConfig from a JSON or YAML file.
// Missing fields take their default value.
func LoadConfig(path string) (SchedulerConfig, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json":
	default:
		return SchedulerConfig{}, fmt.Errorf("unsupported config format: %s", ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return SchedulerConfig{}, err
	}
	defer func() { _ = f.Close() }()
	return DecodeConfig(f, strings.TrimPrefix(ext, "."))
}

// DecodeConfig reads from r to decode a SchedulerConfig.
func DecodeConfig(r io.Reader, format string) (SchedulerConfig, error) {
	var cfg SchedulerConfig
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, err
		}
	case "json":
		if err := json.NewDecoder(r).Decode(&cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported format: %s", format)
	}
	cfg.SetDefaults()
	return cfg, cfg.Validate()
}
