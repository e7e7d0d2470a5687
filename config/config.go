package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/cleanplan/core/metrics"
	"github.com/kilianp07/cleanplan/core/model"
	"github.com/kilianp07/cleanplan/core/scheduler"
)

// EnvPrefix prefixes environment overrides, e.g. CP_FLEET__LIFTS=10.
const EnvPrefix = "CP_"

type Config struct {
	Fleet       FleetConfig               `json:"fleet"`
	Frequencies FrequencyConfig           `json:"frequencies"`
	Finance     FinanceConfig             `json:"finance"`
	Horizon     HorizonConfig             `json:"horizon"`
	Durations   model.DurationTable       `json:"durations"`
	Scheduler   scheduler.SchedulerConfig `json:"scheduler"`
	Metrics     metrics.Config            `json:"metrics"`
	Logging     LoggingConfig             `json:"logging"`
	Server      ServerConfig              `json:"server"`
}

// Default returns the reference simulation: 30 shuttles, 20 ambulifts,
// 2 full and 4 interior cleans per vehicle and month over 3 months.
func Default() Config {
	cfg := Config{
		Fleet:       FleetConfig{Shuttles: 30, Lifts: 20},
		Frequencies: FrequencyConfig{Full: 2, Interior: 4, OneOffPct: 10},
		Finance: FinanceConfig{
			Salary:             2800,
			RevenueTarget:      3800,
			Investment:         12000,
			AmortizationMonths: 12,
		},
		Horizon:   HorizonConfig{StartDate: "2025-05-26", Months: 3},
		Durations: model.DefaultDurations(),
		Scheduler: scheduler.DefaultConfig(),
	}
	cfg.SetDefaults()
	return cfg
}

// Load reads path (YAML or JSON) on top of Default, then applies CP_
// environment overrides. An empty path only applies the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies section defaults.
func (c *Config) SetDefaults() {
	c.Scheduler.SetDefaults()
	c.Logging.SetDefaults()
	c.Server.SetDefaults()
}

// Validate checks every section and reports all failures at once.
func (c Config) Validate() error {
	return errors.Join(
		c.Fleet.Validate(),
		c.Frequencies.Validate(),
		c.Finance.Validate(),
		c.Horizon.Validate(),
		c.Durations.Validate(),
		c.Scheduler.Validate(),
		c.Logging.Validate(),
	)
}
