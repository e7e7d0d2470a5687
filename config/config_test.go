package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", `fleet:
  shuttles: 12
  lifts: 4
frequencies:
  full: 1
  interior: 3
  oneoff_pct: 25
finance:
  salary: 3000
  revenue_target: 5000
  investment: 24000
  amortization_months: 24
horizon:
  start_date: "2025-09-01"
  months: 6
durations:
  lift_full: 2.5
scheduler:
  daily_hours_cap: 8
metrics:
  sinks:
    - type: "log"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"shuttles", cfg.Fleet.Shuttles, 12},
		{"lifts", cfg.Fleet.Lifts, 4},
		{"full", cfg.Frequencies.Full, 1},
		{"interior", cfg.Frequencies.Interior, 3},
		{"oneoff_pct", cfg.Frequencies.OneOffPct, 25},
		{"salary", cfg.Finance.Salary, 3000.0},
		{"amortization_months", cfg.Finance.AmortizationMonths, 24},
		{"months", cfg.Horizon.Months, 6},
		{"lift_full", cfg.Durations.LiftFull, 2.5},
		{"shuttle_full default", cfg.Durations.ShuttleFull, 1.5},
		{"daily_hours_cap", cfg.Scheduler.DailyHoursCap, 8.0},
		{"workdays default", cfg.Scheduler.WorkdaysPerWeek, 5},
		{"agent default", cfg.Scheduler.AgentID, "Agent1"},
		{"sink", cfg.Metrics.Sinks[0].Type, "log"},
		{"log level default", cfg.Logging.Level, "info"},
		{"server default", cfg.Server.Addr, ":8080"},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
	start, err := cfg.Horizon.Start()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"fleet":{"shuttles":0,"lifts":3}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Fleet.Shuttles)
	assert.Equal(t, 3, cfg.Fleet.Lifts)
	assert.Equal(t, 2, cfg.Frequencies.Full)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CP_FLEET__LIFTS", "7")
	t.Setenv("CP_HORIZON__START_DATE", "2025-06-02")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Fleet.Lifts)
	assert.Equal(t, "2025-06-02", cfg.Horizon.StartDate)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "config.toml", "a = 1"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "fleet:\n  lifts: 500\nfinance:\n  salary: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fleet.lifts")
	assert.Contains(t, err.Error(), "finance.salary")

	_, err = Load(writeFile(t, "nan.yaml", "durations:\n  shuttle_full: .nan\n"))
	assert.ErrorContains(t, err, "shuttle_full")

	_, err = Load(writeFile(t, "cap.yaml", "scheduler:\n  daily_hours_cap: .inf\n"))
	assert.ErrorContains(t, err, "daily_hours_cap")

	_, err = Load(writeFile(t, "salary.yaml", "finance:\n  salary: .nan\n"))
	assert.ErrorContains(t, err, "finance.salary")

	_, err = Load(writeFile(t, "date.yaml", "horizon:\n  start_date: \"26/05/2025\"\n"))
	assert.ErrorContains(t, err, "horizon.start_date")
}

func TestValidateRanges(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Frequencies.OneOffPct = 101
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Finance.AmortizationMonths = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Durations.OneOff = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}
