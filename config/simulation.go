package config

import (
	"fmt"
	"time"
)

// DateLayout is the format of horizon.start_date.
const DateLayout = "2006-01-02"

// FleetConfig holds the number of vehicles per class.
type FleetConfig struct {
	Shuttles int `json:"shuttles"`
	Lifts    int `json:"lifts"`
}

func (c FleetConfig) Validate() error {
	if err := inRange("fleet.shuttles", c.Shuttles, 0, 100); err != nil {
		return err
	}
	return inRange("fleet.lifts", c.Lifts, 0, 100)
}

// FrequencyConfig holds monthly cleaning frequencies per vehicle.
type FrequencyConfig struct {
	Full      int `json:"full"`
	Interior  int `json:"interior"`
	OneOffPct int `json:"oneoff_pct"`
}

func (c FrequencyConfig) Validate() error {
	if err := inRange("frequencies.full", c.Full, 0, 10); err != nil {
		return err
	}
	if err := inRange("frequencies.interior", c.Interior, 0, 10); err != nil {
		return err
	}
	return inRange("frequencies.oneoff_pct", c.OneOffPct, 0, 100)
}

// FinanceConfig holds monthly costs and targets in euros.
type FinanceConfig struct {
	Salary             float64 `json:"salary"`
	RevenueTarget      float64 `json:"revenue_target"`
	Investment         float64 `json:"investment"`
	AmortizationMonths int     `json:"amortization_months"`
}

func (c FinanceConfig) Validate() error {
	switch {
	case !(c.Salary >= 2000 && c.Salary <= 5000):
		return fmt.Errorf("finance.salary must be in [2000,5000], got %v", c.Salary)
	case !(c.RevenueTarget >= 1000 && c.RevenueTarget <= 10000):
		return fmt.Errorf("finance.revenue_target must be in [1000,10000], got %v", c.RevenueTarget)
	case !(c.Investment >= 0 && c.Investment <= 50000):
		return fmt.Errorf("finance.investment must be in [0,50000], got %v", c.Investment)
	}
	return inRange("finance.amortization_months", c.AmortizationMonths, 1, 36)
}

// HorizonConfig defines the planning period.
type HorizonConfig struct {
	StartDate string `json:"start_date"`
	Months    int    `json:"months"`
}

// Start parses StartDate as a UTC calendar date.
func (c HorizonConfig) Start() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, c.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("horizon.start_date: %w", err)
	}
	return t, nil
}

func (c HorizonConfig) Validate() error {
	if _, err := c.Start(); err != nil {
		return err
	}
	return inRange("horizon.months", c.Months, 1, 24)
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `json:"addr"`
}

func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

func inRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be in [%d,%d], got %d", name, lo, hi, v)
	}
	return nil
}
