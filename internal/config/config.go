package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the service settings. Every value has a default, a
// missing config file is not an error, and environment variables win
// over the file.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

// AnalyticsConfig holds the triage thresholds and forecast horizons.
type AnalyticsConfig struct {
	ColdDealDays       int `yaml:"cold_deal_days"`
	UnhandledLeadHours int `yaml:"unhandled_lead_hours"`
	ForecastShortDays  int `yaml:"forecast_short_days"`
	ForecastMidDays    int `yaml:"forecast_mid_days"`
	ForecastLongDays   int `yaml:"forecast_long_days"`
}

// ColdDealAge is the no-contact age past which an open deal is cold.
func (a AnalyticsConfig) ColdDealAge() time.Duration {
	return time.Duration(a.ColdDealDays) * 24 * time.Hour
}

// UnhandledLeadAge is the age past which an untouched lead is flagged.
func (a AnalyticsConfig) UnhandledLeadAge() time.Duration {
	return time.Duration(a.UnhandledLeadHours) * time.Hour
}

// Default returns the built-in settings: port 8080, cold deals after
// 14 days, unhandled leads after 48 hours, 30/60/90 day horizons.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Analytics = AnalyticsConfig{
		ColdDealDays:       14,
		UnhandledLeadHours: 48,
		ForecastShortDays:  30,
		ForecastMidDays:    60,
		ForecastLongDays:   90,
	}
	return cfg
}

// Load reads the YAML file at path when it exists, then applies
// environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := Default()
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrideInt("PORT", &cfg.Server.Port)
	overrideInt("COLD_DEAL_DAYS", &cfg.Analytics.ColdDealDays)
	overrideInt("UNHANDLED_LEAD_HOURS", &cfg.Analytics.UnhandledLeadHours)
	overrideInt("FORECAST_SHORT", &cfg.Analytics.ForecastShortDays)
	overrideInt("FORECAST_MID", &cfg.Analytics.ForecastMidDays)
	overrideInt("FORECAST_LONG", &cfg.Analytics.ForecastLongDays)
}

func overrideInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
