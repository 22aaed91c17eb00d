package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Analytics.ColdDealDays != 14 || cfg.Analytics.UnhandledLeadHours != 48 {
		t.Errorf("expected default thresholds 14d/48h, got %+v", cfg.Analytics)
	}
	if cfg.Analytics.ForecastShortDays != 30 || cfg.Analytics.ForecastMidDays != 60 || cfg.Analytics.ForecastLongDays != 90 {
		t.Errorf("expected default horizons 30/60/90, got %+v", cfg.Analytics)
	}
	if cfg.Analytics.ColdDealAge() != 14*24*time.Hour {
		t.Errorf("unexpected cold deal age %v", cfg.Analytics.ColdDealAge())
	}
	if cfg.Analytics.UnhandledLeadAge() != 48*time.Hour {
		t.Errorf("unexpected unhandled lead age %v", cfg.Analytics.UnhandledLeadAge())
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "server:\n  port: 9000\nanalytics:\n  cold_deal_days: 21\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("UNHANDLED_LEAD_HOURS", "24")
	t.Setenv("FORECAST_LONG", "120")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000 from file, got %d", cfg.Server.Port)
	}
	if cfg.Analytics.ColdDealDays != 21 {
		t.Errorf("expected cold_deal_days 21 from file, got %d", cfg.Analytics.ColdDealDays)
	}
	if cfg.Analytics.UnhandledLeadHours != 24 {
		t.Errorf("expected env to override unhandled hours, got %d", cfg.Analytics.UnhandledLeadHours)
	}
	if cfg.Analytics.ForecastLongDays != 120 {
		t.Errorf("expected env to override long horizon, got %d", cfg.Analytics.ForecastLongDays)
	}
	// Values absent from file and env keep defaults.
	if cfg.Analytics.ForecastShortDays != 30 {
		t.Errorf("expected short horizon default 30, got %d", cfg.Analytics.ForecastShortDays)
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for broken yaml")
	}
}
