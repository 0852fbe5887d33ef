package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port == "" {
		t.Error("expected a default port")
	}
	if cfg.Database.Path == "" {
		t.Error("expected a default database path")
	}
	if cfg.Report.DefaultCommissionPercent != 30.0 {
		t.Errorf("DefaultCommissionPercent = %v, want 30", cfg.Report.DefaultCommissionPercent)
	}
	if cfg.RateLimit.Burst <= 0 {
		t.Error("expected a positive rate limit burst")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DEFAULT_COMMISSION_PERCENT", "40")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.Report.DefaultCommissionPercent != 40.0 {
		t.Errorf("DefaultCommissionPercent = %v, want 40", cfg.Report.DefaultCommissionPercent)
	}
}
