package config

import (
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "SERVER_ALLOWED_ORIGINS", "DASHBOARD_TREND_MONTHS", "CACHE_ENABLED", "SEED_DATA"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "5000" {
		t.Errorf("port: want 5000, got %q", cfg.Server.Port)
	}
	if cfg.Dashboard.TrendMonths != 9 {
		t.Errorf("trend months: want 9, got %d", cfg.Dashboard.TrendMonths)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should be disabled by default")
	}
	if !reflect.DeepEqual(cfg.Server.AllowedOrigins, []string{"*"}) {
		t.Errorf("origins: want [*], got %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://localhost:3000, https://bi.example.com")
	t.Setenv("DASHBOARD_TREND_MONTHS", "12")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("SEED_DATA", "false")

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("port: want 8080, got %q", cfg.Server.Port)
	}
	want := []string{"http://localhost:3000", "https://bi.example.com"}
	if !reflect.DeepEqual(cfg.Server.AllowedOrigins, want) {
		t.Errorf("origins: want %v, got %v", want, cfg.Server.AllowedOrigins)
	}
	if cfg.Dashboard.TrendMonths != 12 || !cfg.Cache.Enabled || cfg.App.SeedData {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestSplitList(t *testing.T) {
	if got := splitList(" , "); !reflect.DeepEqual(got, []string{"*"}) {
		t.Errorf("blank list: want [*], got %v", got)
	}
}
