// ABOUTME: Tests for environment-based configuration loading
// ABOUTME: Defaults, overrides, and range validation

package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.CacheTTL != 300 {
		t.Errorf("Expected default cache TTL 300, got %d", cfg.CacheTTL)
	}
	if cfg.DefaultTimeLimit != 10*time.Second {
		t.Errorf("Expected default time limit 10s, got %s", cfg.DefaultTimeLimit)
	}
	if cfg.MaxTimeLimit != 120*time.Second {
		t.Errorf("Expected max time limit 120s, got %s", cfg.MaxTimeLimit)
	}
	if cfg.MaxCabinets != 2 {
		t.Errorf("Expected default 2 cabinets, got %d", cfg.MaxCabinets)
	}
	if cfg.MaxBatchPanels != 16 {
		t.Errorf("Expected default 16 batch panels, got %d", cfg.MaxBatchPanels)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SOLVE_TIME_LIMIT_SECONDS", "30")
	t.Setenv("MAX_CABINETS", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.DefaultTimeLimit != 30*time.Second {
		t.Errorf("Expected time limit 30s, got %s", cfg.DefaultTimeLimit)
	}
	if cfg.MaxCabinets != 4 {
		t.Errorf("Expected 4 cabinets, got %d", cfg.MaxCabinets)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"negative cache ttl", "CACHE_TTL", "-1"},
		{"zero time limit", "SOLVE_TIME_LIMIT_SECONDS", "0"},
		{"default above max", "SOLVE_TIME_LIMIT_SECONDS", "500"},
		{"cabinets out of range", "MAX_CABINETS", "9"},
		{"zero batch panels", "MAX_BATCH_PANELS", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected validation error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("MAX_CABINETS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxCabinets != 2 {
		t.Errorf("Malformed value should fall back to the default, got %d", cfg.MaxCabinets)
	}
}
