// ABOUTME: Configuration loader for the optimizer service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port     string
	CacheTTL int // seconds, for optimize response caching

	// Solver
	DefaultTimeLimit time.Duration // per-panel solve budget when the request omits one
	MaxTimeLimit     time.Duration // upper bound a request may ask for
	MaxCabinets      int           // cabinets in the default frame (1-8)
	MaxBatchPanels   int           // panels accepted in one batch request
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		CacheTTL:         getEnvInt("CACHE_TTL", 300),
		DefaultTimeLimit: time.Duration(getEnvInt("SOLVE_TIME_LIMIT_SECONDS", 10)) * time.Second,
		MaxTimeLimit:     time.Duration(getEnvInt("SOLVE_MAX_TIME_LIMIT_SECONDS", 120)) * time.Second,
		MaxCabinets:      getEnvInt("MAX_CABINETS", 2),
		MaxBatchPanels:   getEnvInt("MAX_BATCH_PANELS", 16),
	}

	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL must be >= 0, got %d", cfg.CacheTTL)
	}
	if cfg.DefaultTimeLimit <= 0 {
		return nil, fmt.Errorf("SOLVE_TIME_LIMIT_SECONDS must be positive, got %s", cfg.DefaultTimeLimit)
	}
	if cfg.DefaultTimeLimit > cfg.MaxTimeLimit {
		return nil, fmt.Errorf("SOLVE_TIME_LIMIT_SECONDS (%s) exceeds SOLVE_MAX_TIME_LIMIT_SECONDS (%s)",
			cfg.DefaultTimeLimit, cfg.MaxTimeLimit)
	}
	if cfg.MaxCabinets < 1 || cfg.MaxCabinets > 8 {
		return nil, fmt.Errorf("MAX_CABINETS must be between 1 and 8, got %d", cfg.MaxCabinets)
	}
	if cfg.MaxBatchPanels < 1 || cfg.MaxBatchPanels > 256 {
		return nil, fmt.Errorf("MAX_BATCH_PANELS must be between 1 and 256, got %d", cfg.MaxBatchPanels)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
