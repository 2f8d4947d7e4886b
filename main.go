// ABOUTME: Entry point for the panel optimizer HTTP service
// ABOUTME: Wires config, catalog, cache, optimizer, routes, and metrics

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/panel-tools/fireplan/cache"
	"github.com/panel-tools/fireplan/catalog"
	"github.com/panel-tools/fireplan/config"
	"github.com/panel-tools/fireplan/handlers"
	"github.com/panel-tools/fireplan/logger"
	"github.com/panel-tools/fireplan/middleware"
	"github.com/panel-tools/fireplan/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration error", "error", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	responseCache := cache.New(time.Duration(cfg.CacheTTL) * time.Second)
	optimizer := services.NewOptimizer(cat, cfg.MaxCabinets)
	h := handlers.NewHandler(cfg, responseCache, cat, optimizer)

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		mux.HandleFunc(route.Method+" "+route.Path,
			middleware.LogRequest(middleware.Measure(route.Handler)))
	}
	mux.Handle("GET /metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	slog.Info("Starting fireplan service",
		"addr", addr,
		"catalog_components", cat.Len(),
		"default_time_limit", cfg.DefaultTimeLimit,
		"max_cabinets", cfg.MaxCabinets,
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
