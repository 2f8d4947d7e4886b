// ABOUTME: HTTP handlers for the panel optimizer API
// ABOUTME: Provides health check, catalog listing, and batch optimize endpoints

package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/panel-tools/fireplan/cache"
	"github.com/panel-tools/fireplan/catalog"
	"github.com/panel-tools/fireplan/config"
	"github.com/panel-tools/fireplan/models"
	"github.com/panel-tools/fireplan/services"
)

// maxRequestBody bounds optimize request bodies.
const maxRequestBody = 1 << 20

type Handler struct {
	cfg       *config.Config
	cache     *cache.Cache
	catalog   *catalog.Catalog
	optimizer *services.Optimizer
}

func NewHandler(cfg *config.Config, c *cache.Cache, cat *catalog.Catalog, opt *services.Optimizer) *Handler {
	return &Handler{
		cfg:       cfg,
		cache:     c,
		catalog:   cat,
		optimizer: opt,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":             "ok",
		"catalog_components": h.catalog.Len(),
	})
}

// Catalog lists every component the optimizer can select.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"components": h.catalog.All(),
	})
}

// Optimize solves every panel in the request body concurrently. Identical
// requests within the cache TTL return the cached response; the optimum
// value is stable across re-solves, so serving it twice is sound.
func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeError(w, "reading request body", http.StatusBadRequest)
		return
	}

	var req models.OptimizeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}
	if len(req.Panels) == 0 {
		writeError(w, "request must contain at least one panel", http.StatusBadRequest)
		return
	}
	if len(req.Panels) > h.cfg.MaxBatchPanels {
		writeError(w, fmt.Sprintf("request holds %d panels, limit is %d", len(req.Panels), h.cfg.MaxBatchPanels),
			http.StatusBadRequest)
		return
	}

	timeLimit, err := h.timeLimit(req.TimeLimitSeconds)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := requestKey(body)
	if cached, ok := h.cache.Get(key); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	resp, err := h.optimizer.OptimizeBatch(r.Context(), req, timeLimit)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, catalog.ErrNotFound) {
			status = http.StatusInternalServerError
		}
		writeError(w, err.Error(), status)
		return
	}

	h.cache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

// timeLimit resolves the per-panel solve budget from the request, falling
// back to the service default and capping at the configured maximum.
func (h *Handler) timeLimit(seconds float64) (time.Duration, error) {
	if seconds < 0 {
		return 0, fmt.Errorf("time_limit_seconds must be positive, got %v", seconds)
	}
	if seconds == 0 {
		return h.cfg.DefaultTimeLimit, nil
	}
	limit := time.Duration(seconds * float64(time.Second))
	if limit > h.cfg.MaxTimeLimit {
		return 0, fmt.Errorf("time_limit_seconds exceeds the maximum of %v", h.cfg.MaxTimeLimit.Seconds())
	}
	return limit, nil
}

func requestKey(body []byte) string {
	sum := sha256.Sum256(body)
	return "optimize:" + hex.EncodeToString(sum[:])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
