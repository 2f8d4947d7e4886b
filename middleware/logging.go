// ABOUTME: HTTP request logging middleware with correlation IDs.
// ABOUTME: Logs method, path, status, latency, and panel count on solves.

package middleware

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// LogRequest logs HTTP requests with timing and correlation ID. Optimize
// requests additionally log how many panels the batch carries.
func LogRequest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()

		w.Header().Set("X-Request-ID", requestID)

		attrs := []any{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		}
		if n, ok := peekPanelCount(r); ok {
			attrs = append(attrs, "panels", n)
		}
		slog.Info("Request started", attrs...)

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(wrapped, r)

		slog.Info("Request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

// peekPanelCount reads the panel count off an optimize request body and
// restores the body for the handler.
func peekPanelCount(r *http.Request) (int, bool) {
	if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/optimize") || r.Body == nil {
		return 0, false
	}
	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return 0, false
	}

	var req struct {
		Panels map[string]json.RawMessage `json:"panels"`
	}
	if json.Unmarshal(body, &req) != nil {
		return 0, false
	}
	return len(req.Panels), true
}

// generateRequestID creates a short random hex ID.
func generateRequestID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
