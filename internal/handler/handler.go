package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/trinextgen/backoffice/internal/service"
	"github.com/trinextgen/backoffice/pkg/crm"
)

// Pinger is the slice of the database pool the health check needs.
// Satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies shared across endpoint handlers.
type Handler struct {
	db          Pinger
	frontendURL string
}

// New creates the shared Handler.
func New(db Pinger, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

// CORS allows the admin frontend origin with credentials.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health handles GET /health, pinging the session store.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := h.db.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "unhealthy",
			Message: err.Error(),
		})
		return
	}
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:  "ok",
		Message: "TriNextGen back office",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func invalidRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error":  "invalid_request",
		"detail": err.Error(),
	})
}

// upstreamError maps a failed CRM call onto a response. Auth and not-found
// rejections pass through with the upstream status; everything else is a
// gateway failure.
func upstreamError(w http.ResponseWriter, err error) {
	var apiErr *crm.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			slog.Warn("upstream rejected request", "status", apiErr.StatusCode, "body", apiErr.Body)
			writeError(w, apiErr.StatusCode, "upstream_rejected")
			return
		}
		slog.Error("upstream call failed", "status", apiErr.StatusCode, "body", apiErr.Body)
		writeError(w, http.StatusBadGateway, "upstream_error")
		return
	}
	if errors.Is(err, service.ErrInvalid) {
		invalidRequest(w, err)
		return
	}
	slog.Error("upstream unreachable", "error", err)
	writeError(w, http.StatusBadGateway, "upstream_unreachable")
}
