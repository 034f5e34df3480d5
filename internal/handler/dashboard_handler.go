package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trinextgen/backoffice/internal/service"
	"github.com/trinextgen/backoffice/pkg/auth"
)

// DashboardHandler serves the derived per-client view.
type DashboardHandler struct {
	svc service.DashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get handles GET /api/admin/clients/{id}/dashboard (auth required).
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	cred, ok := auth.CredentialFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "missing_client_id")
		return
	}

	d, err := h.svc.Load(r.Context(), cred.APIToken, clientID)
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
