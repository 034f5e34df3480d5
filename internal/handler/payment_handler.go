package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trinextgen/backoffice/internal/model"
	"github.com/trinextgen/backoffice/internal/service"
	"github.com/trinextgen/backoffice/pkg/auth"
)

// PaymentHandler handles payment recording.
type PaymentHandler struct {
	svc       service.PaymentService
	dashboard service.DashboardService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc service.PaymentService, dashboard service.DashboardService) *PaymentHandler {
	return &PaymentHandler{svc: svc, dashboard: dashboard}
}

// Create handles POST /api/admin/clients/{id}/payments (auth required).
// Responds with the reloaded dashboard on success.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	cred, ok := auth.CredentialFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	clientID := chi.URLParam(r, "id")

	var y model.Payment
	if err := json.NewDecoder(r.Body).Decode(&y); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := h.svc.Create(r.Context(), cred.APIToken, clientID, &y); err != nil {
		upstreamError(w, err)
		return
	}

	d, err := h.dashboard.Load(r.Context(), cred.APIToken, clientID)
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}
