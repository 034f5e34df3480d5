package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trinextgen/backoffice/internal/model"
	"github.com/trinextgen/backoffice/internal/service"
	"github.com/trinextgen/backoffice/pkg/auth"
)

// ContactHandler serves the contact-form inbox.
type ContactHandler struct {
	svc service.ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// List handles GET /api/admin/contacts?status=&limit=&offset= (auth required).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	cred, ok := auth.CredentialFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	opts := model.ContactListOptions{Status: r.URL.Query().Get("status")}
	if v := r.URL.Query().Get("limit"); v != "" {
		opts.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		opts.Offset, _ = strconv.Atoi(v)
	}

	msgs, err := h.svc.List(r.Context(), cred.APIToken, opts)
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contacts": msgs})
}

type contactStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/contacts/{id}/status (auth required).
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	cred, ok := auth.CredentialFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id := chi.URLParam(r, "id")

	var req contactStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), cred.APIToken, id, req.Status); err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
