package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trinextgen/backoffice/internal/model"
	"github.com/trinextgen/backoffice/internal/service"
	"github.com/trinextgen/backoffice/pkg/auth"
)

// ProjectHandler handles project mutations. Every successful mutation
// responds with a freshly loaded dashboard so the caller never has to apply
// the change locally.
type ProjectHandler struct {
	svc       service.ProjectService
	dashboard service.DashboardService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc service.ProjectService, dashboard service.DashboardService) *ProjectHandler {
	return &ProjectHandler{svc: svc, dashboard: dashboard}
}

// reloaded responds with the post-mutation dashboard for clientID.
func (h *ProjectHandler) reloaded(w http.ResponseWriter, r *http.Request, token, clientID string, status int) {
	d, err := h.dashboard.Load(r.Context(), token, clientID)
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, status, d)
}

// Create handles POST /api/admin/clients/{id}/projects (auth required).
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	cred, ok := auth.CredentialFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	clientID := chi.URLParam(r, "id")

	var p model.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	p.ClientID = clientID

	if err := h.svc.Create(r.Context(), cred.APIToken, clientID, &p); err != nil {
		upstreamError(w, err)
		return
	}
	h.reloaded(w, r, cred.APIToken, clientID, http.StatusCreated)
}

// Update handles PUT /api/admin/projects/{id} (auth required). The payload
// must carry the full project including its clientId, requirements and files;
// the upstream replaces the record wholesale.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	cred, ok := auth.CredentialFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var p model.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	p.ID = chi.URLParam(r, "id")
	if p.ClientID == "" {
		writeError(w, http.StatusBadRequest, "missing_client_id")
		return
	}

	if err := h.svc.Update(r.Context(), cred.APIToken, &p); err != nil {
		upstreamError(w, err)
		return
	}
	h.reloaded(w, r, cred.APIToken, p.ClientID, http.StatusOK)
}

// Delete handles DELETE /api/admin/projects/{id}?client_id=... (auth
// required). The delete is applied only after the upstream confirms it; a
// rejected call leaves everything as it was.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cred, ok := auth.CredentialFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	projectID := chi.URLParam(r, "id")
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "missing_client_id")
		return
	}

	if err := h.svc.Delete(r.Context(), cred.APIToken, projectID); err != nil {
		upstreamError(w, err)
		return
	}
	h.reloaded(w, r, cred.APIToken, clientID, http.StatusOK)
}
