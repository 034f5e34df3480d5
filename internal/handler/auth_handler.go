package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/trinextgen/backoffice/internal/service"
	"github.com/trinextgen/backoffice/pkg/auth"
)

// AuthHandler manages back-office login sessions. Login exchanges an
// upstream CRM API token for a signed session cookie; the API token never
// reaches the browser again after that.
type AuthHandler struct {
	sessions *service.SessionService
	secret   []byte
	secure   bool
}

// NewAuthHandler creates an AuthHandler. secure controls the cookie's Secure
// flag and should be true everywhere except local development.
func NewAuthHandler(sessions *service.SessionService, secret []byte, secure bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, secret: secret, secure: secure}
}

type createSessionRequest struct {
	APIToken  string `json:"apiToken"`
	UserEmail string `json:"userEmail"`
}

// Create handles POST /api/auth/session (login).
func (h *AuthHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.APIToken == "" {
		writeError(w, http.StatusBadRequest, "missing_api_token")
		return
	}

	session, err := h.sessions.CreateSession(r.Context(), req.APIToken, req.UserEmail)
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    auth.SignToken(session.Token, h.secret),
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusCreated, map[string]any{
		"email":     session.UserEmail,
		"expiresAt": session.ExpiresAt,
	})
}

// Destroy handles DELETE /api/auth/session (logout).
func (h *AuthHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil {
		if token, err := auth.VerifySignedToken(cookie.Value, h.secret); err == nil {
			if err := h.sessions.DeleteSession(r.Context(), token); err != nil {
				slog.Error("session delete failed", "error", err)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
