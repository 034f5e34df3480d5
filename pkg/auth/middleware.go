package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const credentialKey contextKey = "crm_credential"

// Credential is what an authenticated request acts with: the session token
// and the upstream CRM bearer credential bound to it. Fetchers and mutators
// receive the APIToken explicitly; nothing reads ambient storage.
type Credential struct {
	SessionToken string
	APIToken     string
	UserEmail    string
}

// CredentialFromContext extracts the credential set by RequireSession.
func CredentialFromContext(ctx context.Context) (Credential, bool) {
	v, ok := ctx.Value(credentialKey).(Credential)
	return v, ok
}

// WithCredential sets the credential on a context (exported for tests).
func WithCredential(ctx context.Context, c Credential) context.Context {
	return context.WithValue(ctx, credentialKey, c)
}

// SessionResolver turns a verified session token into the credential it
// wraps. Implemented by service.SessionService.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (Credential, error)
}

// RequireSession verifies the session cookie signature, resolves the
// session, and injects the credential into the request context.
func RequireSession(secret []byte, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				unauthorized(w, "unauthorized")
				return
			}

			token, err := VerifySignedToken(cookie.Value, secret)
			if err != nil {
				unauthorized(w, "invalid_session")
				return
			}

			cred, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				unauthorized(w, "invalid_session")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCredential(r.Context(), cred)))
		})
	}
}

func unauthorized(w http.ResponseWriter, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
