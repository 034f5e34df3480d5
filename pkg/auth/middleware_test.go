package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubResolver struct {
	resolveFunc func(ctx context.Context, token string) (Credential, error)
}

func (s *stubResolver) Resolve(ctx context.Context, token string) (Credential, error) {
	if s.resolveFunc != nil {
		return s.resolveFunc(ctx, token)
	}
	return Credential{}, errors.New("no session")
}

func okHandler(got *Credential) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, ok := CredentialFromContext(r.Context()); ok {
			*got = c
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSession_NoCookieIs401(t *testing.T) {
	secret := SessionSecretBytes("secret")
	var got Credential
	h := RequireSession(secret, &stubResolver{})(okHandler(&got))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireSession_TamperedSignatureIs401(t *testing.T) {
	secret := SessionSecretBytes("secret")
	other := SessionSecretBytes("another-secret-entirely")
	var got Credential
	h := RequireSession(secret, &stubResolver{})(okHandler(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: SignToken("tok-1", other)})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for tampered cookie, got %d", rec.Code)
	}
}

func TestRequireSession_UnknownSessionIs401(t *testing.T) {
	secret := SessionSecretBytes("secret")
	resolver := &stubResolver{
		resolveFunc: func(_ context.Context, token string) (Credential, error) {
			return Credential{}, errors.New("invalid_session")
		},
	}
	var got Credential
	h := RequireSession(secret, resolver)(okHandler(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: SignToken("tok-1", secret)})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireSession_ValidCookieInjectsCredential(t *testing.T) {
	secret := SessionSecretBytes("secret")
	resolver := &stubResolver{
		resolveFunc: func(_ context.Context, token string) (Credential, error) {
			if token != "tok-1" {
				t.Errorf("resolver token: got %q", token)
			}
			return Credential{SessionToken: token, APIToken: "api-xyz", UserEmail: "ops@trinextgen.com"}, nil
		},
	}
	var got Credential
	h := RequireSession(secret, resolver)(okHandler(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: SignToken("tok-1", secret)})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.APIToken != "api-xyz" {
		t.Errorf("credential not injected, got %+v", got)
	}
}

func TestSignToken_RoundTrip(t *testing.T) {
	secret := SessionSecretBytes("secret")
	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("expected 64-char hex token, got %d chars", len(token))
	}

	out, err := VerifySignedToken(SignToken(token, secret), secret)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if out != token {
		t.Errorf("round trip mismatch: %q != %q", out, token)
	}
}

func TestVerifySignedToken_BadFormat(t *testing.T) {
	if _, err := VerifySignedToken("no-separator", SessionSecretBytes("secret")); err == nil {
		t.Error("expected error for malformed value")
	}
}
