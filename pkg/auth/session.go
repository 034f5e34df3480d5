// Package auth implements signed session cookies for the back office.
// The cookie carries an opaque session token plus an HMAC-SHA256 signature;
// a forged cookie is rejected before it ever reaches the session store.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

const sessionCookieName = "tng_backoffice_session"

// SessionDuration is how long a back-office login stays valid.
const SessionDuration = 7 * 24 * time.Hour

const minSecretLen = 32

// SessionCookieName returns the session cookie name.
func SessionCookieName() string {
	return sessionCookieName
}

// GenerateSessionToken returns a fresh 32-byte random token, hex encoded.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SignToken produces the cookie value for a session token.
func SignToken(token string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignedToken checks the signature and returns the embedded token.
func VerifySignedToken(signed string, secret []byte) (string, error) {
	parts := strings.SplitN(signed, ".", 2)
	if len(parts) != 2 {
		return "", errors.New("invalid token format")
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(parts[0]))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return "", errors.New("invalid signature")
	}
	return parts[0], nil
}

// SessionSecretBytes derives the signing key from a config string, padding
// short secrets to the 32-byte minimum.
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
