package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/trinextgen/backoffice/internal/model"
	"github.com/trinextgen/backoffice/internal/repository"
	"github.com/trinextgen/backoffice/pkg/auth"
)

// SessionService manages DB-backed back-office sessions. Each session binds
// an opaque cookie token to the upstream CRM API token supplied at login.
// Implements auth.SessionResolver.
type SessionService struct {
	repo repository.SessionRepository
}

// NewSessionService creates a SessionService.
func NewSessionService(repo repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// CreateSession generates a fresh token, stores the session, and returns it.
func (s *SessionService) CreateSession(ctx context.Context, apiToken, userEmail string) (*model.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &model.Session{
		Token:     token,
		APIToken:  apiToken,
		UserEmail: userEmail,
		CreatedAt: now,
		ExpiresAt: now.Add(auth.SessionDuration),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	slog.Info("session created", "email", userEmail, "expiresAt", session.ExpiresAt)
	return session, nil
}

// Resolve validates a session token and returns the credential bound to it.
// Expired sessions are deleted on sight. Implements auth.SessionResolver.
func (s *SessionService) Resolve(ctx context.Context, token string) (auth.Credential, error) {
	session, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return auth.Credential{}, errors.New("invalid_session")
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.repo.DeleteByToken(ctx, token)
		return auth.Credential{}, errors.New("session_expired")
	}
	return auth.Credential{
		SessionToken: session.Token,
		APIToken:     session.APIToken,
		UserEmail:    session.UserEmail,
	}, nil
}

// DeleteSession removes a session (logout).
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	return s.repo.DeleteByToken(ctx, token)
}

// PurgeExpired deletes all expired sessions and returns how many went.
func (s *SessionService) PurgeExpired(ctx context.Context) (int, error) {
	return s.repo.DeleteExpired(ctx)
}
