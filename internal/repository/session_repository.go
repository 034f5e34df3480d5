package repository

import (
	"context"

	"github.com/trinextgen/backoffice/internal/model"
)

// SessionRepository persists back-office login sessions. Sessions are the
// only local state this service keeps; everything else lives upstream.
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	FindByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int, error)
}
