package repository

import (
	"context"

	"skytrak-service/internal/domain/entity"
)

// SessionRepository defines the interface for login session operations
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	IsActive(ctx context.Context, userID uint, jti string) (bool, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]*entity.Session, error)
	// Revoke deactivates the session and returns its jti; entity.ErrNotFound
	// when the session does not belong to the user.
	Revoke(ctx context.Context, userID, sessionID uint) (string, error)
}
