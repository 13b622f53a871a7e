package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"skytrak-service/internal/domain/repository"
	"skytrak-service/pkg/logger"
)

// SessionGuard answers whether a token's session is still active. Only
// positive answers are cached, and Forget drops them on revoke.
type SessionGuard struct {
	sessionRepo repository.SessionRepository
	cache       *expirable.LRU[string, bool]
	logger      logger.Logger
}

// NewSessionGuard creates a new session guard
func NewSessionGuard(sessionRepo repository.SessionRepository, size int, ttl time.Duration, logger logger.Logger) *SessionGuard {
	return &SessionGuard{
		sessionRepo: sessionRepo,
		cache:       expirable.NewLRU[string, bool](size, nil, ttl),
		logger:      logger,
	}
}

// IsActive reports whether the session jti of userID has not been revoked.
func (g *SessionGuard) IsActive(ctx context.Context, userID uint, jti string) (bool, error) {
	key := sessionKey(userID, jti)
	if _, ok := g.cache.Get(key); ok {
		return true, nil
	}

	active, err := g.sessionRepo.IsActive(ctx, userID, jti)
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	if active {
		g.cache.Add(key, true)
	}
	return active, nil
}

// Forget evicts a session from the cache.
func (g *SessionGuard) Forget(userID uint, jti string) {
	g.cache.Remove(sessionKey(userID, jti))
}

func sessionKey(userID uint, jti string) string {
	return fmt.Sprintf("%d:%s", userID, jti)
}
