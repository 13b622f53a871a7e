package repository

import (
	"context"

	"skytrak-service/internal/domain/entity"
)

// UserRepository defines the interface for user account operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// SecurityRepository defines the interface for per-user security settings
type SecurityRepository interface {
	Get(ctx context.Context, userID uint) (*entity.SecuritySettings, error)
	SetTwoFactor(ctx context.Context, userID uint, enabled bool) error
}
