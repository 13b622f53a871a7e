package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormUserRepository implements the UserRepository interface
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) repository.UserRepository {
	return &GormUserRepository{
		db: db,
	}
}

// Usuario GORM model for database mapping
type Usuario struct {
	ID        uint      `gorm:"primaryKey"`
	Nome      string    `gorm:"column:nome;size:120;not null"`
	Email     string    `gorm:"column:email;size:160;uniqueIndex;not null"`
	SenhaHash string    `gorm:"column:senha_hash;size:255;not null"`
	Perfil    string    `gorm:"column:perfil;size:20;not null;default:OPERADOR"`
	Companhia *string   `gorm:"column:companhia;size:120"`
	CriadoEm  time.Time `gorm:"column:criado_em;autoCreateTime"`
}

// TableName overrides the default table name
func (Usuario) TableName() string {
	return "usuario"
}

func (u Usuario) toEntity() *entity.User {
	return &entity.User{
		ID:           u.ID,
		Nome:         u.Nome,
		Email:        u.Email,
		PasswordHash: u.SenhaHash,
		Perfil:       u.Perfil,
		Companhia:    u.Companhia,
		CriadoEm:     u.CriadoEm,
	}
}

// Create inserts a new user
func (r *GormUserRepository) Create(ctx context.Context, user *entity.User) error {
	model := Usuario{
		Nome:      user.Nome,
		Email:     user.Email,
		SenhaHash: user.PasswordHash,
		Perfil:    user.Perfil,
		Companhia: user.Companhia,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email %s: %w", user.Email, entity.ErrDuplicate)
		}
		return err
	}

	user.ID = model.ID
	user.CriadoEm = model.CriadoEm
	return nil
}

// GetByID finds a user by id
func (r *GormUserRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByEmail finds a user by e-mail
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *GormUserRepository) first(ctx context.Context, query string, args ...interface{}) (*entity.User, error) {
	var model Usuario
	err := r.db.WithContext(ctx).Where(query, args...).First(&model).Error
	if err != nil {
		return nil, translate(err)
	}
	return model.toEntity(), nil
}

// UpdatePassword stores a new password hash
func (r *GormUserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&Usuario{}).Where("id = ?", id).Update("senha_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// translate maps gorm sentinels to domain ones
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}
