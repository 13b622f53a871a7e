package repository

import (
	"context"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSecurityRepository implements the SecurityRepository interface
type GormSecurityRepository struct {
	db *gorm.DB
}

// NewGormSecurityRepository creates a new GORM security settings repository
func NewGormSecurityRepository(db *gorm.DB) repository.SecurityRepository {
	return &GormSecurityRepository{
		db: db,
	}
}

// UsuarioSeguranca GORM model for database mapping
type UsuarioSeguranca struct {
	UsuarioID        uint      `gorm:"column:usuario_id;primaryKey;autoIncrement:false"`
	TwoFactorEnabled bool      `gorm:"column:two_factor_enabled;not null"`
	AtualizadoEm     time.Time `gorm:"column:atualizado_em;autoUpdateTime"`
}

// TableName overrides the default table name
func (UsuarioSeguranca) TableName() string {
	return "usuario_seguranca"
}

// Get returns the user's security settings
func (r *GormSecurityRepository) Get(ctx context.Context, userID uint) (*entity.SecuritySettings, error) {
	var model UsuarioSeguranca
	if err := r.db.WithContext(ctx).Where("usuario_id = ?", userID).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	return &entity.SecuritySettings{
		UsuarioID:        model.UsuarioID,
		TwoFactorEnabled: model.TwoFactorEnabled,
		AtualizadoEm:     model.AtualizadoEm,
	}, nil
}

// SetTwoFactor upserts the 2FA flag
func (r *GormSecurityRepository) SetTwoFactor(ctx context.Context, userID uint, enabled bool) error {
	model := UsuarioSeguranca{
		UsuarioID:        userID,
		TwoFactorEnabled: enabled,
		AtualizadoEm:     time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "usuario_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"two_factor_enabled", "atualizado_em"}),
	}).Create(&model).Error
}
