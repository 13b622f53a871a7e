package repository

import (
	"context"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormSessionRepository implements the SessionRepository interface
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository
func NewGormSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &GormSessionRepository{
		db: db,
	}
}

// SessaoUsuario GORM model for database mapping
type SessaoUsuario struct {
	ID         uint       `gorm:"primaryKey"`
	UsuarioID  uint       `gorm:"column:usuario_id;index;not null"`
	JTI        string     `gorm:"column:jti;size:80;index;not null"`
	UserAgent  *string    `gorm:"column:user_agent;size:255"`
	IP         *string    `gorm:"column:ip;size:80"`
	Ativa      bool       `gorm:"column:ativa;not null;default:true"`
	CriadoEm   time.Time  `gorm:"column:criado_em;autoCreateTime"`
	RevogadaEm *time.Time `gorm:"column:revogada_em"`
}

// TableName overrides the default table name
func (SessaoUsuario) TableName() string {
	return "sessao_usuario"
}

func (s SessaoUsuario) toEntity() *entity.Session {
	return &entity.Session{
		ID:         s.ID,
		UsuarioID:  s.UsuarioID,
		JTI:        s.JTI,
		UserAgent:  s.UserAgent,
		IP:         s.IP,
		Ativa:      s.Ativa,
		CriadoEm:   s.CriadoEm,
		RevogadaEm: s.RevogadaEm,
	}
}

// Create inserts a new session
func (r *GormSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	model := SessaoUsuario{
		UsuarioID: session.UsuarioID,
		JTI:       session.JTI,
		UserAgent: session.UserAgent,
		IP:        session.IP,
		Ativa:     session.Ativa,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}

	session.ID = model.ID
	session.CriadoEm = model.CriadoEm
	return nil
}

// IsActive reports whether the session has not been revoked
func (r *GormSessionRepository) IsActive(ctx context.Context, userID uint, jti string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SessaoUsuario{}).
		Where("usuario_id = ? AND jti = ? AND ativa = ?", userID, jti, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser returns the most recent sessions first
func (r *GormSessionRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*entity.Session, error) {
	var models []SessaoUsuario
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("criado_em DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	sessions := make([]*entity.Session, 0, len(models))
	for _, m := range models {
		sessions = append(sessions, m.toEntity())
	}
	return sessions, nil
}

// Revoke deactivates one of the user's sessions and returns its jti
func (r *GormSessionRepository) Revoke(ctx context.Context, userID, sessionID uint) (string, error) {
	var model SessaoUsuario
	err := r.db.WithContext(ctx).Where("id = ? AND usuario_id = ?", sessionID, userID).First(&model).Error
	if err != nil {
		return "", translate(err)
	}

	now := time.Now()
	err = r.db.WithContext(ctx).Model(&SessaoUsuario{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{"ativa": false, "revogada_em": now}).Error
	if err != nil {
		return "", err
	}
	return model.JTI, nil
}
