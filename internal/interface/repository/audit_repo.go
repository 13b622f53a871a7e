package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"

	"gorm.io/gorm"
)

// LogAcessoDado GORM model for database mapping
type LogAcessoDado struct {
	ID        uint      `gorm:"primaryKey"`
	UsuarioID uint      `gorm:"column:usuario_id;index;not null"`
	Acao      string    `gorm:"column:acao;size:60;not null"`
	Entidade  string    `gorm:"column:entidade;size:60;not null"`
	Detalhes  string    `gorm:"column:detalhes;type:text"`
	CriadoEm  time.Time `gorm:"column:criado_em;autoCreateTime"`
}

// TableName overrides the default table name
func (LogAcessoDado) TableName() string {
	return "log_acesso_dado"
}

// SolicitacaoLGPD GORM model for database mapping
type SolicitacaoLGPD struct {
	ID        uint      `gorm:"primaryKey"`
	UsuarioID uint      `gorm:"column:usuario_id;index;not null"`
	Tipo      string    `gorm:"column:tipo;size:60;not null"`
	Status    string    `gorm:"column:status;size:30;not null;default:ABERTA"`
	Detalhes  *string   `gorm:"column:detalhes;type:text"`
	CriadoEm  time.Time `gorm:"column:criado_em;autoCreateTime"`
}

// TableName overrides the default table name
func (SolicitacaoLGPD) TableName() string {
	return "solicitacao_lgpd"
}

// GormAccessLogRepository implements the AccessLogRepository interface
type GormAccessLogRepository struct {
	db *gorm.DB
}

// NewGormAccessLogRepository creates a new GORM access log repository
func NewGormAccessLogRepository(db *gorm.DB) repository.AccessLogRepository {
	return &GormAccessLogRepository{
		db: db,
	}
}

// Record inserts one access-log row; details are stored as JSON text
func (r *GormAccessLogRepository) Record(ctx context.Context, log *entity.AccessLog) error {
	details, err := json.Marshal(log.Detalhes)
	if err != nil {
		return fmt.Errorf("failed to marshal access log details: %w", err)
	}

	model := LogAcessoDado{
		UsuarioID: log.UsuarioID,
		Acao:      log.Acao,
		Entidade:  log.Entidade,
		Detalhes:  string(details),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}

	log.ID = model.ID
	log.CriadoEm = model.CriadoEm
	return nil
}

// GormLGPDRepository implements the LGPDRepository interface
type GormLGPDRepository struct {
	db *gorm.DB
}

// NewGormLGPDRepository creates a new GORM LGPD request repository
func NewGormLGPDRepository(db *gorm.DB) repository.LGPDRepository {
	return &GormLGPDRepository{
		db: db,
	}
}

// Create inserts a new data-subject request
func (r *GormLGPDRepository) Create(ctx context.Context, req *entity.LGPDRequest) error {
	model := SolicitacaoLGPD{
		UsuarioID: req.UsuarioID,
		Tipo:      req.Tipo,
		Status:    req.Status,
		Detalhes:  req.Detalhes,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}

	req.ID = model.ID
	req.CriadoEm = model.CriadoEm
	return nil
}

// Models lists every GORM model for AutoMigrate
func Models() []interface{} {
	return []interface{}{
		&Usuario{},
		&UsuarioSeguranca{},
		&SessaoUsuario{},
		&SolicitacaoLGPD{},
		&LogAcessoDado{},
	}
}
