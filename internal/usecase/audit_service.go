package usecase

import (
	"context"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"
	"skytrak-service/pkg/logger"
	"skytrak-service/pkg/metrics"
)

// AuditService writes the data-access trail. Failures never reach the
// caller; they are logged and counted.
type AuditService struct {
	accessLogRepo repository.AccessLogRepository
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(accessLogRepo repository.AccessLogRepository, m *metrics.Metrics, logger logger.Logger) *AuditService {
	return &AuditService{
		accessLogRepo: accessLogRepo,
		metrics:       m,
		logger:        logger,
	}
}

// Record stores one access-log row.
func (s *AuditService) Record(ctx context.Context, userID uint, action, entityName string, details map[string]interface{}) {
	err := s.accessLogRepo.Record(ctx, &entity.AccessLog{
		UsuarioID: userID,
		Acao:      action,
		Entidade:  entityName,
		Detalhes:  details,
	})
	if err != nil {
		s.logger.Error("Failed to record access log", "action", action, "userId", userID, "error", err)
		s.metrics.ErrorsCount.WithLabelValues("access_log").Inc()
	}
}
