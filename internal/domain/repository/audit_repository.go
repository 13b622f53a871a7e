package repository

import (
	"context"

	"skytrak-service/internal/domain/entity"
)

// AccessLogRepository defines the interface for the data-access audit trail
type AccessLogRepository interface {
	Record(ctx context.Context, log *entity.AccessLog) error
}

// LGPDRepository defines the interface for data-subject requests
type LGPDRepository interface {
	Create(ctx context.Context, req *entity.LGPDRequest) error
}

// ChatLogRepository defines the interface for chat transcript storage
type ChatLogRepository interface {
	Save(ctx context.Context, log *entity.ChatLog) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]*entity.ChatLog, error)
}
