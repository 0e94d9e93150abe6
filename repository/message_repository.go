package repository

import (
	"context"

	"store-api/models"

	"gorm.io/gorm"
)

// MessageRepository defines data-access operations for the message logs.
// Both tables are write-only; nothing reads them back through the API.
type MessageRepository interface {
	CreateInbound(ctx context.Context, msg *models.MessageFrom) error
	CreateOutbound(ctx context.Context, msg *models.MessageTo) error
}

// GormMessageRepository implements MessageRepository using GORM.
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GormMessageRepository.
func NewGormMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) CreateInbound(ctx context.Context, msg *models.MessageFrom) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *GormMessageRepository) CreateOutbound(ctx context.Context, msg *models.MessageTo) error {
	return r.db.WithContext(ctx).Create(msg).Error
}
