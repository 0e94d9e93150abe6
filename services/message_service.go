package services

import (
	"context"

	"store-api/models"
	"store-api/repository"

	"go.uber.org/zap"
)

// MessageService records contact-form submissions and order-confirmation
// notices.
type MessageService interface {
	RecordInbound(ctx context.Context, req *models.CreateMessageFromRequest) *ServiceError
	RecordConfirmation(ctx context.Context, req *models.CreateMessageToRequest) *ServiceError
}

type messageServiceImpl struct {
	repo   repository.MessageRepository
	logger *zap.Logger
}

// NewMessageService creates a new MessageService.
func NewMessageService(repo repository.MessageRepository, logger *zap.Logger) MessageService {
	return &messageServiceImpl{repo: repo, logger: logger}
}

func (s *messageServiceImpl) RecordInbound(ctx context.Context, req *models.CreateMessageFromRequest) *ServiceError {
	msg := &models.MessageFrom{
		Subject:   req.Data.Subject,
		FromName:  req.Data.FromName,
		FromEmail: req.Data.FromEmail,
		Message:   req.Data.Message,
	}
	if err := s.repo.CreateInbound(ctx, msg); err != nil {
		s.logger.Error("Failed to record message", zap.Error(err))
		return internal("Failed to send message!")
	}
	return nil
}

func (s *messageServiceImpl) RecordConfirmation(ctx context.Context, req *models.CreateMessageToRequest) *ServiceError {
	msg := &models.MessageTo{
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
	}
	if err := s.repo.CreateOutbound(ctx, msg); err != nil {
		s.logger.Error("Failed to record confirmation notice", zap.Error(err))
		return internal("Failed to send message!")
	}
	return nil
}
