package contact

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/repository"
	"github.com/causeway/backend/usecase"
)

type UseCase struct {
	messages repository.ContactRepository
	notifier usecase.Notifier
	logger   *zap.Logger
}

func New(messages repository.ContactRepository, notifier usecase.Notifier, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		messages: messages,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit stores the message and alerts the organization inbox. The alert is
// fire-and-forget: the submission succeeds even when the mail path is down.
func (uc *UseCase) Submit(ctx context.Context, message *domain.ContactMessage) (*domain.ContactMessage, error) {
	if message == nil {
		return nil, domain.ErrInvalidPayload
	}

	message.FullName = strings.TrimSpace(message.FullName)
	message.Email = strings.TrimSpace(message.Email)
	message.Message = strings.TrimSpace(message.Message)

	if message.FullName == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "name is required")
	}
	if message.Email == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "email is required")
	}
	if message.Message == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "message is required")
	}

	stored, err := uc.messages.Create(ctx, message)
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.ContactReceived(ctx, stored); err != nil {
			uc.logger.Warn("failed to dispatch contact alert",
				zap.Int64("message_id", stored.ID),
				zap.Error(err))
		}
	}
	return stored, nil
}
