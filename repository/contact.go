package repository

import (
	"context"

	"github.com/causeway/backend/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, message *domain.ContactMessage) (*domain.ContactMessage, error)
}
