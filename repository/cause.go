package repository

import (
	"context"

	"github.com/causeway/backend/domain"
)

type CauseRepository interface {
	Create(ctx context.Context, cause *domain.Cause) (*domain.Cause, error)
	GetByID(ctx context.Context, id int64) (*domain.Cause, error)
	List(ctx context.Context) ([]domain.Cause, error)
}
