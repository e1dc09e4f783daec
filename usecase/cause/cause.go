package cause

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/repository"
)

type UseCase struct {
	causes repository.CauseRepository
	logger *zap.Logger
}

func New(causes repository.CauseRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		causes: causes,
		logger: logger,
	}
}

// Create registers a new campaign. Administrative writes never touch
// amount_raised; that column belongs to the donation ledger.
func (uc *UseCase) Create(ctx context.Context, cause *domain.Cause) (*domain.Cause, error) {
	if cause == nil {
		return nil, domain.ErrInvalidPayload
	}

	cause.Title = strings.TrimSpace(cause.Title)
	if cause.Title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "cause title is required")
	}
	if cause.FundingGoal <= 0 {
		return nil, domain.NewError(domain.ErrCodeInvalid, "funding goal must be positive")
	}

	return uc.causes.Create(ctx, cause)
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.Cause, error) {
	return uc.causes.GetByID(ctx, id)
}

func (uc *UseCase) List(ctx context.Context) ([]domain.Cause, error) {
	return uc.causes.List(ctx)
}
