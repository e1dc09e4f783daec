package donation

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/repository"
	"github.com/causeway/backend/usecase"
)

type UseCase struct {
	donations repository.DonationRepository
	notifier  usecase.Notifier
	logger    *zap.Logger
}

func New(donations repository.DonationRepository, notifier usecase.Notifier, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		donations: donations,
		notifier:  notifier,
		logger:    logger,
	}
}

// Record validates the pledge and writes it through the ledger transaction.
// Validation happens before any store I/O, so a rejected request leaves no
// partial state. The receipt email is dispatched only after the commit.
func (uc *UseCase) Record(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	if donation == nil {
		return nil, domain.ErrInvalidPayload
	}

	donation.DonorName = strings.TrimSpace(donation.DonorName)
	donation.DonorEmail = strings.TrimSpace(donation.DonorEmail)
	donation.Message = strings.TrimSpace(donation.Message)

	if donation.DonorName == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "donor name is required")
	}
	if donation.DonorEmail == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "donor email is required")
	}
	if donation.AmountCents <= 0 {
		return nil, domain.NewError(domain.ErrCodeInvalid, "donation amount must be positive")
	}

	if err := uc.donations.Record(ctx, donation); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.DonationReceived(ctx, donation); err != nil {
			uc.logger.Warn("failed to dispatch donation receipt",
				zap.Int64("donation_id", donation.ID),
				zap.Error(err))
		}
	}
	return donation, nil
}

func (uc *UseCase) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	return uc.donations.ListRecent(ctx, limit)
}
