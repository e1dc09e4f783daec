package repository

import (
	"context"

	"github.com/causeway/backend/domain"
)

// DonationRepository persists pledge records. Record is the ledger operation:
// the donation insert and the cause total increment either both apply or
// neither does.
type DonationRepository interface {
	Record(ctx context.Context, donation *domain.Donation) error
	ListRecent(ctx context.Context, limit int) ([]domain.Donation, error)
}
