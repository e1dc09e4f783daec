package usecase

import (
	"context"

	"github.com/causeway/backend/domain"
)

// Notifier dispatches best-effort email notifications. Implementations run
// outside any store transaction: a failure here must never undo a committed
// donation or contact message.
type Notifier interface {
	DonationReceived(ctx context.Context, donation *domain.Donation) error
	ContactReceived(ctx context.Context, message *domain.ContactMessage) error
}
