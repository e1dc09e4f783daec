package services

import (
	"context"
	"fmt"

	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/internal/infrastructure/outbox"
	"github.com/causeway/backend/usecase"
)

// MailNotifier turns domain events into outbox messages. Enqueueing is the
// only work done on the request path; actual delivery happens in the
// dispatcher, so a slow or dead SMTP server never blocks a donation.
type MailNotifier struct {
	store *outbox.Store
	inbox string
}

func NewMailNotifier(store *outbox.Store, inbox string) *MailNotifier {
	return &MailNotifier{store: store, inbox: inbox}
}

func (n *MailNotifier) DonationReceived(ctx context.Context, donation *domain.Donation) error {
	if n.store == nil || donation == nil {
		return domain.ErrInvalidPayload
	}

	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for your generous pledge of %s. "+
			"We will contact you soon with payment details.\n",
		donation.DonorName, formatAmount(donation.AmountCents))
	if donation.CauseID != nil {
		body += fmt.Sprintf("\nYour donation is earmarked for cause #%d.\n", *donation.CauseID)
	}

	return n.store.Enqueue(outbox.Message{
		Kind:    outbox.KindDonationReceipt,
		To:      []string{donation.DonorEmail},
		Subject: "Thank you for your donation",
		Body:    body,
	})
}

func (n *MailNotifier) ContactReceived(ctx context.Context, message *domain.ContactMessage) error {
	if n.store == nil || message == nil {
		return domain.ErrInvalidPayload
	}

	website := message.Website
	if website == "" {
		website = "N/A"
	}
	body := fmt.Sprintf("Name: %s\nEmail: %s\nWebsite: %s\nMessage:\n%s\n",
		message.FullName, message.Email, website, message.Message)

	return n.store.Enqueue(outbox.Message{
		Kind:    outbox.KindContactAlert,
		To:      []string{n.inbox},
		Subject: fmt.Sprintf("New contact form submission from %s", message.FullName),
		Body:    body,
	})
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

var _ usecase.Notifier = (*MailNotifier)(nil)
