package services

import (
	"context"
	"strings"
	"testing"

	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/internal/infrastructure/outbox"
)

func TestDonationReceivedEnqueuesReceipt(t *testing.T) {
	store := openTestOutbox(t)
	notifier := NewMailNotifier(store, "info@example.org")

	causeID := int64(7)
	err := notifier.DonationReceived(context.Background(), &domain.Donation{
		ID:          1,
		DonorName:   "A",
		DonorEmail:  "a@x.com",
		AmountCents: 123456,
		CauseID:     &causeID,
	})
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	messages, err := store.GetBatch(1)
	if err != nil || len(messages) != 1 {
		t.Fatalf("expected one queued message, got %d (err %v)", len(messages), err)
	}
	msg := messages[0]
	if msg.Kind != outbox.KindDonationReceipt {
		t.Fatalf("expected donation receipt kind, got %q", msg.Kind)
	}
	if len(msg.To) != 1 || msg.To[0] != "a@x.com" {
		t.Fatalf("expected receipt addressed to the donor, got %v", msg.To)
	}
	if !strings.Contains(msg.Body, "1234.56") {
		t.Fatalf("expected formatted amount in body, got %q", msg.Body)
	}
	if !strings.Contains(msg.Body, "cause #7") {
		t.Fatalf("expected cause reference in body, got %q", msg.Body)
	}
}

func TestContactReceivedEnqueuesAlert(t *testing.T) {
	store := openTestOutbox(t)
	notifier := NewMailNotifier(store, "info@example.org")

	err := notifier.ContactReceived(context.Background(), &domain.ContactMessage{
		FullName: "A",
		Email:    "a@x.com",
		Message:  "hello",
	})
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	messages, err := store.GetBatch(1)
	if err != nil || len(messages) != 1 {
		t.Fatalf("expected one queued message, got %d (err %v)", len(messages), err)
	}
	msg := messages[0]
	if msg.Kind != outbox.KindContactAlert {
		t.Fatalf("expected contact alert kind, got %q", msg.Kind)
	}
	if len(msg.To) != 1 || msg.To[0] != "info@example.org" {
		t.Fatalf("expected alert addressed to the inbox, got %v", msg.To)
	}
	if !strings.Contains(msg.Body, "Website: N/A") {
		t.Fatalf("expected empty website rendered as N/A, got %q", msg.Body)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{5000, "50.00"},
		{1, "0.01"},
		{123456, "1234.56"},
		{100, "1.00"},
	}
	for _, tc := range cases {
		if got := formatAmount(tc.cents); got != tc.want {
			t.Fatalf("formatAmount(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
