package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/causeway/backend/domain"
)

type fakeContactRepo struct {
	stored []*domain.ContactMessage
	err    error
}

func (f *fakeContactRepo) Create(ctx context.Context, message *domain.ContactMessage) (*domain.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	message.ID = int64(len(f.stored) + 1)
	message.CreatedAt = time.Now()
	f.stored = append(f.stored, message)
	return message, nil
}

type fakeNotifier struct {
	alerts []*domain.ContactMessage
	err    error
}

func (f *fakeNotifier) DonationReceived(ctx context.Context, donation *domain.Donation) error {
	return nil
}

func (f *fakeNotifier) ContactReceived(ctx context.Context, message *domain.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.alerts = append(f.alerts, message)
	return nil
}

func TestSubmitValidation(t *testing.T) {
	cases := []struct {
		name    string
		message *domain.ContactMessage
	}{
		{"missing name", &domain.ContactMessage{Email: "a@x.com", Message: "hi"}},
		{"missing email", &domain.ContactMessage{FullName: "A", Message: "hi"}},
		{"missing message", &domain.ContactMessage{FullName: "A", Email: "a@x.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeContactRepo{}
			uc := New(repo, nil, nil)

			_, err := uc.Submit(context.Background(), tc.message)
			if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
				t.Fatalf("expected INVALID error, got %v", err)
			}
			if len(repo.stored) != 0 {
				t.Fatalf("expected no row written for invalid input")
			}
		})
	}
}

func TestSubmitStoresAndAlerts(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{}
	uc := New(repo, notifier, nil)

	stored, err := uc.Submit(context.Background(), &domain.ContactMessage{
		FullName: "A",
		Email:    "a@x.com",
		Message:  "hello",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if stored.ID == 0 {
		t.Fatalf("expected assigned message id")
	}
	if len(notifier.alerts) != 1 {
		t.Fatalf("expected one alert dispatched, got %d", len(notifier.alerts))
	}
}

func TestSubmitAlertFailureIsBestEffort(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	uc := New(repo, notifier, nil)

	stored, err := uc.Submit(context.Background(), &domain.ContactMessage{
		FullName: "A",
		Email:    "a@x.com",
		Message:  "hello",
	})
	if err != nil {
		t.Fatalf("submission must not fail when the alert fails: %v", err)
	}
	if stored.ID == 0 {
		t.Fatalf("expected message to be stored")
	}
}
