package outbox

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindDonationReceipt = "donation_receipt"
	KindContactAlert    = "contact_alert"
)

// Message is a pending notification email. It is enqueued after the triggering
// write has committed and delivered asynchronously by the mail dispatcher.
type Message struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	To        []string  `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Retries   int       `json:"retries"`
	Timestamp time.Time `json:"timestamp"`

	bucketKey []byte
}

func (m *Message) normalize() {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
}
