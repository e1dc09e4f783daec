package domain

import "time"

// Donation is an immutable pledge record. A nil CauseID means the donation
// goes to the general fund and no cause total is touched.
type Donation struct {
	ID          int64     `json:"id"`
	DonorName   string    `json:"donor_name"`
	DonorEmail  string    `json:"donor_email"`
	AmountCents int64     `json:"amount_cents"`
	Message     string    `json:"message,omitempty"`
	CauseID     *int64    `json:"cause_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (d *Donation) IsGeneral() bool {
	return d != nil && d.CauseID == nil
}
