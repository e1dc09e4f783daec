package domain

import "time"

// Cause is a fundraising campaign with a target and a running raised total.
// AmountRaised is only ever changed by the donation ledger transaction, as an
// in-place increment, so it always equals the sum of its donations.
type Cause struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	ImagePath    string    `json:"image_path,omitempty"`
	Location     string    `json:"location,omitempty"`
	Tags         string    `json:"tags,omitempty"`
	FundingGoal  int64     `json:"funding_goal"`
	AmountRaised int64     `json:"amount_raised"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *Cause) IsFunded() bool {
	return c != nil && c.AmountRaised >= c.FundingGoal
}
