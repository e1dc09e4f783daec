package transport

type DonationRequest struct {
	DonorName  string `json:"donor_name"`
	DonorEmail string `json:"donor_email"`
	Amount     int64  `json:"donation_amount"`
	Message    string `json:"message"`
	CauseID    *int64 `json:"cause_id"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Message string `json:"message"`
}

type CauseRequest struct {
	Title       string `json:"title"`
	ImagePath   string `json:"image_path"`
	Location    string `json:"location"`
	Tags        string `json:"tags"`
	FundingGoal int64  `json:"funding_goal"`
}

type NewsRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImagePath string `json:"image_path"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	TTL      int    `json:"ttl_seconds"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
	TTL       int    `json:"ttl_seconds"`
}
