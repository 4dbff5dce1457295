package model

// Waste request statuses. A request leaves pending exactly once and the
// resulting state is terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// WasteRequest represents an e-waste pickup submission
type WasteRequest struct {
	ID           int    `json:"id" db:"id"`
	AccountID    int    `json:"account_id" db:"account_id"`
	WasteType    string `json:"waste_type" db:"waste_type"`
	Quantity     int    `json:"quantity" db:"quantity"`
	Location     string `json:"location" db:"location"`
	Status       string `json:"status" db:"status"`
	CoinsAwarded int    `json:"coins_awarded" db:"coins_awarded"`
	SubmittedAt  string `json:"submitted_at" db:"submitted_at"`
}

// SubmitRequest represents a waste submission request
type SubmitRequest struct {
	WasteType string `json:"waste_type" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Location  string `json:"location" binding:"required"`
}

// PendingRequest is a pending waste request joined with its owner's
// username, as shown on the admin review screen
type PendingRequest struct {
	WasteRequest
	OwnerUsername string `json:"owner_username" db:"owner_username"`
}
