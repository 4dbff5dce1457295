package model

// Voucher represents a redeemable catalog entry
type Voucher struct {
	ID            int    `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	Description   string `json:"description" db:"description"`
	CoinsRequired int    `json:"coins_required" db:"coins_required"`
	Code          string `json:"-" db:"code"` // Revealed only on redemption
	Stock         int    `json:"stock" db:"stock"`
}

// RedeemResponse represents a successful redemption
type RedeemResponse struct {
	VoucherID int    `json:"voucher_id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Coins     int    `json:"coins"` // Remaining balance
}
