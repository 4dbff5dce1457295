package model

// Account roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents a registered account in the system
type Account struct {
	ID           int    `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"` // Don't serialize hash
	Role         string `json:"role" db:"role"`
	Coins        int    `json:"coins" db:"coins"`
	CreatedAt    string `json:"created_at" db:"created_at"`
}

// RegisterRequest represents an account registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents a login request. Role is the role the caller
// selected on the login form and only guards against logging into the
// wrong dashboard; it carries no authority.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// TokenResponse represents a session token response
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	Account     *AccountInfo `json:"account"`
}

// AccountInfo represents public account info
type AccountInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Coins    int    `json:"coins"`
}

// Info returns the public view of an account
func (a *Account) Info() *AccountInfo {
	return &AccountInfo{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
		Coins:    a.Coins,
	}
}
