package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/aaravsharma17/cloudbin/internal/model"
	"github.com/aaravsharma17/cloudbin/internal/pkg/jwt"
	"github.com/aaravsharma17/cloudbin/internal/repository"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRoleMismatch       = errors.New("account role does not match selected role")
	ErrAccountNotFound    = errors.New("account not found")
)

// Register creates a new user account and returns a session token. New
// accounts always get the user role and a zero balance.
func Register(username, email, password string) (*model.TokenResponse, error) {
	taken, err := repository.UsernameExists(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = repository.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	accountID, err := repository.CreateAccount(username, email, hash, model.RoleUser)
	if err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(accountID, username, model.RoleUser)
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Account: &model.AccountInfo{
			ID:       accountID,
			Username: username,
			Email:    email,
			Role:     model.RoleUser,
			Coins:    0,
		},
	}, nil
}

// Login authenticates an account and returns a session token. The
// claimed role only guards against logging into the wrong dashboard;
// authorization always uses the role stored on the account.
func Login(username, password, claimedRole string) (*model.TokenResponse, error) {
	account, err := repository.GetAccountByUsername(username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if !checkPassword(account.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if account.Role != claimedRole {
		return nil, ErrRoleMismatch
	}

	token, err := jwt.GenerateToken(account.ID, account.Username, account.Role)
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Account:     account.Info(),
	}, nil
}

// SetPassword overwrites an account's credential hash
func SetPassword(accountID int, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	updated, err := repository.SetPassword(accountID, hash)
	if err != nil {
		return err
	}
	if !updated {
		return ErrAccountNotFound
	}
	return nil
}

// GetAccountByID returns an account by ID
func GetAccountByID(accountID int) (*model.Account, error) {
	account, err := repository.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// ListAccounts returns all accounts
func ListAccounts() ([]model.Account, error) {
	return repository.ListAccounts()
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
