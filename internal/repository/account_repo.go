package repository

import (
	"database/sql"
	"time"

	"github.com/aaravsharma17/cloudbin/internal/model"
)

// CreateAccount creates a new account and returns its id
func CreateAccount(username, email, passwordHash, role string) (int, error) {
	now := time.Now().Format(time.RFC3339)
	query := `
		INSERT INTO accounts (username, email, password_hash, role, coins, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`

	result, err := db.Exec(query, username, email, passwordHash, role, now)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	return int(id), nil
}

// GetAccountByUsername returns an account by username, or nil when absent
func GetAccountByUsername(username string) (*model.Account, error) {
	query := `
		SELECT id, username, email, password_hash, role, coins, created_at
		FROM accounts WHERE username = ?
	`

	account := &model.Account{}
	err := db.QueryRow(query, username).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash,
		&account.Role, &account.Coins, &account.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccountByID returns an account by ID, or nil when absent
func GetAccountByID(accountID int) (*model.Account, error) {
	query := `
		SELECT id, username, email, password_hash, role, coins, created_at
		FROM accounts WHERE id = ?
	`

	account := &model.Account{}
	err := db.QueryRow(query, accountID).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash,
		&account.Role, &account.Coins, &account.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

// UsernameExists checks if an account exists by username
func UsernameExists(username string) (bool, error) {
	query := `SELECT 1 FROM accounts WHERE username = ?`
	var exists int
	err := db.QueryRow(query, username).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// EmailExists checks if an account exists by email
func EmailExists(email string) (bool, error) {
	query := `SELECT 1 FROM accounts WHERE email = ?`
	var exists int
	err := db.QueryRow(query, email).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetPassword overwrites the stored credential hash
func SetPassword(accountID int, passwordHash string) (bool, error) {
	result, err := db.Exec(`UPDATE accounts SET password_hash = ? WHERE id = ?`, passwordHash, accountID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// ListAccounts returns all accounts ordered by id
func ListAccounts() ([]model.Account, error) {
	query := `
		SELECT id, username, email, role, coins, created_at
		FROM accounts ORDER BY id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var account model.Account
		err := rows.Scan(
			&account.ID, &account.Username, &account.Email,
			&account.Role, &account.Coins, &account.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// CreditCoinsTx adds coins to an account's balance within a transaction
func CreditCoinsTx(tx *sql.Tx, accountID, amount int) error {
	_, err := tx.Exec(`UPDATE accounts SET coins = coins + ? WHERE id = ?`, amount, accountID)
	return err
}

// DebitCoinsTx subtracts coins from an account's balance within a
// transaction. Returns false when the balance does not cover the amount;
// the guard in the WHERE clause is what keeps balances non-negative under
// concurrent redemptions.
func DebitCoinsTx(tx *sql.Tx, accountID, amount int) (bool, error) {
	result, err := tx.Exec(
		`UPDATE accounts SET coins = coins - ? WHERE id = ? AND coins >= ?`,
		amount, accountID, amount,
	)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
