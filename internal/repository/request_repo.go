package repository

import (
	"database/sql"
	"time"

	"github.com/aaravsharma17/cloudbin/internal/model"
)

// CreateRequest creates a waste request in the pending state
func CreateRequest(accountID int, wasteType string, quantity int, location string, coinsAwarded int) (int, error) {
	now := time.Now().Format(time.RFC3339)
	query := `
		INSERT INTO waste_requests (account_id, waste_type, quantity, location, status, coins_awarded, submitted_at)
		VALUES (?, ?, ?, ?, 'pending', ?, ?)
	`

	result, err := db.Exec(query, accountID, wasteType, quantity, location, coinsAwarded, now)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	return int(id), nil
}

// GetRequestByID returns a waste request by ID, or nil when absent
func GetRequestByID(requestID int) (*model.WasteRequest, error) {
	query := `
		SELECT id, account_id, waste_type, quantity, location, status, coins_awarded, submitted_at
		FROM waste_requests WHERE id = ?
	`
	return scanRequest(db.QueryRow(query, requestID))
}

// GetRequestTx returns a waste request by ID within a transaction
func GetRequestTx(tx *sql.Tx, requestID int) (*model.WasteRequest, error) {
	query := `
		SELECT id, account_id, waste_type, quantity, location, status, coins_awarded, submitted_at
		FROM waste_requests WHERE id = ?
	`
	return scanRequest(tx.QueryRow(query, requestID))
}

func scanRequest(row *sql.Row) (*model.WasteRequest, error) {
	req := &model.WasteRequest{}
	err := row.Scan(
		&req.ID, &req.AccountID, &req.WasteType, &req.Quantity,
		&req.Location, &req.Status, &req.CoinsAwarded, &req.SubmittedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return req, nil
}

// ListRequestsByAccount returns all requests owned by an account,
// newest first
func ListRequestsByAccount(accountID int) ([]model.WasteRequest, error) {
	query := `
		SELECT id, account_id, waste_type, quantity, location, status, coins_awarded, submitted_at
		FROM waste_requests WHERE account_id = ? ORDER BY id DESC
	`

	rows, err := db.Query(query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []model.WasteRequest
	for rows.Next() {
		var req model.WasteRequest
		err := rows.Scan(
			&req.ID, &req.AccountID, &req.WasteType, &req.Quantity,
			&req.Location, &req.Status, &req.CoinsAwarded, &req.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListPendingRequests returns all pending requests joined with the
// owning account's username, oldest first
func ListPendingRequests() ([]model.PendingRequest, error) {
	query := `
		SELECT r.id, r.account_id, r.waste_type, r.quantity, r.location,
		       r.status, r.coins_awarded, r.submitted_at, a.username
		FROM waste_requests r
		JOIN accounts a ON r.account_id = a.id
		WHERE r.status = 'pending'
		ORDER BY r.id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []model.PendingRequest
	for rows.Next() {
		var req model.PendingRequest
		err := rows.Scan(
			&req.ID, &req.AccountID, &req.WasteType, &req.Quantity,
			&req.Location, &req.Status, &req.CoinsAwarded, &req.SubmittedAt,
			&req.OwnerUsername,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ResolveRequestTx transitions a request out of the pending state within
// a transaction. Returns false when the request was already resolved;
// the status guard is what makes a second approval a no-op instead of a
// double credit.
func ResolveRequestTx(tx *sql.Tx, requestID int, status string) (bool, error) {
	result, err := tx.Exec(
		`UPDATE waste_requests SET status = ? WHERE id = ? AND status = 'pending'`,
		status, requestID,
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
