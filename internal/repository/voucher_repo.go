package repository

import (
	"database/sql"

	"github.com/aaravsharma17/cloudbin/internal/model"
)

// ListAvailableVouchers returns catalog entries with remaining stock
func ListAvailableVouchers() ([]model.Voucher, error) {
	query := `
		SELECT id, name, description, coins_required, code, stock
		FROM vouchers WHERE stock > 0 ORDER BY coins_required
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vouchers []model.Voucher
	for rows.Next() {
		var v model.Voucher
		var description sql.NullString
		err := rows.Scan(&v.ID, &v.Name, &description, &v.CoinsRequired, &v.Code, &v.Stock)
		if err != nil {
			return nil, err
		}
		v.Description = description.String
		vouchers = append(vouchers, v)
	}

	return vouchers, rows.Err()
}

// GetVoucherTx returns a voucher by ID within a transaction, or nil
// when absent
func GetVoucherTx(tx *sql.Tx, voucherID int) (*model.Voucher, error) {
	query := `
		SELECT id, name, description, coins_required, code, stock
		FROM vouchers WHERE id = ?
	`

	v := &model.Voucher{}
	var description sql.NullString
	err := tx.QueryRow(query, voucherID).Scan(
		&v.ID, &v.Name, &description, &v.CoinsRequired, &v.Code, &v.Stock,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	v.Description = description.String
	return v, nil
}

// DecrementStockTx takes one unit of stock within a transaction.
// Returns false when no stock remains; the guard in the WHERE clause is
// what keeps stock non-negative under concurrent redemptions.
func DecrementStockTx(tx *sql.Tx, voucherID int) (bool, error) {
	result, err := tx.Exec(
		`UPDATE vouchers SET stock = stock - 1 WHERE id = ? AND stock > 0`,
		voucherID,
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
