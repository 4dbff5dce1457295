package service

import (
	"database/sql"
	"errors"

	"github.com/aaravsharma17/cloudbin/internal/model"
	"github.com/aaravsharma17/cloudbin/internal/repository"
)

var (
	ErrVoucherNotFound   = errors.New("voucher not found")
	ErrOutOfStock        = errors.New("voucher is out of stock")
	ErrInsufficientCoins = errors.New("not enough coins")
)

// ListAvailableVouchers returns in-stock catalog entries
func ListAvailableVouchers() ([]model.Voucher, error) {
	return repository.ListAvailableVouchers()
}

// RedeemVoucher debits the voucher's cost from the account and takes one
// unit of stock, both in the same transaction. Either guard failing
// rolls back the whole redemption. Returns the voucher code and the
// remaining balance.
func RedeemVoucher(accountID, voucherID int) (*model.RedeemResponse, error) {
	var resp *model.RedeemResponse

	err := repository.WithTx(func(tx *sql.Tx) error {
		voucher, err := repository.GetVoucherTx(tx, voucherID)
		if err != nil {
			return err
		}
		if voucher == nil {
			return ErrVoucherNotFound
		}
		if voucher.Stock <= 0 {
			return ErrOutOfStock
		}

		debited, err := repository.DebitCoinsTx(tx, accountID, voucher.CoinsRequired)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientCoins
		}

		taken, err := repository.DecrementStockTx(tx, voucherID)
		if err != nil {
			return err
		}
		if !taken {
			return ErrOutOfStock
		}

		resp = &model.RedeemResponse{
			VoucherID: voucher.ID,
			Name:      voucher.Name,
			Code:      voucher.Code,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	account, err := repository.GetAccountByID(accountID)
	if err == nil && account != nil {
		resp.Coins = account.Coins
	}

	return resp, nil
}
