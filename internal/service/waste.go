package service

import (
	"database/sql"
	"errors"

	"github.com/aaravsharma17/cloudbin/internal/model"
	"github.com/aaravsharma17/cloudbin/internal/repository"
)

// CoinsPerItem is the flat award rate per unit of e-waste
const CoinsPerItem = 10

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrRequestNotFound = errors.New("request not found")
	ErrRequestResolved = errors.New("request has already been resolved")
)

// SubmitRequest creates a pending waste request for an account. The coin
// award is fixed at submission time and does not change afterwards.
func SubmitRequest(accountID int, wasteType string, quantity int, location string) (*model.WasteRequest, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	coins := quantity * CoinsPerItem

	requestID, err := repository.CreateRequest(accountID, wasteType, quantity, location, coins)
	if err != nil {
		return nil, err
	}

	return repository.GetRequestByID(requestID)
}

// ListRequests returns all requests owned by an account
func ListRequests(accountID int) ([]model.WasteRequest, error) {
	return repository.ListRequestsByAccount(accountID)
}

// ListPendingRequests returns pending requests with their owner's
// username for the admin review screen
func ListPendingRequests() ([]model.PendingRequest, error) {
	return repository.ListPendingRequests()
}

// ApproveRequest transitions a pending request to approved and credits
// the owner's balance in the same transaction. A request that already
// left the pending state is never credited again.
func ApproveRequest(requestID int) error {
	return repository.WithTx(func(tx *sql.Tx) error {
		req, err := repository.GetRequestTx(tx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}

		resolved, err := repository.ResolveRequestTx(tx, requestID, model.StatusApproved)
		if err != nil {
			return err
		}
		if !resolved {
			return ErrRequestResolved
		}

		return repository.CreditCoinsTx(tx, req.AccountID, req.CoinsAwarded)
	})
}

// RejectRequest transitions a pending request to rejected. No balance
// change is involved.
func RejectRequest(requestID int) error {
	return repository.WithTx(func(tx *sql.Tx) error {
		req, err := repository.GetRequestTx(tx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}

		resolved, err := repository.ResolveRequestTx(tx, requestID, model.StatusRejected)
		if err != nil {
			return err
		}
		if !resolved {
			return ErrRequestResolved
		}
		return nil
	})
}
