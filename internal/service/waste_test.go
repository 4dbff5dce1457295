package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaravsharma17/cloudbin/internal/model"
	"github.com/aaravsharma17/cloudbin/internal/repository"
)

func TestSubmitRequest(t *testing.T) {
	setupTest(t)
	owner := registerTestUser(t, "alice")

	req, err := SubmitRequest(owner.ID, "laptop", 5, "MG Road drop-off")
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, req.Status)
	assert.Equal(t, 50, req.CoinsAwarded)
	assert.Equal(t, owner.ID, req.AccountID)
	assert.NotEmpty(t, req.SubmittedAt)
}

func TestSubmitRequestInvalidQuantity(t *testing.T) {
	setupTest(t)
	owner := registerTestUser(t, "alice")

	for _, quantity := range []int{0, -1, -50} {
		_, err := SubmitRequest(owner.ID, "laptop", quantity, "MG Road drop-off")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}

	requests, err := ListRequests(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestListRequests(t *testing.T) {
	setupTest(t)
	alice := registerTestUser(t, "alice")
	bob := registerTestUser(t, "bob")

	_, err := SubmitRequest(alice.ID, "laptop", 1, "loc a")
	require.NoError(t, err)
	_, err = SubmitRequest(alice.ID, "phone", 2, "loc b")
	require.NoError(t, err)
	_, err = SubmitRequest(bob.ID, "monitor", 3, "loc c")
	require.NoError(t, err)

	requests, err := ListRequests(alice.ID)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	// Newest first, only alice's
	assert.Equal(t, "phone", requests[0].WasteType)
	assert.Equal(t, "laptop", requests[1].WasteType)
}

func TestListPendingRequests(t *testing.T) {
	setupTest(t)
	alice := registerTestUser(t, "alice")

	first, err := SubmitRequest(alice.ID, "laptop", 1, "loc a")
	require.NoError(t, err)
	second, err := SubmitRequest(alice.ID, "phone", 2, "loc b")
	require.NoError(t, err)

	require.NoError(t, ApproveRequest(first.ID))

	pending, err := ListPendingRequests()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
	assert.Equal(t, "alice", pending[0].OwnerUsername)
}

func TestApproveRequest(t *testing.T) {
	setupTest(t)
	owner := registerTestUser(t, "alice")

	req, err := SubmitRequest(owner.ID, "laptop", 5, "MG Road drop-off")
	require.NoError(t, err)

	require.NoError(t, ApproveRequest(req.ID))

	account, err := GetAccountByID(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, account.Coins)

	updated, err := repository.GetRequestByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, updated.Status)
}

func TestApproveRequestTwiceDoesNotDoubleCredit(t *testing.T) {
	setupTest(t)
	owner := registerTestUser(t, "alice")

	req, err := SubmitRequest(owner.ID, "laptop", 5, "MG Road drop-off")
	require.NoError(t, err)

	require.NoError(t, ApproveRequest(req.ID))
	assert.ErrorIs(t, ApproveRequest(req.ID), ErrRequestResolved)

	account, err := GetAccountByID(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, account.Coins)
}

func TestApproveRequestNotFound(t *testing.T) {
	setupTest(t)
	assert.ErrorIs(t, ApproveRequest(12345), ErrRequestNotFound)
}

func TestRejectRequest(t *testing.T) {
	setupTest(t)
	owner := registerTestUser(t, "alice")

	req, err := SubmitRequest(owner.ID, "laptop", 5, "MG Road drop-off")
	require.NoError(t, err)

	require.NoError(t, RejectRequest(req.ID))

	// No coins were awarded
	account, err := GetAccountByID(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, account.Coins)

	updated, err := repository.GetRequestByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, updated.Status)

	// Rejection is terminal: no late approval can award coins
	assert.ErrorIs(t, ApproveRequest(req.ID), ErrRequestResolved)
	account, err = GetAccountByID(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, account.Coins)
}

func TestRejectRequestNotFound(t *testing.T) {
	setupTest(t)
	assert.ErrorIs(t, RejectRequest(12345), ErrRequestNotFound)
}
