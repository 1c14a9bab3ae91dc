package cash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/store"
	"github.com/iov-one/feesplit/weavetest"
)

func TestIssueAndMoveCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	bal, err := ctrl.Balance(db, alice)
	require.NoError(t, err)
	assert.True(t, bal.IsEmpty())

	require.NoError(t, ctrl.IssueCoins(db, alice, coin.NewCoin(500, "ULUNA")))
	require.NoError(t, ctrl.IssueCoins(db, alice, coin.NewCoin(7, "ATOM")))

	err = ctrl.IssueCoins(db, alice, coin.NewCoin(0, "ULUNA"))
	assert.True(t, errors.ErrAmount.Is(err))

	require.NoError(t, ctrl.MoveCoins(db, alice, bob, coin.NewCoin(200, "ULUNA")))

	bal, err = ctrl.Balance(db, alice)
	require.NoError(t, err)
	assert.Equal(t, coin.NewCoin(300, "ULUNA"), bal.AmountOf("ULUNA"))
	assert.Equal(t, coin.NewCoin(7, "ATOM"), bal.AmountOf("ATOM"))

	bal, err = ctrl.Balance(db, bob)
	require.NoError(t, err)
	assert.Equal(t, coin.NewCoin(200, "ULUNA"), bal.AmountOf("ULUNA"))

	err = ctrl.MoveCoins(db, alice, bob, coin.NewCoin(301, "ULUNA"))
	assert.True(t, errors.ErrInsufficientAmount.Is(err))
	err = ctrl.MoveCoins(db, bob, alice, coin.NewCoin(1, "ATOM"))
	assert.True(t, errors.ErrInsufficientAmount.Is(err))
	err = ctrl.MoveCoins(db, bob, alice, coin.NewCoin(0, "ULUNA"))
	assert.True(t, errors.ErrAmount.Is(err))

	// failed transfers leave balances untouched
	bal, err = ctrl.Balance(db, bob)
	require.NoError(t, err)
	assert.Equal(t, coin.NewCoin(200, "ULUNA"), bal.AmountOf("ULUNA"))
}

func TestMoveAllCoinsRemovesWallet(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, alice, coin.NewCoin(10, "ULUNA")))
	require.NoError(t, ctrl.MoveCoins(db, alice, bob, coin.NewCoin(10, "ULUNA")))

	ok, err := NewBucket().Has(db, alice)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMoveCoinsToSelf(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	alice := weavetest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, alice, coin.NewCoin(10, "ULUNA")))
	require.NoError(t, ctrl.MoveCoins(db, alice, alice, coin.NewCoin(10, "ULUNA")))

	bal, err := ctrl.Balance(db, alice)
	require.NoError(t, err)
	assert.Equal(t, coin.NewCoin(10, "ULUNA"), bal.AmountOf("ULUNA"))
}

func TestIssueCoinsOverflow(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	alice := weavetest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, alice, coin.NewCoin(^uint64(0), "ULUNA")))
	err := ctrl.IssueCoins(db, alice, coin.NewCoin(1, "ULUNA"))
	assert.True(t, errors.ErrOverflow.Is(err))
}
