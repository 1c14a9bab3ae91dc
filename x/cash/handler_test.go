package cash

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/store"
	"github.com/iov-one/feesplit/weavetest"
)

func TestSendHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	cases := map[string]struct {
		signer      feesplit.Condition
		msg         feesplit.Msg
		wantCheck   *errors.Error
		wantDeliver *errors.Error
		wantBob     coin.Coin
	}{
		"send part of the balance": {
			signer: alice,
			msg: &SendMsg{
				Metadata: &feesplit.Metadata{Schema: 1},
				Source:   alice.Address(),
				Dest:     bob.Address(),
				Amount:   coin.NewCoinp(40, "ULUNA"),
			},
			wantBob: coin.NewCoin(40, "ULUNA"),
		},
		"insufficient funds": {
			signer: alice,
			msg: &SendMsg{
				Metadata: &feesplit.Metadata{Schema: 1},
				Source:   alice.Address(),
				Dest:     bob.Address(),
				Amount:   coin.NewCoinp(101, "ULUNA"),
			},
			wantDeliver: errors.ErrInsufficientAmount,
			wantBob:     coin.NewCoin(0, "ULUNA"),
		},
		"not signed by the owner": {
			signer: bob,
			msg: &SendMsg{
				Metadata: &feesplit.Metadata{Schema: 1},
				Source:   alice.Address(),
				Dest:     bob.Address(),
				Amount:   coin.NewCoinp(1, "ULUNA"),
			},
			wantCheck:   errors.ErrUnauthorized,
			wantDeliver: errors.ErrUnauthorized,
			wantBob:     coin.NewCoin(0, "ULUNA"),
		},
		"zero amount": {
			signer: alice,
			msg: &SendMsg{
				Metadata: &feesplit.Metadata{Schema: 1},
				Source:   alice.Address(),
				Dest:     bob.Address(),
				Amount:   coin.NewCoinp(0, "ULUNA"),
			},
			wantCheck:   errors.ErrAmount,
			wantDeliver: errors.ErrAmount,
			wantBob:     coin.NewCoin(0, "ULUNA"),
		},
		"wrong message type": {
			signer:      alice,
			msg:         &weavetest.Msg{RoutePath: "cash/send"},
			wantCheck:   errors.ErrType,
			wantDeliver: errors.ErrType,
			wantBob:     coin.NewCoin(0, "ULUNA"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			require.NoError(t, ctrl.IssueCoins(db, alice.Address(), coin.NewCoin(100, "ULUNA")))

			auth := &weavetest.Auth{Signer: tc.signer}
			h := NewSendHandler(auth, ctrl)
			tx := &weavetest.Tx{Msg: tc.msg}

			_, err := h.Check(context.Background(), db.CacheWrap(), tx)
			if !tc.wantCheck.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			_, err = h.Deliver(context.Background(), db, tx)
			if !tc.wantDeliver.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			bal, err := ctrl.Balance(db, bob.Address())
			require.NoError(t, err)
			assert.Equal(t, tc.wantBob, bal.AmountOf("ULUNA"))
		})
	}
}

func TestGenesisAndQuery(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	raw, err := json.Marshal([]interface{}{
		map[string]interface{}{
			"address": alice,
			"coins":   []string{"100ULUNA", "5ATOM"},
		},
	})
	require.NoError(t, err)

	db := store.MemStore()
	opts := feesplit.Options{"cash": raw}
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	// loading the same account twice is an error
	err = Initializer{}.FromGenesis(opts, db)
	assert.True(t, errors.ErrDuplicate.Is(err))

	qr := feesplit.NewQueryRouter()
	RegisterQuery(qr)
	res, err := qr.Handler("/wallets").Query(db, feesplit.KeyQueryMod, alice)
	require.NoError(t, err)
	require.Len(t, res, 1)

	var w Wallet
	require.NoError(t, feesplit.UnmarshalBinary(res[0].Value, &w))
	assert.Equal(t, coin.NewCoin(100, "ULUNA"), w.Coins.AmountOf("ULUNA"))
	assert.Equal(t, coin.NewCoin(5, "ATOM"), w.Coins.AmountOf("ATOM"))
}

func TestSendMsgValidate(t *testing.T) {
	a := weavetest.NewCondition().Address()
	b := weavetest.NewCondition().Address()

	msg := SendMsg{
		Metadata: &feesplit.Metadata{Schema: 1},
		Source:   a,
		Dest:     b,
		Amount:   coin.NewCoinp(1, "ULUNA"),
		Memo:     "deposit",
	}
	assert.NoError(t, msg.Validate())

	msg.Source = nil
	assert.True(t, errors.ErrInput.Is(msg.Validate()))

	msg.Source = a
	msg.Metadata = nil
	assert.True(t, errors.ErrMetadata.Is(msg.Validate()))
}
