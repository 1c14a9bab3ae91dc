package distributor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/store"
	"github.com/iov-one/feesplit/weavetest"
	"github.com/iov-one/feesplit/weavetest/assert"
	"github.com/iov-one/feesplit/x/cash"
)

// testRouter is a minimal Registry implementation.
type testRouter map[string]feesplit.Handler

func (r testRouter) Handle(path string, h feesplit.Handler) {
	r[path] = h
}

func (r testRouter) deliver(t testing.TB, ctx feesplit.Context, db feesplit.KVStore, msg feesplit.Msg) (*feesplit.DeliverResult, error) {
	t.Helper()
	h, ok := r[msg.Path()]
	if !ok {
		t.Fatalf("no handler for %q", msg.Path())
	}
	tx := &weavetest.Tx{Msg: msg}
	if _, err := h.Check(ctx, db.(feesplit.CacheableKVStore).CacheWrap(), tx); err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func TestHandlers(t *testing.T) {
	f := newFixture()
	meta := &feesplit.Metadata{Schema: 1}
	db := store.MemStore()
	ctrl := cash.NewController()
	auth := &weavetest.CtxAuth{Key: "auth"}
	anyone := weavetest.NewCondition()

	r := make(testRouter)
	RegisterRoutes(r, auth, ctrl)
	qr := feesplit.NewQueryRouter()
	RegisterQuery(qr)

	ctx := auth.SetConditions(context.Background(), anyone)

	// distribution requires a configuration
	_, err := r.deliver(t, ctx, db, &DistributeMsg{Metadata: meta, Denom: "ULUNA"})
	assert.IsErr(t, errors.ErrNotFound, err)

	conf := f.config()
	inst := &InstantiateMsg{
		Metadata:         meta,
		Admin:            conf.Admin,
		BurnAddress:      conf.BurnAddress,
		DeveloperAddress: conf.DeveloperAddress,
		Whitelist:        conf.Whitelist,
		Weights:          conf.Weights,
	}
	res, err := r.deliver(t, ctx, db, inst)
	assert.Nil(t, err)
	assert.Equal(t, []byte(Account()), res.Data)

	_, err = r.deliver(t, ctx, db, inst)
	assert.IsErr(t, errors.ErrDuplicate, err)

	// configuration query returns the same record every time
	first, err := qr.Handler("/distributor/config").Query(db, feesplit.KeyQueryMod, nil)
	assert.Nil(t, err)
	second, err := qr.Handler("/distributor/config").Query(db, feesplit.KeyQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, first, second)
	var queried Configuration
	assert.Nil(t, feesplit.UnmarshalBinary(first[0].Value, &queried))
	assert.Equal(t, conf, &queried)

	acc, err := qr.Handler("/distributor/account").Query(db, feesplit.KeyQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, []byte(Account()), acc[0].Value)

	// deposit
	assert.Nil(t, ctrl.IssueCoins(db, anyone.Address(), coin.NewCoin(1000, "ULUNA")))
	send := cash.NewSendHandler(auth, ctrl)
	_, err = send.Deliver(ctx, db, &weavetest.Tx{Msg: &cash.SendMsg{
		Metadata: meta,
		Source:   anyone.Address(),
		Dest:     Account(),
		Amount:   coin.NewCoinp(100, "ULUNA"),
	}})
	assert.Nil(t, err)

	// only the admin can reconfigure
	share := Weight(5000)
	update := &UpdateConfigMsg{Metadata: meta, DeveloperShare: &share}
	_, err = r.deliver(t, ctx, db, update)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	adminCtx := auth.SetConditions(context.Background(), f.admin)
	_, err = r.deliver(t, adminCtx, db, update)
	assert.Nil(t, err)

	// anyone can distribute
	res, err = r.deliver(t, ctx, db, &DistributeMsg{Metadata: meta, Denom: "ULUNA"})
	assert.Nil(t, err)
	var plan PayoutPlan
	assert.Nil(t, json.Unmarshal(res.Data, &plan))
	luna := func(n uint64) coin.Coin { return coin.NewCoin(n, "ULUNA") }
	assert.Equal(t, PayoutPlan{
		{Recipient: f.addrA, Amount: luna(40), Kind: ProtocolPayout, Protocol: "A"},
		{Recipient: f.addrB, Amount: luna(30), Kind: ProtocolPayout, Protocol: "B"},
		{Recipient: f.burn, Amount: luna(15), Kind: BurnPayout},
		{Recipient: f.dev, Amount: luna(15), Kind: DeveloperPayout},
	}, plan)

	held, err := ctrl.Balance(db, Account())
	assert.Nil(t, err)
	assert.Equal(t, true, held.IsEmpty())
}

func TestUpdateConfigMsgValidate(t *testing.T) {
	meta := &feesplit.Metadata{Schema: 1}
	dup := []WhitelistEntry{
		{Address: weavetest.NewCondition().Address(), Protocol: "A"},
		{Address: weavetest.NewCondition().Address(), Protocol: "A"},
	}
	heavy := []WeightEntry{{Protocol: "A", Weight: 10001}}
	share := Weight(20000)

	cases := map[string]struct {
		msg     UpdateConfigMsg
		wantErr *errors.Error
	}{
		"empty update":        {msg: UpdateConfigMsg{Metadata: meta}},
		"missing metadata":    {msg: UpdateConfigMsg{}, wantErr: errors.ErrMetadata},
		"duplicate whitelist": {msg: UpdateConfigMsg{Metadata: meta, Whitelist: &dup}, wantErr: ErrDuplicateProtocol},
		"invalid weights":     {msg: UpdateConfigMsg{Metadata: meta, Weights: &heavy}, wantErr: ErrInvalidWeight},
		"invalid share":       {msg: UpdateConfigMsg{Metadata: meta, DeveloperShare: &share}, wantErr: ErrInvalidWeight},
		"invalid admin":       {msg: UpdateConfigMsg{Metadata: meta, Admin: feesplit.Address{1}}, wantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}

func TestUpdateConfigMsgJSON(t *testing.T) {
	var msg UpdateConfigMsg
	raw := `{"metadata":{"schema":1},"whitelist":[],"developer_share":"10%"}`
	assert.Nil(t, json.Unmarshal([]byte(raw), &msg))

	p := msg.Patch()
	if p.Whitelist == nil || len(*p.Whitelist) != 0 {
		t.Fatalf("want an empty whitelist replacement, got %v", p.Whitelist)
	}
	if p.Weights != nil || p.Admin != nil || p.BurnAddress != nil {
		t.Fatalf("unexpected fields in patch: %+v", p)
	}
	assert.Equal(t, Weight(1000), *p.DeveloperShare)
}

func TestUpdateConfigMsgBinary(t *testing.T) {
	f := newFixture()
	zero := Weight(0)
	noWeights := []WeightEntry{}
	cases := map[string]*UpdateConfigMsg{
		"zero developer share": {
			Metadata:       &feesplit.Metadata{Schema: 1},
			DeveloperShare: &zero,
		},
		"cleared weights": {
			Metadata: &feesplit.Metadata{Schema: 1},
			Weights:  &noWeights,
		},
		"addresses only": {
			Metadata:    &feesplit.Metadata{Schema: 1},
			Admin:       f.admin.Address(),
			BurnAddress: f.burn,
		},
		"complete": {
			Metadata:         &feesplit.Metadata{Schema: 1},
			Admin:            f.admin.Address(),
			BurnAddress:      f.burn,
			DeveloperAddress: f.dev,
			Whitelist:        &[]WhitelistEntry{{Address: f.addrA, Protocol: "A"}},
			Weights:          &[]WeightEntry{{Protocol: "A", Weight: 2500}},
			DeveloperShare:   &zero,
		},
	}
	for testName, msg := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := feesplit.MarshalBinary(msg)
			assert.Nil(t, err)
			var got UpdateConfigMsg
			assert.Nil(t, feesplit.UnmarshalBinary(raw, &got))
			assert.Equal(t, msg, &got)
		})
	}
}

func TestGenesis(t *testing.T) {
	f := newFixture()
	conf, err := json.Marshal(f.config())
	assert.Nil(t, err)
	raw, err := json.Marshal(map[string]json.RawMessage{PackageName: conf})
	assert.Nil(t, err)

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(feesplit.Options{"conf": raw}, db))
	got, err := Get(db)
	assert.Nil(t, err)
	assert.Equal(t, f.config(), got)

	// no configuration in genesis leaves the distributor uninstantiated
	db = store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(feesplit.Options{}, db))
	_, err = Get(db)
	assert.IsErr(t, errors.ErrNotFound, err)

	// invalid configuration fails the genesis
	bad := f.config()
	bad.Whitelist = nil
	conf, err = json.Marshal(bad)
	assert.Nil(t, err)
	raw, err = json.Marshal(map[string]json.RawMessage{PackageName: conf})
	assert.Nil(t, err)
	err = Initializer{}.FromGenesis(feesplit.Options{"conf": raw}, store.MemStore())
	assert.IsErr(t, ErrUnresolvedProtocol, err)
}
