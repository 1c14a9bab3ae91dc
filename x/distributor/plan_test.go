package distributor

import (
	"math"
	"math/rand"
	"testing"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/store"
	"github.com/iov-one/feesplit/weavetest/assert"
	"github.com/iov-one/feesplit/x/cash"
)

func TestPlanDistribution(t *testing.T) {
	f := newFixture()
	luna := func(n uint64) coin.Coin { return coin.NewCoin(n, "ULUNA") }

	cases := map[string]struct {
		conf    func() *Configuration
		balance uint64
		want    PayoutPlan
		wantErr *errors.Error
	}{
		"remainder is burned by default": {
			conf:    f.config,
			balance: 100,
			want: PayoutPlan{
				{Recipient: f.addrA, Amount: luna(40), Kind: ProtocolPayout, Protocol: "A"},
				{Recipient: f.addrB, Amount: luna(30), Kind: ProtocolPayout, Protocol: "B"},
				{Recipient: f.burn, Amount: luna(30), Kind: BurnPayout},
			},
		},
		"remainder split with the developer": {
			conf: func() *Configuration {
				c := f.config()
				c.DeveloperShare = 5000
				return c
			},
			balance: 100,
			want: PayoutPlan{
				{Recipient: f.addrA, Amount: luna(40), Kind: ProtocolPayout, Protocol: "A"},
				{Recipient: f.addrB, Amount: luna(30), Kind: ProtocolPayout, Protocol: "B"},
				{Recipient: f.burn, Amount: luna(15), Kind: BurnPayout},
				{Recipient: f.dev, Amount: luna(15), Kind: DeveloperPayout},
			},
		},
		"whole remainder to the developer": {
			conf: func() *Configuration {
				c := f.config()
				c.DeveloperShare = MaxWeight
				return c
			},
			balance: 10,
			want: PayoutPlan{
				{Recipient: f.addrA, Amount: luna(4), Kind: ProtocolPayout, Protocol: "A"},
				{Recipient: f.addrB, Amount: luna(3), Kind: ProtocolPayout, Protocol: "B"},
				{Recipient: f.dev, Amount: luna(3), Kind: DeveloperPayout},
			},
		},
		"rounding dust goes to burn": {
			conf: func() *Configuration {
				c := f.config()
				c.Weights = []WeightEntry{
					{Protocol: "A", Weight: 5000},
					{Protocol: "B", Weight: 5000},
				}
				return c
			},
			balance: 7,
			want: PayoutPlan{
				{Recipient: f.addrA, Amount: luna(3), Kind: ProtocolPayout, Protocol: "A"},
				{Recipient: f.addrB, Amount: luna(3), Kind: ProtocolPayout, Protocol: "B"},
				{Recipient: f.burn, Amount: luna(1), Kind: BurnPayout},
			},
		},
		"protocols are paid in lexical order": {
			conf: func() *Configuration {
				c := f.config()
				c.Weights = []WeightEntry{
					{Protocol: "B", Weight: 1000},
					{Protocol: "A", Weight: 9000},
				}
				return c
			},
			balance: 10,
			want: PayoutPlan{
				{Recipient: f.addrA, Amount: luna(9), Kind: ProtocolPayout, Protocol: "A"},
				{Recipient: f.addrB, Amount: luna(1), Kind: ProtocolPayout, Protocol: "B"},
			},
		},
		"coinciding recipients are merged": {
			conf: func() *Configuration {
				c := f.config()
				c.Whitelist[1].Address = f.burn
				c.DeveloperAddress = f.addrA
				c.DeveloperShare = 5000
				return c
			},
			balance: 100,
			want: PayoutPlan{
				{Recipient: f.addrA, Amount: luna(55), Kind: ProtocolPayout, Protocol: "A", Shares: []PayoutShare{
					{Kind: ProtocolPayout, Protocol: "A", Amount: 40},
					{Kind: DeveloperPayout, Amount: 15},
				}},
				{Recipient: f.burn, Amount: luna(45), Kind: ProtocolPayout, Protocol: "B", Shares: []PayoutShare{
					{Kind: ProtocolPayout, Protocol: "B", Amount: 30},
					{Kind: BurnPayout, Amount: 15},
				}},
			},
		},
		"developer paid through a protocol address": {
			conf: func() *Configuration {
				c := f.config()
				c.DeveloperAddress = f.addrA
				c.DeveloperShare = MaxWeight
				return c
			},
			balance: 100,
			want: PayoutPlan{
				{Recipient: f.addrA, Amount: luna(70), Kind: ProtocolPayout, Protocol: "A", Shares: []PayoutShare{
					{Kind: ProtocolPayout, Protocol: "A", Amount: 40},
					{Kind: DeveloperPayout, Amount: 30},
				}},
				{Recipient: f.addrB, Amount: luna(30), Kind: ProtocolPayout, Protocol: "B"},
			},
		},
		"zero balance": {
			conf:    f.config,
			balance: 0,
			want:    nil,
		},
		"no weights": {
			conf: func() *Configuration {
				c := f.config()
				c.Weights = nil
				return c
			},
			balance: 100,
			want: PayoutPlan{
				{Recipient: f.burn, Amount: luna(100), Kind: BurnPayout},
			},
		},
		"unresolved protocol": {
			conf: func() *Configuration {
				c := f.config()
				c.Whitelist = c.Whitelist[:1]
				return c
			},
			balance: 100,
			wantErr: ErrUnresolvedProtocol,
		},
		"unresolved protocol with zero balance": {
			conf: func() *Configuration {
				c := f.config()
				c.Whitelist = nil
				return c
			},
			balance: 0,
			wantErr: ErrUnresolvedProtocol,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			plan, err := PlanDistribution(luna(tc.balance), tc.conf())
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, plan)
		})
	}
}

func TestPlanDistributionConservation(t *testing.T) {
	f := newFixture()
	rnd := rand.New(rand.NewSource(1))

	balances := []uint64{0, 1, 2, 3, 99, 100, 101, 9999, 10001, math.MaxUint64 - 1, math.MaxUint64}
	for i := 0; i < 200; i++ {
		balances = append(balances, rnd.Uint64())
	}

	for i := 0; i < 50; i++ {
		c := f.config()
		a := Weight(rnd.Intn(BasisPoints + 1))
		b := Weight(rnd.Intn(int(MaxWeight-a) + 1))
		c.Weights = []WeightEntry{{Protocol: "A", Weight: a}, {Protocol: "B", Weight: b}}
		c.DeveloperShare = Weight(rnd.Intn(BasisPoints + 1))

		for _, bal := range balances {
			balance := coin.NewCoin(bal, "ULUNA")
			plan, err := PlanDistribution(balance, c)
			assert.Nil(t, err)
			total, err := plan.Total("ULUNA")
			assert.Nil(t, err)
			assert.Equal(t, balance, total)

			seen := make(map[string]bool)
			for _, po := range plan {
				if po.Amount.IsZero() {
					t.Fatalf("zero payout in plan %v", plan)
				}
				var parts uint64
				for _, part := range po.Parts() {
					parts += part.Amount
				}
				if parts != po.Amount.Amount {
					t.Fatalf("parts of %v sum up to %d", po, parts)
				}
				if seen[po.Recipient.String()] {
					t.Fatalf("recipient %s paid twice", po.Recipient)
				}
				seen[po.Recipient.String()] = true
			}
		}
	}
}

func TestDistribute(t *testing.T) {
	f := newFixture()
	db := store.MemStore()
	ctrl := cash.NewController()

	_, err := Distribute(db, ctrl, "ULUNA")
	assert.IsErr(t, errors.ErrNotFound, err)

	c := f.config()
	c.DeveloperShare = 5000
	assert.Nil(t, Instantiate(db, c))

	assert.Nil(t, ctrl.IssueCoins(db, Account(), coin.NewCoin(100, "ULUNA")))
	assert.Nil(t, ctrl.IssueCoins(db, Account(), coin.NewCoin(9, "ATOM")))

	plan, err := Distribute(db, ctrl, "ULUNA")
	assert.Nil(t, err)
	assert.Equal(t, 4, len(plan))

	wantBalances := map[string]uint64{
		f.addrA.String(): 40,
		f.addrB.String(): 30,
		f.burn.String():  15,
		f.dev.String():   15,
	}
	for _, addr := range []feesplit.Address{f.addrA, f.addrB, f.burn, f.dev, Account()} {
		held, err := ctrl.Balance(db, addr)
		assert.Nil(t, err)
		assert.Equal(t, coin.NewCoin(wantBalances[addr.String()], "ULUNA"), held.AmountOf("ULUNA"))
	}

	// other denominations are untouched
	held, err := ctrl.Balance(db, Account())
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(9, "ATOM"), held.AmountOf("ATOM"))

	// nothing left to distribute
	plan, err = Distribute(db, ctrl, "ULUNA")
	assert.Nil(t, err)
	assert.Equal(t, 0, len(plan))

	_, err = Distribute(db, ctrl, "$")
	assert.IsErr(t, errors.ErrCurrency, err)
}

func TestDistributeTransferFailure(t *testing.T) {
	f := newFixture()
	db := store.MemStore()
	assert.Nil(t, Instantiate(db, f.config()))
	ctrl := cash.NewController()
	assert.Nil(t, ctrl.IssueCoins(db, Account(), coin.NewCoin(100, "ULUNA")))

	cache := db.CacheWrap()
	_, err := Distribute(cache, &failingController{CashController: ctrl, failAt: 1}, "ULUNA")
	assert.IsErr(t, ErrTransferFailed, err)
	assert.IsErr(t, errors.ErrDatabase, err)
	if code, _ := errors.ABCIInfo(err, false); code != ErrTransferFailed.ABCICode() {
		t.Fatalf("want ABCI code %d, got %d", ErrTransferFailed.ABCICode(), code)
	}
	cache.Discard()

	// The ledger refusing a payout keeps its reason.
	cache = db.CacheWrap()
	overstated := overstatingController{CashController: ctrl, extra: coin.NewCoin(1000, "ULUNA")}
	_, err = Distribute(cache, overstated, "ULUNA")
	assert.IsErr(t, ErrTransferFailed, err)
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
	cache.Discard()

	// The first transfer happened inside the discarded cache only.
	held, err := ctrl.Balance(db, f.addrA)
	assert.Nil(t, err)
	assert.Equal(t, true, held.IsEmpty())
	held, err = ctrl.Balance(db, Account())
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(100, "ULUNA"), held.AmountOf("ULUNA"))
}

func TestDistributeUnresolvedMakesNoTransfer(t *testing.T) {
	f := newFixture()
	db := store.MemStore()

	// A broken record can only be written bypassing validation.
	c := f.config()
	c.Whitelist = c.Whitelist[:1]
	raw, err := feesplit.MarshalBinary(c)
	assert.Nil(t, err)
	assert.Nil(t, db.Set([]byte("_c:distributor"), raw))

	ctrl := &failingController{CashController: cash.NewController(), failAt: -1}
	assert.Nil(t, cash.NewController().IssueCoins(db, Account(), coin.NewCoin(100, "ULUNA")))

	_, err = Distribute(db, ctrl, "ULUNA")
	assert.IsErr(t, ErrUnresolvedProtocol, err)
	assert.Equal(t, 0, ctrl.calls)
}
