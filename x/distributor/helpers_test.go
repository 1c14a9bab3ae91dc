package distributor

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/weavetest"
)

// fixture holds addresses of all parties of a typical configuration.
type fixture struct {
	admin feesplit.Condition
	burn  feesplit.Address
	dev   feesplit.Address
	addrA feesplit.Address
	addrB feesplit.Address
}

func newFixture() fixture {
	return fixture{
		admin: weavetest.NewCondition(),
		burn:  weavetest.NewCondition().Address(),
		dev:   weavetest.NewCondition().Address(),
		addrA: weavetest.NewCondition().Address(),
		addrB: weavetest.NewCondition().Address(),
	}
}

// config returns a configuration paying 40% to protocol A and 30% to
// protocol B.
func (f fixture) config() *Configuration {
	return &Configuration{
		Metadata:         &feesplit.Metadata{Schema: 1},
		Admin:            f.admin.Address(),
		BurnAddress:      f.burn,
		DeveloperAddress: f.dev,
		Whitelist: []WhitelistEntry{
			{Address: f.addrA, Protocol: "A"},
			{Address: f.addrB, Protocol: "B"},
		},
		Weights: []WeightEntry{
			{Protocol: "A", Weight: 4000},
			{Protocol: "B", Weight: 3000},
		},
	}
}

// failingController wraps a controller and fails the transfer with given
// index.
type failingController struct {
	CashController
	failAt int
	calls  int
}

func (c *failingController) MoveCoins(db feesplit.KVStore, src, dst feesplit.Address, amount coin.Coin) error {
	defer func() { c.calls++ }()
	if c.calls == c.failAt {
		return errors.Wrap(errors.ErrDatabase, "ledger unavailable")
	}
	return c.CashController.MoveCoins(db, src, dst, amount)
}

// overstatingController reports a balance larger than the one held, so
// that the ledger rejects the transfers.
type overstatingController struct {
	CashController
	extra coin.Coin
}

func (c overstatingController) Balance(db feesplit.ReadOnlyKVStore, addr feesplit.Address) (coin.Coins, error) {
	held, err := c.CashController.Balance(db, addr)
	if err != nil {
		return nil, err
	}
	return held.Combine(coin.Coins{&c.extra})
}
