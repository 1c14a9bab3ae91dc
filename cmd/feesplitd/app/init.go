package app

import (
	"encoding/json"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/x/cash"
	"github.com/iov-one/feesplit/x/distributor"
)

const (
	defaultDenom  = "IOV"
	initialSupply = 123456789
)

// BurnAddress receives every amount that is burned by default. No key
// controls it.
var BurnAddress = feesplit.NewCondition("dist", "burn", []byte("burn")).Address()

// GenInitOptions produces the app_state for a development chain.
//
// The first argument is the admin address. It owns the initial supply and
// administers the distributor. The optional second argument overrides the
// denomination of the initial supply.
func GenInitOptions(args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(errors.ErrInput, "admin address required")
	}
	admin, err := feesplit.ParseAddress(args[0])
	if err != nil {
		return nil, errors.Wrap(err, "admin address")
	}
	if admin == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "admin address")
	}
	denom := defaultDenom
	if len(args) > 1 {
		denom = args[1]
	}
	if !coin.IsDenom(denom) {
		return nil, errors.Wrapf(errors.ErrCurrency, "invalid denomination %q", denom)
	}

	conf := distributor.Configuration{
		Metadata:         &feesplit.Metadata{Schema: 1},
		Admin:            admin,
		BurnAddress:      BurnAddress,
		DeveloperAddress: admin,
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "distributor configuration")
	}

	type dict map[string]interface{}
	return json.Marshal(dict{
		"cash": []cash.GenesisAccount{
			{
				Address: admin,
				Coins:   coin.Coins{coin.NewCoinp(initialSupply, denom)},
			},
		},
		"conf": dict{
			distributor.PackageName: conf,
		},
	})
}
