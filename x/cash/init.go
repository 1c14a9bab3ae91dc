package cash

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
type GenesisAccount struct {
	Address feesplit.Address `json:"address"`
	Coins   coin.Coins       `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ feesplit.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts feesplit.Options, db feesplit.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		coins, err := coin.NormalizeCoins(acct.Coins)
		if err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		held, err := bucket.Balance(db, acct.Address)
		if err != nil {
			return err
		}
		if held != nil {
			return errors.Wrapf(errors.ErrDuplicate, "account %s", acct.Address)
		}
		if err := bucket.Save(db, acct.Address, coins); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
