package cash

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet holds all the coins owned by a single address.
type Wallet struct {
	Metadata *feesplit.Metadata `json:"metadata"`
	Coins    coin.Coins         `json:"coins"`
}

var _ orm.Model = (*Wallet)(nil)

// Validate requires that all coins are in alphabetical order
// and that each coin is valid in its own right.
//
// Zero amounts should never be saved.
func (w *Wallet) Validate() error {
	if err := w.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return w.Coins.Validate()
}

// Bucket is a type-safe wrapper around orm.ModelBucket
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Wallet{}),
	}
}

// Balance returns the coins owned by given address. An empty set is
// returned for an address that never received anything.
func (b Bucket) Balance(db feesplit.ReadOnlyKVStore, addr feesplit.Address) (coin.Coins, error) {
	var w Wallet
	switch err := b.One(db, addr, &w); {
	case err == nil:
		return w.Coins, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// Save stores given coins as the balance of an address. A wallet
// without any coins is removed.
func (b Bucket) Save(db feesplit.KVStore, addr feesplit.Address, coins coin.Coins) error {
	if coins.IsEmpty() {
		switch err := b.Delete(db, addr); {
		case err == nil, errors.ErrNotFound.Is(err):
			return nil
		default:
			return err
		}
	}
	w := Wallet{
		Metadata: &feesplit.Metadata{Schema: 1},
		Coins:    coins,
	}
	return b.Put(db, addr, &w)
}
