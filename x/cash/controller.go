package cash

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/coin"
	"github.com/iov-one/feesplit/errors"
)

// Controller is the functionality needed by cash.Handler and any other
// extension that moves funds.
type Controller interface {
	Balance(feesplit.ReadOnlyKVStore, feesplit.Address) (coin.Coins, error)
	MoveCoins(feesplit.KVStore, feesplit.Address, feesplit.Address, coin.Coin) error
	IssueCoins(feesplit.KVStore, feesplit.Address, coin.Coin) error
}

// BaseController is a simple implementation of Controller on top of the
// wallet bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the default wallet bucket.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

// Balance returns the coins held by given address.
func (c BaseController) Balance(db feesplit.ReadOnlyKVStore, addr feesplit.Address) (coin.Coins, error) {
	return c.bucket.Balance(db, addr)
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db feesplit.KVStore, src, dest feesplit.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %s", amount)
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}

	sender, err := c.bucket.Balance(db, src)
	if err != nil {
		return errors.Wrap(err, "cannot load sender")
	}
	if !sender.Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s cannot pay %s", src, amount)
	}
	sender, err = sender.Subtract(amount)
	if err != nil {
		return err
	}
	if err := c.bucket.Save(db, src, sender); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}

	// Recipient is loaded after the sender is saved so that a transfer to
	// self is a noop.
	recipient, err := c.bucket.Balance(db, dest)
	if err != nil {
		return errors.Wrap(err, "cannot load recipient")
	}
	recipient, err = recipient.Add(amount)
	if err != nil {
		return err
	}
	if err := c.bucket.Save(db, dest, recipient); err != nil {
		return errors.Wrap(err, "cannot save recipient")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db feesplit.KVStore, dest feesplit.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %s", amount)
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	recipient, err := c.bucket.Balance(db, dest)
	if err != nil {
		return err
	}
	recipient, err = recipient.Add(amount)
	if err != nil {
		return err
	}
	return c.bucket.Save(db, dest, recipient)
}
