package utils

import (
	"github.com/iov-one/feesplit"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionKey is used by ActionTagger as the Key in the Tag it appends
const ActionKey = "action"

// ActionTagger will inspect the message being executed and
// add a tag `action = msg.Path()` to a successful result, so clients can
// subscribe to eg. all distributions.
type ActionTagger struct{}

var _ feesplit.Decorator = ActionTagger{}

// NewActionTagger creates a ActionTagger decorator
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check just passes the request along
func (ActionTagger) Check(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx, next feesplit.Checker) (*feesplit.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends a tag on the result if there is a success.
func (ActionTagger) Deliver(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx, next feesplit.Deliverer) (*feesplit.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, common.KVPair{
		Key:   []byte(ActionKey),
		Value: []byte(msg.Path()),
	})
	return res, nil
}
