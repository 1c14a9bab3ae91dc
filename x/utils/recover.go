package utils

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ feesplit.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (Recovery) Check(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx, next feesplit.Checker) (_ *feesplit.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, db, tx)
}

// Deliver turns panics into normal errors
func (Recovery) Deliver(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx, next feesplit.Deliverer) (_ *feesplit.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}
