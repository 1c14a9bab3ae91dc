package utils

import (
	"time"

	"github.com/iov-one/feesplit"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ feesplit.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> info, success -> debug
func (Logging) Check(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx, next feesplit.Checker) (*feesplit.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (Logging) Deliver(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx, next feesplit.Deliverer) (*feesplit.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx feesplit.Context, tx feesplit.Tx, start time.Time, msg string, err error, lowPrio bool) {
	logger := feesplit.GetLogger(ctx).With(
		"path", feesplit.GetPath(tx),
		"duration", time.Since(start)/time.Microsecond,
	)

	// An empty message is still logged, the key values carry the details.
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
