package distributor

import "github.com/iov-one/feesplit/errors"

var (
	// ErrInvalidWeight is returned when a weight is out of range or the
	// weights of a configuration sum up to more than 100%.
	ErrInvalidWeight = errors.Register(1200, "invalid weight")

	// ErrDuplicateProtocol is returned when a protocol is declared more
	// than once.
	ErrDuplicateProtocol = errors.Register(1201, "duplicate protocol")

	// ErrUnresolvedProtocol is returned when a weighted protocol has no
	// payout address.
	ErrUnresolvedProtocol = errors.Register(1202, "unresolved protocol")

	// ErrTransferFailed is returned when the ledger rejected a payout.
	ErrTransferFailed = errors.Register(1203, "transfer failed")
)
