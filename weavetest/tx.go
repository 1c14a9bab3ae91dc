package weavetest

import "github.com/iov-one/feesplit"

// Tx represents a transaction carrying a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg feesplit.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ feesplit.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (feesplit.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg is a message mock that can be routed to any path.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ feesplit.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
