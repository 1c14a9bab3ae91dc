package sigs

import (
	"github.com/iov-one/feesplit"
)

// StdTx is a minimal implementation of a signed transaction.
type StdTx struct {
	feesplit.Tx
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{Payload: payload}
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []feesplit.Condition
}

var _ feesplit.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &feesplit.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &feesplit.DeliverResult{}, nil
}
