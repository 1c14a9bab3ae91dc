package app

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/x/cash"
	"github.com/iov-one/feesplit/x/distributor"
	"github.com/iov-one/feesplit/x/sigs"
)

// Tx carries exactly one message together with the signatures
// authorizing it. Only one of the message fields may be set. On the wire
// the transaction is binary encoded, the JSON form is used by testgen.
type Tx struct {
	CashSendMsg                *cash.SendMsg                `json:"cash_send,omitempty"`
	DistributorInstantiateMsg  *distributor.InstantiateMsg  `json:"distributor_instantiate,omitempty"`
	DistributorDistributeMsg   *distributor.DistributeMsg   `json:"distributor_distribute,omitempty"`
	DistributorUpdateConfigMsg *distributor.UpdateConfigMsg `json:"distributor_update_config,omitempty"`

	Signatures []*sigs.StdSignature `json:"signatures,omitempty"`
}

var (
	_ feesplit.Tx   = (*Tx)(nil)
	_ sigs.SignedTx = (*Tx)(nil)
)

// TxDecoder parses the binary encoding of a Tx.
func TxDecoder(raw []byte) (feesplit.Tx, error) {
	var tx Tx
	if err := feesplit.UnmarshalBinary(raw, &tx); err != nil {
		return nil, errors.Wrap(err, "decode transaction")
	}
	return &tx, nil
}

// NewTx returns an unsigned transaction carrying the given message.
func NewTx(msg feesplit.Msg) (*Tx, error) {
	var tx Tx
	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.CashSendMsg = m
	case *distributor.InstantiateMsg:
		tx.DistributorInstantiateMsg = m
	case *distributor.DistributeMsg:
		tx.DistributorDistributeMsg = m
	case *distributor.UpdateConfigMsg:
		tx.DistributorUpdateConfigMsg = m
	default:
		return nil, errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return &tx, nil
}

// GetMsg returns the single message carried by the transaction.
func (tx *Tx) GetMsg() (feesplit.Msg, error) {
	var msgs []feesplit.Msg
	if tx.CashSendMsg != nil {
		msgs = append(msgs, tx.CashSendMsg)
	}
	if tx.DistributorInstantiateMsg != nil {
		msgs = append(msgs, tx.DistributorInstantiateMsg)
	}
	if tx.DistributorDistributeMsg != nil {
		msgs = append(msgs, tx.DistributorDistributeMsg)
	}
	if tx.DistributorUpdateConfigMsg != nil {
		msgs = append(msgs, tx.DistributorUpdateConfigMsg)
	}

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "transaction without message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "transaction with %d messages", len(msgs))
	}
}

// GetSignBytes returns the binary encoding of the transaction without its
// signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := *tx
	unsigned.Signatures = nil
	return feesplit.MarshalBinary(&unsigned)
}

// GetSignatures returns all signatures attached to the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// Marshal returns the wire encoding of the transaction.
func (tx *Tx) Marshal() ([]byte, error) {
	return feesplit.MarshalBinary(tx)
}
