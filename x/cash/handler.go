package cash

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r feesplit.Registry, auth x.Authenticator, control Controller) {
	r.Handle(SendMsg{}.Path(), NewSendHandler(auth, control))
}

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr feesplit.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler will handle sending coins
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ feesplit.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SendHandler) Check(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &feesplit.CheckResult{GasAllocated: sendTxCost}, nil
}

// Deliver moves the tokens from source to receiver if
// all preconditions are met
func (h SendHandler) Deliver(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(db, msg.Source, msg.Dest, *msg.Amount); err != nil {
		return nil, err
	}
	return &feesplit.DeliverResult{}, nil
}

func (h SendHandler) validate(ctx feesplit.Context, tx feesplit.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := feesplit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	return &msg, nil
}
