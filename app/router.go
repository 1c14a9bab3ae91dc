package app

import (
	"fmt"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

// Router dispatches a transaction to the handler registered for the
// path of its message.
type Router struct {
	routes map[string]feesplit.Handler
}

var (
	_ feesplit.Registry = (*Router)(nil)
	_ feesplit.Handler  = (*Router)(nil)
)

// NewRouter returns a router without any routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]feesplit.Handler, 10),
	}
}

// Handle registers a handler for the given message path. It panics on an
// invalid path or when the path was already registered.
func (r *Router) Handle(path string, h feesplit.Handler) {
	if !feesplit.IsValidPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the handler for the message path of the transaction.
func (r *Router) handler(tx feesplit.Tx) (feesplit.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load message")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "transaction without message")
	}
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", msg.Path())
	}
	return h, nil
}

// Check dispatches to the handler registered for the message path.
func (r *Router) Check(ctx feesplit.Context, store feesplit.KVStore, tx feesplit.Tx) (*feesplit.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the handler registered for the message path.
func (r *Router) Deliver(ctx feesplit.Context, store feesplit.KVStore, tx feesplit.Tx) (*feesplit.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, store, tx)
}
