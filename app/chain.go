package app

import (
	"reflect"

	"github.com/iov-one/feesplit"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []feesplit.Decorator
}

/*
ChainDecorators takes a chain of decorators and, once a final Handler
(usually a Router) is given, returns a Handler that runs the whole stack.

  app.ChainDecorators(
    utils.NewRecovery(),
    utils.NewLogging(),
    sigs.NewDecorator(),
    utils.NewSavepoint().OnDeliver(),
  ).WithHandler(
    app.NewRouter(),
  )
*/
func ChainDecorators(chain ...feesplit.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new chain with the given decorators appended. Nil
// decorators are skipped.
func (d Decorators) Chain(chain ...feesplit.Decorator) Decorators {
	next := make([]feesplit.Decorator, 0, len(d.chain)+len(chain))
	next = append(next, d.chain...)
	for _, dec := range chain {
		if isNil(dec) {
			continue
		}
		next = append(next, dec)
	}
	return Decorators{chain: next}
}

func isNil(d feesplit.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler resolves the stack. The first decorator in the chain is the
// outermost one.
func (d Decorators) WithHandler(h feesplit.Handler) feesplit.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step runs one decorator around the rest of the stack.
type step struct {
	d    feesplit.Decorator
	next feesplit.Handler
}

var _ feesplit.Handler = step{}

func (s step) Check(ctx feesplit.Context, store feesplit.KVStore, tx feesplit.Tx) (*feesplit.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

func (s step) Deliver(ctx feesplit.Context, store feesplit.KVStore, tx feesplit.Tx) (*feesplit.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
