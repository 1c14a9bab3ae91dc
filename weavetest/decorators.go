package weavetest

import "github.com/iov-one/feesplit"

// Decorator is a mock implementation of the feesplit.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ feesplit.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx, next feesplit.Checker) (*feesplit.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx, next feesplit.Deliverer) (*feesplit.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate returns a handler that is calling given decorator before the
// handler.
func Decorate(h feesplit.Handler, d feesplit.Decorator) feesplit.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn feesplit.Handler
	dc feesplit.Decorator
}

var _ feesplit.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
