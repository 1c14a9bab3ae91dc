package weavetest

import "github.com/iov-one/feesplit"

// Handler is a mock implementation of the feesplit.Handler interface. It
// returns the configured results and counts calls.
type Handler struct {
	checkCall   int
	CheckResult feesplit.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult feesplit.DeliverResult
	DeliverErr    error

	// Write if set is stored in the database before returning.
	Write *feesplit.Model
}

var _ feesplit.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db feesplit.KVStore) error {
	if h.Write == nil {
		return nil
	}
	return db.Set(h.Write.Key, h.Write.Value)
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// PanicHandler panics with the configured value on every call.
type PanicHandler struct {
	Value interface{}
}

var _ feesplit.Handler = PanicHandler{}

func (h PanicHandler) Check(feesplit.Context, feesplit.KVStore, feesplit.Tx) (*feesplit.CheckResult, error) {
	panic(h.Value)
}

func (h PanicHandler) Deliver(feesplit.Context, feesplit.KVStore, feesplit.Tx) (*feesplit.DeliverResult, error) {
	panic(h.Value)
}
