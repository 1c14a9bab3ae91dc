package distributor

import (
	"encoding/json"
	"fmt"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/gconf"
	"github.com/iov-one/feesplit/x"
)

const (
	instantiateCost          int64 = 100
	updateConfigCost         int64 = 100
	distributePerPayoutCost  int64 = 50
	distributeMinPayoutCount int64 = 2
)

// RegisterRoutes registers handlers for distributor message processing.
func RegisterRoutes(r feesplit.Registry, auth x.Authenticator, ctrl CashController) {
	r.Handle(pathInstantiateMsg, &instantiateHandler{})
	r.Handle(pathDistributeMsg, &distributeHandler{ctrl: ctrl})
	r.Handle(pathUpdateConfigMsg, &updateConfigHandler{auth: auth})
}

// RegisterQuery exposes the configuration under /distributor/config and the
// address of the distributor account under /distributor/account.
func RegisterQuery(qr feesplit.QueryRouter) {
	qr.Register("/distributor/config", feesplit.QueryHandlerFunc(queryConfig))
	qr.Register("/distributor/account", feesplit.QueryHandlerFunc(queryAccount))
}

// queryConfig returns the stored configuration record as it is.
func queryConfig(db feesplit.ReadOnlyKVStore, mod string, data []byte) ([]feesplit.Model, error) {
	if mod != feesplit.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod: %q", mod)
	}
	key := gconf.Key(PackageName)
	raw, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return []feesplit.Model{feesplit.Pair(key, raw)}, nil
}

func queryAccount(db feesplit.ReadOnlyKVStore, mod string, data []byte) ([]feesplit.Model, error) {
	if mod != feesplit.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod: %q", mod)
	}
	return []feesplit.Model{feesplit.Pair([]byte("account"), Account())}, nil
}

type instantiateHandler struct{}

func (h *instantiateHandler) Check(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.CheckResult, error) {
	if _, err := h.validate(db, tx); err != nil {
		return nil, err
	}
	return &feesplit.CheckResult{GasAllocated: instantiateCost}, nil
}

func (h *instantiateHandler) Deliver(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.DeliverResult, error) {
	msg, err := h.validate(db, tx)
	if err != nil {
		return nil, err
	}
	if err := Instantiate(db, msg.Configuration()); err != nil {
		return nil, err
	}
	feesplit.GetLogger(ctx).Info("distributor instantiated", "admin", msg.Admin)
	return &feesplit.DeliverResult{Data: Account()}, nil
}

func (h *instantiateHandler) validate(db feesplit.KVStore, tx feesplit.Tx) (*InstantiateMsg, error) {
	var msg InstantiateMsg
	if err := feesplit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	switch ok, err := gconf.Exists(db, PackageName); {
	case err != nil:
		return nil, err
	case ok:
		return nil, errors.Wrap(errors.ErrDuplicate, "already instantiated")
	}
	return &msg, nil
}

type distributeHandler struct {
	ctrl CashController
}

func (h *distributeHandler) Check(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.CheckResult, error) {
	if _, err := h.validate(tx); err != nil {
		return nil, err
	}
	conf, err := Get(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load configuration")
	}
	payouts := int64(len(conf.Weights)) + distributeMinPayoutCount
	return &feesplit.CheckResult{GasAllocated: payouts * distributePerPayoutCost}, nil
}

func (h *distributeHandler) Deliver(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.DeliverResult, error) {
	msg, err := h.validate(tx)
	if err != nil {
		return nil, err
	}
	plan, err := Distribute(db, h.ctrl, msg.Denom)
	observeDistribution(plan, err)
	if err != nil {
		return nil, errors.Wrap(err, "cannot distribute")
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	feesplit.GetLogger(ctx).Info("distributed", "denom", msg.Denom, "payouts", len(plan))
	return &feesplit.DeliverResult{
		Data: raw,
		Log:  fmt.Sprintf("%d payouts of %s", len(plan), msg.Denom),
	}, nil
}

func (h *distributeHandler) validate(tx feesplit.Tx) (*DistributeMsg, error) {
	var msg DistributeMsg
	if err := feesplit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}

type updateConfigHandler struct {
	auth x.Authenticator
}

func (h *updateConfigHandler) Check(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.CheckResult, error) {
	msg, err := h.validate(tx)
	if err != nil {
		return nil, err
	}
	// Check state mirrors the delivered state.
	if _, err := Update(db, x.MainSignerAddress(ctx, h.auth), msg.Patch()); err != nil {
		return nil, err
	}
	return &feesplit.CheckResult{GasAllocated: updateConfigCost}, nil
}

func (h *updateConfigHandler) Deliver(ctx feesplit.Context, db feesplit.KVStore, tx feesplit.Tx) (*feesplit.DeliverResult, error) {
	msg, err := h.validate(tx)
	if err != nil {
		return nil, err
	}
	caller := x.MainSignerAddress(ctx, h.auth)
	_, err = Update(db, caller, msg.Patch())
	configUpdatesTotal.WithLabelValues(statusLabel(err)).Inc()
	if err != nil {
		return nil, err
	}
	feesplit.GetLogger(ctx).Info("distributor configuration updated", "admin", caller)
	return &feesplit.DeliverResult{}, nil
}

func (h *updateConfigHandler) validate(tx feesplit.Tx) (*UpdateConfigMsg, error) {
	var msg UpdateConfigMsg
	if err := feesplit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}
