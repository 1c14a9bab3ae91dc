package app

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp adds DeliverTx and CheckTx processing to the storage and query
// functionality of StoreApp.
type BaseApp struct {
	*StoreApp
	decoder feesplit.TxDecoder
	handler feesplit.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application.
func NewBaseApp(
	store *StoreApp,
	decoder feesplit.TxDecoder,
	handler feesplit.Handler,
	debug bool,
) BaseApp {
	store.WithDebug(debug)
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx decodes the transaction and passes it to the handler
// together with the deliver store.
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return feesplit.DeliverTxError(err, b.debug)
	}

	ctx := feesplit.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", feesplit.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return feesplit.DeliverOrError(res, err, b.debug)
}

// CheckTx decodes the transaction and passes it to the handler together
// with the check store.
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return feesplit.CheckTxError(err, b.debug)
	}

	ctx := feesplit.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", feesplit.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return feesplit.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder and turns any panic into an error.
func (b BaseApp) loadTx(txBytes []byte) (tx feesplit.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
