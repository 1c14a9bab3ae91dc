/*
Package app links together the ledger, the signature verification and
the distributor into a runnable ABCI application.
*/
package app

import (
	"context"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/app"
	"github.com/iov-one/feesplit/commands/server"
	"github.com/iov-one/feesplit/store"
	"github.com/iov-one/feesplit/x"
	"github.com/iov-one/feesplit/x/cash"
	"github.com/iov-one/feesplit/x/distributor"
	"github.com/iov-one/feesplit/x/sigs"
	"github.com/iov-one/feesplit/x/utils"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Name is returned by the ABCI Info call.
const Name = "feesplit"

// Authenticator returns the authentication used by all handlers, based on
// public key signatures.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns the decorators every transaction passes through before it
// is routed.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		// Anyone may trigger a distribution, so unsigned transactions
		// are passed along. Handlers that require a signer reject them.
		sigs.NewDecorator().AllowMissingSigs(),
		utils.NewActionTagger(),
		// A failing message must not leave partial writes behind.
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching all supported messages.
func Router(authFn x.Authenticator, ctrl cash.Controller) *app.Router {
	r := app.NewRouter()
	cash.RegisterRoutes(r, authFn, ctrl)
	distributor.RegisterRoutes(r, authFn, ctrl)
	return r
}

// QueryRouter exposes "/auth", "/wallets", "/distributor/config" and
// "/distributor/account".
func QueryRouter() feesplit.QueryRouter {
	r := feesplit.NewQueryRouter()
	r.RegisterAll(
		sigs.RegisterQuery,
		cash.RegisterQuery,
		distributor.RegisterQuery,
	)
	return r
}

// Stack wires the standard router with the standard decorator chain.
func Stack() feesplit.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, cash.NewController()))
}

// Initializers returns all genesis initializers in the order they run.
func Initializers() feesplit.Initializer {
	return app.ChainInitializers(
		cash.Initializer{},
		distributor.Initializer{},
	)
}

// Application constructs the ABCI application on top of the given
// store.
func Application(name string, h feesplit.Handler, decoder feesplit.TxDecoder,
	kv feesplit.CommitKVStore, debug bool) app.BaseApp {
	sa := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	sa.WithInit(Initializers())
	return app.NewBaseApp(sa, decoder, h, debug)
}

// GenerateApp creates the application for the start command. State is
// kept in memory.
func GenerateApp(options *server.Options) (abci.Application, error) {
	application := Application(Name, Stack(), TxDecoder, store.NewCommitStore(), options.Debug)
	application.WithLogger(options.Logger)
	return application, nil
}
