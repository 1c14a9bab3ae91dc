package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp holds the application state and everything needed to answer
// queries, initialize from genesis and commit blocks.
//
// It is meant to be embedded by BaseApp. ABCI calls that cannot return
// an error (InitChain, Commit) panic on failure, as there is no way for
// the node to recover from them.
type StoreApp struct {
	logger log.Logger

	// name is returned from abci.Info
	name string

	store *CommitStore

	initializer feesplit.Initializer
	queryRouter feesplit.QueryRouter

	// chainID is loaded from the db on start and saved once on
	// InitChain
	chainID string

	// baseContext is valid for the lifetime of the app
	baseContext feesplit.Context

	// blockContext is reset on every BeginBlock
	blockContext feesplit.Context

	debug bool
}

// NewStoreApp loads the chain id and height from the given store and
// returns an app ready to serve. It panics if the store cannot be read.
func NewStoreApp(name string, store feesplit.CommitKVStore,
	queryRouter feesplit.QueryRouter, baseContext feesplit.Context) *StoreApp {
	s := &StoreApp{
		name:        name,
		store:       NewCommitStore(store),
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())

	chainID, err := loadChainID(s.DeliverStore())
	if err != nil {
		panic(err)
	}
	s.chainID = chainID
	if s.chainID != "" {
		s.baseContext = feesplit.WithChainID(s.baseContext, s.chainID)
	}

	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.blockContext = feesplit.WithHeight(s.baseContext, info.Version)
	return s
}

// GetChainID returns the chain id set on genesis, or an empty string.
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit sets the genesis initializer.
func (s *StoreApp) WithInit(init feesplit.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger sets the logger on the app and on the base context.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.baseContext = feesplit.WithLogger(s.baseContext, logger)
	s.logger = logger
	return s
}

// WithDebug makes error responses include stack traces.
func (s *StoreApp) WithDebug(debug bool) *StoreApp {
	s.debug = debug
	return s
}

// Logger returns the application logger.
func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext returns the context of the block being processed.
func (s *StoreApp) BlockContext() feesplit.Context {
	return s.blockContext
}

// DeliverStore returns the current DeliverTx cache.
func (s *StoreApp) DeliverStore() feesplit.CacheableKVStore {
	return s.store.DeliverStore()
}

// CheckStore returns the current CheckTx cache.
func (s *StoreApp) CheckStore() feesplit.CacheableKVStore {
	return s.store.CheckStore()
}

// parseAppState is called from InitChain, the first time the chain
// starts. Restarts never call it.
func (s *StoreApp) parseAppState(data []byte, chainID string) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "app state already loaded for chain %q", s.chainID)
	}
	if len(data) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state not set in genesis")
	}
	var appState feesplit.Options
	if err := json.Unmarshal(data, &appState); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.baseContext = feesplit.WithChainID(s.baseContext, chainID)

	if s.initializer == nil {
		return nil
	}
	return s.initializer.FromGenesis(appState, s.DeliverStore())
}

// Info implements abci.Application. It returns the last committed
// height and hash along with the app name.
func (s *StoreApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Info synced",
		"height", info.Version,
		"hash", fmt.Sprintf("%X", info.Hash))

	return abci.ResponseInfo{
		Data:             s.name,
		Version:          feesplit.Version(),
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

// SetOption implements abci.Application. Runtime options are not
// supported.
func (s *StoreApp) SetOption(res abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

/*
Query reads data from the committed state.

The path selects a registered query handler and may be followed by
"?prefix" to request a prefix scan. Data is interpreted by the handler,
usually as a key.

Key and Value of the response are always serialized ResultSets of equal
length, so a single interface serves zero or many results.
*/
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := splitPath(req.Path)
	qh := s.queryRouter.Handler(path)
	if qh == nil {
		err := errors.Wrapf(errors.ErrNotFound, "unknown query path %q", req.Path)
		return feesplit.QueryError(err, s.debug)
	}

	info, err := s.store.CommitInfo()
	if err != nil {
		return feesplit.QueryError(err, s.debug)
	}
	// Queries must never see uncommitted changes.
	db := s.store.committed.CacheWrap()
	defer db.Discard()

	models, err := qh.Query(db, mod, req.Data)
	if err != nil {
		return feesplit.QueryError(err, s.debug)
	}

	res := abci.ResponseQuery{Height: info.Version}
	if res.Key, err = ResultsFromKeys(models).Marshal(); err != nil {
		return feesplit.QueryError(err, s.debug)
	}
	if res.Value, err = ResultsFromValues(models).Marshal(); err != nil {
		return feesplit.QueryError(err, s.debug)
	}
	return res
}

// splitPath splits the path from the query modifier (everything after
// the ?).
func splitPath(path string) (string, string) {
	var mod string
	chunks := strings.SplitN(path, "?", 2)
	if len(chunks) == 2 {
		path = chunks[0]
		mod = chunks[1]
	}
	return path, mod
}

// Commit implements abci.Application.
func (s *StoreApp) Commit() abci.ResponseCommit {
	commitID, err := s.store.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("Commit synced",
		"height", commitID.Version,
		"hash", fmt.Sprintf("%X", commitID.Hash),
	)
	return abci.ResponseCommit{Data: commitID.Hash}
}

// InitChain implements abci.Application. It stores the chain id and
// runs all genesis initializers.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.parseAppState(req.AppStateBytes, req.ChainId); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

// BeginBlock implements abci.Application. It sets up the block context.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := feesplit.WithHeader(s.baseContext, req.Header)
	ctx = feesplit.WithHeight(ctx, req.Header.GetHeight())
	s.blockContext = ctx
	return abci.ResponseBeginBlock{}
}

// EndBlock implements abci.Application. Validator set changes are not
// supported.
func (s *StoreApp) EndBlock(_ abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}
