package app

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

// CommitStore wraps a CommitKVStore and maintains separate cache wraps
// for the deliver and check phases of a block.
type CommitStore struct {
	committed feesplit.CommitKVStore
	deliver   feesplit.KVCacheWrap
	check     feesplit.KVCacheWrap
}

// NewCommitStore sets up the deliver and check caches on top of the
// given committed state.
func NewCommitStore(store feesplit.CommitKVStore) *CommitStore {
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
		check:     store.CacheWrap(),
	}
}

// CommitInfo returns the current version and hash.
func (cs *CommitStore) CommitInfo() (feesplit.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit flushes the deliver cache into the committed store, commits it
// and sets up fresh caches. Anything written to the check cache is lost.
func (cs *CommitStore) Commit() (feesplit.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return feesplit.CommitID{}, errors.Wrap(err, "flush deliver")
	}
	cs.check.Discard()

	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return res, nil
}

// CheckStore returns the store used during CheckTx.
func (cs *CommitStore) CheckStore() feesplit.CacheableKVStore {
	return cs.check
}

// DeliverStore returns the store used during DeliverTx.
func (cs *CommitStore) DeliverStore() feesplit.CacheableKVStore {
	return cs.deliver
}

// _fs: prefixes internal application data
const chainIDKey = "_fs:chainID"

func loadChainID(kv feesplit.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(v), nil
}

// saveChainID fails if a chain id was already stored.
func saveChainID(kv feesplit.KVStore, chainID string) error {
	if !feesplit.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %q", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if exists {
		return errors.Wrap(errors.ErrUnauthorized, "chain id cannot be modified after genesis")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
