package store

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/iov-one/feesplit/errors"
)

// CommitStore keeps the committed application state in memory. Every
// commit bumps the version and computes a deterministic hash over all
// stored key value pairs.
type CommitStore struct {
	tree    BTreeCacheWrap
	version int64
	hash    []byte
}

var _ CommitKVStore = (*CommitStore)(nil)

// NewCommitStore returns an empty store at version zero.
func NewCommitStore() *CommitStore {
	e := EmptyKVStore{}
	return &CommitStore{
		tree: NewBTreeCacheWrap(e, e.NewBatch(), nil),
	}
}

// Get returns the committed value or nil.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	return s.tree.Get(key)
}

// CacheWrap returns a scratch pad on top of the committed state.
// Writing it makes the changes part of the next commit.
func (s *CommitStore) CacheWrap() KVCacheWrap {
	return s.tree.CacheWrap()
}

// Commit finalizes the current state as a new version.
func (s *CommitStore) Commit() (CommitID, error) {
	hash, err := s.stateHash()
	if err != nil {
		return CommitID{}, errors.Wrap(err, "cannot compute state hash")
	}
	s.version++
	s.hash = hash
	// The bottom layer drops everything, only keep the tree.
	s.tree.batch.Reset()
	return s.LatestVersion()
}

// LatestVersion returns the last committed version and its hash.
func (s *CommitStore) LatestVersion() (CommitID, error) {
	return CommitID{Version: s.version, Hash: s.hash}, nil
}

// stateHash returns sha256 over all key value pairs in key order. Each
// key and value is length prefixed. An empty state has an empty hash.
func (s *CommitStore) stateHash() ([]byte, error) {
	it, err := s.tree.Iterator(nil, nil)
	if err != nil {
		return nil, err
	}
	defer it.Release()

	h := sha256.New()
	var (
		lenbuf [binary.MaxVarintLen64]byte
		empty  = true
	)
	for {
		key, value, err := it.Next()
		if err != nil {
			if errors.ErrIteratorDone.Is(err) {
				break
			}
			return nil, err
		}
		empty = false
		n := binary.PutUvarint(lenbuf[:], uint64(len(key)))
		_, _ = h.Write(lenbuf[:n])
		_, _ = h.Write(key)
		n = binary.PutUvarint(lenbuf[:], uint64(len(value)))
		_, _ = h.Write(lenbuf[:n])
		_, _ = h.Write(value)
	}
	if empty {
		return nil, nil
	}
	return h.Sum(nil), nil
}
