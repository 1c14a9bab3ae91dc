package store

import "github.com/iov-one/feesplit"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = feesplit.ReadOnlyKVStore
	SetDeleter       = feesplit.SetDeleter
	KVStore          = feesplit.KVStore
	Iterator         = feesplit.Iterator
	CacheableKVStore = feesplit.CacheableKVStore
	KVCacheWrap      = feesplit.KVCacheWrap
	CommitKVStore    = feesplit.CommitKVStore
	CommitID         = feesplit.CommitID
	Model            = feesplit.Model
)
