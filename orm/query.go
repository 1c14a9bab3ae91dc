package orm

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

// queryPrefix returns all models with keys starting with given prefix.
func queryPrefix(db feesplit.ReadOnlyKVStore, prefix []byte) ([]feesplit.Model, error) {
	it, err := db.Iterator(prefix, prefixRangeEnd(prefix))
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var res []feesplit.Model
	for {
		key, value, err := it.Next()
		switch {
		case err == nil:
			res = append(res, feesplit.Pair(key, value))
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		default:
			return nil, err
		}
	}
}

// prefixRangeEnd returns the end of the range of keys that all start with
// given prefix. Nil is returned if there is no upper limit.
func prefixRangeEnd(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
