package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/feesplit/errors"
)

// SliceIterator wraps an Iterator over a slice of models
type SliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator creates a new Iterator over this slice
func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{
		data: data,
	}
}

// Next implements Iterator.
func (s *SliceIterator) Next() (key, value []byte, err error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[s.idx]
	s.idx++
	return m.Key, m.Value, nil
}

// Release implements Iterator.
func (s *SliceIterator) Release() {
	s.data = nil
	s.idx = 0
}

// ascendBtree collects all items of the given range in ascending order.
// A nil start or end means the range is not bounded on that side.
func ascendBtree(bt *btree.BTree, start, end []byte) []btree.Item {
	var items []btree.Item
	collect := func(item btree.Item) bool {
		items = append(items, item)
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return items
}

// combine merges cached items with the content of the parent iterator.
// Cached values take precedence and cached deletes hide parent values.
func combine(items []btree.Item, parent Iterator) (Iterator, error) {
	defer parent.Release()

	var res []Model
	pkey, pvalue, err := parent.Next()
	if err != nil && !errors.ErrIteratorDone.Is(err) {
		return nil, err
	}
	parentDone := err != nil

	for _, item := range items {
		key := item.(keyer).Key()

		// Everything the parent has below our key goes first.
		for !parentDone && bytes.Compare(pkey, key) < 0 {
			res = append(res, Model{Key: pkey, Value: pvalue})
			if pkey, pvalue, err = parent.Next(); err != nil {
				if !errors.ErrIteratorDone.Is(err) {
					return nil, err
				}
				parentDone = true
			}
		}
		// Same key in the parent is overwritten by the cache.
		if !parentDone && bytes.Equal(pkey, key) {
			if pkey, pvalue, err = parent.Next(); err != nil {
				if !errors.ErrIteratorDone.Is(err) {
					return nil, err
				}
				parentDone = true
			}
		}

		if set, ok := item.(setItem); ok {
			res = append(res, Model{Key: set.key, Value: set.value})
		}
	}

	for !parentDone {
		res = append(res, Model{Key: pkey, Value: pvalue})
		if pkey, pvalue, err = parent.Next(); err != nil {
			if !errors.ErrIteratorDone.Is(err) {
				return nil, err
			}
			parentDone = true
		}
	}
	return NewSliceIterator(res), nil
}
