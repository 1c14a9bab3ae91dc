package store

import "github.com/iov-one/feesplit/errors"

// OpType is either set or delete.
type OpType int32

const (
	// SetOp is used to set a value under a key.
	SetOp OpType = iota
	// DelOp is used to remove a key.
	DelOp
)

// Op is either set or delete
type Op struct {
	kind  OpType
	key   []byte
	value []byte // only for set
}

// Apply performs the stored operation on a writable store
func (o Op) Apply(out SetDeleter) error {
	switch o.kind {
	case SetOp:
		return out.Set(o.key, o.value)
	case DelOp:
		return out.Delete(o.key)
	default:
		return errors.Wrapf(errors.ErrDatabase, "unknown op type %d", o.kind)
	}
}

// Batch can write multiple ops atomically to an underlying
// SetDeleter.
type Batch interface {
	SetDeleter
	Write() error
	Reset()
}

// nonAtomicBatch just piles up ops and executes them later
// on the underlying store. It is not atomic, which is fine as long
// as the underlying store is an in-memory layer that cannot fail half way.
type nonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*nonAtomicBatch)(nil)

// NewNonAtomicBatch creates an empty batch to be later writen
// to the KVStore
func NewNonAtomicBatch(out SetDeleter) Batch {
	return &nonAtomicBatch{out: out}
}

// Set adds a set operation to the batch.
func (b *nonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, Op{kind: SetOp, key: key, value: value})
	return nil
}

// Delete adds a delete operation to the batch.
func (b *nonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, Op{kind: DelOp, key: key})
	return nil
}

// Write applies all operations in the order they were added and
// clears the batch.
func (b *nonAtomicBatch) Write() error {
	for _, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			return err
		}
	}
	b.Reset()
	return nil
}

// Reset drops all pending operations.
func (b *nonAtomicBatch) Reset() {
	b.ops = nil
}

