/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
  * Each bucket contains only one type of model.
  * Models are serialized with the binary codec of the feesplit package.
  * A model is always validated before it is written.
  * Buckets can be registered for querying by key or by key prefix.
*/
package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is impelemented by any entity that can be stored using ModelBucket.
type Model interface {
	Validate() error
}

// ModelBucket is a prefixed subspace of the database that holds models of a
// single type.
type ModelBucket struct {
	name   string
	prefix []byte
	proto  reflect.Type
}

var _ feesplit.QueryHandler = ModelBucket{}

// NewModelBucket creates a bucket to store models of the same type as
// given prototype. The prototype must be a pointer to a struct.
func NewModelBucket(name string, proto Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}
	t := reflect.TypeOf(proto)
	if t == nil || t.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("bucket %s: prototype must be a pointer, got %T", name, proto))
	}
	return ModelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  t,
	}
}

// Name returns the bucket name.
func (b ModelBucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't
// want consequetive calls to overwrite the same byte array.
func (b ModelBucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// One query the database for a single model instance. Result is loaded into
// given destination model.
// This method returns ErrNotFound if the entity does not exist in the
// database.
// If given model type cannot be used to contain stored entity, ErrType
// is returned.
func (b ModelBucket) One(db feesplit.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != b.proto {
		return errors.Wrapf(errors.ErrType, "%s bucket cannot load into %T", b.name, dest)
	}
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot get from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := feesplit.UnmarshalBinary(raw, dest); err != nil {
		return errors.Wrapf(err, "%s bucket", b.name)
	}
	return nil
}

// Has returns true if an entity with given key exists.
func (b ModelBucket) Has(db feesplit.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(err, "cannot check the database")
	}
	return ok, nil
}

// Put saves given model in the database.
func (b ModelBucket) Put(db feesplit.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != b.proto {
		return errors.Wrapf(errors.ErrType, "%s bucket cannot store %T", b.name, m)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := feesplit.MarshalBinary(m)
	if err != nil {
		return errors.Wrapf(err, "%s bucket", b.name)
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Delete removes an entity with given primary key from the database.
// It returns ErrNotFound if an entity with given key does not exist.
func (b ModelBucket) Delete(db feesplit.KVStore, key []byte) error {
	switch ok, err := b.Has(db, key); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(errors.ErrNotFound, "%s bucket", b.name)
	}
	return db.Delete(b.DBKey(key))
}

// Register registers this bucket for queries. You can define a name here
// for queries, which is different than the bucket name used to prefix
// the data.
func (b ModelBucket) Register(name string, r feesplit.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query handles queries from the QueryRouter
func (b ModelBucket) Query(db feesplit.ReadOnlyKVStore, mod string, data []byte) ([]feesplit.Model, error) {
	switch mod {
	case feesplit.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []feesplit.Model{feesplit.Pair(key, value)}, nil
	case feesplit.PrefixQueryMod:
		return queryPrefix(db, b.DBKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod: %q", mod)
	}
}
