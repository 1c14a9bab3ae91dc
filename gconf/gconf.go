package gconf

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

// ReadStore is a subset of feesplit.ReadOnlyKVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of feesplit.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Validator is implemented by any configuration object.
type Validator interface {
	Validate() error
}

// Key returns the database key under which the configuration of given
// package is stored.
func Key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save will Validate the object, before writing it to a special "configuration"
// singleton for that package name.
func Save(db Store, pkg string, src Validator) error {
	key := Key(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := feesplit.MarshalBinary(src)
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	if err := db.Set(key, raw); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "set: key %q: %s", key, err)
	}
	return nil
}

// Load reads the configuration of given package into dst. ErrNotFound is
// returned if the configuration was never saved.
func Load(db ReadStore, pkg string, dst interface{}) error {
	key := Key(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "get: key %q: %s", key, err)
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := feesplit.UnmarshalBinary(raw, dst); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}

// Exists returns true if a configuration for given package was saved.
func Exists(db ReadStore, pkg string) (bool, error) {
	raw, err := db.Get(Key(pkg))
	if err != nil {
		return false, errors.Wrapf(errors.ErrDatabase, "get: %s", err)
	}
	return raw != nil, nil
}

// InitConfig will take opts["conf"][pkg], parse it into the given configuration
// object, validate it, and store under the proper key in the database.
// ErrNotFound is returned if the genesis does not contain a configuration
// for given package.
func InitConfig(db Store, opts feesplit.Options, pkg string, conf Validator) error {
	var confOptions feesplit.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "read configuration for %s", pkg)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}
