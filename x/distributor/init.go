package distributor

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/gconf"
)

// Initializer fulfils the Initializer interface to load the configuration
// from the genesis file.
type Initializer struct{}

var _ feesplit.Initializer = Initializer{}

// FromGenesis stores the configuration found under conf.distributor. The
// distributor stays uninstantiated when the genesis does not declare it.
func (Initializer) FromGenesis(opts feesplit.Options, db feesplit.KVStore) error {
	var conf Configuration
	err := gconf.InitConfig(db, opts, PackageName, &conf)
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}
