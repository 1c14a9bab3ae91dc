package app

import "github.com/iov-one/feesplit"

// ChainInitializers combines many initializers into one. They run in the
// given order and the first failure stops the chain.
func ChainInitializers(inits ...feesplit.Initializer) feesplit.Initializer {
	return chainInitializer{inits: inits}
}

type chainInitializer struct {
	inits []feesplit.Initializer
}

var _ feesplit.Initializer = chainInitializer{}

func (c chainInitializer) FromGenesis(opts feesplit.Options, kv feesplit.KVStore) error {
	for _, in := range c.inits {
		if err := in.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
