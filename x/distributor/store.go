package distributor

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
	"github.com/iov-one/feesplit/gconf"
)

// PackageName is the name under which the configuration is stored.
const PackageName = "distributor"

// Instantiate stores the initial configuration. It fails if a
// configuration already exists.
func Instantiate(db feesplit.KVStore, conf *Configuration) error {
	switch ok, err := gconf.Exists(db, PackageName); {
	case err != nil:
		return err
	case ok:
		return errors.Wrap(errors.ErrDuplicate, "already instantiated")
	}
	return gconf.Save(db, PackageName, conf)
}

// Get returns the current configuration. ErrNotFound is returned before
// the distributor is instantiated.
func Get(db feesplit.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, PackageName, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// ConfigPatch lists the configuration fields to replace. A nil field keeps
// the current value.
type ConfigPatch struct {
	Admin            feesplit.Address
	BurnAddress      feesplit.Address
	DeveloperAddress feesplit.Address
	Whitelist        *[]WhitelistEntry
	Weights          *[]WeightEntry
	DeveloperShare   *Weight
}

// apply returns a copy of the configuration with all patch fields set.
// An empty list is kept as nil, the form it takes once stored.
func (p ConfigPatch) apply(conf *Configuration) *Configuration {
	res := conf.Copy()
	if p.Admin != nil {
		res.Admin = p.Admin.Clone()
	}
	if p.BurnAddress != nil {
		res.BurnAddress = p.BurnAddress.Clone()
	}
	if p.DeveloperAddress != nil {
		res.DeveloperAddress = p.DeveloperAddress.Clone()
	}
	if p.Whitelist != nil {
		res.Whitelist = append([]WhitelistEntry(nil), *p.Whitelist...)
	}
	if p.Weights != nil {
		res.Weights = append([]WeightEntry(nil), *p.Weights...)
	}
	if p.DeveloperShare != nil {
		res.DeveloperShare = *p.DeveloperShare
	}
	return res
}

// Update replaces the configuration fields set in the patch. Only the
// administrator may update. The resulting configuration is validated as a
// whole and nothing is written unless it is valid.
func Update(db feesplit.KVStore, caller feesplit.Address, patch ConfigPatch) (*Configuration, error) {
	current, err := Get(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load configuration")
	}
	if err := RequireAdmin(caller, current); err != nil {
		return nil, err
	}
	next := patch.apply(current)
	if err := gconf.Save(db, PackageName, next); err != nil {
		return nil, err
	}
	return next, nil
}
