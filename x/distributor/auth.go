package distributor

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

// RequireAdmin returns ErrUnauthorized unless the caller is the
// administrator of given configuration.
func RequireAdmin(caller feesplit.Address, conf *Configuration) error {
	if len(caller) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "caller not authenticated")
	}
	if !caller.Equals(conf.Admin) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not the admin", caller)
	}
	return nil
}
