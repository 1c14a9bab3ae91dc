package weavetest

import (
	"context"
	"fmt"

	"github.com/iov-one/feesplit"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
// You can use either Signer or Signers (or both) attributes to reference
// conditions. Each time all signers (regardless which attribute) are
// considered. Signer always comes first.
type Auth struct {
	// Signer represents an authentication of a single signer. This is a
	// convinience attribute when creating an authentication method for a
	// single signer.
	Signer feesplit.Condition

	// Signers represents an authentication of multiple signers.
	Signers []feesplit.Condition
}

func (a *Auth) GetConditions(feesplit.Context) []feesplit.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]feesplit.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) HasAddress(ctx feesplit.Context, addr feesplit.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convinience only string type keys are allowed.
	Key string
}

type ctxAuthKey string

func (a *CtxAuth) SetConditions(ctx feesplit.Context, permissions ...feesplit.Condition) feesplit.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), permissions)
}

func (a *CtxAuth) GetConditions(ctx feesplit.Context) []feesplit.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]feesplit.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []feesplit.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx feesplit.Context, addr feesplit.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
