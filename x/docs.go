/*
Package x holds the extensions the fee splitting application is built from.

Each sub-package provides handlers, decorators or initializers:

	sigs         signature verification and per-account sequences
	cash         wallets and token transfers
	distributor  weighted payouts from the engine account
	utils        recovery, logging and savepoints around the handler

This package itself only defines the permission checking helpers the
extensions share.
*/
package x
