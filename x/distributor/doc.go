/*
Package distributor implements a weighted fund distribution engine.

The engine owns a single ledger account. Anyone may deposit coins into it
using a regular cash transfer. A distribution sweeps the whole balance of a
single denomination held by that account and splits it between the
whitelisted protocols according to their weights. Whatever is left after the
weighted payouts (both unweighted share and rounding dust) is split between
the burn address and the developer address using the developer share, which
defaults to zero so that the whole remainder is burned.

Configuration is a single record owned by an administrator. The
administrator may replace any subset of its fields. The resulting
configuration is always validated as a whole before it is stored.

Weights are kept as integer basis points so that every amount is computed
with exact integer arithmetic.
*/
package distributor
