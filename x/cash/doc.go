/*
Package cash defines a simple ledger of wallets holding coins.

There is no logic in the coins (tokens), except that the balance
of any coin may not go below zero. Thus, this implementation is
referred to as cash. Simple and safe.

Depositing into the fund distributor is a plain SendMsg whose
destination is the distributor account.
*/
package cash
