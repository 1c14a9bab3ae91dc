package weavetest

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/crypto"
)

// NewKey returns a new random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns a condition of a new random key.
func NewCondition() feesplit.Condition {
	return NewKey().PublicKey().Condition()
}

// RandomAddr returns a new random address.
func RandomAddr(t testing.TB) feesplit.Address {
	t.Helper()
	b := make([]byte, feesplit.AddressLength)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("cannot read random data: %s", err)
	}
	return feesplit.Address(b)
}

// SequenceID returns a deterministic address for given number. Useful when
// the test output must be stable.
func SequenceID(n uint64) feesplit.Address {
	return feesplit.NewCondition("test", "seq", []byte{byte(n >> 8), byte(n)}).Address()
}
