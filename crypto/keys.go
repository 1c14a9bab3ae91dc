package crypto

import (
	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

// ExtensionName is used for the Conditions we get from signatures
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() feesplit.Condition
}

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// PublicKey is the serializable form of a public key.
type PublicKey struct {
	Ed25519 []byte `json:"ed25519"`
}

// PrivateKey is the serializable form of a private key.
type PrivateKey struct {
	Ed25519 []byte `json:"ed25519"`
}

// Signature is the serializable form of a signature.
type Signature struct {
	Ed25519 []byte `json:"ed25519"`
}

var _ PubKey = (*PublicKey)(nil)

// Address returns the address of the condition authorized by this key.
func (p *PublicKey) Address() feesplit.Address {
	return p.Condition().Address()
}

// Validate returns an error if the public key is malformed.
func (p *PublicKey) Validate() error {
	if p == nil {
		return errors.Wrap(errors.ErrEmpty, "public key")
	}
	if len(p.Ed25519) != publicKeySize {
		return errors.Wrapf(errors.ErrInput, "ed25519 public key must be %d bytes", publicKeySize)
	}
	return nil
}

// Validate returns an error if the signature is malformed.
func (s *Signature) Validate() error {
	if s == nil {
		return errors.Wrap(errors.ErrEmpty, "signature")
	}
	if len(s.Ed25519) != signatureSize {
		return errors.Wrapf(errors.ErrInput, "ed25519 signature must be %d bytes", signatureSize)
	}
	return nil
}
