package pss

import (
	"crypto"
	"crypto/rsa"

	"github.com/LdDl/rsapss-api/utils"
	"github.com/pkg/errors"
)

// Outcome of a signature verification
type Outcome int

const (
	// MalformedInput is returned together with a non-nil error
	MalformedInput Outcome = iota
	// Invalid means the signature does not match the hash under the given key
	Invalid
	// Valid means the signature matches
	Valid
)

func (o Outcome) String() string {
	switch o {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "malformed"
	}
}

// VerifySignature checks an RSASSA-PSS signature over a SHA-256 digest.
//
// A signature that does not match yields Invalid with a nil error. Unparseable keys yield
// ErrKeyParse, a hash that is not 32 bytes or a signature that is not the modulus length
// yields ErrMalformedInput. In both error cases the outcome is MalformedInput.
func VerifySignature(signature []byte, hash []byte, publicKeyPEM []byte) (Outcome, error) {
	pub, err := ParsePublicKeyPEM(publicKeyPEM)
	if err != nil {
		return MalformedInput, err
	}

	if len(hash) != DigestSize {
		return MalformedInput, errors.Wrapf(ErrMalformedInput, "hash is %d bytes, want %d", len(hash), DigestSize)
	}
	if len(signature) != pub.Size() {
		return MalformedInput, errors.Wrapf(ErrMalformedInput, "signature is %d bytes, want %d", len(signature), pub.Size())
	}

	err = rsa.VerifyPSS(pub, crypto.SHA256, messageHash(hash), signature, pssOptions(pub))
	if err != nil {
		if errors.Is(err, rsa.ErrVerification) {
			return Invalid, nil
		}
		return MalformedInput, errors.Wrapf(ErrMalformedInput, "rsa-pss: %v", err)
	}
	return Valid, nil
}

// VerifyHex is VerifySignature for hex encoded signature and hash, as they arrive from
// uploaded text files. ASCII whitespace in the hex text is ignored.
func VerifyHex(signatureHex []byte, hashHex []byte, publicKeyPEM []byte) (Outcome, error) {
	signature, err := utils.DecodeHex(signatureHex)
	if err != nil {
		return MalformedInput, errors.Wrapf(ErrMalformedInput, "signature: %v", err)
	}
	hash, err := utils.DecodeHex(hashHex)
	if err != nil {
		return MalformedInput, errors.Wrapf(ErrMalformedInput, "hash: %v", err)
	}
	return VerifySignature(signature, hash, publicKeyPEM)
}
