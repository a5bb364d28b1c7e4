package pss

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"

	"github.com/pkg/errors"
)

// DigestSize is the length of a SHA-256 digest
const DigestSize = sha256.Size

var signPSS = rsa.SignPSS

// SignatureResult is produced by SignDigest
type SignatureResult struct {
	// Raw RSA-PSS signature, modulus length
	Signature []byte
	// SHA-256 of the signed data
	Hash []byte
}

// Digest returns SHA-256 of data
func Digest(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// SignDigest hashes data with SHA-256 and signs the digest with RSASSA-PSS
// (MGF1 SHA-256, maximum salt length). The salt is random, so two calls over the same
// input give different signatures.
func SignDigest(data []byte, privateKeyPEM []byte) (*SignatureResult, error) {
	priv, err := ParsePrivateKeyPEM(privateKeyPEM)
	if err != nil {
		return nil, err
	}

	hash := Digest(data)
	sig, err := signPSS(rand.Reader, priv, crypto.SHA256, messageHash(hash), pssOptions(&priv.PublicKey))
	if err != nil {
		return nil, errors.Wrapf(ErrSigning, "rsa-pss: %v", err)
	}

	return &SignatureResult{
		Signature: sig,
		Hash:      hash,
	}, nil
}

// messageHash is what the PSS encoding actually consumes: the 32-byte digest is treated
// as the message and hashed once more with SHA-256. Signatures made by the Python
// cryptography backend (sign(digest, PSS(...), SHA256())) follow the same construction.
func messageHash(digest []byte) []byte {
	sum := sha256.Sum256(digest)
	return sum[:]
}

// pssOptions pins salt length to emLen - hLen - 2 for both signing and verification.
func pssOptions(pub *rsa.PublicKey) *rsa.PSSOptions {
	return &rsa.PSSOptions{
		SaltLength: maxSaltLength(pub),
		Hash:       crypto.SHA256,
	}
}

func maxSaltLength(pub *rsa.PublicKey) int {
	emLen := (pub.N.BitLen() - 1 + 7) / 8
	return emLen - DigestSize - 2
}
