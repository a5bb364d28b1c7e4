// Package pss implements RSA key generation, SHA-256 + RSASSA-PSS signing and verification.
//
// Every function is stateless and safe for concurrent use. Key material is never cached or logged.
package pss

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	"github.com/pkg/errors"
)

const (
	// KeyBits is the modulus size of generated keys
	KeyBits = 2048
	// PublicExponent of generated keys (fixed by crypto/rsa)
	PublicExponent = 65537

	// Smallest modulus accepted from callers
	minKeyBits = 1024
)

// PEM block types
const (
	PEMTypePrivateKey    = "PRIVATE KEY"
	PEMTypePublicKey     = "PUBLIC KEY"
	pemTypeRSAPrivateKey = "RSA PRIVATE KEY"
	pemTypeRSAPublicKey  = "RSA PUBLIC KEY"
	pemTypeEncryptedKey  = "ENCRYPTED PRIVATE KEY"
)

var generateKey = rsa.GenerateKey

// KeyPair holds a freshly generated key pair
type KeyPair struct {
	// Unencrypted PKCS#8 PEM
	PrivateKey []byte
	// SubjectPublicKeyInfo PEM
	PublicKey []byte
}

// GenerateKeyPair creates a new RSA-2048 key pair and returns it PEM encoded.
// Prime search is CPU bound, callers serving concurrent requests may want to bound it.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := generateKey(rand.Reader, KeyBits)
	if err != nil {
		return nil, errors.Wrapf(ErrGeneration, "rsa: %v", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, errors.Wrapf(ErrGeneration, "marshal PKCS#8: %v", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, errors.Wrapf(ErrGeneration, "marshal SubjectPublicKeyInfo: %v", err)
	}

	return &KeyPair{
		PrivateKey: pem.EncodeToMemory(&pem.Block{Type: PEMTypePrivateKey, Bytes: privDER}),
		PublicKey:  pem.EncodeToMemory(&pem.Block{Type: PEMTypePublicKey, Bytes: pubDER}),
	}, nil
}

// ParsePrivateKeyPEM decodes an unencrypted RSA private key.
// PKCS#8 is expected, PKCS#1 ("RSA PRIVATE KEY") is accepted as well.
func ParsePrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.Wrap(ErrKeyParse, "no PEM block found in private key")
	}

	var priv *rsa.PrivateKey
	switch block.Type {
	case pemTypeEncryptedKey:
		return nil, errors.Wrap(ErrKeyParse, "encrypted private keys are not supported")
	case pemTypeRSAPrivateKey:
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.Wrapf(ErrKeyParse, "PKCS#1: %v", err)
		}
		priv = key
	default:
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.Wrapf(ErrKeyParse, "PKCS#8: %v", err)
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.Wrapf(ErrKeyParse, "private key is %T, not RSA", key)
		}
		priv = rsaKey
	}

	if err := checkModulus(&priv.PublicKey); err != nil {
		return nil, err
	}
	return priv, nil
}

// ParsePublicKeyPEM decodes an RSA public key.
// SubjectPublicKeyInfo is expected, PKCS#1 ("RSA PUBLIC KEY") is accepted as well.
func ParsePublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.Wrap(ErrKeyParse, "no PEM block found in public key")
	}

	var pub *rsa.PublicKey
	switch block.Type {
	case pemTypeRSAPublicKey:
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, errors.Wrapf(ErrKeyParse, "PKCS#1: %v", err)
		}
		pub = key
	default:
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, errors.Wrapf(ErrKeyParse, "SubjectPublicKeyInfo: %v", err)
		}
		rsaKey, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, errors.Wrapf(ErrKeyParse, "public key is %T, not RSA", key)
		}
		pub = rsaKey
	}

	if err := checkModulus(pub); err != nil {
		return nil, err
	}
	return pub, nil
}

func checkModulus(pub *rsa.PublicKey) error {
	if bits := pub.N.BitLen(); bits < minKeyBits {
		return errors.Wrapf(ErrKeyParse, "modulus of %d bits is below %d", bits, minKeyBits)
	}
	return nil
}
