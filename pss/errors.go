package pss

import (
	"fmt"
)

// Sentinel errors
var (
	// ErrGeneration is returned when a fresh key pair could not be produced
	ErrGeneration = fmt.Errorf("failed to generate key pair")
	// ErrKeyParse is returned for PEM input that does not hold a usable RSA key
	ErrKeyParse = fmt.Errorf("failed to parse key")
	// ErrMalformedInput is returned for signature or hash payloads of the wrong shape
	ErrMalformedInput = fmt.Errorf("malformed input")
	// ErrSigning is returned when the RSA-PSS primitive fails
	ErrSigning = fmt.Errorf("failed to sign")
)
