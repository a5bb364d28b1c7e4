// Package utils provides helpers for decoding uploaded text payloads.
package utils

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// DecodeHex decodes hex text, skipping ASCII whitespace anywhere in the input.
// Upper and lower case digits are both accepted.
func DecodeHex(text []byte) ([]byte, error) {
	compact := StripSpace(text)
	if len(compact) == 0 {
		return nil, errors.New("empty hex string")
	}
	out := make([]byte, hex.DecodedLen(len(compact)))
	if _, err := hex.Decode(out, compact); err != nil {
		return nil, errors.Wrap(err, "invalid hex")
	}
	return out, nil
}

// StripSpace returns a copy of b without ASCII whitespace
func StripSpace(b []byte) []byte {
	result := make([]byte, 0, len(b))
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		result = append(result, c)
	}
	return result
}
