// Package internal contains helper functions shared by the mdext packages.
package internal

import (
	"encoding/hex"
	"errors"

	"github.com/mr-tron/base58"
)

// ErrInvalidEncoding is returned when text is neither hex nor base58.
var ErrInvalidEncoding = errors.New("invalid digest encoding")

// ASCIIEncode encodes the given bytes as base58 text.
func ASCIIEncode(b []byte) []byte {
	return []byte(base58.Encode(b))
}

// ASCIIDecode decodes base58 text into bytes.
func ASCIIDecode(text []byte) ([]byte, error) {
	return base58.Decode(string(text))
}

// DecodeDigest decodes text as hex if it is exactly 2*size hex characters, or as base58 otherwise.
// If size is positive, the result must be exactly size bytes long. If size is zero, any valid hex is
// accepted before falling back to base58.
func DecodeDigest(text []byte, size int) ([]byte, error) {
	if size <= 0 || len(text) == 2*size {
		if b, err := hex.DecodeString(string(text)); err == nil {
			return b, nil
		}
	}

	b, err := ASCIIDecode(text)
	if err != nil || (size > 0 && len(b) != size) {
		return nil, ErrInvalidEncoding
	}

	return b, nil
}

// Copy returns a copy of the given slice.
func Copy(b []byte) []byte {
	c := make([]byte, len(b))

	copy(c, b)

	return c
}

// Concat returns a new slice containing the concatenation of the given slices.
func Concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}

	b := make([]byte, 0, n)
	for _, p := range parts {
		b = append(b, p...)
	}

	return b
}
