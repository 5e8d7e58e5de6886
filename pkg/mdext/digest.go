package mdext

import (
	"crypto/subtle"
	"encoding"
	"encoding/hex"
	"fmt"

	"github.com/codahale/mdext/pkg/mdext/internal"
)

// Digest is the output of a hash function or MAC.
//
// It is marshalled as lowercase hex, and can be unmarshalled from either hex or base58 text.
type Digest []byte

// Equal returns true if the two digests are identical.
func (d Digest) Equal(other Digest) bool {
	return subtle.ConstantTimeCompare(d, other) == 1
}

// Base58 returns the digest as base58 text.
func (d Digest) Base58() string {
	return string(internal.ASCIIEncode(d))
}

// String returns the digest as hex text.
func (d Digest) String() string {
	return hex.EncodeToString(d)
}

// MarshalBinary returns a copy of the digest's bytes.
func (d Digest) MarshalBinary() (data []byte, err error) {
	return internal.Copy(d), nil
}

// UnmarshalBinary sets the receiver to a copy of the given bytes.
func (d *Digest) UnmarshalBinary(data []byte) error {
	*d = internal.Copy(data)

	return nil
}

// MarshalText encodes the digest as hex text.
func (d Digest) MarshalText() (text []byte, err error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes hex or base58 text into the receiver.
func (d *Digest) UnmarshalText(text []byte) error {
	b, err := internal.DecodeDigest(text, 0)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}

	*d = b

	return nil
}

var (
	_ encoding.BinaryMarshaler   = Digest{}
	_ encoding.BinaryUnmarshaler = &Digest{}
	_ encoding.TextMarshaler     = Digest{}
	_ encoding.TextUnmarshaler   = &Digest{}
	_ fmt.Stringer               = Digest{}
)
