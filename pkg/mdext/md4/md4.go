// Package md4 implements the MD4 hash algorithm as defined in RFC 1320.
//
// In addition to the usual fixed-IV form, it exposes the compression function as a resumable core:
// given an arbitrary chaining state and the total logical length of the message (including any
// prefix which was already compressed into that state), Core finishes the hash. This is exactly
// what an attacker needs to extend a secret-prefix MAC, and is the reason this package exists.
//
// MD4 is thoroughly broken. You should not use this.
package md4

import (
	"errors"
	"fmt"

	"github.com/codahale/mdext/pkg/mdext/mdpad"
)

const (
	Size      = 16 // Size is the length of an MD4 digest in bytes.
	BlockSize = 64 // BlockSize is the MD4 block size in bytes.
)

// Endian is the byte order of MD4's words and length field.
const Endian = mdpad.LittleEndian

// State is the MD4 chaining state, a, b, c, and d.
type State [4]uint32

// IV is the initial chaining state defined in RFC 1320, section 3.3.
//
//nolint:gochecknoglobals // constant
var IV = State{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476}

// ErrInvalidDigest is returned when a chaining state is recovered from a slice which isn't an MD4
// digest.
var ErrInvalidDigest = errors.New("invalid MD4 digest")

// Digest returns the state encoded as an MD4 digest.
func (s State) Digest() [Size]byte {
	var d [Size]byte

	Endian.PutWords(d[:], s[:])

	return d
}

// StateFromDigest recovers the chaining state which produced the given digest.
func StateFromDigest(digest []byte) (State, error) {
	var s State

	if len(digest) != Size {
		return s, fmt.Errorf("%w: %d bytes", ErrInvalidDigest, len(digest))
	}

	Endian.Words(s[:], digest)

	return s, nil
}

// Sum returns the MD4 digest of the message.
func Sum(message []byte) [Size]byte {
	return Core(message, uint64(len(message)), IV)
}

// Core returns the MD4 digest of the message, starting from the given chaining state and padding
// as if the message were totalLength bytes long. The difference between totalLength and the length
// of message must be a whole number of blocks already compressed into iv.
func Core(message []byte, totalLength uint64, iv State) [Size]byte {
	n := uint64(len(message))
	if totalLength < n || (totalLength-n)%BlockSize != 0 {
		panic(fmt.Sprintf("md4: total length %d is not a block-aligned extension of %d bytes", totalLength, n))
	}

	// Append the padding for the full logical length.
	padded := make([]byte, 0, len(message)+2*BlockSize)
	padded = append(padded, message...)
	padded = append(padded, mdpad.Pad64(totalLength, Endian)...)

	// Compress each block into a copy of the initial state.
	s := iv
	for len(padded) > 0 {
		block(&s, padded[:BlockSize])
		padded = padded[BlockSize:]
	}

	return s.Digest()
}
