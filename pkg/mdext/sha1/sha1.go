// Package sha1 implements the SHA-1 hash algorithm as defined in RFC 3174.
//
// Like the md4 package, it exposes the compression function as a resumable core which accepts an
// arbitrary chaining state and the total logical length of the message. Sum is a thin wrapper which
// supplies the standard initial state and the message's own length.
//
// SHA-1 is broken. You should not use this.
package sha1

import (
	"errors"
	"fmt"

	"github.com/codahale/mdext/pkg/mdext/mdpad"
)

const (
	Size      = 20 // Size is the length of a SHA-1 digest in bytes.
	BlockSize = 64 // BlockSize is the SHA-1 block size in bytes.
)

// Endian is the byte order of SHA-1's words and length field.
const Endian = mdpad.BigEndian

// State is the SHA-1 chaining state, h0 through h4.
type State [5]uint32

// IV is the initial chaining state defined in RFC 3174, section 6.1.
//
//nolint:gochecknoglobals // constant
var IV = State{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}

// ErrInvalidDigest is returned when a chaining state is recovered from a slice which isn't a SHA-1
// digest.
var ErrInvalidDigest = errors.New("invalid SHA-1 digest")

// Digest returns the state encoded as a SHA-1 digest.
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

// Sum returns the SHA-1 digest of the message.
func Sum(message []byte) [Size]byte {
	return Core(message, uint64(len(message)), IV)
}

// Core returns the SHA-1 digest of the message, starting from the given chaining state and padding
// as if the message were totalLength bytes long. The difference between totalLength and the length
// of message must be a whole number of blocks already compressed into iv.
func Core(message []byte, totalLength uint64, iv State) [Size]byte {
	n := uint64(len(message))
	if totalLength < n || (totalLength-n)%BlockSize != 0 {
		panic(fmt.Sprintf("sha1: total length %d is not a block-aligned extension of %d bytes", totalLength, n))
	}

	padded := make([]byte, 0, len(message)+2*BlockSize)
	padded = append(padded, message...)
	padded = append(padded, mdpad.Pad64(totalLength, Endian)...)

	s := iv
	for len(padded) > 0 {
		block(&s, padded[:BlockSize])
		padded = padded[BlockSize:]
	}

	return s.Digest()
}
