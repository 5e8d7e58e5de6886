// Package mdpad provides Merkle–Damgård strengthening padding and the word serialization shared by
// the MD4 and SHA-1 compression functions.
//
// A message of n bytes is padded as follows, given a block size B and a byte order E:
//
//	0x80 || 0x00 * k || E_U64(8n)
//
// where k is the smallest non-negative integer such that n + 1 + k + 8 is a multiple of B. MD4 pads
// with a little-endian length, SHA-1 with a big-endian length; both use 64-byte blocks. The 128-byte
// form is used by hash functions with 64-bit words.
package mdpad

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Endian is the byte order used to serialize the length field and the words of a hash function.
type Endian int

const (
	BigEndian    Endian = iota // BigEndian is the SHA-1 byte order.
	LittleEndian               // LittleEndian is the MD4 byte order.
)

// ByteOrder returns the binary.ByteOrder corresponding to the receiver.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// PutWords writes the words to dst in the receiver's byte order. dst must be at least 4*len(words)
// bytes long.
func (e Endian) PutWords(dst []byte, words []uint32) {
	order := e.ByteOrder()

	for i, w := range words {
		order.PutUint32(dst[i*4:], w)
	}
}

// Words reads len(dst) words from src in the receiver's byte order.
func (e Endian) Words(dst []uint32, src []byte) {
	order := e.ByteOrder()

	for i := range dst {
		dst[i] = order.Uint32(src[i*4:])
	}
}

func (e Endian) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return fmt.Sprintf("Endian(%d)", int(e))
	}
}

// ParseEndian parses "big" or "little" into an Endian.
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(s) {
	case "big", "be":
		return BigEndian, nil
	case "little", "le":
		return LittleEndian, nil
	default:
		return 0, fmt.Errorf("unknown byte order %q", s)
	}
}

// BlockSize is the compression function block size in bytes.
type BlockSize int

const (
	Block64  BlockSize = 64  // Block64 is the block size of MD4, MD5, SHA-1, and SHA-256.
	Block128 BlockSize = 128 // Block128 is the block size of SHA-384 and SHA-512.
)

// Valid returns true if the block size is supported.
func (bs BlockSize) Valid() bool {
	return bs == Block64 || bs == Block128
}

// lengthSize is the size of the encoded bit length in bytes.
const lengthSize = 8

// ErrInvalidBlockSize is returned when padding is requested for an unsupported block size.
var ErrInvalidBlockSize = errors.New("invalid block size")

// Pad returns the padding for a message of n bytes.
func Pad(n uint64, bs BlockSize, e Endian) ([]byte, error) {
	if !bs.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, int(bs))
	}

	return pad(n, uint64(bs), e), nil
}

// Pad64 returns the padding for a message of n bytes and a 64-byte block size.
func Pad64(n uint64, e Endian) []byte {
	return pad(n, uint64(Block64), e)
}

// Pad128 returns the padding for a message of n bytes and a 128-byte block size.
func Pad128(n uint64, e Endian) []byte {
	return pad(n, uint64(Block128), e)
}

func pad(n, bs uint64, e Endian) []byte {
	// Calculate the number of zeros needed after the marker byte and before the length.
	var zeros uint64
	if rem := (n + 1 + lengthSize) % bs; rem > 0 {
		zeros = bs - rem
	}

	// Allocate the marker, the zeros, and the length in one go. The zeros are already there.
	b := make([]byte, 1+zeros+lengthSize)
	b[0] = 0x80

	// Encode the message length in bits.
	e.ByteOrder().PutUint64(b[1+zeros:], n<<3)

	return b
}
