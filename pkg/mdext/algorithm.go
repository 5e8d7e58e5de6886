package mdext

import (
	"fmt"
	"strings"

	"github.com/codahale/mdext/pkg/mdext/internal"
	"github.com/codahale/mdext/pkg/mdext/md4"
	"github.com/codahale/mdext/pkg/mdext/mdpad"
	"github.com/codahale/mdext/pkg/mdext/sha1"
)

// Algorithm is a Merkle–Damgård hash function whose compression can be resumed from a digest.
type Algorithm interface {
	// Name returns the canonical name of the algorithm.
	Name() string

	// Size returns the digest size in bytes.
	Size() int

	// BlockSize returns the compression function's block size.
	BlockSize() mdpad.BlockSize

	// Endian returns the byte order of the algorithm's words and length field.
	Endian() mdpad.Endian

	// Sum returns the digest of the message using the standard initial state.
	Sum(message []byte) Digest

	// Resume recovers the chaining state from the given digest and finishes hashing the message as
	// if it were totalLength bytes long.
	Resume(digest Digest, message []byte, totalLength uint64) (Digest, error)
}

//nolint:gochecknoglobals // stateless singletons
var (
	MD4  Algorithm = md4Algorithm{}  // MD4 is the MD4 hash algorithm.
	SHA1 Algorithm = sha1Algorithm{} // SHA1 is the SHA-1 hash algorithm.

	algorithms = []Algorithm{MD4, SHA1}
)

// Algorithms returns all supported algorithms.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), algorithms...)
}

// ParseAlgorithm returns the algorithm with the given name, ignoring case and dashes.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ReplaceAll(strings.ToLower(name), "-", "")

	for _, alg := range algorithms {
		if strings.ReplaceAll(strings.ToLower(alg.Name()), "-", "") == n {
			return alg, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// ParseDigest decodes a hex or base58 digest for the given algorithm.
func ParseDigest(alg Algorithm, text string) (Digest, error) {
	b, err := internal.DecodeDigest([]byte(text), alg.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}

	return b, nil
}

type md4Algorithm struct{}

func (md4Algorithm) Name() string { return "MD4" }
func (md4Algorithm) Size() int { return md4.Size }
func (md4Algorithm) BlockSize() mdpad.BlockSize { return md4.BlockSize }
func (md4Algorithm) Endian() mdpad.Endian { return md4.Endian }
func (md4Algorithm) String() string { return "MD4" }

func (md4Algorithm) Sum(message []byte) Digest {
	d := md4.Sum(message)

	return d[:]
}

func (md4Algorithm) Resume(digest Digest, message []byte, totalLength uint64) (Digest, error) {
	s, err := md4.StateFromDigest(digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}

	d := md4.Core(message, totalLength, s)

	return d[:], nil
}

type sha1Algorithm struct{}

func (sha1Algorithm) Name() string { return "SHA-1" }
func (sha1Algorithm) Size() int { return sha1.Size }
func (sha1Algorithm) BlockSize() mdpad.BlockSize { return sha1.BlockSize }
func (sha1Algorithm) Endian() mdpad.Endian { return sha1.Endian }
func (sha1Algorithm) String() string { return "SHA-1" }

func (sha1Algorithm) Sum(message []byte) Digest {
	d := sha1.Sum(message)

	return d[:]
}

func (sha1Algorithm) Resume(digest Digest, message []byte, totalLength uint64) (Digest, error) {
	s, err := sha1.StateFromDigest(digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}

	d := sha1.Core(message, totalLength, s)

	return d[:], nil
}
