// Package mdext implements length-extension forgery of secret-prefix MACs built from Merkle–Damgård
// hash functions.
//
// A secret-prefix MAC computes H(K || m). For MD4 and SHA-1 the digest is the complete chaining
// state of the hash after compressing K || m || pad(|K|+|m|), so anyone holding the MAC can restart
// the compression function from it and append more blocks. Given a MAC for a known message m, an
// attacker who guesses the key length |K| can produce a valid MAC for
//
//	m || pad(|K|+|m|) || s
//
// for any suffix s of their choosing, without ever learning K. The padding in the middle is called
// the glue. The key length is found by trying each candidate in turn and asking an oracle which does
// know the key to confirm the forgery.
//
// You should not use secret-prefix MACs. Use HMAC.
package mdext

import (
	"errors"
)

var (
	// ErrUnknownAlgorithm is returned when an algorithm name isn't recognized.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInvalidDigest is returned when a digest is the wrong length for its algorithm.
	ErrInvalidDigest = errors.New("invalid digest")

	// ErrInvalidRange is returned when a key length search range is empty or negative.
	ErrInvalidRange = errors.New("invalid key length range")
)
