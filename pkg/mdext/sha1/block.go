package sha1

import "math/bits"

// roundFunc is one of SHA-1's four logical functions and its additive constant.
type roundFunc struct {
	f func(b, c, d uint32) uint32
	k uint32
}

// rounds holds the logical function and constant for each group of twenty steps. Step i uses
// rounds[i/20].
//
//nolint:gochecknoglobals // constant table
var rounds = [4]roundFunc{
	{f: ch, k: 0x5A827999},
	{f: parity, k: 0x6ED9EBA1},
	{f: maj, k: 0x8F1BBCDC},
	{f: parity, k: 0xCA62C1D6},
}

func ch(b, c, d uint32) uint32 {
	return (b & c) ^ (^b & d)
}

func parity(b, c, d uint32) uint32 {
	return b ^ c ^ d
}

func maj(b, c, d uint32) uint32 {
	return (b & c) ^ (b & d) ^ (c & d)
}

// block compresses one 64-byte block into the chaining state.
func block(s *State, p []byte) {
	var w [80]uint32

	// Read sixteen big-endian words and expand them into the eighty-word schedule.
	Endian.Words(w[:16], p)

	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]

	for i := 0; i < 80; i++ {
		r := &rounds[i/20]
		t := bits.RotateLeft32(a, 5) + r.f(b, c, d) + e + r.k + w[i]
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
}
