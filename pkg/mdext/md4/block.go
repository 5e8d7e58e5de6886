package md4

import "math/bits"

const (
	k1 = 0x00000000
	k2 = 0x5A827999
	k3 = 0x6ED9EBA1
)

//nolint:gochecknoglobals // constant tables
var (
	order1 = [16]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	order2 = [16]int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
	order3 = [16]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

	shift1 = [4]int{3, 7, 11, 19}
	shift2 = [4]int{3, 5, 9, 13}
	shift3 = [4]int{3, 9, 11, 15}
)

// f is the round 1 conditional: if x then y else z.
func f(x, y, z uint32) uint32 {
	return (x & y) | (^x & z)
}

// g is the round 2 majority function.
func g(x, y, z uint32) uint32 {
	return (x & y) | (x & z) | (y & z)
}

// h is the round 3 parity function.
func h(x, y, z uint32) uint32 {
	return x ^ y ^ z
}

// round runs sixteen steps over the working variables. After each step the variables rotate one
// position to the right, so the step always updates a and sixteen steps leave them in place.
func round(a, b, c, d *uint32, fn func(x, y, z uint32) uint32, x *[16]uint32, order *[16]int,
	shift *[4]int, k uint32) {
	for i := 0; i < 16; i++ {
		t := bits.RotateLeft32(*a+fn(*b, *c, *d)+x[order[i]]+k, shift[i%4])
		*a, *b, *c, *d = *d, t, *b, *c
	}
}

// block compresses one 64-byte block into the chaining state.
func block(s *State, p []byte) {
	var x [16]uint32

	// Split the block into sixteen little-endian words.
	Endian.Words(x[:], p)

	a, b, c, d := s[0], s[1], s[2], s[3]

	round(&a, &b, &c, &d, f, &x, &order1, &shift1, k1)
	round(&a, &b, &c, &d, g, &x, &order2, &shift2, k2)
	round(&a, &b, &c, &d, h, &x, &order3, &shift3, k3)

	// Add the block's result back into the chaining state.
	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
}
