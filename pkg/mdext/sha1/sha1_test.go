package sha1

import (
	"bytes"
	stdsha1 "crypto/sha1"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/codahale/mdext/pkg/mdext/mdpad"
)

func TestSum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		digest string
	}{
		{name: "empty", input: "", digest: "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{name: "abc", input: "abc", digest: "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{
			name:   "dog",
			input:  "The quick brown fox jumps over the lazy dog",
			digest: "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12",
		},
		{
			name:   "cog",
			input:  "The quick brown fox jumps over the lazy cog",
			digest: "de9f2c7fd25e1b3afad3e85a0bd17d9b100db4b3",
		},
		{
			name:   "448 bits",
			input:  "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			digest: "84983e441c3bd26ebaae4aa1f95129e5e54670f1",
		},
		{
			name: "896 bits",
			input: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmn" +
				"hijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			digest: "a49b2446a02c645bf419f995b67091253a04a259",
		},
		{
			name:   "no filler",
			input:  string(mustHex("631a8f55737df9134b87de776d6269600229d98ba9a07b327183e75f745bcc7d39fff8176db57d339bb9e5854596e113d024b7d60291fc")),
			digest: "0317e38d99cdba10f605776bf3cfcd89bcde76bb",
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d := Sum([]byte(test.input))

			assert.Equal(t, "digest", test.digest, hex.EncodeToString(d[:]))
		})
	}
}

func TestSum_Reference(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 3*BlockSize)
	for i := range buf {
		buf[i] = byte(i*17 + 3)
	}

	for n := 0; n <= len(buf); n++ {
		want := stdsha1.Sum(buf[:n])
		got := Sum(buf[:n])

		if !bytes.Equal(want[:], got[:]) {
			t.Fatalf("length %d: expected %x but was %x", n, want, got)
		}
	}
}

func TestSum_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "repeated digest", Sum([]byte("same bytes")), Sum([]byte("same bytes")))

	if Sum([]byte("same bytes")) == Sum([]byte("same bytez")) {
		t.Error("distinct messages should have distinct digests")
	}
}

func TestCore_MatchesSum(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "a", "a message which is long enough to need more than one block of input"} {
		assert.Equal(t, s, Sum([]byte(s)), Core([]byte(s), uint64(len(s)), IV))
	}
}

func TestCore_Resume(t *testing.T) {
	t.Parallel()

	prefix := bytes.Repeat([]byte("prefix!"), 20)
	suffix := []byte(";admin=true")

	glue := mdpad.Pad64(uint64(len(prefix)), Endian)
	full := append(append(append([]byte(nil), prefix...), glue...), suffix...)

	d := Sum(prefix)

	s, err := StateFromDigest(d[:])
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "resumed digest", Sum(full), Core(suffix, uint64(len(full)), s))
}

func TestCore_Misaligned(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a misaligned total length")
		}
	}()

	_ = Core([]byte("abcdef"), 3, IV)
}

func TestStateFromDigest(t *testing.T) {
	t.Parallel()

	s, err := StateFromDigest(mustHex("da39a3ee5e6b4b0d3255bfef95601890afd80709"))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "state", State{0xda39a3ee, 0x5e6b4b0d, 0x3255bfef, 0x95601890, 0xafd80709}, s)
	assert.Equal(t, "round trip", Sum(nil), s.Digest())
}

func TestStateFromDigest_InvalidLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 16, 19, 21} {
		if _, err := StateFromDigest(make([]byte, n)); !errors.Is(err, ErrInvalidDigest) {
			t.Errorf("%d bytes: expected ErrInvalidDigest but was %v", n, err)
		}
	}
}

func TestRounds(t *testing.T) {
	t.Parallel()

	b, c, d := uint32(0x12345678), uint32(0x9ABCDEF0), uint32(0x0FEDCBA9)

	for i, want := range []struct {
		f uint32
		k uint32
	}{
		{f: 0x1ffddff1, k: 0x5A827999},
		{f: b ^ c ^ d, k: 0x6ED9EBA1},
		{f: 0x1abcdef8, k: 0x8F1BBCDC},
		{f: b ^ c ^ d, k: 0xCA62C1D6},
	} {
		r := rounds[i]

		assert.Equal(t, "function", want.f, r.f(b, c, d))
		assert.Equal(t, "constant", want.k, r.k)
	}
}

func BenchmarkSum(b *testing.B) {
	msg := make([]byte, 1024)

	b.SetBytes(int64(len(msg)))

	for i := 0; i < b.N; i++ {
		_ = Sum(msg)
	}
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return b
}
