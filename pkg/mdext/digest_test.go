package mdext

import (
	"encoding/json"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestDigest_MarshalText(t *testing.T) {
	t.Parallel()

	d := MD4.Sum([]byte("abc"))

	text, err := d.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "marshalled text", "a448017aaf21d8525fc10ae87aa6729d", string(text))
	assert.Equal(t, "string", "a448017aaf21d8525fc10ae87aa6729d", d.String())
}

func TestDigest_UnmarshalText(t *testing.T) {
	t.Parallel()

	want := MD4.Sum([]byte("abc"))

	for _, text := range []string{want.String(), want.Base58()} {
		var d Digest
		if err := d.UnmarshalText([]byte(text)); err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, text, want, d)
	}

	var d Digest
	if err := d.UnmarshalText([]byte("not a digest!")); err == nil {
		t.Error("expected an error for invalid text")
	}
}

func TestDigest_JSON(t *testing.T) {
	t.Parallel()

	type envelope struct {
		MAC Digest `json:"mac"`
	}

	b, err := json.Marshal(envelope{MAC: SHA1.Sum(nil)})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "json", `{"mac":"da39a3ee5e6b4b0d3255bfef95601890afd80709"}`, string(b))

	var e envelope
	if err := json.Unmarshal(b, &e); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "round trip", SHA1.Sum(nil), e.MAC)
}

func TestDigest_Equal(t *testing.T) {
	t.Parallel()

	a := SHA1.Sum([]byte("a"))
	b := SHA1.Sum([]byte("b"))

	assert.Equal(t, "same", true, a.Equal(SHA1.Sum([]byte("a"))))
	assert.Equal(t, "different", false, a.Equal(b))
	assert.Equal(t, "prefix", false, a.Equal(a[:10]))
}

func TestDigest_Binary(t *testing.T) {
	t.Parallel()

	d := SHA1.Sum([]byte("abc"))

	b, err := d.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	b[0] ^= 1

	assert.Equal(t, "copied", byte(0xa9), d[0])

	var d2 Digest
	if err := d2.UnmarshalBinary(d); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "unmarshalled", d, d2)
}
