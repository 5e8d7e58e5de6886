package mdext

import (
	"github.com/codahale/mdext/pkg/mdext/internal"
)

// Oracle computes the MAC of arbitrary messages under a key the caller never sees.
type Oracle interface {
	MAC(message []byte) Digest
}

// OracleFunc is an adapter which allows an ordinary function to be used as an Oracle.
type OracleFunc func(message []byte) Digest

// MAC returns f(message).
func (f OracleFunc) MAC(message []byte) Digest {
	return f(message)
}

// SecretPrefixMAC is the naive MAC construction H(K || m). It is vulnerable to length extension.
type SecretPrefixMAC struct {
	alg Algorithm
	key []byte
}

// NewSecretPrefixMAC returns a SecretPrefixMAC using the given algorithm and a copy of the key.
func NewSecretPrefixMAC(alg Algorithm, key []byte) *SecretPrefixMAC {
	return &SecretPrefixMAC{alg: alg, key: internal.Copy(key)}
}

// Algorithm returns the MAC's hash algorithm.
func (m *SecretPrefixMAC) Algorithm() Algorithm {
	return m.alg
}

// MAC returns H(K || message).
func (m *SecretPrefixMAC) MAC(message []byte) Digest {
	return m.alg.Sum(internal.Concat(m.key, message))
}

// Verify returns true if mac is the MAC of the message.
func (m *SecretPrefixMAC) Verify(message []byte, mac Digest) bool {
	return m.MAC(message).Equal(mac)
}

var (
	_ Oracle = &SecretPrefixMAC{}
	_ Oracle = OracleFunc(nil)
)
