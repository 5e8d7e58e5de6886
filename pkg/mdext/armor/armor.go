// Package armor encodes forged messages as ASCII.
//
// A forged message carries the hash function's padding, which is mostly zero bytes and a binary
// length field. An armored message is encoded with URL-safe base64 and wrapped at 76 characters so
// it can be pasted into a form field or a terminal.
package armor

import (
	"encoding/base64"
	"io"

	"github.com/emersion/go-textwrapper"
)

// LineLength is the maximum length of an armored line.
const LineLength = 76

// NewEncoder returns an io.WriteCloser which will armor data before writing it to dst. The final
// partial block is only written when the encoder is closed.
func NewEncoder(dst io.Writer) io.WriteCloser {
	return base64.NewEncoder(base64.URLEncoding, textwrapper.New(dst, "\n", LineLength))
}

// NewDecoder returns an io.Reader which will de-armor data after reading it from src.
func NewDecoder(src io.Reader) io.Reader {
	return base64.NewDecoder(base64.URLEncoding, src)
}
