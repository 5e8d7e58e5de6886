package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/codahale/gubbins/assert"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestRunDemo(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 8} {
		out := bytes.NewBuffer(nil)
		log, _ := logtest.NewNullLogger()

		if err := runDemo(out, log, workers); err != nil {
			t.Fatal(err)
		}

		lines := strings.Split(out.String(), "\n")

		assert.Equal(t, "SHA-1 header", "SHA-1", lines[0])
		assert.Equal(t, "SHA-1 key length", "  key length:  6", lines[1])
		assert.Equal(t, "SHA-1 forged MAC", "  forged MAC:  f3f9f700f28ac165a9544dcbbc2303742663c88e", lines[2])
		assert.Equal(t, "MD4 header", "MD4", lines[5])
		assert.Equal(t, "MD4 key length", "  key length:  10", lines[6])
		assert.Equal(t, "MD4 forged MAC", "  forged MAC:  8bd3d27e23d309e6afe680bffd8c7afb", lines[7])
	}
}
