package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/mdext/pkg/mdext/mdpad"
)

type padCmd struct {
	Length uint64 `arg:"" help:"The message length in bytes."`

	BlockSize int    `default:"64" help:"The block size in bytes (64 or 128)."`
	Endian    string `default:"big" enum:"big,little" help:"The byte order of the length field (big or little)."`
}

func (cmd *padCmd) Run(_ *kong.Context) error {
	return cmd.run(os.Stdout)
}

func (cmd *padCmd) run(out io.Writer) error {
	e, err := mdpad.ParseEndian(cmd.Endian)
	if err != nil {
		return err
	}

	p, err := mdpad.Pad(cmd.Length, mdpad.BlockSize(cmd.BlockSize), e)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, hex.EncodeToString(p))

	return err
}
