package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/mdext/pkg/mdext"
	"github.com/codahale/mdext/pkg/mdext/armor"
)

type hashCmd struct {
	Algorithm string `arg:"" enum:"md4,sha1" help:"The hash algorithm (md4 or sha1)."`
	Message   string `arg:"" optional:"" default:"-" help:"The path to the message, or - for stdin."`

	Resume string `help:"Resume hashing from this hex or base58 digest instead of the standard state."`
	Length uint64 `help:"The total logical length of the resumed message, including what the digest covers."`
	Base58 bool   `help:"Print the digest as base58 instead of hex."`
	Armor  bool   `help:"Decode the message from base64 text first."`
}

func (cmd *hashCmd) Run(_ *kong.Context) error {
	return cmd.run(os.Stdout)
}

func (cmd *hashCmd) run(out io.Writer) error {
	alg, err := mdext.ParseAlgorithm(cmd.Algorithm)
	if err != nil {
		return err
	}

	// Read the message.
	message, err := readInput(cmd.Message)
	if err != nil {
		return err
	}

	if cmd.Armor {
		message, err = io.ReadAll(armor.NewDecoder(bytes.NewReader(message)))
		if err != nil {
			return err
		}
	}

	// Hash it from the standard initial state.
	if cmd.Resume == "" {
		_, err = fmt.Fprintln(out, formatDigest(alg.Sum(message), cmd.Base58))

		return err
	}

	// Otherwise, decode the digest and resume from it.
	iv, err := mdext.ParseDigest(alg, cmd.Resume)
	if err != nil {
		return err
	}

	if cmd.Length < uint64(len(message)) || (cmd.Length-uint64(len(message)))%uint64(alg.BlockSize()) != 0 {
		return fmt.Errorf("--length=%d must be %d plus a multiple of %d", cmd.Length, len(message), alg.BlockSize())
	}

	d, err := alg.Resume(iv, message, cmd.Length)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, formatDigest(d, cmd.Base58))

	return err
}
