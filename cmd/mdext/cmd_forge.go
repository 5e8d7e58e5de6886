package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/mdext/pkg/mdext"
	"github.com/codahale/mdext/pkg/mdext/armor"
	"github.com/sirupsen/logrus"
)

type forgeCmd struct {
	MAC     string `arg:"" name:"mac" help:"The intercepted MAC, as hex or base58."`
	Message string `arg:"" help:"The path to the MACed message, or - for stdin."`
	Suffix  string `arg:"" help:"The text to append to the message."`
	Output  string `arg:"" optional:"" type:"path" default:"-" help:"The output path for the forged message."`

	Algorithm    string `short:"a" default:"sha1" enum:"md4,sha1" env:"MDEXT_ALGORITHM" help:"The MAC's hash algorithm (md4 or sha1)."`
	Key          string `short:"k" env:"MDEXT_KEY" help:"The oracle's secret key. Prompted for if not given."`
	MinKeyLength int    `default:"1" help:"The shortest key length to try."`
	MaxKeyLength int    `default:"40" help:"The longest key length to try."`
	Workers      int    `default:"1" env:"MDEXT_WORKERS" help:"The number of key lengths to try concurrently."`
	Base58       bool   `help:"Print the forged MAC as base58 instead of hex."`
	Armor        bool   `help:"Write the forged message as base64 text."`
}

var errForgeryFailed = errors.New("no key length in range produced a valid forgery")

func (cmd *forgeCmd) Run(_ *kong.Context) error {
	alg, err := mdext.ParseAlgorithm(cmd.Algorithm)
	if err != nil {
		return err
	}

	// Decode the intercepted MAC.
	mac, err := mdext.ParseDigest(alg, cmd.MAC)
	if err != nil {
		return err
	}

	// Read the message.
	message, err := readInput(cmd.Message)
	if err != nil {
		return err
	}

	// Get the key for the oracle, which only confirms guesses.
	key := []byte(cmd.Key)
	if cmd.Key == "" {
		key, err = askSecret("Enter oracle key: ")
		if err != nil {
			return err
		}
	}

	// Run the attack.
	f := &mdext.Forger{
		Algorithm: alg,
		Oracle:    mdext.NewSecretPrefixMAC(alg, key),
		Range:     mdext.Range{Min: cmd.MinKeyLength, Max: cmd.MaxKeyLength},
		Workers:   cmd.Workers,
		Log:       logrus.StandardLogger(),
	}

	res, err := f.Forge(mac, message, []byte(cmd.Suffix))
	if err != nil {
		return err
	}

	if !res.Success {
		return fmt.Errorf("%w %s", errForgeryFailed, f.Range)
	}

	// Write out the forged message.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	if err := writeMessage(dst, res.Message, cmd.Armor); err != nil {
		return err
	}

	// Report the forged MAC.
	_, err = fmt.Fprintf(os.Stderr, "key length: %d\nforged MAC: %s\n",
		res.KeyLength, formatDigest(res.ForgedMAC, cmd.Base58))

	return err
}

func writeMessage(dst io.Writer, message []byte, armored bool) error {
	if !armored {
		_, err := dst.Write(message)

		return err
	}

	enc := armor.NewEncoder(dst)
	if _, err := enc.Write(message); err != nil {
		return err
	}

	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(dst, "\n")

	return err
}
