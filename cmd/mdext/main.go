package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/mdext/pkg/mdext"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

type cli struct {
	Verbose bool `short:"v" env:"MDEXT_VERBOSE" help:"Log every key length guess."`

	Hash  hashCmd  `cmd:"" help:"Hash a message, optionally resuming from an existing digest."`
	Pad   padCmd   `cmd:"" help:"Print the Merkle–Damgård padding for a message length."`
	Forge forgeCmd `cmd:"" help:"Forge a secret-prefix MAC for a message with an appended suffix."`
	Demo  demoCmd  `cmd:"" help:"Run the SHA-1 and MD4 length extension demonstrations."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli,
		kong.Name("mdext"),
		kong.Description("Length extension attacks on MD4 and SHA-1 secret-prefix MACs."),
	)

	configureLogging(cli.Verbose)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func configureLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func readInput(path string) ([]byte, error) {
	src, err := openInput(path)
	if err != nil {
		return nil, err
	}

	defer func() { _ = src.Close() }()

	return io.ReadAll(src)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return os.Stdin, nil
	}

	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return os.Stdout, nil
	}

	return os.Create(path)
}

func askSecret(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

func formatDigest(d mdext.Digest, base58 bool) string {
	if base58 {
		return d.Base58()
	}

	return d.String()
}
