package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/mdext/pkg/mdext"
	"github.com/sirupsen/logrus"
)

const (
	demoMessage = "comment1=cooking%20MCs;userdata=foo;comment2=%20like%20a%20pound%20of%20bacon"
	demoSuffix  = ";admin=true"
)

type demoCmd struct {
	Workers int `default:"1" env:"MDEXT_WORKERS" help:"The number of key lengths to try concurrently."`
}

// scenario is a secret-prefix MAC with a key the attacker doesn't know.
type scenario struct {
	alg mdext.Algorithm
	key string
}

func (cmd *demoCmd) Run(_ *kong.Context) error {
	return runDemo(os.Stdout, logrus.StandardLogger(), cmd.Workers)
}

func runDemo(out io.Writer, log logrus.FieldLogger, workers int) error {
	for _, s := range []scenario{
		{alg: mdext.SHA1, key: "spooky"},
		{alg: mdext.MD4, key: "veryspooky"},
	} {
		// The server MACs the message.
		server := mdext.NewSecretPrefixMAC(s.alg, []byte(s.key))
		mac := server.MAC([]byte(demoMessage))

		// The attacker extends it, using the server to confirm guesses.
		f := &mdext.Forger{Algorithm: s.alg, Oracle: server, Workers: workers, Log: log}

		res, err := f.Forge(mac, []byte(demoMessage), []byte(demoSuffix))
		if err != nil {
			return err
		}

		if !res.Success {
			return fmt.Errorf("%s: %w %s", s.alg.Name(), errForgeryFailed, mdext.DefaultRange)
		}

		if _, err := fmt.Fprintf(out, "%s\n  key length:  %d\n  forged MAC:  %s\n  oracle MAC:  %s\n  message:     %q\n",
			s.alg.Name(), res.KeyLength, res.ForgedMAC, res.OracleMAC, res.Message); err != nil {
			return err
		}
	}

	return nil
}
