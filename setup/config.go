// Package setup runs a KZG trusted setup: it derives the secret seed, builds
// the evaluation domain and SRS, persists the settings as JSON and checks
// that they load back unchanged.
package setup

import (
	"errors"
	"fmt"

	"github.com/eth2030/kzgcore/kzg"
	"github.com/eth2030/kzgcore/log"
)

// Config holds the parameters of a trusted setup run.
type Config struct {
	// Scale selects the domain width 2^Scale.
	Scale uint8

	// Length is the number of SRS powers. Zero means the domain width.
	Length int

	// Seed is a hex-encoded 32-byte seed. It is meant for tests and
	// reproducible runs; real ceremonies use SeedFile or Passphrase.
	Seed string

	// SeedFile names a file holding a hex-encoded 32-byte seed. It is read
	// once, when the setup is built, so /dev/stdin works.
	SeedFile string

	// Passphrase is hashed Rounds times into the seed when Seed is empty.
	Passphrase []byte

	// Rounds is the number of BLAKE2b iterations applied to Passphrase.
	Rounds int

	// Output is the path the settings JSON is written to.
	Output string

	// Precompute builds and persists the precomputation table.
	Precompute bool

	// LogLevel controls log verbosity (debug, info, warn, error).
	LogLevel string
}

// DefaultConfig returns a Config for a 4096-wide domain.
func DefaultConfig() Config {
	return Config{
		Scale:    12,
		Rounds:   DefaultRounds,
		Output:   "trusted_setup.json",
		LogLevel: "info",
	}
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if c.Scale > kzg.MaxScale {
		return fmt.Errorf("config: scale %d exceeds %d", c.Scale, kzg.MaxScale)
	}
	if c.Length < 0 {
		return fmt.Errorf("config: invalid length: %d", c.Length)
	}
	if c.Output == "" {
		return errors.New("config: output path must not be empty")
	}
	sources := 0
	for _, set := range []bool{c.Seed != "", c.SeedFile != "", len(c.Passphrase) > 0} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("config: seed, seed file and passphrase are mutually exclusive")
	}
	switch {
	case c.Seed != "":
		if _, err := ParseSeed(c.Seed); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	case c.SeedFile != "":
		// Read by Build only; the file may be a pipe.
	default:
		if len(c.Passphrase) < MinPassphraseLen {
			return fmt.Errorf("config: passphrase must be at least %d bytes", MinPassphraseLen)
		}
		if c.Rounds < 1 {
			return fmt.Errorf("config: invalid rounds: %d", c.Rounds)
		}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// seed returns the setup seed from whichever source is configured.
func (c *Config) seed() ([kzg.SeedSize]byte, error) {
	switch {
	case c.Seed != "":
		return ParseSeed(c.Seed)
	case c.SeedFile != "":
		return ReadSeedFile(c.SeedFile)
	}
	return DeriveSeed(c.Passphrase, c.Rounds), nil
}
