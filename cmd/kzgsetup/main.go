// Command kzgsetup generates a KZG trusted setup over BLS12-381 and writes
// it as JSON. The secret comes from -seed-file, from -seed, or otherwise
// from a passphrase typed at the terminal. -seed shows up in process
// listings and shell history and is meant for tests.
//
// Usage:
//
//	kzgsetup -scale 12 -out trusted_setup.json
//	head -c 32 /dev/urandom | xxd -p -c 32 | kzgsetup -seed-file /dev/stdin
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/term"

	"github.com/eth2030/kzgcore/log"
	"github.com/eth2030/kzgcore/metrics"
	"github.com/eth2030/kzgcore/setup"
)

// readPassphrase reads the passphrase without echo. Tests replace it.
var readPassphrase = promptPassphrase

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := setup.DefaultConfig()

	fs := flag.NewFlagSet("kzgsetup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scale := fs.Uint("scale", uint(cfg.Scale), "domain scale, the domain width is 2^scale")
	fs.IntVar(&cfg.Length, "length", cfg.Length, "number of setup powers (0 = domain width)")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "hex-encoded 32-byte seed, visible in process listings (for tests only)")
	fs.StringVar(&cfg.SeedFile, "seed-file", cfg.SeedFile, "file holding a hex-encoded 32-byte seed (/dev/stdin reads a pipe)")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "BLAKE2b rounds applied to the passphrase")
	fs.StringVar(&cfg.Output, "out", cfg.Output, "output file for the settings JSON")
	fs.BoolVar(&cfg.Precompute, "precompute", cfg.Precompute, "build and persist the precomputation table")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log verbosity (debug, info, warn, error)")
	showMetrics := fs.Bool("metrics", false, "print metrics in Prometheus text format to stderr on exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %v\n", fs.Args())
		return 2
	}
	if *scale > math.MaxUint8 {
		fmt.Fprintf(stderr, "Error: invalid scale: %d\n", *scale)
		return 2
	}
	cfg.Scale = uint8(*scale)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	logger := log.NewWriter(stderr, level)

	if cfg.Seed == "" && cfg.SeedFile == "" {
		pass, err := readPassphrase(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer clear(pass)
		cfg.Passphrase = pass
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 2
	}

	digest, err := setup.Run(cfg, logger.Module("setup"), metrics.DefaultRegistry)
	if *showMetrics {
		if werr := metrics.WriteText(stderr, metrics.DefaultRegistry, "kzgsetup"); werr != nil {
			logger.Warn("writing metrics failed", "err", werr)
		}
	}
	if err != nil {
		return 1
	}
	fmt.Fprintf(stdout, "%s %s\n", digest.Hex(), cfg.Output)
	return 0
}

// promptPassphrase reads a passphrase from the terminal on stdin.
func promptPassphrase(prompt io.Writer) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("no -seed-file given and stdin is not a terminal")
	}
	fmt.Fprintf(prompt, "enter a passphrase of at least %d bytes: ", setup.MinPassphraseLen)
	pass, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return nil, fmt.Errorf("reading passphrase: %w", err)
	}
	return pass, nil
}
