package setup

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/blake2b"

	"github.com/eth2030/kzgcore/kzg"
)

const (
	// MinPassphraseLen is the shortest passphrase accepted for seed
	// derivation.
	MinPassphraseLen = 20

	// DefaultRounds is the default number of BLAKE2b iterations.
	DefaultRounds = 64
)

// ErrSeedLength is returned when a hex seed does not decode to 32 bytes.
var ErrSeedLength = errors.New("setup: seed must be 32 bytes")

// DeriveSeed hashes passphrase with BLAKE2b-256 and rehashes the digest
// until rounds hashes have been applied. rounds below one counts as one.
// The passphrase is not modified; callers wipe it themselves.
func DeriveSeed(passphrase []byte, rounds int) [kzg.SeedSize]byte {
	h := blake2b.Sum256(passphrase)
	for i := 1; i < rounds; i++ {
		h = blake2b.Sum256(h[:])
	}
	return h
}

// ParseSeed decodes a hex seed, with or without the 0x prefix.
func ParseSeed(s string) ([kzg.SeedSize]byte, error) {
	var seed [kzg.SeedSize]byte
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return seed, fmt.Errorf("setup: invalid seed: %w", err)
	}
	if len(b) != kzg.SeedSize {
		return seed, fmt.Errorf("%w, got %d", ErrSeedLength, len(b))
	}
	copy(seed[:], b)
	return seed, nil
}

// ReadSeedFile reads a hex seed from path. Surrounding whitespace, such as
// the newline echo leaves behind, is ignored.
func ReadSeedFile(path string) ([kzg.SeedSize]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return [kzg.SeedSize]byte{}, fmt.Errorf("setup: read seed file: %w", err)
	}
	defer clear(data)
	return ParseSeed(string(bytes.TrimSpace(data)))
}
