package kzg

import (
	"crypto/sha256"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SeedSize is the size of the secret seed a trusted setup is derived from.
const SeedSize = 32

// HashToField maps a seed to a scalar following EIP-4844 hash_to_bls_field:
// the SHA-256 digest is read big-endian and reduced modulo r.
func HashToField(seed [SeedSize]byte) fr.Element {
	digest := sha256.Sum256(seed[:])
	var s fr.Element
	s.SetBytes(digest[:])
	return s
}

// GenerateTrustedSetup derives the structured reference string
// [s^0]G1 .. [s^(length-1)]G1 and [s^0]G2 .. [s^(length-1)]G2 where
// s = HashToField(seed).
//
// The output is a deterministic function of (length, seed). The secret s and
// its powers are toxic waste: callers must never persist or log the seed,
// and this function keeps s only in locals.
func GenerateTrustedSetup(length int, seed [SeedSize]byte) ([]bls12381.G1Jac, []bls12381.G2Jac) {
	if length <= 0 {
		return []bls12381.G1Jac{}, []bls12381.G2Jac{}
	}

	s := HashToField(seed)
	sPow := fr.One()

	g1Gen, g2Gen, _, _ := bls12381.Generators()

	secretG1 := make([]bls12381.G1Jac, length)
	secretG2 := make([]bls12381.G2Jac, length)

	var exp big.Int
	for i := 0; i < length; i++ {
		sPow.BigInt(&exp)
		secretG1[i].ScalarMultiplication(&g1Gen, &exp)
		secretG2[i].ScalarMultiplication(&g2Gen, &exp)

		sPow.Mul(&sPow, &s)
	}

	return secretG1, secretG2
}
