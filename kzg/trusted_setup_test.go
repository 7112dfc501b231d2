package kzg

import (
	"crypto/sha256"
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var testSeed = [SeedSize]byte{
	0x5e, 0xed, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05,
	0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d,
	0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15,
	0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d,
}

func TestHashToField(t *testing.T) {
	digest := sha256.Sum256(testSeed[:])
	want := new(big.Int).SetBytes(digest[:])
	want.Mod(want, fr.Modulus())

	s := HashToField(testSeed)
	var got big.Int
	s.BigInt(&got)
	if got.Cmp(want) != 0 {
		t.Fatalf("HashToField = %s, want %s", got.String(), want.String())
	}

	other := testSeed
	other[0] ^= 1
	s2 := HashToField(other)
	if s.Equal(&s2) {
		t.Fatal("different seeds mapped to the same scalar")
	}
}

func TestGenerateTrustedSetupDeterministic(t *testing.T) {
	g1a, g2a := GenerateTrustedSetup(8, testSeed)
	g1b, g2b := GenerateTrustedSetup(8, testSeed)

	if len(g1a) != 8 || len(g2a) != 8 {
		t.Fatalf("lengths = %d/%d, want 8", len(g1a), len(g2a))
	}
	for i := range g1a {
		ea, eb := affineG1Bytes(&g1a[i]), affineG1Bytes(&g1b[i])
		if ea != eb {
			t.Fatalf("g1[%d] differs between runs", i)
		}
		fa, fb := affineG2Bytes(&g2a[i]), affineG2Bytes(&g2b[i])
		if fa != fb {
			t.Fatalf("g2[%d] differs between runs", i)
		}
	}

	other := testSeed
	other[31] ^= 0xff
	g1c, _ := GenerateTrustedSetup(8, other)
	if g1c[1].Equal(&g1a[1]) {
		t.Fatal("different seeds produced the same [s]G1")
	}
}

func TestGenerateTrustedSetupEmpty(t *testing.T) {
	for _, n := range []int{0, -3} {
		g1, g2 := GenerateTrustedSetup(n, testSeed)
		if g1 == nil || g2 == nil {
			t.Fatalf("length %d: want empty, non-nil slices", n)
		}
		if len(g1) != 0 || len(g2) != 0 {
			t.Fatalf("length %d: lengths = %d/%d, want 0", n, len(g1), len(g2))
		}
	}
}

func TestGenerateTrustedSetupGenerators(t *testing.T) {
	g1Gen, g2Gen, _, _ := bls12381.Generators()
	for _, n := range []int{1, 2, 5} {
		g1, g2 := GenerateTrustedSetup(n, testSeed)
		if !g1[0].Equal(&g1Gen) {
			t.Fatalf("length %d: g1[0] is not the G1 generator", n)
		}
		if !g2[0].Equal(&g2Gen) {
			t.Fatalf("length %d: g2[0] is not the G2 generator", n)
		}
	}
}

func TestGenerateTrustedSetupPowers(t *testing.T) {
	const n = 5
	g1, g2 := GenerateTrustedSetup(n, testSeed)
	s := HashToField(testSeed)
	g1Gen, g2Gen, _, _ := bls12381.Generators()

	sPow := fr.One()
	var exp big.Int
	for i := 0; i < n; i++ {
		sPow.BigInt(&exp)
		var want1 bls12381.G1Jac
		want1.ScalarMultiplication(&g1Gen, &exp)
		if !g1[i].Equal(&want1) {
			t.Fatalf("g1[%d] != [s^%d]G1", i, i)
		}
		var want2 bls12381.G2Jac
		want2.ScalarMultiplication(&g2Gen, &exp)
		if !g2[i].Equal(&want2) {
			t.Fatalf("g2[%d] != [s^%d]G2", i, i)
		}
		sPow.Mul(&sPow, &s)
	}

	// Consecutive powers are linked by the pairing: e(g1[i+1], G2) == e(g1[i], g2[1]).
	for i := 0; i+1 < n; i++ {
		if !PairingsVerify(&g1[i+1], &g2Gen, &g1[i], &g2[1]) {
			t.Fatalf("pairing link broken between g1[%d] and g1[%d]", i, i+1)
		}
	}
}

func affineG1Bytes(p *bls12381.G1Jac) [bls12381.SizeOfG1AffineCompressed]byte {
	var a bls12381.G1Affine
	a.FromJacobian(p)
	return a.Bytes()
}

func affineG2Bytes(p *bls12381.G2Jac) [bls12381.SizeOfG2AffineCompressed]byte {
	var a bls12381.G2Affine
	a.FromJacobian(p)
	return a.Bytes()
}
