//go:build blst

// Pairing check backed by the supranational/blst library via CGO. It
// evaluates the same equation as PairingsVerify on an independent engine
// and is used to cross-check the two implementations.
//
// Build with: go build -tags blst ./...
// Test with:  go test -tags blst ./kzg/ -run Blst
package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	blst "github.com/supranational/blst/bindings/go"
)

// PairingsVerifyBlst reports whether e(a1, a2) == e(b1, b2) using blst.
// Points cross the engine boundary in compressed form; an encoding that blst
// rejects yields false.
func PairingsVerifyBlst(a1 *bls12381.G1Jac, a2 *bls12381.G2Jac, b1 *bls12381.G1Jac, b2 *bls12381.G2Jac) bool {
	pa1 := blstG1(a1)
	pb1 := blstG1(b1)
	pa2 := blstG2(a2)
	pb2 := blstG2(b2)
	if pa1 == nil || pb1 == nil || pa2 == nil || pb2 == nil {
		return false
	}

	lhs := blst.Fp12MillerLoop(pa2, pa1)
	rhs := blst.Fp12MillerLoop(pb2, pb1)
	return blst.Fp12FinalVerify(lhs, rhs)
}

func blstG1(p *bls12381.G1Jac) *blst.P1Affine {
	var a bls12381.G1Affine
	a.FromJacobian(p)
	b := a.Bytes()
	return new(blst.P1Affine).Uncompress(b[:])
}

func blstG2(p *bls12381.G2Jac) *blst.P2Affine {
	var a bls12381.G2Affine
	a.FromJacobian(p)
	b := a.Bytes()
	return new(blst.P2Affine).Uncompress(b[:])
}
