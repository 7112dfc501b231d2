package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// PairingsVerify reports whether e(a1, a2) == e(b1, b2).
//
// Instead of two pairings it evaluates one multi-pairing,
//
//	e(-a1, a2) * e(b1, b2) == 1
//
// and compares the product with the identity of GT.
//
// Inputs are not checked for curve or subgroup membership. A false result
// means either that the equation does not hold or that an input is
// malformed; callers must validate externally supplied points first.
func PairingsVerify(a1 *bls12381.G1Jac, a2 *bls12381.G2Jac, b1 *bls12381.G1Jac, b2 *bls12381.G2Jac) bool {
	var negA1 bls12381.G1Jac
	negA1.Neg(a1)

	var p [2]bls12381.G1Affine
	var q [2]bls12381.G2Affine
	p[0].FromJacobian(&negA1)
	p[1].FromJacobian(b1)
	q[0].FromJacobian(a2)
	q[1].FromJacobian(b2)

	gt, err := bls12381.Pair(p[:], q[:])
	if err != nil {
		return false
	}
	return gt.IsOne()
}
