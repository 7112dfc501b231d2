package kzg

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Proof errors.
var (
	ErrPolyTooLarge = errors.New("kzg: polynomial has more coefficients than setup points")
)

// CommitToPoly returns [p(s)]G1 for the polynomial with the given
// coefficients, computed as a multi-scalar multiplication against the setup.
// The empty polynomial commits to the point at infinity.
func (s *Settings) CommitToPoly(coeffs []fr.Element) (bls12381.G1Jac, error) {
	var commitment bls12381.G1Jac
	if len(coeffs) > len(s.SecretG1) {
		return commitment, ErrPolyTooLarge
	}
	if len(coeffs) == 0 {
		return commitment, nil
	}

	points := s.g1Affine()[:len(coeffs)]
	if _, err := commitment.MultiExp(points, coeffs, ecc.MultiExpConfig{}); err != nil {
		return bls12381.G1Jac{}, err
	}
	return commitment, nil
}

// ComputeProofSingle returns the opening proof for p at x, i.e. the
// commitment to q(X) = (p(X) - p(x)) / (X - x).
func (s *Settings) ComputeProofSingle(coeffs []fr.Element, x *fr.Element) (bls12381.G1Jac, error) {
	if len(coeffs) > len(s.SecretG1) {
		return bls12381.G1Jac{}, ErrPolyTooLarge
	}
	return s.CommitToPoly(quotientByLinear(coeffs, x))
}

// CheckProofSingle verifies that the polynomial committed to by commitment
// evaluates to y at x, given the opening proof:
//
//	e(C - [y]G1, G2) == e(proof, [s]G2 - [x]G2)
//
// It needs [s]G2, so settings with fewer than two G2 powers always fail.
// As with PairingsVerify, points are not validated here.
func (s *Settings) CheckProofSingle(commitment, proof *bls12381.G1Jac, x, y *fr.Element) bool {
	if len(s.SecretG2) < 2 {
		return false
	}
	g1Gen, g2Gen, _, _ := bls12381.Generators()

	var scalar big.Int

	// C - [y]G1
	var yG1, lhs bls12381.G1Jac
	yG1.ScalarMultiplication(&g1Gen, y.BigInt(&scalar))
	lhs.Set(commitment)
	lhs.SubAssign(&yG1)

	// [s - x]G2
	var xG2, sMinusX bls12381.G2Jac
	xG2.ScalarMultiplication(&g2Gen, x.BigInt(&scalar))
	sMinusX.Set(&s.SecretG2[1])
	sMinusX.SubAssign(&xG2)

	return PairingsVerify(&lhs, &g2Gen, proof, &sMinusX)
}
