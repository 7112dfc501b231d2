package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/polynomial"
)

// EvalPoly evaluates the polynomial with the given coefficients (index i is
// the coefficient of x^i) at x. The empty polynomial is zero everywhere.
// coeffs is not modified.
func EvalPoly(coeffs []fr.Element, x *fr.Element) fr.Element {
	if len(coeffs) == 0 {
		return fr.Element{}
	}
	p := polynomial.Polynomial(coeffs)
	return p.Eval(x)
}

// quotientByLinear divides p(X) - p(x) by (X - x) using synthetic division
// and returns the quotient coefficients. len(result) == len(p)-1.
func quotientByLinear(p []fr.Element, x *fr.Element) []fr.Element {
	if len(p) < 2 {
		return nil
	}
	q := make([]fr.Element, len(p)-1)
	q[len(q)-1] = p[len(p)-1]
	for i := len(q) - 2; i >= 0; i-- {
		q[i].Mul(&q[i+1], x)
		q[i].Add(&q[i], &p[i+1])
	}
	return q
}
