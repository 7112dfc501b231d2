package kzg

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func testPoints() []fr.Element {
	pts := make([]fr.Element, 5)
	pts[1].SetUint64(1)
	pts[2].SetUint64(7)
	pts[3].SetUint64(123456789)
	pts[4].SetInt64(-5)
	return pts
}

func TestEvalPolyConstant(t *testing.T) {
	var c fr.Element
	c.SetUint64(42)
	for i, x := range testPoints() {
		got := EvalPoly([]fr.Element{c}, &x)
		if !got.Equal(&c) {
			t.Fatalf("point %d: p(x) = %s, want 42", i, got.String())
		}
	}
}

func TestEvalPolyEmpty(t *testing.T) {
	for i, x := range testPoints() {
		got := EvalPoly(nil, &x)
		if !got.IsZero() {
			t.Fatalf("point %d: empty polynomial = %s, want 0", i, got.String())
		}
		got = EvalPoly([]fr.Element{}, &x)
		if !got.IsZero() {
			t.Fatalf("point %d: empty slice = %s, want 0", i, got.String())
		}
	}
}

// p(X) = X^2 + 2X + 3
func TestEvalPolyQuadratic(t *testing.T) {
	coeffs := make([]fr.Element, 3)
	coeffs[0].SetUint64(3)
	coeffs[1].SetUint64(2)
	coeffs[2].SetUint64(1)

	tests := []struct {
		x, want uint64
	}{
		{0, 3},
		{1, 6},
		{10, 123},
		{42, 1851},
	}
	for _, tt := range tests {
		var x, want fr.Element
		x.SetUint64(tt.x)
		want.SetUint64(tt.want)
		got := EvalPoly(coeffs, &x)
		if !got.Equal(&want) {
			t.Errorf("p(%d) = %s, want %d", tt.x, got.String(), tt.want)
		}
	}
}

func TestEvalPolyDoesNotMutate(t *testing.T) {
	coeffs := make([]fr.Element, 4)
	for i := range coeffs {
		coeffs[i].SetUint64(uint64(i + 1))
	}
	before := append([]fr.Element(nil), coeffs...)
	var x fr.Element
	x.SetUint64(9)
	EvalPoly(coeffs, &x)
	for i := range coeffs {
		if !coeffs[i].Equal(&before[i]) {
			t.Fatalf("coefficient %d changed", i)
		}
	}
}

func TestQuotientByLinear(t *testing.T) {
	// p(X) = 4X^3 + 3X^2 + 2X + 1, divided at x = 5.
	p := make([]fr.Element, 4)
	for i := range p {
		p[i].SetUint64(uint64(i + 1))
	}
	var x fr.Element
	x.SetUint64(5)
	q := quotientByLinear(p, &x)
	if len(q) != 3 {
		t.Fatalf("len(q) = %d, want 3", len(q))
	}

	// q(z)(z - x) + p(x) == p(z) at an unrelated point.
	var z fr.Element
	z.SetUint64(11)
	px := EvalPoly(p, &x)
	qz := EvalPoly(q, &z)
	var lhs, zMinusX fr.Element
	zMinusX.Sub(&z, &x)
	lhs.Mul(&qz, &zMinusX)
	lhs.Add(&lhs, &px)
	pz := EvalPoly(p, &z)
	if !lhs.Equal(&pz) {
		t.Fatalf("q(z)(z-x)+p(x) = %s, want %s", lhs.String(), pz.String())
	}

	if q := quotientByLinear(p[:1], &x); q != nil {
		t.Fatalf("constant polynomial quotient = %v, want nil", q)
	}
}
