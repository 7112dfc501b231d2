// Package kzg implements the algebraic core of KZG polynomial commitments
// over BLS12-381: evaluation domains built from roots of unity, structured
// reference strings derived from a seed, dense polynomial evaluation and the
// pairing check used to verify opening proofs.
//
// The KZG (Kate-Zaverucha-Goldberg) scheme commits to p(X) as C = [p(s)]_1
// and proves p(z) = y with pi = [(p(s) - y) / (s - z)]_1. The verifier checks
//
//	e(C - [y]G1, G2) == e(pi, [s]G2 - [z]G2)
//
// Field and group arithmetic is delegated to gnark-crypto. Every exported
// function in this package is a pure function of its arguments; the only
// shared state is the optional precomputation cache of a Settings value.
package kzg

import (
	"errors"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// Domain errors.
var (
	ErrCycleTooLong       = errors.New("kzg: root of unity multiplied for too long")
	ErrInvalidScale       = errors.New("kzg: root of unity has invalid scale")
	ErrScaleTooLarge      = errors.New("kzg: domain scale exceeds field two-adicity")
	ErrWidthNotPowerOfTwo = errors.New("kzg: domain width must be a power of two")
)

// MaxScale is the two-adicity of r-1 for the BLS12-381 scalar field: the
// largest power-of-two domain has 2^32 elements.
const MaxScale = 32

// primitiveRoot generates the multiplicative group of the scalar field.
// EIP-4844 uses the same constant (PRIMITIVE_ROOT_OF_UNITY).
const primitiveRoot = 7

// Domain is a multiplicative subgroup of the scalar field together with the
// tables consumed by FFT routines.
type Domain struct {
	// MaxWidth is the number of elements in the domain.
	MaxWidth uint64

	// RootOfUnity generates the domain; its order is exactly MaxWidth.
	RootOfUnity fr.Element

	// ExpandedRootsOfUnity holds root^0 .. root^MaxWidth (MaxWidth+1 values,
	// first and last are both one).
	ExpandedRootsOfUnity []fr.Element

	// ReverseRootsOfUnity is ExpandedRootsOfUnity in reverse order.
	ReverseRootsOfUnity []fr.Element

	// RootsOfUnity is root^0 .. root^(MaxWidth-1) in bit-reversed order.
	RootsOfUnity []fr.Element
}

// ExpandRootOfUnity returns the ordered powers of root, starting at one and
// ending with the first power that equals one again.
//
// The loop is bounded by width: if the sequence grows past width elements
// without closing, ErrCycleTooLong is returned. If it closes at a length
// other than width+1, the order of root is not width and ErrInvalidScale is
// returned. Since the sequence stops at the first repeat of one, success
// implies root is a primitive width-th root of unity.
func ExpandRootOfUnity(root *fr.Element, width uint64) ([]fr.Element, error) {
	powers := []fr.Element{fr.One(), *root}

	for !powers[len(powers)-1].IsOne() {
		if uint64(len(powers)) > width {
			return nil, ErrCycleTooLong
		}
		var next fr.Element
		next.Mul(&powers[len(powers)-1], root)
		powers = append(powers, next)
	}

	if uint64(len(powers)) != width+1 {
		return nil, ErrInvalidScale
	}
	return powers, nil
}

// RootOfUnity returns the canonical primitive 2^scale-th root of unity,
// 7^((r-1)/2^scale).
func RootOfUnity(scale uint8) (fr.Element, error) {
	if scale > MaxScale {
		return fr.Element{}, ErrScaleTooLarge
	}
	exp := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	exp.Rsh(exp, uint(scale))

	var gen, root fr.Element
	gen.SetUint64(primitiveRoot)
	root.Exp(gen, exp)
	return root, nil
}

// NewDomain builds the domain of width 2^scale from the canonical root of
// unity for that width.
func NewDomain(scale uint8) (*Domain, error) {
	root, err := RootOfUnity(scale)
	if err != nil {
		return nil, err
	}
	return NewDomainFromRoot(root, uint64(1)<<scale)
}

// NewDomainFromRoot builds a domain of the given width from a caller-chosen
// root. The width must be a power of two so that the bit-reversed table is
// defined, and root must have order exactly width.
func NewDomainFromRoot(root fr.Element, width uint64) (*Domain, error) {
	if width == 0 || bits.OnesCount64(width) != 1 {
		return nil, ErrWidthNotPowerOfTwo
	}
	expanded, err := ExpandRootOfUnity(&root, width)
	if err != nil {
		return nil, err
	}

	reversed := make([]fr.Element, len(expanded))
	for i := range expanded {
		reversed[len(expanded)-1-i] = expanded[i]
	}

	permuted := make([]fr.Element, width)
	copy(permuted, expanded[:width])
	fft.BitReverse(permuted)

	return &Domain{
		MaxWidth:             width,
		RootOfUnity:          root,
		ExpandedRootsOfUnity: expanded,
		ReverseRootsOfUnity:  reversed,
		RootsOfUnity:         permuted,
	}, nil
}

// Validate re-derives the tables from RootOfUnity and MaxWidth and reports
// whether the stored tables match. It is used on domains that were decoded
// rather than built. Table lengths are checked first, so a width that the
// stored tables do not back is rejected without expanding the root.
func (d *Domain) Validate() error {
	if d.MaxWidth == 0 ||
		uint64(len(d.ExpandedRootsOfUnity)) != d.MaxWidth+1 ||
		len(d.ReverseRootsOfUnity) != len(d.ExpandedRootsOfUnity) ||
		uint64(len(d.RootsOfUnity)) != d.MaxWidth {
		return ErrMalformedSettings
	}
	want, err := NewDomainFromRoot(d.RootOfUnity, d.MaxWidth)
	if err != nil {
		return err
	}
	if !elementsEqual(d.ExpandedRootsOfUnity, want.ExpandedRootsOfUnity) ||
		!elementsEqual(d.ReverseRootsOfUnity, want.ReverseRootsOfUnity) ||
		!elementsEqual(d.RootsOfUnity, want.RootsOfUnity) {
		return ErrMalformedSettings
	}
	return nil
}

func elementsEqual(a, b []fr.Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(&b[i]) {
			return false
		}
	}
	return true
}
