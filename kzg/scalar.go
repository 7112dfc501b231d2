package kzg

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/holiman/uint256"
)

// Scalar encoding errors.
var (
	ErrScalarLength       = errors.New("kzg: scalar must be 32 bytes")
	ErrNonCanonicalScalar = errors.New("kzg: scalar is not reduced modulo r")
)

// blsModulus is r, the order of the BLS12-381 scalar field.
var blsModulus = uint256.MustFromBig(fr.Modulus())

// FieldElementFromBytes decodes a 32-byte big-endian scalar. Values >= r are
// rejected rather than reduced.
func FieldElementFromBytes(b []byte) (fr.Element, error) {
	if len(b) != fr.Bytes {
		return fr.Element{}, ErrScalarLength
	}
	v := new(uint256.Int).SetBytes32(b)
	if !v.Lt(blsModulus) {
		return fr.Element{}, ErrNonCanonicalScalar
	}
	buf := v.Bytes32()

	var e fr.Element
	e.SetBytes(buf[:])
	return e, nil
}

// FieldElementBytes encodes e as 32 bytes big-endian.
func FieldElementBytes(e *fr.Element) [fr.Bytes]byte {
	return e.Bytes()
}
