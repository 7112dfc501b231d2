package kzg

import (
	"encoding/json"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Settings are persisted as JSON in the layout of the Ethereum trusted setup
// files: points are 0x-prefixed compressed encodings (48 bytes in G1, 96 in
// G2) and scalars are 0x-prefixed 32-byte big-endian values. An absent
// precomputation cache is encoded as null.

type domainJSON struct {
	MaxWidth             uint64          `json:"max_width"`
	RootOfUnity          hexutil.Bytes   `json:"root_of_unity"`
	ExpandedRootsOfUnity []hexutil.Bytes `json:"expanded_roots_of_unity"`
	ReverseRootsOfUnity  []hexutil.Bytes `json:"reverse_roots_of_unity"`
	RootsOfUnity         []hexutil.Bytes `json:"roots_of_unity"`
}

type precomputationJSON struct {
	G1Affine []hexutil.Bytes `json:"g1_affine"`
}

type settingsJSON struct {
	Domain         *Domain             `json:"domain"`
	G1Monomial     []hexutil.Bytes     `json:"g1_monomial"`
	G2Monomial     []hexutil.Bytes     `json:"g2_monomial"`
	Precomputation *precomputationJSON `json:"precomputation"`
}

// MarshalJSON implements json.Marshaler.
func (d *Domain) MarshalJSON() ([]byte, error) {
	root := FieldElementBytes(&d.RootOfUnity)
	return json.Marshal(domainJSON{
		MaxWidth:             d.MaxWidth,
		RootOfUnity:          root[:],
		ExpandedRootsOfUnity: encodeScalars(d.ExpandedRootsOfUnity),
		ReverseRootsOfUnity:  encodeScalars(d.ReverseRootsOfUnity),
		RootsOfUnity:         encodeScalars(d.RootsOfUnity),
	})
}

// UnmarshalJSON implements json.Unmarshaler. The decoded tables must be the
// ones the root and width produce.
func (d *Domain) UnmarshalJSON(data []byte) error {
	var dec domainJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	root, err := FieldElementFromBytes(dec.RootOfUnity)
	if err != nil {
		return fmt.Errorf("domain root: %w", err)
	}
	expanded, err := decodeScalars(dec.ExpandedRootsOfUnity)
	if err != nil {
		return fmt.Errorf("domain expanded roots: %w", err)
	}
	reversed, err := decodeScalars(dec.ReverseRootsOfUnity)
	if err != nil {
		return fmt.Errorf("domain reverse roots: %w", err)
	}
	permuted, err := decodeScalars(dec.RootsOfUnity)
	if err != nil {
		return fmt.Errorf("domain roots: %w", err)
	}

	out := Domain{
		MaxWidth:             dec.MaxWidth,
		RootOfUnity:          root,
		ExpandedRootsOfUnity: expanded,
		ReverseRootsOfUnity:  reversed,
		RootsOfUnity:         permuted,
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("domain: %w", err)
	}
	*d = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s *Settings) MarshalJSON() ([]byte, error) {
	enc := settingsJSON{
		Domain:     s.Domain,
		G1Monomial: encodeG1(toAffineG1(s.SecretG1)),
		G2Monomial: make([]hexutil.Bytes, len(s.SecretG2)),
	}
	for i := range s.SecretG2 {
		var a bls12381.G2Affine
		a.FromJacobian(&s.SecretG2[i])
		b := a.Bytes()
		enc.G2Monomial[i] = b[:]
	}
	if t := s.Precomputation(); t != nil {
		enc.Precomputation = &precomputationJSON{G1Affine: encodeG1(t.G1Affine)}
	}
	return json.Marshal(enc)
}

// UnmarshalJSON implements json.Unmarshaler. Points are decoded with the
// curve and subgroup checks of the compressed format.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var dec settingsJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	if dec.Domain == nil {
		return ErrNilDomain
	}
	if len(dec.G1Monomial) != len(dec.G2Monomial) {
		return ErrSRSLengthMismatch
	}

	g1Affine, err := decodeG1(dec.G1Monomial)
	if err != nil {
		return fmt.Errorf("g1_monomial: %w", err)
	}
	secretG1 := make([]bls12381.G1Jac, len(g1Affine))
	for i := range g1Affine {
		secretG1[i].FromAffine(&g1Affine[i])
	}

	secretG2 := make([]bls12381.G2Jac, len(dec.G2Monomial))
	for i, b := range dec.G2Monomial {
		var a bls12381.G2Affine
		if _, err := a.SetBytes(b); err != nil {
			return fmt.Errorf("g2_monomial[%d]: %w", i, err)
		}
		secretG2[i].FromAffine(&a)
	}

	out, err := NewSettings(dec.Domain, secretG1, secretG2)
	if err != nil {
		return err
	}
	if dec.Precomputation != nil {
		table, err := decodeG1(dec.Precomputation.G1Affine)
		if err != nil {
			return fmt.Errorf("precomputation: %w", err)
		}
		if len(table) != len(secretG1) {
			return fmt.Errorf("precomputation has %d points, setup has %d: %w",
				len(table), len(secretG1), ErrMalformedSettings)
		}
		// The table must be the affine setup itself, point for point.
		for i := range table {
			if !table[i].Equal(&g1Affine[i]) {
				return fmt.Errorf("precomputation point %d differs from g1_monomial: %w",
					i, ErrMalformedSettings)
			}
		}
		out.attachPrecomputation(&PrecomputationTable{G1Affine: table})
	}
	*s = *out
	return nil
}

func encodeScalars(elems []fr.Element) []hexutil.Bytes {
	out := make([]hexutil.Bytes, len(elems))
	for i := range elems {
		b := FieldElementBytes(&elems[i])
		out[i] = b[:]
	}
	return out
}

func decodeScalars(enc []hexutil.Bytes) ([]fr.Element, error) {
	out := make([]fr.Element, len(enc))
	for i, b := range enc {
		e, err := FieldElementFromBytes(b)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = e
	}
	return out, nil
}

func encodeG1(points []bls12381.G1Affine) []hexutil.Bytes {
	out := make([]hexutil.Bytes, len(points))
	for i := range points {
		b := points[i].Bytes()
		out[i] = b[:]
	}
	return out
}

func decodeG1(enc []hexutil.Bytes) ([]bls12381.G1Affine, error) {
	out := make([]bls12381.G1Affine, len(enc))
	for i, b := range enc {
		if _, err := out[i].SetBytes(b); err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
	}
	return out, nil
}
