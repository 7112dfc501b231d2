package kzg

import (
	"encoding/binary"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// Digest returns Keccak-256 over the domain width, the root of unity and
// the compressed setup points. Two settings with equal digests hold the same
// public parameters; the precomputation cache does not affect the digest.
// A missing domain hashes as width zero with a zero root.
func (s *Settings) Digest() common.Hash {
	h := sha3.NewLegacyKeccak256()

	var (
		width [8]byte
		root  [32]byte
	)
	if s.Domain != nil {
		binary.BigEndian.PutUint64(width[:], s.Domain.MaxWidth)
		root = FieldElementBytes(&s.Domain.RootOfUnity)
	}
	h.Write(width[:])
	h.Write(root[:])

	for _, p := range toAffineG1(s.SecretG1) {
		b := p.Bytes()
		h.Write(b[:])
	}
	for i := range s.SecretG2 {
		var p bls12381.G2Affine
		p.FromJacobian(&s.SecretG2[i])
		b := p.Bytes()
		h.Write(b[:])
	}
	return common.BytesToHash(h.Sum(nil))
}
