package kzg

import (
	"errors"
	"sync"
	"sync/atomic"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Settings errors.
var (
	ErrNilDomain         = errors.New("kzg: settings require a domain")
	ErrSRSLengthMismatch = errors.New("kzg: g1 and g2 setup lengths differ")
	ErrMalformedSettings = errors.New("kzg: malformed settings")
)

// PrecomputationTable holds the affine form of every SecretG1 point, the
// input the G1 multi-scalar multiplication consumes.
//
// A table is immutable once built.
type PrecomputationTable struct {
	G1Affine []bls12381.G1Affine
}

func newPrecomputationTable(secretG1 []bls12381.G1Jac) *PrecomputationTable {
	return &PrecomputationTable{G1Affine: toAffineG1(secretG1)}
}

func toAffineG1(points []bls12381.G1Jac) []bls12381.G1Affine {
	if len(points) == 0 {
		return []bls12381.G1Affine{}
	}
	return bls12381.BatchJacobianToAffineG1(points)
}

// Len returns the number of precomputed points.
func (t *PrecomputationTable) Len() int { return len(t.G1Affine) }

// precomputation is the shared handle behind Settings. Clones of a Settings
// value point at the same handle, so the table is built at most once no
// matter which clone asks for it.
type precomputation struct {
	once  sync.Once
	table atomic.Pointer[PrecomputationTable]
}

// Settings bundles an evaluation domain with a structured reference string
// and an optional precomputation cache. It is built once, optionally
// precomputed, and read-only afterwards; all methods are safe for concurrent
// use.
type Settings struct {
	Domain *Domain

	// SecretG1[i] = [s^i]G1.
	SecretG1 []bls12381.G1Jac

	// SecretG2[i] = [s^i]G2.
	SecretG2 []bls12381.G2Jac

	cache *precomputation
}

// NewSettings assembles settings from a domain and a setup produced
// independently, typically by GenerateTrustedSetup. The cache starts absent.
func NewSettings(domain *Domain, secretG1 []bls12381.G1Jac, secretG2 []bls12381.G2Jac) (*Settings, error) {
	if domain == nil {
		return nil, ErrNilDomain
	}
	if len(secretG1) != len(secretG2) {
		return nil, ErrSRSLengthMismatch
	}
	return &Settings{
		Domain:   domain,
		SecretG1: secretG1,
		SecretG2: secretG2,
		cache:    new(precomputation),
	}, nil
}

// Clone returns a shallow copy of s. The domain, setup slices and
// precomputation handle are shared with s.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}

// SRSLength returns the number of powers in the setup.
func (s *Settings) SRSLength() int { return len(s.SecretG1) }

// Precompute builds the precomputation table if it does not exist yet and
// returns it. Concurrent callers, including callers on clones, block until
// the single build finishes and then share its result.
func (s *Settings) Precompute() *PrecomputationTable {
	if s.cache == nil {
		// Not built by NewSettings: nothing to share the result with.
		return newPrecomputationTable(s.SecretG1)
	}
	s.cache.once.Do(func() {
		s.cache.table.Store(newPrecomputationTable(s.SecretG1))
	})
	return s.cache.table.Load()
}

// Precomputation returns the precomputation table, or nil when it has not
// been built or loaded.
func (s *Settings) Precomputation() *PrecomputationTable {
	if s.cache == nil {
		return nil
	}
	return s.cache.table.Load()
}

// g1Affine returns the affine setup points, from the cache when present.
// The result is identical either way; the cache only saves the conversion.
func (s *Settings) g1Affine() []bls12381.G1Affine {
	if t := s.Precomputation(); t != nil {
		return t.G1Affine
	}
	return toAffineG1(s.SecretG1)
}

// attachPrecomputation installs a table loaded from storage.
func (s *Settings) attachPrecomputation(t *PrecomputationTable) {
	s.cache.once.Do(func() {
		s.cache.table.Store(t)
	})
}
