// Package service provides the one-way digest used to fingerprint card numbers
// before anything about them is persisted.
package service

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/sha3"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
)

// Hasher computes a deterministic, hex-encoded one-way digest.
type Hasher interface {
	Hash(value []byte) string
	Algorithm() auditDomain.Algorithm
}

type sha3Hasher struct {
	algorithm auditDomain.Algorithm
	newHash   func() hash.Hash
}

// NewHasher creates a Hasher for the given algorithm. Unsupported algorithms are
// rejected with ErrUnsupportedAlgorithm before any hashing can happen.
func NewHasher(algorithm auditDomain.Algorithm) (Hasher, error) {
	switch algorithm {
	case auditDomain.SHA3256:
		return &sha3Hasher{algorithm: algorithm, newHash: sha3.New256}, nil
	case auditDomain.SHA3512:
		return &sha3Hasher{algorithm: algorithm, newHash: sha3.New512}, nil
	default:
		return nil, auditDomain.ErrUnsupportedAlgorithm
	}
}

// Hash computes the digest of value and returns it as a lower-case hex string.
func (s *sha3Hasher) Hash(value []byte) string {
	h := s.newHash()
	_, _ = h.Write(value)
	return hex.EncodeToString(h.Sum(nil))
}

// Algorithm returns the digest variant.
func (s *sha3Hasher) Algorithm() auditDomain.Algorithm {
	return s.algorithm
}
