// Package domain defines the audit trail model: digest algorithms and the
// privacy-preserving record persisted for each audited validation.
package domain

// Algorithm is a supported one-way digest variant.
type Algorithm string

const (
	SHA3256 Algorithm = "sha3-256"
	SHA3512 Algorithm = "sha3-512"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = SHA3256

// ParseAlgorithm returns the Algorithm named by s, or ErrUnsupportedAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	algorithm := Algorithm(s)
	if err := algorithm.Validate(); err != nil {
		return "", err
	}
	return algorithm, nil
}

// Validate checks if the algorithm is supported.
func (a Algorithm) Validate() error {
	switch a {
	case SHA3256, SHA3512:
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}

// HexLength is the length of the hex-encoded digest, 0 for unsupported algorithms.
func (a Algorithm) HexLength() int {
	switch a {
	case SHA3256:
		return 64
	case SHA3512:
		return 128
	default:
		return 0
	}
}

// IsDigest reports whether s is a lower-case hex digest as long as the output of
// one of the supported algorithms.
func IsDigest(s string) bool {
	for _, algorithm := range []Algorithm{SHA3256, SHA3512} {
		if len(s) == algorithm.HexLength() {
			return isLowerHex(s)
		}
	}
	return false
}

func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// String returns the string representation of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}
