package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Algorithm identifies the HMAC hash function used to derive tokens.
type Algorithm string

const (
	SHA1   Algorithm = "SHA1"
	SHA256 Algorithm = "SHA256"
	SHA512 Algorithm = "SHA512"
)

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	switch a {
	case SHA1, SHA256, SHA512:
		return true
	}
	return false
}

// KeySize returns the exact secret length in bytes required by a. The
// required length matches the digest size of the underlying hash, per
// RFC 4226 section 4 (SHA-1) and the RFC 6238 reference implementation
// (SHA-256, SHA-512).
func (a Algorithm) KeySize() int {
	switch a {
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	case SHA512:
		return sha512.Size
	}
	return 0
}

// Hash returns a constructor for the underlying hash function, suitable
// for hmac.New. Returns nil for unsupported algorithms.
func (a Algorithm) Hash() func() hash.Hash {
	switch a {
	case SHA1:
		return sha1.New
	case SHA256:
		return sha256.New
	case SHA512:
		return sha512.New
	}
	return nil
}

func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm maps a case-sensitive algorithm name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(name)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
	}
	return a, nil
}
