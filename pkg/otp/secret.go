package otp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// Secret is a raw shared secret key. The supported algorithms each require
// an exact length: 20 bytes for SHA1, 32 for SHA256, 64 for SHA512.
type Secret []byte

// ParseSecret decodes the base32 text form of a secret. Decoding is
// case-insensitive, ignores leading, trailing, and interior whitespace, and
// accepts both padded and unpadded input. Anything else fails with
// ErrInvalidSecret. Length is not checked here; use Validate once the
// algorithm is known.
func ParseSecret(s string) (Secret, error) {
	clean := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	clean = strings.TrimRight(clean, "=")
	if clean == "" {
		return nil, fmt.Errorf("%w: secret must not be empty", ErrInvalidSecret)
	}

	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: secret must be valid base32: %v", ErrInvalidSecret, err)
	}

	return Secret(raw), nil
}

// NewSecret generates a cryptographically random secret of n bytes.
// n must be 20, 32, or 64, matching the length required by one of the
// supported algorithms.
func NewSecret(n int) (Secret, error) {
	switch n {
	case SHA1.KeySize(), SHA256.KeySize(), SHA512.KeySize():
	default:
		return nil, fmt.Errorf("%w: secret size must be %d, %d, or %d bytes, got %d",
			ErrInvalidSecret, SHA1.KeySize(), SHA256.KeySize(), SHA512.KeySize(), n)
	}

	secret := make(Secret, n)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("otp: failed to generate random secret: %w", err)
	}

	return secret, nil
}

// NewSecretForAlgorithm generates a random secret of exactly the length
// required by a.
func NewSecretForAlgorithm(a Algorithm) (Secret, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, a)
	}
	return NewSecret(a.KeySize())
}

// String encodes the secret as unpadded upper-case base32, the form
// expected by Config.Secret fields and ParseSecret.
func (s Secret) String() string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(s)
}

// Validate checks that the secret has exactly the length required by a.
func (s Secret) Validate(a Algorithm) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAlgorithm, a)
	}
	if len(s) != a.KeySize() {
		return fmt.Errorf("%w: %s requires a %d-byte secret, got %d bytes",
			ErrInvalidSecret, a, a.KeySize(), len(s))
	}
	return nil
}

// Copy returns an independent copy of the secret, so the original can be
// wiped without affecting the copy.
func (s Secret) Copy() Secret {
	if s == nil {
		return nil
	}
	out := make(Secret, len(s))
	copy(out, s)
	return out
}

// Wipe zeroes the underlying bytes. Best-effort hardening for callers that
// want to drop a secret after use; the Secret must not be used afterward.
func (s Secret) Wipe() {
	for i := range s {
		s[i] = 0
	}
}
