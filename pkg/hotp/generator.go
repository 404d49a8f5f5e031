package hotp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeremyhahn/go-otp/pkg/otp"
)

// ErrNilGenerator indicates a nil generator was used.
var ErrNilGenerator = errors.New("hotp: generator is nil")

// Config holds counter-stepped generator configuration.
type Config struct {
	// Secret is the base32-encoded shared secret key (required). Its
	// decoded length must match the algorithm: 20 bytes for SHA1, 32 for
	// SHA256, 64 for SHA512.
	Secret string
	// Algorithm specifies the HMAC hash algorithm.
	// Default: SHA1
	Algorithm otp.Algorithm
	// Digits specifies the number of digits in generated tokens (6, 7, or 8).
	// Default: 6
	Digits otp.Digits
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	// Validate secret
	if strings.TrimSpace(c.Secret) == "" {
		return fmt.Errorf("%w: secret must not be empty", otp.ErrInvalidSecret)
	}
	if _, err := otp.ParseSecret(c.Secret); err != nil {
		return err
	}

	// Validate algorithm (if specified)
	if c.Algorithm != "" && !c.Algorithm.Valid() {
		return fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512", otp.ErrInvalidAlgorithm)
	}

	// Validate digits (if specified)
	if c.Digits != 0 && !c.Digits.Valid() {
		return fmt.Errorf("%w: digits must be 6, 7, or 8", otp.ErrInvalidDigits)
	}

	return nil
}

// Generator derives and validates counter-stepped tokens (RFC 4226).
// It keeps no counter state; the caller persists the counter and decides
// how it advances. Generators are immutable after construction and safe
// for concurrent use.
type Generator struct {
	secret    otp.Secret
	algorithm otp.Algorithm
	digits    otp.Digits
}

// NewGenerator creates a counter-stepped generator.
// The configuration is validated and an error is returned if invalid.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if cfg.Algorithm == "" {
		cfg.Algorithm = otp.SHA1
	}
	if cfg.Digits == 0 {
		cfg.Digits = otp.DigitsSix
	}

	secret, err := otp.ParseSecret(cfg.Secret)
	if err != nil {
		return nil, err
	}
	if err := secret.Validate(cfg.Algorithm); err != nil {
		return nil, err
	}

	return &Generator{
		secret:    secret,
		algorithm: cfg.Algorithm,
		digits:    cfg.Digits,
	}, nil
}

// Generate derives the token for the given counter value.
func (g *Generator) Generate(counter uint64) (string, error) {
	if g == nil {
		return "", ErrNilGenerator
	}
	return otp.DeriveCode(g.secret, g.algorithm, counter, g.digits)
}

// Validate checks a candidate token against the given counter value.
// A malformed token fails with an error before any cryptographic work;
// a well-formed token that does not match reports (false, nil). There is
// no implicit look-ahead window: one call checks exactly one counter.
func (g *Generator) Validate(token string, counter uint64) (bool, error) {
	if g == nil {
		return false, ErrNilGenerator
	}

	if err := otp.ValidateToken(token, g.digits); err != nil {
		return false, err
	}

	expected, err := otp.DeriveCode(g.secret, g.algorithm, counter, g.digits)
	if err != nil {
		return false, err
	}

	return otp.Equal(token, expected), nil
}

// Digits returns the configured token length.
func (g *Generator) Digits() otp.Digits {
	if g == nil {
		return 0
	}
	return g.digits
}
