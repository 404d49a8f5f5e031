package totp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jeremyhahn/go-otp/pkg/otp"
)

// ErrNilGenerator indicates a nil generator was used.
var ErrNilGenerator = errors.New("totp: generator is nil")

// Config holds time-stepped generator configuration.
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
	// Period specifies the time step in seconds. Must not be negative.
	// Default: 30
	Period int
	// Skew specifies the number of time steps checked before and after
	// the current step during validation (tolerance for clock skew).
	// Default: 1
	Skew uint
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

	// Validate period
	if c.Period < 0 {
		return fmt.Errorf("%w: period must be positive, got %d", otp.ErrInvalidPeriod, c.Period)
	}

	return nil
}

// Code is a generated token together with its remaining validity.
type Code struct {
	// Token is the derived decimal token.
	Token string
	// Remaining is the time left before the current step ends, rounded up
	// to whole seconds. Always in the range (0, period].
	Remaining time.Duration
}

// Result is the outcome of a validation attempt against the time window.
type Result struct {
	// Valid reports whether the token matched any step in the window.
	Valid bool
	// Delta is the signed step offset of the matching counter relative to
	// the step implied by the validation time: negative when the token was
	// generated in an earlier step, positive in a later one. Meaningful
	// only when Valid is true.
	Delta int
}

// Generator derives and validates time-stepped tokens (RFC 6238).
// Generators are immutable after construction and safe for concurrent use.
type Generator struct {
	secret    otp.Secret
	algorithm otp.Algorithm
	digits    otp.Digits
	period    int
	skew      uint
}

// NewGenerator creates a time-stepped generator.
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
	if cfg.Period == 0 {
		cfg.Period = 30
	}
	if cfg.Skew == 0 {
		cfg.Skew = 1
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
		period:    cfg.Period,
		skew:      cfg.Skew,
	}, nil
}

// Generate derives the token for the current time.
func (g *Generator) Generate() (Code, error) {
	return g.GenerateAt(time.Now().UTC())
}

// GenerateAt derives the token for the step containing t, along with the
// time remaining until that step ends.
func (g *Generator) GenerateAt(t time.Time) (Code, error) {
	if g == nil {
		return Code{}, ErrNilGenerator
	}

	counter, err := g.StepAt(t)
	if err != nil {
		return Code{}, err
	}

	token, err := otp.DeriveCode(g.secret, g.algorithm, counter, g.digits)
	if err != nil {
		return Code{}, err
	}

	stepMillis := int64(g.period) * 1000
	remMillis := stepMillis - t.UnixMilli()%stepMillis
	remaining := time.Duration((remMillis+999)/1000) * time.Second

	return Code{Token: token, Remaining: remaining}, nil
}

// Validate checks a candidate token against the current time window.
func (g *Generator) Validate(token string) (Result, error) {
	return g.ValidateAt(token, time.Now().UTC())
}

// ValidateAt checks a candidate token against the window of steps around t.
// The window covers offsets -skew through +skew in ascending order; the
// first matching step wins and its offset is reported as Delta. Steps
// before the epoch are skipped, never wrapped. A malformed token fails
// with an error before any cryptographic work; a well-formed token that
// matches no step in the window reports Result{Valid: false} with a nil
// error.
func (g *Generator) ValidateAt(token string, t time.Time) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGenerator
	}

	if err := otp.ValidateToken(token, g.digits); err != nil {
		return Result{}, err
	}

	counter, err := g.StepAt(t)
	if err != nil {
		return Result{}, err
	}

	for offset := -int(g.skew); offset <= int(g.skew); offset++ {
		var candidate uint64
		if offset < 0 {
			back := uint64(-offset)
			if back > counter {
				continue // step precedes the epoch
			}
			candidate = counter - back
		} else {
			candidate = counter + uint64(offset)
		}

		expected, err := otp.DeriveCode(g.secret, g.algorithm, candidate, g.digits)
		if err != nil {
			return Result{}, err
		}
		if otp.Equal(token, expected) {
			return Result{Valid: true, Delta: offset}, nil
		}
	}

	return Result{}, nil
}

// Step returns the counter for the current time.
func (g *Generator) Step() (uint64, error) {
	return g.StepAt(time.Now().UTC())
}

// StepAt returns the counter for the step containing t: the number of
// whole periods elapsed since the Unix epoch. Times before the epoch are
// rejected rather than wrapped into a huge counter.
func (g *Generator) StepAt(t time.Time) (uint64, error) {
	if g == nil {
		return 0, ErrNilGenerator
	}

	sec := t.Unix()
	if sec < 0 {
		return 0, fmt.Errorf("%w: time %s precedes the Unix epoch",
			otp.ErrInvalidCounter, t.UTC().Format(time.RFC3339))
	}

	return uint64(sec) / uint64(g.period), nil
}

// Period returns the configured step length in seconds.
func (g *Generator) Period() int {
	if g == nil {
		return 0
	}
	return g.period
}

// Digits returns the configured token length.
func (g *Generator) Digits() otp.Digits {
	if g == nil {
		return 0
	}
	return g.digits
}
