package authenticator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jeremyhahn/go-otp/pkg/hotp"
	"github.com/jeremyhahn/go-otp/pkg/otp"
	"github.com/jeremyhahn/go-otp/pkg/totp"
)

// Type selects the OTP mode.
type Type string

const (
	// TypeTOTP represents time-stepped OTP (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP represents counter-stepped OTP (RFC 4226).
	TypeHOTP Type = "hotp"
)

// Common errors returned by the authenticator.
var (
	// ErrInvalidCode indicates the provided code did not authenticate.
	ErrInvalidCode = errors.New("authenticator: invalid code")
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("authenticator: invalid configuration")
	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("authenticator: authenticator is nil")
)

// Config holds authenticator configuration.
type Config struct {
	// Type specifies the OTP mode (TOTP or HOTP).
	Type Type
	// Secret is the base32-encoded shared secret key (required). Its
	// decoded length must match the algorithm: 20 bytes for SHA1, 32 for
	// SHA256, 64 for SHA512.
	Secret string
	// Digits specifies the number of digits in OTP codes (6, 7, or 8).
	// Default: 6
	Digits otp.Digits
	// Period specifies the time step in seconds for TOTP.
	// Default: 30
	Period int
	// Counter specifies the counter value HOTP codes authenticate
	// against. Default: 0
	Counter uint64
	// Algorithm specifies the HMAC hash algorithm.
	// Default: SHA1
	Algorithm otp.Algorithm
	// Skew specifies the number of time steps to check before and after
	// the current time for TOTP validation (tolerance for clock skew).
	// Default: 1
	Skew uint
}

// validate checks the fields the mode dispatch depends on; the mode
// generators validate everything else at construction.
func (c Config) validate() error {
	if c.Type != TypeTOTP && c.Type != TypeHOTP {
		return fmt.Errorf("%w: type must be 'totp' or 'hotp'", ErrInvalidConfig)
	}
	return nil
}

// Authenticator validates OTP codes in either mode behind one surface.
// It is safe for concurrent use.
type Authenticator struct {
	cfg  Config
	totp *totp.Generator
	hotp *hotp.Generator
}

// NewAuthenticator creates an authenticator for the configured mode.
// The configuration is validated and an error is returned if invalid;
// configuration problems carry both ErrInvalidConfig and the specific
// sentinel from the otp package.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	a := &Authenticator{cfg: cfg}

	switch cfg.Type {
	case TypeTOTP:
		gen, err := totp.NewGenerator(totp.Config{
			Secret:    cfg.Secret,
			Algorithm: cfg.Algorithm,
			Digits:    cfg.Digits,
			Period:    cfg.Period,
			Skew:      cfg.Skew,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		a.totp = gen
	case TypeHOTP:
		gen, err := hotp.NewGenerator(hotp.Config{
			Secret:    cfg.Secret,
			Algorithm: cfg.Algorithm,
			Digits:    cfg.Digits,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		a.hotp = gen
	}

	return a, nil
}

// Authenticate validates an OTP code.
// For TOTP, it validates against the current time with skew tolerance.
// For HOTP, it validates against the configured counter value.
func (a *Authenticator) Authenticate(ctx context.Context, code string) error {
	if a == nil {
		return ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	if a.cfg.Type == TypeTOTP {
		res, err := a.totp.Validate(code)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCode, err)
		}
		if !res.Valid {
			return ErrInvalidCode
		}
		return nil
	}

	// HOTP validation using configured counter
	valid, err := a.hotp.Validate(code, a.cfg.Counter)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCode, err)
	}
	if !valid {
		return ErrInvalidCode
	}

	return nil
}

// ValidateCounter validates an HOTP code and returns the new counter value.
// This method is only valid for HOTP authenticators.
// The returned counter should be stored and used for the next validation.
func (a *Authenticator) ValidateCounter(ctx context.Context, code string, counter uint64) (uint64, error) {
	if a == nil {
		return 0, ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if a.cfg.Type != TypeHOTP {
		return 0, fmt.Errorf("%w: ValidateCounter is only valid for HOTP", ErrInvalidConfig)
	}

	if strings.TrimSpace(code) == "" {
		return 0, fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	valid, err := a.hotp.Validate(code, counter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCode, err)
	}
	if !valid {
		return 0, ErrInvalidCode
	}

	// Return incremented counter
	return counter + 1, nil
}

// Generate generates an OTP code.
// For TOTP, it generates the code for the current time.
// For HOTP, a counter value must be provided.
func (a *Authenticator) Generate(counter ...uint64) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	if a.cfg.Type == TypeTOTP {
		code, err := a.totp.Generate()
		if err != nil {
			return "", fmt.Errorf("authenticator: failed to generate TOTP code: %w", err)
		}
		return code.Token, nil
	}

	// HOTP requires counter
	if len(counter) == 0 {
		return "", fmt.Errorf("authenticator: counter required for HOTP generation")
	}

	code, err := a.hotp.Generate(counter[0])
	if err != nil {
		return "", fmt.Errorf("authenticator: failed to generate HOTP code: %w", err)
	}

	return code, nil
}

// GenerateSecret generates a cryptographically random secret key sized for
// the given algorithm (20 bytes for SHA1, 32 for SHA256, 64 for SHA512).
// An empty algorithm selects SHA1. The secret is returned as a
// base32-encoded string suitable for use in the Config.Secret field.
func GenerateSecret(algorithm otp.Algorithm) (string, error) {
	if algorithm == "" {
		algorithm = otp.SHA1
	}

	secret, err := otp.NewSecretForAlgorithm(algorithm)
	if err != nil {
		return "", err
	}

	return secret.String(), nil
}
