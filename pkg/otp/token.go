package otp

import (
	"crypto/subtle"
	"fmt"
)

// ValidateToken checks the format of a candidate token: non-empty, exactly
// digits characters, ASCII digits only. Validators call this before any
// cryptographic work so malformed input fails fast with ErrInvalidToken and
// never reaches the comparison step.
func ValidateToken(token string, digits Digits) error {
	if !digits.Valid() {
		return fmt.Errorf("%w: digits must be 6, 7, or 8", ErrInvalidDigits)
	}
	if token == "" {
		return fmt.Errorf("%w: token must not be empty", ErrInvalidToken)
	}
	if len(token) != digits.Length() {
		return fmt.Errorf("%w: expected %d digits, got %d characters",
			ErrInvalidToken, digits.Length(), len(token))
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return fmt.Errorf("%w: token must contain only digits", ErrInvalidToken)
		}
	}
	return nil
}

// Equal compares two tokens in constant time. Tokens of different lengths
// compare unequal; equal-length tokens are compared without short-circuiting
// so the comparison leaks no timing information about matching prefixes.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
