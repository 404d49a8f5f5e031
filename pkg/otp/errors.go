package otp

import "errors"

// Error taxonomy shared by every package in this module. Configuration and
// input problems are reported through these sentinels (usually wrapped with
// additional detail, so compare with errors.Is). A token that is well formed
// but simply wrong or outside the validation window is NOT an error; the
// validators report that case as a negative result instead.
var (
	// ErrInvalidSecret indicates the secret is empty, not valid base32, or
	// does not decode to the byte length required by the selected algorithm.
	ErrInvalidSecret = errors.New("otp: invalid secret")
	// ErrInvalidAlgorithm indicates an unsupported hash algorithm.
	ErrInvalidAlgorithm = errors.New("otp: invalid algorithm")
	// ErrInvalidDigits indicates a token length outside the supported 6-8 range.
	ErrInvalidDigits = errors.New("otp: invalid digits")
	// ErrInvalidPeriod indicates a non-positive time step.
	ErrInvalidPeriod = errors.New("otp: invalid period")
	// ErrInvalidCounter indicates a counter that cannot be represented, such
	// as one derived from a timestamp before the Unix epoch.
	ErrInvalidCounter = errors.New("otp: invalid counter")
	// ErrInvalidToken indicates a candidate token that is empty, has the
	// wrong length, or contains non-digit characters.
	ErrInvalidToken = errors.New("otp: invalid token")
	// ErrExpiredToken is reserved for callers that want to distinguish a
	// well-formed token outside any validation window from a malformed one.
	// The validators themselves never return it; they report the
	// out-of-window case as a negative validation result.
	ErrExpiredToken = errors.New("otp: token expired")
	// ErrShortDigest indicates the HMAC digest was too short for dynamic
	// truncation. Cannot happen with the supported algorithms; kept as a
	// guard against out-of-bounds reads.
	ErrShortDigest = errors.New("otp: digest too short for dynamic truncation")
)
