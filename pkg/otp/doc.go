// Package otp implements the core of the HMAC-based one-time password
// algorithm family: token derivation (RFC 4226 section 5.3), secret
// encoding, token format validation, and constant-time comparison.
//
// The higher-level packages build on this one: hotp for counter-stepped
// tokens (RFC 4226), totp for time-stepped tokens (RFC 6238), and
// authenticator for a unified facade over both. Most applications should
// use those; this package is the shared engine.
//
// # Token Derivation
//
// DeriveCode turns a secret, an algorithm, and a counter into a fixed-width
// decimal token:
//
//	secret, err := otp.ParseSecret("GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := otp.DeriveCode(secret, otp.SHA1, 42, otp.DigitsSix)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// token is a 6-digit string such as "871337"
//
// Derivation is deterministic: the same inputs always produce the same
// token. Adjacent counters produce unrelated tokens.
//
// # Secrets
//
// Secrets are raw bytes with an exact length mandated by the algorithm:
// 20 bytes for SHA1, 32 for SHA256, 64 for SHA512. The text form is
// unpadded upper-case base32; ParseSecret additionally accepts lower case,
// '=' padding, and embedded whitespace:
//
//	secret, err := otp.NewSecretForAlgorithm(otp.SHA256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	encoded := secret.String() // share with the other party
//
// Secrets are sensitive key material. Nothing in this module logs or
// persists them; call Wipe to zero a secret you no longer need.
//
// # Token Comparison
//
// Equal compares candidate and expected tokens in constant time, defeating
// timing side-channels that would otherwise let an attacker confirm token
// prefixes. ValidateToken rejects malformed candidates (wrong length,
// non-digit characters) before any comparison happens.
//
// # Errors
//
// Configuration and input problems are reported through the package
// sentinels (ErrInvalidSecret, ErrInvalidAlgorithm, ErrInvalidDigits,
// ErrInvalidPeriod, ErrInvalidCounter, ErrInvalidToken), wrapped with
// detail and matchable with errors.Is. A well-formed token that simply
// does not match is a negative validation result, not an error.
package otp
