// Package authenticator provides TOTP (RFC 6238) and HOTP (RFC 4226)
// authentication behind a single mode-switched surface.
//
// TOTP (time-stepped) codes change every 30 seconds and are the scheme
// used by authenticator apps. HOTP (counter-stepped) codes advance with an
// explicit counter, used by hardware tokens. Applications that need only
// one mode, or the richer results (remaining validity, match offset), can
// use the totp and hotp packages directly.
//
// # TOTP Example
//
// Time-stepped codes validated against the current time:
//
//	config := authenticator.Config{
//	    Type:      authenticator.TypeTOTP,
//	    Secret:    secret,
//	    Digits:    otp.DigitsSix,
//	    Period:    30,
//	    Algorithm: otp.SHA1,
//	    Skew:      1, // Allow 1 period of clock skew
//	}
//
//	auth, err := authenticator.NewAuthenticator(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Validate a code from the user's authenticator app
//	err = auth.Authenticate(ctx, "123456")
//	if err != nil {
//	    log.Printf("Authentication failed: %v", err)
//	}
//
// # HOTP Example
//
// Counter-stepped codes for hardware tokens:
//
//	config := authenticator.Config{
//	    Type:   authenticator.TypeHOTP,
//	    Secret: secret,
//	}
//
//	auth, err := authenticator.NewAuthenticator(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Validate code and get new counter value
//	newCounter, err := auth.ValidateCounter(ctx, "123456", currentCounter)
//	if err != nil {
//	    log.Printf("Authentication failed: %v", err)
//	} else {
//	    // Store newCounter for next validation
//	    currentCounter = newCounter
//	}
//
// # Secret Generation
//
// Generate a cryptographically random secret sized for the algorithm:
//
//	secret, err := authenticator.GenerateSecret(otp.SHA1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Use secret in Config.Secret
//
// # Hash Algorithms
//
// The package supports multiple hash algorithms:
//   - otp.SHA1 (default, widely supported, 20-byte secret)
//   - otp.SHA256 (more secure, 32-byte secret)
//   - otp.SHA512 (most secure, 64-byte secret)
//
// The secret length must match the algorithm. Note that not all
// authenticator apps support SHA256 and SHA512.
//
// # Thread Safety
//
// The Authenticator type is safe for concurrent use. Multiple goroutines
// can call its methods simultaneously.
//
// # Context Support
//
// All authentication methods accept a context.Context for cancellation
// and timeout support:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	err := auth.Authenticate(ctx, code)
package authenticator
