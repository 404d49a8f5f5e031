// Package totp implements time-stepped one-time passwords (RFC 6238),
// the scheme used by authenticator apps.
//
// A Generator divides time into fixed steps (30 seconds by default) and
// derives one token per step. Validation tolerates clock skew between the
// parties by checking a symmetric window of adjacent steps and reporting
// which step matched:
//
//	gen, err := totp.NewGenerator(totp.Config{
//	    Secret: "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ",
//	    Skew:   1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := gen.Generate()
//	// code.Token is valid for code.Remaining
//
//	res, err := gen.Validate(submitted)
//	if err != nil {
//	    // malformed token or configuration problem
//	}
//	if res.Valid {
//	    // res.Delta tells how many steps the token was away from now
//	}
//
// A token that simply does not match is not an error: Validate returns
// Result{Valid: false} and a nil error so callers can distinguish bad
// input from a failed authentication attempt.
package totp
