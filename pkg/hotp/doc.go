// Package hotp implements counter-stepped one-time passwords (RFC 4226).
//
// A Generator is stateless: the caller supplies the counter on every call
// and is responsible for persisting it. Validation checks exactly one
// counter; callers that want a look-ahead window walk the counters
// themselves, or use the totp package for time-stepped tokens.
//
//	gen, err := hotp.NewGenerator(hotp.Config{
//	    Secret: "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := gen.Generate(counter)
//	// later
//	ok, err := gen.Validate(submitted, counter)
package hotp
