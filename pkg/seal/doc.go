// Package seal protects stored OTP secrets with AES-256-GCM.
//
// The core packages (otp, hotp, totp) never persist anything; applications
// that enroll users must store the shared secret somewhere, and storing it
// in the clear turns every database leak into a full OTP compromise. Seal
// encrypts a secret under a 32-byte key; Open authenticates and decrypts
// it, failing on any modification of the sealed bytes. This package does
// no I/O itself: callers decide where sealed bytes live.
//
// # Sealing With a Key
//
// Generate a key once, configure it via the environment, and seal secrets
// before they reach storage:
//
//	key, err := seal.LoadKey() // reads OTP_SEAL_KEY
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sealed, err := seal.Seal(secret, key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// store sealed; later:
//	secret, err = seal.Open(sealed, key)
//
// GenerateEncodedKey produces a fresh key in the base64 form OTP_SEAL_KEY
// expects:
//
//	encoded, err := seal.GenerateEncodedKey()
//	fmt.Printf("OTP_SEAL_KEY=%s\n", encoded)
//
// # Sealing With a Passphrase
//
// When no key infrastructure exists, SealWithPassphrase derives the key
// from a passphrase with scrypt. The random salt travels with the sealed
// data:
//
//	sealed, err := seal.SealWithPassphrase(secret, passphrase)
//	// later
//	secret, err := seal.OpenWithPassphrase(sealed, passphrase)
//
// Passphrase sealing is deliberately slow (one scrypt derivation per call);
// prefer key sealing for anything high-volume.
package seal
