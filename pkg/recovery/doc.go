// Package recovery generates and verifies single-use backup codes, the
// fallback for users who lose access to their OTP device.
//
// Codes are random 16-character base32 strings. The application stores
// only their hashes and shows the clear codes to the user once, at
// enrollment:
//
//	codes, err := recovery.GenerateCodes(10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	hashes := make([]string, len(codes))
//	for i, code := range codes {
//	    hashes[i] = recovery.HashCode(code)
//	}
//	// persist hashes; display codes to the user once
//
// During recovery, verify the submitted code against each stored hash and
// delete the hash that matched, so each code authenticates at most once:
//
//	for i, hash := range hashes {
//	    if recovery.VerifyCode(submitted, hash) {
//	        // grant access, then remove hashes[i] from storage
//	    }
//	}
//
// Verification is constant-time and tolerant of the separators users type:
// "ABCD-EFGH-2345-67AB" and "abcdefgh234567ab" verify against the same
// hash.
package recovery
