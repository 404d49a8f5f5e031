package recovery

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base32"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// CodeLength is the length of a generated recovery code in characters.
const CodeLength = 16

// codeBytes is the entropy behind each code: 10 random bytes encode to
// exactly CodeLength base32 characters.
const codeBytes = 10

// ErrInvalidCount indicates a non-positive number of requested codes.
var ErrInvalidCount = errors.New("recovery: invalid code count")

// GenerateCodes returns n fresh recovery codes. Each code is CodeLength
// characters from the base32 alphabet (A-Z, 2-7), carrying 80 bits of
// entropy. Codes are returned in the clear exactly once; store only their
// hashes (HashCode) and show the originals to the user a single time.
func GenerateCodes(n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: must be positive, got %d", ErrInvalidCount, n)
	}

	codes := make([]string, n)
	buf := make([]byte, codeBytes)
	for i := range codes {
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("recovery: failed to generate code: %w", err)
		}
		codes[i] = base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf)
	}

	return codes, nil
}

// HashCode returns the hex SHA-256 digest of a normalized code, the form
// to persist. Normalization upper-cases the code and strips spaces and
// hyphens, so user input survives the separators people type.
func HashCode(code string) string {
	sum := sha256.Sum256([]byte(normalize(code)))
	return hex.EncodeToString(sum[:])
}

// VerifyCode reports whether code matches a stored hash. The comparison is
// constant-time. A code that verifies must be invalidated by the caller;
// recovery codes are single-use by contract, and this package keeps no
// state to enforce that.
func VerifyCode(code, hash string) bool {
	computed := HashCode(code)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

func normalize(code string) string {
	clean := strings.ToUpper(strings.TrimSpace(code))
	clean = strings.ReplaceAll(clean, " ", "")
	return strings.ReplaceAll(clean, "-", "")
}
