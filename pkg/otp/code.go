package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
)

// DeriveCode derives a one-time token from a shared secret and a counter,
// per RFC 4226 section 5.3: the counter is serialized as 8 big-endian
// bytes, keyed-hashed with HMAC, dynamically truncated to a 31-bit value,
// and reduced modulo 10^digits into a zero-padded decimal string.
//
// DeriveCode is a pure function: it keeps no state and never mutates the
// secret. The secret must not be empty; its length policy against the
// algorithm is enforced by generator constructors, not here.
func DeriveCode(secret []byte, algorithm Algorithm, counter uint64, digits Digits) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("%w: secret must not be empty", ErrInvalidSecret)
	}
	if !algorithm.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, algorithm)
	}
	if !digits.Valid() {
		return "", fmt.Errorf("%w: digits must be 6, 7, or 8", ErrInvalidDigits)
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(algorithm.Hash(), secret)
	mac.Write(msg[:])
	digest := mac.Sum(nil)

	value, err := truncate(digest)
	if err != nil {
		return "", err
	}

	mod := uint32(1)
	for i := 0; i < digits.Length(); i++ {
		mod *= 10
	}

	return digits.Format(value % mod), nil
}

// truncate applies RFC 4226 dynamic truncation: the low nibble of the last
// digest byte selects an offset, and the 4 bytes at that offset are read
// big-endian with the top bit masked off to avoid signedness ambiguity.
func truncate(digest []byte) (uint32, error) {
	if len(digest) == 0 {
		return 0, ErrShortDigest
	}

	offset := int(digest[len(digest)-1] & 0x0f)
	if offset+4 > len(digest) {
		return 0, ErrShortDigest
	}

	return binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7fffffff, nil
}
