package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// KeySize is the exact sealing key length in bytes (AES-256).
const KeySize = 32

// scrypt parameters for passphrase-derived keys. The salt travels with the
// sealed data, so these must not change without a data migration.
const (
	scryptN  = 1 << 15
	scryptR  = 8
	scryptP  = 1
	saltSize = 16
)

// Common errors returned by the seal package.
var (
	// ErrInvalidKey indicates a key that is not exactly KeySize bytes, or
	// a configured key that is not valid base64.
	ErrInvalidKey = errors.New("seal: invalid key")
	// ErrInvalidPassphrase indicates an empty passphrase.
	ErrInvalidPassphrase = errors.New("seal: invalid passphrase")
	// ErrInvalidSealed indicates sealed data too short to carry its salt,
	// nonce, and tag.
	ErrInvalidSealed = errors.New("seal: invalid sealed data")
	// ErrOpenFailed indicates authentication failure: wrong key or
	// passphrase, or sealed data modified since sealing.
	ErrOpenFailed = errors.New("seal: open failed")
)

// GenerateKey returns a new cryptographically random sealing key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("seal: failed to generate key: %w", err)
	}
	return key, nil
}

// GenerateEncodedKey returns a new random sealing key in the base64 text
// form accepted by Config.
func GenerateEncodedKey() (string, error) {
	key, err := GenerateKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// Seal encrypts plaintext with AES-256-GCM under key. The random nonce and
// the authentication tag travel inside the returned bytes. The result is
// binary; encode it before storing in a text column.
func Seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("seal: failed to generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open authenticates and decrypts data produced by Seal. It fails with
// ErrOpenFailed when the key is wrong or the sealed data was modified.
func Open(sealed, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(sealed) < gcm.NonceSize() {
		return nil, fmt.Errorf("%w: shorter than nonce", ErrInvalidSealed)
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: wrong key or modified data", ErrOpenFailed)
	}

	return plaintext, nil
}

// SealWithPassphrase encrypts plaintext under a key derived from the
// passphrase with scrypt. The random salt travels with the sealed data, so
// the passphrase alone opens it later.
func SealWithPassphrase(plaintext []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: passphrase must not be empty", ErrInvalidPassphrase)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("seal: failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, fmt.Errorf("seal: key derivation failed: %w", err)
	}

	sealed, err := Seal(plaintext, key)
	if err != nil {
		return nil, err
	}

	return append(salt, sealed...), nil
}

// OpenWithPassphrase authenticates and decrypts data produced by
// SealWithPassphrase.
func OpenWithPassphrase(sealed []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: passphrase must not be empty", ErrInvalidPassphrase)
	}
	if len(sealed) < saltSize {
		return nil, fmt.Errorf("%w: shorter than salt", ErrInvalidSealed)
	}

	salt, rest := sealed[:saltSize], sealed[saltSize:]
	key, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, fmt.Errorf("seal: key derivation failed: %w", err)
	}

	return Open(rest, key)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("seal: failed to initialize cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("seal: failed to initialize GCM: %w", err)
	}

	return gcm, nil
}
