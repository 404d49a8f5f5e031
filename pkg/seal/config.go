package seal

import (
	"encoding/base64"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the sealing key in its portable text form. Applications
// usually load it from the environment once at startup and keep the
// decoded key for the life of the process.
type Config struct {
	// Key is the base64 encoding of a KeySize-byte sealing key, as
	// produced by GenerateEncodedKey.
	Key string `env:"OTP_SEAL_KEY,required,notEmpty"`
}

// LoadConfig populates Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("seal: failed to load configuration: %w", err)
	}
	return cfg, nil
}

// KeyFromConfig decodes the configured key and checks its length.
func KeyFromConfig(cfg Config) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: key must be valid base64: %v", ErrInvalidKey, err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, KeySize, len(key))
	}
	return key, nil
}

// LoadKey loads and decodes the sealing key from the environment.
func LoadKey() ([]byte, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return KeyFromConfig(cfg)
}
