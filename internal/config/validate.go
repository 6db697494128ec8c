package config

import (
	"encoding/hex"
	"fmt"
)

// hexKeyLen is the expected length of a production ENCRYPTION_KEY:
// 32 bytes encoded as 64 hexadecimal characters.
const hexKeyLen = 64

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Scanner.Cooldown <= 0 {
		return fmt.Errorf("scanner.cooldown must be > 0 (got %v)", c.Scanner.Cooldown)
	}

	if err := c.Encryption.validate(c.App.IsProduction()); err != nil {
		return fmt.Errorf("encryption: %w", err)
	}

	return nil
}

// validate enforces the key posture. A production process refuses to start
// without a proper 64-hex-character key; development tolerates an empty or
// passphrase-form key (the cipher warns loudly about the placeholder).
func (e EncryptionConfig) validate(production bool) error {
	if !production {
		return nil
	}

	if e.Key == "" {
		return fmt.Errorf("key is required in production (set ENCRYPTION_KEY)")
	}
	if len(e.Key) != hexKeyLen {
		return fmt.Errorf("key must be %d hexadecimal characters in production (got %d)", hexKeyLen, len(e.Key))
	}
	if _, err := hex.DecodeString(e.Key); err != nil {
		return fmt.Errorf("key must be hexadecimal in production: %w", err)
	}

	return nil
}
