package fieldcrypt

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// GenerateKey produces a fresh cryptographically random 256-bit key
// encoded as 64 hexadecimal characters, suitable for ENCRYPTION_KEY.
// Operational helper; not part of the encrypt/decrypt hot path.
func GenerateKey() (string, error) {
	raw := make([]byte, keyLen)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("fieldcrypt: generate key: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
