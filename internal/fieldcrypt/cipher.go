// Package fieldcrypt protects the confidentiality of single free-text
// record fields (medical history) at rest. Callers only ever see
// plaintext; the store only ever sees the encoded ciphertext form.
package fieldcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

var (
	// ErrEncrypt indicates the cipher could not produce ciphertext.
	// The calling write must fail; plaintext is never persisted instead.
	ErrEncrypt = errors.New("fieldcrypt: encryption failed")
	// ErrDecrypt indicates the ciphertext could not be recovered as valid
	// text (wrong key, corrupted or truncated data). The calling read must
	// surface this, never garbled plaintext.
	ErrDecrypt = errors.New("fieldcrypt: decryption failed")
)

const (
	keyLen           = 32 // AES-256
	hexKeyLen        = 64
	pbkdf2Iterations = 100_000
)

// PlaceholderKey is the well-known insecure key used when no ENCRYPTION_KEY
// is configured outside production. Its presence in logs is the audit
// signal that a process is running without a real key.
const PlaceholderKey = "default-key-change-in-production"

// passphraseSalt is only used to stretch passphrase-form keys into AES key
// material. Message-level randomness comes from the per-encryption nonce,
// so a process-wide constant is acceptable here.
var passphraseSalt = []byte("vetcepi/fieldcrypt/v1")

// Cipher encrypts and decrypts a single text field with a process-wide
// key loaded once at startup. It is a pure transform with no I/O and is
// safe for concurrent use.
type Cipher struct {
	aead cipher.AEAD
}

// New creates a Cipher from the configured secret.
//
// A 64-hex-character secret is decoded as a raw 256-bit key. Any other
// non-empty secret is treated as a passphrase and stretched with
// PBKDF2-SHA256. An empty secret falls back to PlaceholderKey with a loud
// warning; config validation rejects that combination in production
// before this point is reached.
func New(key string, logger *slog.Logger) (*Cipher, error) {
	if key == "" {
		logger.Warn("no encryption key configured, using insecure placeholder key",
			slog.String("placeholder", PlaceholderKey),
			slog.String("hint", "set ENCRYPTION_KEY before any real medical data is stored"),
		)
		key = PlaceholderKey
	}

	keyBytes, err := keyMaterial(key)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("fieldcrypt: new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("fieldcrypt: new gcm: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// keyMaterial turns the configured secret into 32 bytes of AES key.
func keyMaterial(key string) ([]byte, error) {
	if len(key) == hexKeyLen {
		raw, err := hex.DecodeString(key)
		if err == nil {
			return raw, nil
		}
		// 64 chars but not hex: fall through to passphrase mode.
	}
	return pbkdf2.Key([]byte(key), passphraseSalt, pbkdf2Iterations, keyLen, sha256.New), nil
}

// Encrypt returns the self-describing encoded ciphertext for plaintext.
// The empty string maps to itself without invoking the cipher. The output
// is base64(nonce || ciphertext); no separate IV storage is required.
// Each call produces a fresh nonce, so identical plaintexts yield
// different ciphertexts.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %v", ErrEncrypt, err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt recovers the plaintext from an Encrypt output. The empty string
// maps to itself. Any decode or authentication failure, including a
// decryption under the wrong key, is reported as ErrDecrypt.
// The recovered bytes are additionally required to be valid
// UTF-8 so that no garbled text can ever reach a medical record view.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrDecrypt, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	plaintext, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: recovered bytes are not valid text", ErrDecrypt)
	}

	return string(plaintext), nil
}
