package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/ports"
)

// sealedPrefix marks a query stored as base64 AES-GCM ciphertext.
const sealedPrefix = "sealed:v1:"

// ErrKeySize is returned for keys that are not 32 bytes.
var ErrKeySize = errors.New("encryption key must be 32 bytes (AES-256)")

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new readings.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys are tried when the active key cannot open a query.
	// This enables key rotation without rewriting the journal.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.ReadingStore
	config EncryptionConfig
}

// NewEncryptionMiddleware seals the query of every reading with AES-GCM
// before it reaches the store. The chart itself is derived from the seed and
// stays readable, so History and listings keep working.
func NewEncryptionMiddleware(config EncryptionConfig) (Middleware, error) {
	if len(config.ActiveKey) != 32 {
		return nil, ErrKeySize
	}
	for _, k := range config.FallbackKeys {
		if len(k) != 32 {
			return nil, fmt.Errorf("fallback key: %w", ErrKeySize)
		}
	}
	return func(next ports.ReadingStore) ports.ReadingStore {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}, nil
}

// ParseKey decodes a base64 key.
func ParseKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode key: %w", err)
	}
	if len(key) != 32 {
		return nil, ErrKeySize
	}
	return key, nil
}

func (m *encryptionMiddleware) Save(ctx context.Context, reading *domain.Reading) error {
	if reading.Case.Query == "" {
		return m.next.Save(ctx, reading)
	}

	ciphertext, err := encrypt([]byte(reading.Case.Query), m.config.ActiveKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt query: %w", err)
	}

	// Copy so the caller's reading keeps its plain query.
	sealed := *reading
	sealed.Case.Query = sealedPrefix + base64.StdEncoding.EncodeToString(ciphertext)
	return m.next.Save(ctx, &sealed)
}

func (m *encryptionMiddleware) Load(ctx context.Context, id string) (*domain.Reading, error) {
	reading, err := m.next.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if reading.Case.Query == "" {
		return reading, nil
	}

	encoded, ok := strings.CutPrefix(reading.Case.Query, sealedPrefix)
	if !ok {
		// Fail secure: a journal configured for encryption must not hand out plain queries.
		return nil, fmt.Errorf("reading %s: query is not sealed", id)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext base64: %w", err)
	}

	plainText, err := decryptWithRotation(ciphertext, m.config.ActiveKey, m.config.FallbackKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt query of %s: %w", id, err)
	}
	reading.Case.Query = string(plainText)
	return reading, nil
}

func (m *encryptionMiddleware) Delete(ctx context.Context, id string) error {
	return m.next.Delete(ctx, id)
}

func (m *encryptionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Helpers

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	for _, key := range append([][]byte{activeKey}, fallbackKeys...) {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}
	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, body := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, body, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
