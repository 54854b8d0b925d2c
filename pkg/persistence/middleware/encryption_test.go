package middleware_test

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/najia/pkg/adapters/memory"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/persistence/middleware"
	"github.com/aretw0/najia/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) []byte {
	k := make([]byte, 32)
	_, err := io.ReadFull(rand.Reader, k)
	require.NoError(t, err)
	return k
}

func newReading(id, query string) *domain.Reading {
	return &domain.Reading{
		Case: domain.Case{
			ID:     id,
			Method: domain.MethodNumbers,
			Query:  query,
			CastAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
			Seed:   domain.Seed{Numbers: []int{8}},
			Original: domain.Hexagram{
				Number: 2,
				Name:   "坤为地",
			},
		},
	}
}

func encrypted(t *testing.T, next ports.ReadingStore, cfg middleware.EncryptionConfig) ports.ReadingStore {
	t.Helper()
	mw, err := middleware.NewEncryptionMiddleware(cfg)
	require.NoError(t, err)
	return mw(next)
}

func TestEncryptionMiddleware_Contract(t *testing.T) {
	ports.RunReadingStoreContract(t, encrypted(t, memory.NewStore(), middleware.EncryptionConfig{ActiveKey: generateKey(t)}))
}

func TestEncryptionMiddleware_Roundtrip(t *testing.T) {
	ctx := context.Background()
	underlying := memory.NewStore()
	secure := encrypted(t, underlying, middleware.EncryptionConfig{ActiveKey: generateKey(t)})

	original := newReading("r1", "will my secret plan work?")
	require.NoError(t, secure.Save(ctx, original))
	assert.Equal(t, "will my secret plan work?", original.Case.Query, "caller's reading is untouched")

	stored, err := underlying.Load(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Case.Query, "sealed:v1:"))
	assert.NotContains(t, stored.Case.Query, "secret")
	assert.Equal(t, 2, stored.Case.Original.Number, "chart stays readable")

	loaded, err := secure.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "will my secret plan work?", loaded.Case.Query)
}

func TestEncryptionMiddleware_EmptyQuery(t *testing.T) {
	ctx := context.Background()
	underlying := memory.NewStore()
	secure := encrypted(t, underlying, middleware.EncryptionConfig{ActiveKey: generateKey(t)})

	require.NoError(t, secure.Save(ctx, newReading("r1", "")))
	stored, err := underlying.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, stored.Case.Query)

	loaded, err := secure.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Case.Query)
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	ctx := context.Background()
	underlying := memory.NewStore()
	oldKey := generateKey(t)
	newKey := generateKey(t)

	secureOld := encrypted(t, underlying, middleware.EncryptionConfig{ActiveKey: oldKey})
	require.NoError(t, secureOld.Save(ctx, newReading("r1", "sealed with old key")))

	secureNew := encrypted(t, underlying, middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	})
	loaded, err := secureNew.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "sealed with old key", loaded.Case.Query)

	// Saving again re-seals with the new key, which the old key cannot open.
	loaded.Case.Query = "sealed with new key"
	require.NoError(t, secureNew.Save(ctx, loaded))
	_, err = secureOld.Load(ctx, "r1")
	assert.Error(t, err)
}

func TestEncryptionMiddleware_PlainQueryFailsSecure(t *testing.T) {
	ctx := context.Background()
	underlying := memory.NewStore()
	require.NoError(t, underlying.Save(ctx, newReading("r1", "written before encryption")))

	secure := encrypted(t, underlying, middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	_, err := secure.Load(ctx, "r1")
	assert.ErrorContains(t, err, "not sealed")

	_, err = secure.Load(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrReadingNotFound)
}

func TestEncryptionMiddleware_InvalidKey(t *testing.T) {
	_, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short-key")})
	assert.ErrorIs(t, err, middleware.ErrKeySize)

	_, err = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    generateKey(t),
		FallbackKeys: [][]byte{[]byte("short")},
	})
	assert.ErrorIs(t, err, middleware.ErrKeySize)
}

func TestParseKey(t *testing.T) {
	key := generateKey(t)
	got, err := middleware.ParseKey(" " + base64.StdEncoding.EncodeToString(key) + "\n")
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = middleware.ParseKey(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, middleware.ErrKeySize)

	_, err = middleware.ParseKey("!!not base64!!")
	assert.Error(t, err)
}
