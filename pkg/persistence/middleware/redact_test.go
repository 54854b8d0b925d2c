package middleware_test

import (
	"context"
	"testing"

	"github.com/aretw0/najia/pkg/adapters/memory"
	"github.com/aretw0/najia/pkg/persistence/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		query    string
		want     string
	}{
		{"Whole query", nil, "will Alice marry Bob?", "***"},
		{"Pattern", []string{`\b[A-Z][a-z]+\b`}, "will Alice marry Bob?", "will *** marry ***?"},
		{"Email", []string{`[\w.]+@[\w.]+`}, "reply from jo@example.com", "reply from ***"},
		{"Empty", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			underlying := memory.NewStore()
			mw, err := middleware.NewRedactMiddleware(tt.patterns)
			require.NoError(t, err)
			store := mw(underlying)

			reading := newReading("r1", tt.query)
			require.NoError(t, store.Save(ctx, reading))
			assert.Equal(t, tt.query, reading.Case.Query, "caller's reading is untouched")

			loaded, err := store.Load(ctx, "r1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, loaded.Case.Query)
		})
	}
}

func TestRedactMiddleware_BadPattern(t *testing.T) {
	_, err := middleware.NewRedactMiddleware([]string{"("})
	assert.Error(t, err)
}

func TestApply_Order(t *testing.T) {
	ctx := context.Background()
	underlying := memory.NewStore()

	redact, err := middleware.NewRedactMiddleware([]string{`secret`})
	require.NoError(t, err)
	seal, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	require.NoError(t, err)

	// Redact first, then seal what is left.
	store := middleware.Apply(underlying, redact, seal)
	require.NoError(t, store.Save(ctx, newReading("r1", "my secret plan")))

	stored, err := underlying.Load(ctx, "r1")
	require.NoError(t, err)
	assert.NotContains(t, stored.Case.Query, "plan")

	loaded, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "my *** plan", loaded.Case.Query)
}
