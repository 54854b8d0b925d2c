package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/najia"
	"github.com/aretw0/najia/internal/config"
	"github.com/aretw0/najia/pkg/adapters/memory"
	"github.com/aretw0/najia/pkg/adapters/redis"
	"github.com/aretw0/najia/pkg/adapters/sqlite"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/observability"
	"github.com/aretw0/najia/pkg/persistence/middleware"
	"github.com/aretw0/najia/pkg/ports"
)

// Store is a reading store the CLI owns and must close.
type Store interface {
	ports.ReadingStore
	Close() error
}

type closingStore struct {
	ports.ReadingStore
	close func() error
}

func (s closingStore) Close() error { return s.close() }

func noClose() error { return nil }

// OpenStore builds the reading journal selected by cfg, wrapped in the
// configured privacy middleware. It returns nil for the "none" kind. Remote
// stores are pinged before use.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	var base ports.ReadingStore
	closeFn := noClose

	switch cfg.Kind {
	case config.StoreNone:
		return nil, nil
	case config.StoreMemory:
		base = memory.NewStore()
	case config.StoreRedis:
		opts := []redis.Option{redis.WithPrefix(cfg.Redis.Prefix)}
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		store := redis.New(cfg.Redis.Addr, "", 0, opts...)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("redis store at %s: %w", cfg.Redis.Addr, err)
		}
		base, closeFn = store, store.Close
	case config.StoreSQLite:
		store, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("sqlite store at %s: %w", cfg.SQLite.Path, err)
		}
		base, closeFn = store, store.Close
	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.Kind)
	}

	mws, err := privacyMiddleware(cfg.Privacy)
	if err != nil {
		_ = closeFn()
		return nil, err
	}
	return closingStore{ReadingStore: middleware.Apply(base, mws...), close: closeFn}, nil
}

// privacyMiddleware redacts before it seals, so redacted text never reaches
// the ciphertext.
func privacyMiddleware(cfg config.PrivacyConfig) ([]middleware.Middleware, error) {
	var mws []middleware.Middleware

	if cfg.Redact || len(cfg.RedactPatterns) > 0 {
		mw, err := middleware.NewRedactMiddleware(cfg.RedactPatterns)
		if err != nil {
			return nil, fmt.Errorf("redact patterns: %w", err)
		}
		mws = append(mws, mw)
	}

	if cfg.EncryptionKey != "" {
		active, err := middleware.ParseKey(cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("encryption key: %w", err)
		}
		enc := middleware.EncryptionConfig{ActiveKey: active}
		for i, k := range cfg.FallbackKeys {
			key, err := middleware.ParseKey(k)
			if err != nil {
				return nil, fmt.Errorf("fallback key %d: %w", i, err)
			}
			enc.FallbackKeys = append(enc.FallbackKeys, key)
		}
		mw, err := middleware.NewEncryptionMiddleware(enc)
		if err != nil {
			return nil, err
		}
		mws = append(mws, mw)
	}
	return mws, nil
}

// CreateEngine initializes a najia engine with standard CLI conventions:
// the configured seed, the given store (may be nil) and logging hooks.
func CreateEngine(cfg config.Config, logger *slog.Logger, store ports.ReadingStore, hooks ...domain.LifecycleHooks) (*najia.Engine, error) {
	all := append([]domain.LifecycleHooks{observability.LogHooks(logger)}, hooks...)
	engineOpts := []najia.Option{
		najia.WithLogger(logger),
		najia.WithLifecycleHooks(observability.Chain(all...)),
	}
	if cfg.Seed != nil {
		engineOpts = append(engineOpts, najia.WithSeed(*cfg.Seed))
	}
	if store != nil {
		engineOpts = append(engineOpts, najia.WithStore(store))
	}

	engine, err := najia.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
