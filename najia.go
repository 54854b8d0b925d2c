package najia

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/aretw0/najia/internal/logging"
	"github.com/aretw0/najia/internal/random"
	"github.com/aretw0/najia/internal/runtime"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/ports"
)

// Engine is the high-level entry point for the najia library.
// It wraps the internal runtime and adds an optional reading journal.
type Engine struct {
	runtime *runtime.Engine
	store   ports.ReadingStore
	entropy ports.Entropy
	seed    *int64
	clock   func() time.Time
	newID   func() string
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

var (
	_ ports.Caster  = (*Engine)(nil)
	_ ports.Journal = (*Engine)(nil)
)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore enables the reading journal. Every successful cast is saved.
func WithStore(store ports.ReadingStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithEntropy injects the randomness source used for coin casts. It takes
// precedence over WithSeed.
func WithEntropy(entropy ports.Entropy) Option {
	return func(e *Engine) {
		e.entropy = entropy
	}
}

// WithSeed pins the coin-casting seed so a sequence of casts can be replayed.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = &seed
	}
}

// WithClock overrides the time source used to stamp coin and number casts.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.clock = now
	}
}

// WithIDGenerator overrides how reading IDs are minted (default: random UUIDs).
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// New initializes a najia Engine.
// It fails if the static tables do not pass their self-check.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if err := domain.VerifyTables(); err != nil {
		return nil, err
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	if eng.entropy == nil {
		seed, source, err := random.ResolveSeed(eng.seed, random.NewSeed)
		if err != nil {
			return nil, fmt.Errorf("failed to seed coin entropy: %w", err)
		}
		eng.entropy = random.NewEntropy(seed)
		eng.logger.Debug("coin entropy seeded", "source", source)
	}

	eng.runtime = runtime.NewEngine(
		runtime.WithEntropy(eng.entropy),
		runtime.WithClock(eng.clock),
		runtime.WithIDGenerator(eng.newID),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)
	return eng, nil
}

// CastByCoins draws six lines of three coins each.
func (e *Engine) CastByCoins(ctx context.Context, query string) (*domain.Reading, error) {
	reading, err := e.runtime.CastByCoins(ctx, query)
	return e.record(ctx, reading, err)
}

// CastByNumbers derives the reading from a non-empty sequence of non-negative integers.
func (e *Engine) CastByNumbers(ctx context.Context, numbers []int, query string) (*domain.Reading, error) {
	reading, err := e.runtime.CastByNumbers(ctx, numbers, query)
	return e.record(ctx, reading, err)
}

// CastByMoment derives the reading from the calendar position of instant.
func (e *Engine) CastByMoment(ctx context.Context, instant time.Time, query string) (*domain.Reading, error) {
	reading, err := e.runtime.CastByMoment(ctx, instant, query)
	return e.record(ctx, reading, err)
}

// record saves a fresh reading to the journal. A failed save is logged and
// the reading is still returned.
func (e *Engine) record(ctx context.Context, reading *domain.Reading, err error) (*domain.Reading, error) {
	if err != nil || e.store == nil {
		return reading, err
	}
	if saveErr := e.store.Save(ctx, reading); saveErr != nil {
		e.logger.WarnContext(ctx, "failed to journal reading", "id", reading.Case.ID, "error", saveErr)
	}
	return reading, nil
}

// Recall loads a journaled reading by ID.
func (e *Engine) Recall(ctx context.Context, id string) (*domain.Reading, error) {
	if e.store == nil {
		return nil, domain.ErrNoJournal
	}
	return e.store.Load(ctx, id)
}

// History returns every journaled reading, most recent cast first.
func (e *Engine) History(ctx context.Context) ([]*domain.Reading, error) {
	if e.store == nil {
		return nil, domain.ErrNoJournal
	}
	ids, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}

	readings := make([]*domain.Reading, 0, len(ids))
	for _, id := range ids {
		r, err := e.store.Load(ctx, id)
		if errors.Is(err, domain.ErrReadingNotFound) {
			// Expired or deleted between List and Load.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load reading %s: %w", id, err)
		}
		readings = append(readings, r)
	}
	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].Case.CastAt.After(readings[j].Case.CastAt)
	})
	return readings, nil
}

// Catalog returns all 64 hexagrams in King Wen order with their palace placement.
func (e *Engine) Catalog() []domain.CatalogEntry {
	infos := domain.Hexagrams()
	out := make([]domain.CatalogEntry, 0, len(infos))
	for _, info := range infos {
		entry, err := domain.Entry(info.Number)
		if err != nil {
			// Tables were verified in New.
			panic(err)
		}
		out = append(out, entry)
	}
	return out
}

// Lookup returns one catalog entry. Numbers outside 1..64 yield
// domain.ErrHexagramNotFound.
func (e *Engine) Lookup(number int) (domain.CatalogEntry, error) {
	return domain.Entry(number)
}
