package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/najia/internal/logging"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/ports"
	"github.com/google/uuid"
)

// Engine runs the casting pipeline: seed, build, transform, evaluate, report.
// Everything after the seed is a pure function of the seed and the cast instant.
type Engine struct {
	entropy ports.Entropy
	mu      sync.Mutex // guards entropy; math/rand sources are not safe for concurrent use

	now    func() time.Time
	newID  func() string
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption configures the runtime engine.
type EngineOption func(*Engine)

// WithEntropy sets the randomness source used by coin casting.
func WithEntropy(entropy ports.Entropy) EngineOption {
	return func(e *Engine) {
		e.entropy = entropy
	}
}

// WithClock overrides the time source used to stamp casts.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator overrides how case IDs are minted.
func WithIDGenerator(newID func() string) EngineOption {
	return func(e *Engine) {
		if newID != nil {
			e.newID = newID
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a runtime engine. Without WithEntropy, coin casts fail
// with an invalid input error.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CastByCoins tosses three coins per line.
func (e *Engine) CastByCoins(ctx context.Context, query string) (*domain.Reading, error) {
	e.mu.Lock()
	draw, tosses, err := CoinDraw(e.entropy)
	e.mu.Unlock()
	if err != nil {
		return nil, e.fail(ctx, domain.MethodCoins, err)
	}
	castAt := e.now()
	return e.assemble(ctx, domain.MethodCoins, query, castAt, domain.Seed{Coins: tosses}, draw)
}

// CastByNumbers derives the figure from user-supplied numbers.
func (e *Engine) CastByNumbers(ctx context.Context, numbers []int, query string) (*domain.Reading, error) {
	seed, err := NumberSeed(numbers)
	if err != nil {
		return nil, e.fail(ctx, domain.MethodNumbers, err)
	}
	draw, err := seed.Lines()
	if err != nil {
		return nil, e.fail(ctx, domain.MethodNumbers, err)
	}
	castAt := e.now()
	recorded := append([]int(nil), numbers...)
	return e.assemble(ctx, domain.MethodNumbers, query, castAt, domain.Seed{Numbers: recorded}, draw)
}

// CastByMoment derives the figure from the calendar position of instant,
// which is also the moment the case is judged against.
func (e *Engine) CastByMoment(ctx context.Context, instant time.Time, query string) (*domain.Reading, error) {
	if instant.IsZero() {
		return nil, e.fail(ctx, domain.MethodMoment, domain.InvalidInput(domain.MethodMoment, "instant is required"))
	}
	draw, err := MomentSeed(instant).Lines()
	if err != nil {
		return nil, e.fail(ctx, domain.MethodMoment, err)
	}
	return e.assemble(ctx, domain.MethodMoment, query, instant, domain.Seed{Moment: instant}, draw)
}

func (e *Engine) assemble(ctx context.Context, method domain.Method, query string, castAt time.Time, seed domain.Seed, draw Draw) (*domain.Reading, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, e.fail(ctx, method, err)
	}
	query, err := SanitizeQuery(method, query)
	if err != nil {
		return nil, e.fail(ctx, method, err)
	}

	tc := ResolveContext(castAt)
	original, err := Build(draw, tc.Day.Stem)
	if err != nil {
		return nil, e.fail(ctx, method, fmt.Errorf("build original: %w", err))
	}
	transformed, err := Transform(original, tc.Day.Stem)
	if err != nil {
		return nil, e.fail(ctx, method, fmt.Errorf("build transformed: %w", err))
	}

	c := domain.Case{
		ID:          e.newID(),
		Method:      method,
		Query:       query,
		CastAt:      castAt,
		Seed:        seed,
		Original:    *original,
		Transformed: transformed,
		Context:     tc,
	}
	target := SelectTarget(query)
	eval := Evaluate(original, target, tc)
	reading := &domain.Reading{
		Case: c,
		Analysis: domain.Analysis{
			Evaluation: eval,
			Narrative:  Synthesize(&c, eval),
		},
	}

	e.logger.DebugContext(ctx, "cast complete",
		"id", c.ID,
		"method", method,
		"hexagram", original.Number,
		"moving", original.Moving(),
		"target", target.String(),
		"verdict", eval.Verdict,
	)
	if e.hooks.OnCast != nil {
		e.hooks.OnCast(ctx, &domain.CastEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventCast},
			Reading:   reading,
			Duration:  time.Since(start),
		})
	}
	return reading, nil
}

func (e *Engine) fail(ctx context.Context, method domain.Method, err error) error {
	e.logger.DebugContext(ctx, "cast rejected", "method", method, "error", err)
	if e.hooks.OnError != nil {
		e.hooks.OnError(ctx, &domain.ErrorEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventError},
			Method:    method,
			Err:       err,
		})
	}
	return err
}
