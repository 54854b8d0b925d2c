package ports

import (
	"context"
	"time"

	"github.com/aretw0/najia/pkg/domain"
)

// Caster defines the casting surface of the engine.
// This is the primary interface used by adapters (e.g., HTTP, MCP), which keep no state of their own.
type Caster interface {
	// CastByCoins draws six lines from three coins each.
	CastByCoins(ctx context.Context, query string) (*domain.Reading, error)

	// CastByNumbers derives the figure from a non-empty sequence of non-negative integers.
	CastByNumbers(ctx context.Context, numbers []int, query string) (*domain.Reading, error)

	// CastByMoment derives the figure from the calendar position of an instant.
	CastByMoment(ctx context.Context, instant time.Time, query string) (*domain.Reading, error)
}

// Journal exposes previously cast readings.
type Journal interface {
	// Recall loads one reading. Returns domain.ErrReadingNotFound if absent.
	Recall(ctx context.Context, id string) (*domain.Reading, error)

	// History lists stored readings, most recent first.
	History(ctx context.Context) ([]*domain.Reading, error)
}
