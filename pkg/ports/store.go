package ports

import (
	"context"

	"github.com/aretw0/najia/pkg/domain"
)

// ReadingStore defines the interface for persisting readings.
type ReadingStore interface {
	// Save persists a reading under its case ID.
	Save(ctx context.Context, reading *domain.Reading) error

	// Load retrieves a reading by case ID.
	// Returns domain.ErrReadingNotFound if the reading does not exist.
	Load(ctx context.Context, id string) (*domain.Reading, error)

	// Delete removes a reading.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored readings.
	List(ctx context.Context) ([]string, error)
}
