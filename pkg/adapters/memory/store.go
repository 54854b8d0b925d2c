package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aretw0/najia/pkg/domain"
)

// Store implements ports.ReadingStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Save persists the reading in memory.
// Readings are kept serialized so callers never share nested slices or pointers with the store.
func (s *Store) Save(ctx context.Context, reading *domain.Reading) error {
	data, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[reading.Case.ID] = data
	return nil
}

// Load retrieves the reading from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Reading, error) {
	s.mu.RLock()
	data, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrReadingNotFound
	}

	var reading domain.Reading
	if err := json.Unmarshal(data, &reading); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reading: %w", err)
	}
	return &reading, nil
}

// Delete removes the reading.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the IDs of stored readings.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
