package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunReadingStoreContract runs a suite of tests to verify that a ReadingStore implementation
// adheres to the defined interface contract.
func RunReadingStoreContract(t *testing.T, store ReadingStore) {
	ctx := context.Background()
	id := "contract-reading-" + time.Now().Format("20060102150405")

	newReading := func(id string) *domain.Reading {
		r := &domain.Reading{
			Case: domain.Case{
				ID:     id,
				Method: domain.MethodNumbers,
				Query:  "will the contract hold?",
				CastAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
				Seed:   domain.Seed{Numbers: []int{3, 8}},
				Original: domain.Hexagram{
					Number: 25,
					Name:   "天雷无妄",
					Lower:  domain.Zhen,
					Upper:  domain.Qian,
					Palace: domain.Xun,
					World:  4, Response: 1,
				},
			},
			Analysis: domain.Analysis{
				Evaluation: domain.Evaluation{Target: domain.WorldLineTarget, Position: 4, Fallback: true, Verdict: domain.Balanced},
				Narrative:  "narrative",
			},
		}
		r.Case.Original.Lines[0] = domain.Line{Position: 1, Polarity: domain.Yang, Moving: true, Branch: domain.Zi, Element: domain.Water}
		return r
	}

	t.Run("Save and Load", func(t *testing.T) {
		reading := newReading(id)

		err := store.Save(ctx, reading)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, reading.Case.ID, loaded.Case.ID)
		assert.Equal(t, reading.Case.Original.Number, loaded.Case.Original.Number)
		assert.Equal(t, reading.Case.Original.Lines[0], loaded.Case.Original.Lines[0])
		assert.True(t, reading.Case.CastAt.Equal(loaded.Case.CastAt))
		assert.Equal(t, reading.Analysis.Evaluation.Verdict, loaded.Analysis.Evaluation.Verdict)
		assert.Nil(t, loaded.Case.Transformed)
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		loaded.Case.Query = "mutated"

		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "will the contract hold?", again.Case.Query)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrReadingNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Delete(ctx, id)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrReadingNotFound, "Load after Delete should return ErrReadingNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := id + "-1"
		id2 := id + "-2"
		require.NoError(t, store.Save(ctx, newReading(id1)))
		require.NoError(t, store.Save(ctx, newReading(id2)))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)

		require.NoError(t, store.Delete(ctx, id1))
		require.NoError(t, store.Delete(ctx, id2))
	})
}
