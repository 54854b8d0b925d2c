package domain_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTables(t *testing.T) {
	require.NoError(t, domain.VerifyTables())
}

func TestElementCycles(t *testing.T) {
	generated := map[domain.Element]int{}
	controlled := map[domain.Element]int{}
	for _, e := range domain.Elements {
		assert.NotEqual(t, e, e.Generates())
		assert.NotEqual(t, e, e.Controls())
		assert.Equal(t, e, e.Generates().GeneratedBy())
		assert.Equal(t, e, e.Controls().ControlledBy())
		generated[e.Generates()]++
		controlled[e.Controls()]++
	}
	for _, e := range domain.Elements {
		assert.Equal(t, 1, generated[e], "%s generated once", e)
		assert.Equal(t, 1, controlled[e], "%s controlled once", e)
	}

	assert.Equal(t, domain.Fire, domain.Wood.Generates())
	assert.Equal(t, domain.Earth, domain.Wood.Controls())
	assert.Equal(t, domain.Wood, domain.Metal.Controls())
	assert.Equal(t, domain.Fire, domain.Water.Controls())
}

func TestRelationOf(t *testing.T) {
	assert.Equal(t, domain.RelationSame, domain.RelationOf(domain.Metal, domain.Metal))
	assert.Equal(t, domain.RelationGenerates, domain.RelationOf(domain.Metal, domain.Water))
	assert.Equal(t, domain.RelationGeneratedBy, domain.RelationOf(domain.Metal, domain.Earth))
	assert.Equal(t, domain.RelationControls, domain.RelationOf(domain.Metal, domain.Wood))
	assert.Equal(t, domain.RelationControlledBy, domain.RelationOf(domain.Metal, domain.Fire))
}

func TestRelativeOf(t *testing.T) {
	tests := []struct {
		line domain.Element
		want domain.SixRelative
	}{
		{domain.Metal, domain.Sibling},
		{domain.Water, domain.Offspring},
		{domain.Earth, domain.Progenitor},
		{domain.Wood, domain.Wealth},
		{domain.Fire, domain.Authority},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.RelativeOf(domain.Metal, tt.line), "metal palace, %s line", tt.line)
	}
}

func TestPillarAt(t *testing.T) {
	p := domain.PillarAt(0)
	assert.Equal(t, domain.Jia, p.Stem)
	assert.Equal(t, domain.Zi, p.Branch)

	p = domain.PillarAt(59)
	assert.Equal(t, domain.Gui, p.Stem)
	assert.Equal(t, domain.Hai, p.Branch)

	assert.Equal(t, domain.PillarAt(59), domain.PillarAt(-1))
	assert.Equal(t, domain.PillarAt(7), domain.PillarAt(67))
}

func TestCalendarPillars(t *testing.T) {
	t.Run("Day", func(t *testing.T) {
		assert.Equal(t, 10, domain.DayPillar(time.Date(1900, 1, 1, 12, 0, 0, 0, time.UTC)).Ordinal)
		// 2000-01-01 was a Wu-Wu day.
		day := domain.DayPillar(time.Date(2000, 1, 1, 8, 30, 0, 0, time.UTC))
		assert.Equal(t, 54, day.Ordinal)
		assert.Equal(t, domain.StemWu, day.Stem)
		assert.Equal(t, domain.BranchWu, day.Branch)
		// Consecutive days advance by one.
		next := domain.DayPillar(time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 55, next.Ordinal)
	})

	t.Run("Month", func(t *testing.T) {
		// 2000-01-01 falls in the Bing-Zi month of the Ji-Mao year.
		month := domain.MonthPillar(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, domain.Bing, month.Stem)
		assert.Equal(t, domain.Zi, month.Branch)

		// Jia-Chen year (2024): the Yin month is Bing-Yin.
		month = domain.MonthPillar(time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, domain.Bing, month.Stem)
		assert.Equal(t, domain.BranchYin, month.Branch)
	})

	t.Run("Year", func(t *testing.T) {
		year := domain.YearPillar(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, domain.Jia, year.Stem)
		assert.Equal(t, domain.Chen, year.Branch)

		before := domain.YearPillar(time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, domain.Gui, before.Stem)
		assert.Equal(t, domain.Mao, before.Branch)
	})

	t.Run("Hour", func(t *testing.T) {
		at := func(h int) domain.Branch {
			return domain.HourBranch(time.Date(2024, 1, 1, h, 15, 0, 0, time.UTC))
		}
		assert.Equal(t, domain.Zi, at(23))
		assert.Equal(t, domain.Zi, at(0))
		assert.Equal(t, domain.Chou, at(1))
		assert.Equal(t, domain.BranchWu, at(12))
		assert.Equal(t, domain.Hai, at(22))
	})
}

func TestMatchTrigram(t *testing.T) {
	for _, info := range domain.Trigrams() {
		got, err := domain.MatchTrigram(info.Lines)
		require.NoError(t, err)
		assert.Equal(t, info.Trigram, got)
	}
}

func TestLookupPair_AllSixtyFour(t *testing.T) {
	seen := map[int]bool{}
	for lower := domain.Qian; lower <= domain.Kun; lower++ {
		for upper := domain.Qian; upper <= domain.Kun; upper++ {
			info, err := domain.LookupPair(lower, upper)
			require.NoError(t, err)
			assert.False(t, seen[info.Number], "hexagram %d resolved twice", info.Number)
			seen[info.Number] = true

			assert.Equal(t, lower, info.Lower)
			assert.Equal(t, upper, info.Upper)
			back, ok := domain.LookupHexagram(info.Number)
			require.True(t, ok)
			assert.Equal(t, info, back)
		}
	}
	assert.Len(t, seen, 64)
}

func TestLookupPair_Invalid(t *testing.T) {
	_, err := domain.LookupPair(0, domain.Qian)
	assert.ErrorIs(t, err, domain.ErrCorruptTable)

	var cte *domain.CorruptTableError
	require.True(t, errors.As(err, &cte))
	assert.Equal(t, "hexagrams", cte.Table)
}

func TestPalaceOf(t *testing.T) {
	for n := 1; n <= 64; n++ {
		palace, member, err := domain.PalaceOf(n)
		require.NoError(t, err)
		assert.Equal(t, n, member.Number)
		assert.NotEqual(t, member.World, member.Response, "hexagram %d", n)
		if member.Generation == domain.GenerationPure {
			assert.Equal(t, 6, member.World)
			assert.Equal(t, 3, member.Response)
			info, _ := domain.LookupHexagram(n)
			assert.Equal(t, palace.Trigram, info.Lower)
			assert.Equal(t, palace.Trigram, info.Upper)
		}
	}

	// Spot checks against the lineage tables.
	palace, member, err := domain.PalaceOf(25)
	require.NoError(t, err)
	assert.Equal(t, domain.Xun, palace.Trigram)
	assert.Equal(t, domain.GenerationFourth, member.Generation)
	assert.Equal(t, 4, member.World)
	assert.Equal(t, 1, member.Response)

	palace, member, err = domain.PalaceOf(12)
	require.NoError(t, err)
	assert.Equal(t, domain.Qian, palace.Trigram)
	assert.Equal(t, 3, member.World)
	assert.Equal(t, 6, member.Response)

	_, _, err = domain.PalaceOf(65)
	assert.ErrorIs(t, err, domain.ErrCorruptTable)
}

func TestNajia(t *testing.T) {
	stem, branch, err := domain.Najia(domain.Qian, false, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.Jia, stem)
	assert.Equal(t, domain.Zi, branch)

	stem, branch, err = domain.Najia(domain.Qian, true, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Ren, stem)
	assert.Equal(t, domain.Xu, branch)

	_, branch, err = domain.Najia(domain.Kun, false, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.Wei, branch)

	_, _, err = domain.Najia(domain.Kan, true, 3)
	assert.ErrorIs(t, err, domain.ErrCorruptTable)
}

func TestSpiritFor(t *testing.T) {
	s, err := domain.SpiritFor(domain.Jia, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.AzureDragon, s)

	s, err = domain.SpiritFor(domain.Jia, 6)
	require.NoError(t, err)
	assert.Equal(t, domain.BlackTortoise, s)

	s, err = domain.SpiritFor(domain.Ji, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.WhiteTiger, s)

	s, err = domain.SpiritFor(domain.Gui, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.AzureDragon, s)
}

func TestEnumsMarshalByName(t *testing.T) {
	line := domain.Line{
		Position: 1,
		Polarity: domain.Yang,
		Branch:   domain.Zi,
		Element:  domain.Water,
		Relative: domain.Offspring,
		Spirit:   domain.AzureDragon,
	}
	data, err := json.Marshal(line)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"polarity":"yang"`)
	assert.Contains(t, string(data), `"branch":"Zi"`)
	assert.Contains(t, string(data), `"relative":"Offspring"`)

	var back domain.Line
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, line, back)

	var e domain.Element
	assert.Error(t, e.UnmarshalText([]byte("Aether")))
}
