package runtime_test

import (
	"testing"
	"time"

	"github.com/aretw0/najia/internal/runtime"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawOf(lower, upper domain.Trigram, moving ...int) runtime.Draw {
	draw, err := runtime.TrigramSeed{Lower: lower, Upper: upper, Moving: moving}.Lines()
	if err != nil {
		panic(err)
	}
	return draw
}

func TestBuild_AllSixtyFourPairs(t *testing.T) {
	seen := map[int]bool{}
	for _, lower := range domain.Trigrams() {
		for _, upper := range domain.Trigrams() {
			h, err := runtime.Build(drawOf(lower.Trigram, upper.Trigram), domain.Jia)
			require.NoError(t, err, "%s over %s", upper.Name, lower.Name)

			assert.False(t, seen[h.Number], "hexagram %d built twice", h.Number)
			seen[h.Number] = true

			_, member, err := domain.PalaceOf(h.Number)
			require.NoError(t, err)
			assert.Equal(t, member.World, h.World, "world of #%d", h.Number)
			assert.Equal(t, member.Response, h.Response, "response of #%d", h.Number)
			assert.Equal(t, 3, abs(h.World-h.Response), "world and response sit three apart in #%d", h.Number)

			worlds, responses := 0, 0
			for i, l := range h.Lines {
				assert.Equal(t, i+1, l.Position)
				assert.Equal(t, l.Branch.Element(), l.Element)
				assert.Equal(t, domain.RelativeOf(h.PalaceElement(), l.Element), l.Relative)
				if l.World {
					worlds++
					assert.Equal(t, h.World, l.Position)
				}
				if l.Response {
					responses++
					assert.Equal(t, h.Response, l.Position)
				}
			}
			assert.Equal(t, 1, worlds)
			assert.Equal(t, 1, responses)
		}
	}
	assert.Len(t, seen, 64)
}

func TestBuild_WuWang(t *testing.T) {
	h, err := runtime.Build(drawOf(domain.Zhen, domain.Qian, 1), domain.Jia)
	require.NoError(t, err)

	assert.Equal(t, 25, h.Number)
	assert.Equal(t, "天雷无妄", h.Name)
	assert.Equal(t, domain.Xun, h.Palace)
	assert.Equal(t, domain.GenerationFourth, h.Generation)
	assert.Equal(t, 4, h.World)
	assert.Equal(t, 1, h.Response)
	assert.Equal(t, []int{1}, h.Moving())

	want := []struct {
		stem     domain.Stem
		branch   domain.Branch
		element  domain.Element
		relative domain.SixRelative
		spirit   domain.SixSpirit
	}{
		{domain.Geng, domain.Zi, domain.Water, domain.Progenitor, domain.AzureDragon},
		{domain.Geng, domain.BranchYin, domain.Wood, domain.Sibling, domain.VermilionBird},
		{domain.Geng, domain.Chen, domain.Earth, domain.Wealth, domain.HookedChen},
		{domain.Ren, domain.BranchWu, domain.Fire, domain.Offspring, domain.FlyingSerpent},
		{domain.Ren, domain.Shen, domain.Metal, domain.Authority, domain.WhiteTiger},
		{domain.Ren, domain.Xu, domain.Earth, domain.Wealth, domain.BlackTortoise},
	}
	for i, w := range want {
		l := h.Lines[i]
		assert.Equal(t, w.stem, l.Stem, "stem of line %d", i+1)
		assert.Equal(t, w.branch, l.Branch, "branch of line %d", i+1)
		assert.Equal(t, w.element, l.Element, "element of line %d", i+1)
		assert.Equal(t, w.relative, l.Relative, "relative of line %d", i+1)
		assert.Equal(t, w.spirit, l.Spirit, "spirit of line %d", i+1)
	}
}

func TestBuild_IsIdempotent(t *testing.T) {
	draw := drawOf(domain.Li, domain.Kan, 2, 5)
	a, err := runtime.Build(draw, domain.Geng)
	require.NoError(t, err)
	b, err := runtime.Build(draw, domain.Geng)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Build is not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuildFromSeed_InvalidTrigram(t *testing.T) {
	_, err := runtime.BuildFromSeed(runtime.TrigramSeed{Lower: 0, Upper: domain.Qian}, domain.Jia)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransform(t *testing.T) {
	t.Run("nothing moves", func(t *testing.T) {
		h, err := runtime.Build(drawOf(domain.Zhen, domain.Qian), domain.Jia)
		require.NoError(t, err)

		transformed, err := runtime.Transform(h, domain.Jia)
		require.NoError(t, err)
		assert.Nil(t, transformed)
	})

	t.Run("Wu Wang becomes Pi", func(t *testing.T) {
		h, err := runtime.Build(drawOf(domain.Zhen, domain.Qian, 1), domain.Jia)
		require.NoError(t, err)

		pi, err := runtime.Transform(h, domain.Jia)
		require.NoError(t, err)
		require.NotNil(t, pi)

		assert.Equal(t, 12, pi.Number)
		assert.Equal(t, domain.Kun, pi.Lower)
		assert.Equal(t, domain.Qian, pi.Upper)
		assert.Equal(t, domain.Qian, pi.Palace, "palace is recomputed")
		assert.Equal(t, 3, pi.World)
		assert.Equal(t, 6, pi.Response)
		assert.Empty(t, pi.Moving(), "transformed lines never move")

		// The first line now carries Kun's inner najia, judged from a Metal palace.
		first := pi.Lines[0]
		assert.Equal(t, domain.Yi, first.Stem)
		assert.Equal(t, domain.Wei, first.Branch)
		assert.Equal(t, domain.Earth, first.Element)
		assert.Equal(t, domain.Progenitor, first.Relative)
		assert.NotEqual(t, h.Lines[0].Branch, first.Branch, "annotations are not carried over")
	})

	t.Run("flipping the same positions returns the original", func(t *testing.T) {
		h, err := runtime.Build(drawOf(domain.Dui, domain.Gen, 2, 3, 6), domain.Bing)
		require.NoError(t, err)
		transformed, err := runtime.Transform(h, domain.Bing)
		require.NoError(t, err)
		require.NotNil(t, transformed)

		back := transformed.Draws()
		for _, pos := range h.Moving() {
			back[pos-1].Moving = true
		}
		again, err := runtime.Transform(mustBuild(t, back), domain.Bing)
		require.NoError(t, err)
		require.NotNil(t, again)

		assert.Equal(t, h.Number, again.Number)
		for i := range h.Lines {
			assert.Equal(t, h.Lines[i].Polarity, again.Lines[i].Polarity)
		}
	})
}

func mustBuild(t *testing.T, draws [6]domain.LineDraw) *domain.Hexagram {
	t.Helper()
	h, err := runtime.Build(runtime.Draw(draws), domain.Bing)
	require.NoError(t, err)
	return h
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestDiff(t *testing.T) {
	original, err := runtime.Build(drawOf(domain.Zhen, domain.Qian, 1), domain.Jia)
	require.NoError(t, err)
	transformed, err := runtime.Transform(original, domain.Jia)
	require.NoError(t, err)
	require.NotNil(t, transformed)

	diff := domain.Diff(original, transformed)
	require.NotNil(t, diff)
	assert.Equal(t, []int{1}, diff.Flipped)
	require.NotNil(t, diff.Palace)
	assert.Equal(t, transformed.Palace, *diff.Palace)
	for _, change := range diff.Relatives {
		assert.Equal(t, original.Line(change.Position).Relative, change.From)
		assert.Equal(t, transformed.Line(change.Position).Relative, change.To)
	}

	assert.Nil(t, domain.Diff(original, original))
	assert.Nil(t, domain.Diff(original, nil))
}

func TestResolveContext(t *testing.T) {
	instant := time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)
	tc := runtime.ResolveContext(instant)

	assert.Equal(t, domain.DayPillar(instant), tc.Day)
	assert.Equal(t, domain.MonthPillar(instant), tc.Month)
	assert.Equal(t, domain.YearPillar(instant), tc.Year)
	assert.Equal(t, domain.Zi, tc.Hour)
}
