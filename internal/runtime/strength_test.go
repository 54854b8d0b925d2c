package runtime_test

import (
	"testing"

	"github.com/aretw0/najia/internal/runtime"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextOf(month, day domain.Branch) domain.TemporalContext {
	return domain.TemporalContext{
		Month: domain.Pillar{Branch: month},
		Day:   domain.Pillar{Branch: day},
	}
}

func TestSelectTarget(t *testing.T) {
	tests := []struct {
		query string
		want  domain.Target
	}{
		{"Will I get the promotion?", domain.Target{Relative: domain.Authority, Keyword: "promotion"}},
		{"Is this MONEY safe?", domain.Target{Relative: domain.Wealth, Keyword: "money"}},
		{"money for my brother", domain.Target{Relative: domain.Wealth, Keyword: "money"}},
		{"How will the exam go", domain.Target{Relative: domain.Progenitor, Keyword: "exam"}},
		{"my daughter's health", domain.Target{Relative: domain.Offspring, Keyword: "daughter"}},
		{"a friend in need", domain.Target{Relative: domain.Sibling, Keyword: "friend"}},
		{"我的工作怎么样", domain.Target{Relative: domain.Authority, Keyword: "工作"}},
		{"这笔投资", domain.Target{Relative: domain.Wealth, Keyword: "投资"}},
		{"networking event", domain.WorldLineTarget},
		{"", domain.WorldLineTarget},
		{"   ", domain.WorldLineTarget},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, runtime.SelectTarget(tt.query))
		})
	}
}

func TestVerdictFor(t *testing.T) {
	assert.Equal(t, domain.Prosperous, runtime.VerdictFor(3))
	assert.Equal(t, domain.Prosperous, runtime.VerdictFor(2))
	assert.Equal(t, domain.Balanced, runtime.VerdictFor(1.5))
	assert.Equal(t, domain.Balanced, runtime.VerdictFor(0))
	assert.Equal(t, domain.Weak, runtime.VerdictFor(-0.5))
}

func TestEvaluate(t *testing.T) {
	wuWang, err := runtime.Build(drawOf(domain.Zhen, domain.Qian, 1), domain.Jia)
	require.NoError(t, err)

	t.Run("single match, same element twice", func(t *testing.T) {
		eval := runtime.Evaluate(wuWang, domain.Target{Relative: domain.Authority}, contextOf(domain.Shen, domain.You))

		assert.Equal(t, []int{5}, eval.Matches)
		assert.Equal(t, 5, eval.Position)
		assert.False(t, eval.Fallback)
		assert.Equal(t, 2.0, eval.MonthTerm)
		assert.Equal(t, 1.0, eval.DayTerm)
		assert.Equal(t, 3.0, eval.Score)
		assert.Equal(t, domain.Prosperous, eval.Verdict)
		assert.Empty(t, eval.Notes)
	})

	t.Run("month controls the line", func(t *testing.T) {
		eval := runtime.Evaluate(wuWang, domain.Target{Relative: domain.Authority}, contextOf(domain.BranchWu, domain.Zi))

		assert.Equal(t, -2.0, eval.MonthTerm)
		assert.Equal(t, 0.0, eval.DayTerm)
		assert.Equal(t, domain.Weak, eval.Verdict)
	})

	t.Run("month generates the line", func(t *testing.T) {
		eval := runtime.Evaluate(wuWang, domain.Target{Relative: domain.Authority}, contextOf(domain.Chen, domain.Mao))

		assert.Equal(t, 1.0, eval.Score)
		assert.Equal(t, domain.Balanced, eval.Verdict)
	})

	t.Run("several matches take the lowest", func(t *testing.T) {
		eval := runtime.Evaluate(wuWang, domain.Target{Relative: domain.Wealth}, contextOf(domain.Chen, domain.Chen))

		assert.Equal(t, []int{3, 6}, eval.Matches)
		assert.Equal(t, 3, eval.Position)
		require.Len(t, eval.Notes, 1)
		assert.Contains(t, eval.Notes[0], "2 lines")
		assert.Equal(t, 3.0, eval.Score)
	})

	t.Run("missing relative falls back to the World line", func(t *testing.T) {
		// 天风姤 in the Metal palace carries no Wood line, hence no Wealth.
		gou, err := runtime.Build(drawOf(domain.Xun, domain.Qian), domain.Jia)
		require.NoError(t, err)
		require.Equal(t, 44, gou.Number)

		eval := runtime.Evaluate(gou, domain.Target{Relative: domain.Wealth}, contextOf(domain.Chen, domain.Chen))

		assert.Empty(t, eval.Matches)
		assert.True(t, eval.Fallback)
		assert.Equal(t, gou.World, eval.Position)
		require.Len(t, eval.Notes, 1)
		assert.Contains(t, eval.Notes[0], "World line")
	})

	t.Run("World line target", func(t *testing.T) {
		eval := runtime.Evaluate(wuWang, domain.WorldLineTarget, contextOf(domain.Chen, domain.Chen))

		assert.True(t, eval.Fallback)
		assert.Equal(t, 4, eval.Position)
		assert.NotEmpty(t, eval.Notes)
	})
}
