package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/najia/pkg/domain"
)

// Scoring weights of the month pillar. The day pillar counts for half.
const (
	weightSame      = 2.0
	weightGenerates = 1.0
	weightControls  = -2.0
	dayWeight       = 0.5

	prosperousAt = 2.0
)

// termFor scores how a pillar element acts on a line element.
func termFor(pillar, line domain.Element) float64 {
	switch domain.RelationOf(pillar, line) {
	case domain.RelationSame:
		return weightSame
	case domain.RelationGenerates:
		return weightGenerates
	case domain.RelationControls:
		return weightControls
	default:
		return 0
	}
}

// VerdictFor maps a score onto the three verdicts.
func VerdictFor(score float64) domain.Verdict {
	switch {
	case score >= prosperousAt:
		return domain.Prosperous
	case score >= 0:
		return domain.Balanced
	default:
		return domain.Weak
	}
}

// Evaluate scores the line that carries the target relative against the
// month and day branches.
//
// With no matching line the World line is evaluated and the fallback is
// flagged and noted. With several matches the lowest position is evaluated
// and the multiplicity is noted.
func Evaluate(h *domain.Hexagram, target domain.Target, tc domain.TemporalContext) domain.Evaluation {
	eval := domain.Evaluation{Target: target, Matches: []int{}}

	if !target.WorldLine {
		for _, l := range h.Lines {
			if l.Relative == target.Relative {
				eval.Matches = append(eval.Matches, l.Position)
			}
		}
	}

	switch {
	case len(eval.Matches) == 0:
		eval.Position = h.World
		eval.Fallback = true
		if target.WorldLine {
			eval.Notes = append(eval.Notes, fmt.Sprintf("No category matched the query; evaluating the World line (position %d).", h.World))
		} else {
			eval.Notes = append(eval.Notes, fmt.Sprintf("No line carries %s; falling back to the World line (position %d).", target.Relative, h.World))
		}
	case len(eval.Matches) > 1:
		eval.Position = eval.Matches[0]
		eval.Notes = append(eval.Notes, fmt.Sprintf("%s appears on %d lines (positions %s); evaluating the lowest, position %d.",
			target.Relative, len(eval.Matches), joinInts(eval.Matches), eval.Position))
	default:
		eval.Position = eval.Matches[0]
	}

	line := h.Line(eval.Position)
	eval.MonthTerm = termFor(tc.Month.Branch.Element(), line.Element)
	eval.DayTerm = termFor(tc.Day.Branch.Element(), line.Element) * dayWeight
	eval.Score = eval.MonthTerm + eval.DayTerm
	eval.Verdict = VerdictFor(eval.Score)
	return eval
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ", ")
}
