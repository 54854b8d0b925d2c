package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/najia/pkg/domain"
)

// Synthesize renders the narrative of a case and its evaluation. Output is a
// deterministic function of its inputs.
func Synthesize(c *domain.Case, eval domain.Evaluation) string {
	h := &c.Original
	var paragraphs []string

	info, _ := domain.LookupHexagram(h.Number)
	paragraphs = append(paragraphs, fmt.Sprintf("%s (#%d, %s). %s It belongs to the %s palace, %s generation.",
		h.Name, h.Number, h.Title, info.Meaning, h.Palace.Info().Name, h.Generation))

	paragraphs = append(paragraphs, worldResponse(h))
	paragraphs = append(paragraphs, movingLines(len(h.Moving())))

	paragraphs = append(paragraphs, verdictLine(h, eval))
	paragraphs = append(paragraphs, eval.Notes...)

	if c.Transformed != nil {
		paragraphs = append(paragraphs, fmt.Sprintf("The figure transforms into %s (#%d, %s).",
			c.Transformed.Name, c.Transformed.Number, c.Transformed.Title))
	}
	return strings.Join(paragraphs, "\n\n")
}

func worldResponse(h *domain.Hexagram) string {
	world, response := h.Line(h.World), h.Line(h.Response)
	switch domain.RelationOf(world.Element, response.Element) {
	case domain.RelationSame:
		return fmt.Sprintf("World (%s) and Response (%s) share the same element: the parties stand on equal footing.",
			world.Element, response.Element)
	case domain.RelationGenerates:
		return fmt.Sprintf("World (%s) generates Response (%s): the asker gives more than is returned.",
			world.Element, response.Element)
	case domain.RelationGeneratedBy:
		return fmt.Sprintf("Response (%s) generates World (%s): support comes to the asker.",
			response.Element, world.Element)
	case domain.RelationControls:
		return fmt.Sprintf("World (%s) controls Response (%s): the asker holds the upper hand.",
			world.Element, response.Element)
	default:
		return fmt.Sprintf("World (%s) is controlled by Response (%s): the other side holds the upper hand.",
			world.Element, response.Element)
	}
}

func movingLines(n int) string {
	switch n {
	case 0:
		return "No line moves: the situation is settled and the figure speaks for itself."
	case 1:
		return "One line moves: the matter turns on a single point of change."
	case 2:
		return "Two lines move: change comes from more than one direction."
	case 3:
		return "Three lines move: the situation is in open flux."
	default:
		return fmt.Sprintf("%d lines move: the present figure is giving way to its transformation.", n)
	}
}

func verdictLine(h *domain.Hexagram, eval domain.Evaluation) string {
	line := h.Line(eval.Position)
	return fmt.Sprintf("%s on line %d (%s%s, %s) is %s: month %+.1f, day %+.1f, score %+.1f.",
		eval.Target, eval.Position, line.Stem.Glyph(), line.Branch.Glyph(), line.Element,
		eval.Verdict, eval.MonthTerm, eval.DayTerm, eval.Score)
}
