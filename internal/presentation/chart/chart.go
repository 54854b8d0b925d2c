// Package chart lays a reading out as a line chart, top line first, the way
// a paper chart is read.
package chart

import (
	"fmt"
	"strings"

	"github.com/aretw0/najia/pkg/domain"
)

const (
	yangGlyph = "▅▅▅▅▅"
	yinGlyph  = "▅▅ ▅▅"
)

// LineGlyph draws one line. Moving lines carry the old-yang ○ or old-yin ×
// mark.
func LineGlyph(l domain.Line) string {
	g := yinGlyph
	if l.Polarity == domain.Yang {
		g = yangGlyph
	}
	switch {
	case l.Moving && l.Polarity == domain.Yang:
		return g + " ○"
	case l.Moving:
		return g + " ×"
	}
	return g + "  "
}

func marker(l domain.Line) string {
	switch {
	case l.World:
		return "W"
	case l.Response:
		return "R"
	}
	return ""
}

func heading(h *domain.Hexagram) string {
	return fmt.Sprintf("%s (#%d, %s · %s)", h.Name, h.Number, h.Pinyin, h.Title)
}

// Markdown renders a reading as a Markdown document: header, calendar frame,
// line table, evaluation and narrative.
func Markdown(r *domain.Reading) string {
	c := r.Case
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", heading(&c.Original)))
	if c.Query != "" {
		sb.WriteString(fmt.Sprintf("> %s\n\n", c.Query))
	}

	sb.WriteString(fmt.Sprintf("- **Method:** %s\n", c.Method))
	sb.WriteString(fmt.Sprintf("- **Cast at:** %s\n", c.CastAt.Format("2006-01-02 15:04 MST")))
	sb.WriteString(fmt.Sprintf("- **Pillars:** year %s, month %s, day %s, hour %s%s\n",
		c.Context.Year, c.Context.Month, c.Context.Day, c.Context.Hour.Glyph(), c.Context.Hour))
	sb.WriteString(fmt.Sprintf("- **Palace:** %s (%s), %s generation\n",
		c.Original.Palace, c.Original.PalaceElement(), c.Original.Generation))
	if c.Transformed != nil {
		sb.WriteString(fmt.Sprintf("- **Transforms into:** %s\n", heading(c.Transformed)))
	}
	sb.WriteString("\n")

	sb.WriteString("| Line | Spirit | Relative | Najia | Element | Figure | | Changes to |\n")
	sb.WriteString("|---|---|---|---|---|---|---|---|\n")
	for i := 5; i >= 0; i-- {
		l := c.Original.Lines[i]
		changed := ""
		if c.Transformed != nil && l.Moving {
			t := c.Transformed.Lines[i]
			changed = fmt.Sprintf("%s %s%s%s", t.Relative.Glyph(), t.Stem.Glyph(), t.Branch.Glyph(), t.Element)
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %s %s | %s%s | %s | `%s` | %s | %s |\n",
			l.Position, l.Spirit.Glyph(), l.Relative.Glyph(), l.Relative,
			l.Stem.Glyph(), l.Branch.Glyph(), l.Element, LineGlyph(l), marker(l), changed))
	}
	sb.WriteString("\n")

	e := r.Analysis.Evaluation
	sb.WriteString("## Evaluation\n\n")
	sb.WriteString(fmt.Sprintf("**%s** on line %d: month %+.1f, day %+.1f, score **%+.1f** (%s)\n\n",
		e.Target, e.Position, e.MonthTerm, e.DayTerm, e.Score, e.Verdict))
	for _, n := range e.Notes {
		sb.WriteString(fmt.Sprintf("- %s\n", n))
	}
	if len(e.Notes) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("## Reading\n\n")
	sb.WriteString(r.Analysis.Narrative)
	sb.WriteString("\n")
	return sb.String()
}

// Text renders the bare chart for plain terminals.
func Text(r *domain.Reading) string {
	c := r.Case
	var sb strings.Builder

	title := heading(&c.Original)
	if c.Transformed != nil {
		title += " → " + heading(c.Transformed)
	}
	sb.WriteString(title + "\n")
	sb.WriteString(fmt.Sprintf("%s palace · %s · day %s\n\n", c.Original.Palace, c.Original.Generation, c.Context.Day))

	for i := 5; i >= 0; i-- {
		l := c.Original.Lines[i]
		sb.WriteString(fmt.Sprintf("%d  %s  %s %s%s %-5s  %s %s\n",
			l.Position, l.Spirit.Glyph(), l.Relative.Glyph(), l.Stem.Glyph(), l.Branch.Glyph(),
			l.Element, LineGlyph(l), marker(l)))
	}
	sb.WriteString("\n")
	sb.WriteString(r.Analysis.Narrative)
	sb.WriteString("\n")
	return sb.String()
}
