package domain

// LineDraw is the raw value of one line before annotation.
type LineDraw struct {
	Polarity Polarity `json:"polarity" yaml:"polarity"`
	Moving   bool     `json:"moving" yaml:"moving"`
}

// Line is a fully annotated line of a hexagram.
type Line struct {
	Position int         `json:"position" yaml:"position"`
	Polarity Polarity    `json:"polarity" yaml:"polarity"`
	Moving   bool        `json:"moving" yaml:"moving"`
	Stem     Stem        `json:"stem" yaml:"stem"`
	Branch   Branch      `json:"branch" yaml:"branch"`
	Element  Element     `json:"element" yaml:"element"`
	Relative SixRelative `json:"relative" yaml:"relative"`
	Spirit   SixSpirit   `json:"spirit" yaml:"spirit"`
	World    bool        `json:"world,omitempty" yaml:"world,omitempty"`
	Response bool        `json:"response,omitempty" yaml:"response,omitempty"`
}

// Hexagram is an annotated six-line figure. Lines[0] is position 1.
type Hexagram struct {
	Number     int        `json:"number" yaml:"number"`
	Name       string     `json:"name" yaml:"name"`
	Pinyin     string     `json:"pinyin" yaml:"pinyin"`
	Title      string     `json:"title" yaml:"title"`
	Lower      Trigram    `json:"lower" yaml:"lower"`
	Upper      Trigram    `json:"upper" yaml:"upper"`
	Palace     Trigram    `json:"palace" yaml:"palace"`
	Generation Generation `json:"generation" yaml:"generation"`
	World      int        `json:"world" yaml:"world"`
	Response   int        `json:"response" yaml:"response"`
	Lines      [6]Line    `json:"lines" yaml:"lines"`
}

// Line returns the line at a 1-based position.
func (h *Hexagram) Line(position int) Line { return h.Lines[position-1] }

// PalaceElement is the element every six-relative label is measured against.
func (h *Hexagram) PalaceElement() Element { return h.Palace.Element() }

// Moving returns the positions of the moving lines in ascending order.
func (h *Hexagram) Moving() []int {
	var out []int
	for _, l := range h.Lines {
		if l.Moving {
			out = append(out, l.Position)
		}
	}
	return out
}

// Draws returns the raw values the hexagram was built from.
func (h *Hexagram) Draws() [6]LineDraw {
	var out [6]LineDraw
	for i, l := range h.Lines {
		out[i] = LineDraw{Polarity: l.Polarity, Moving: l.Moving}
	}
	return out
}
