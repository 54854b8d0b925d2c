package domain

// LineChange records how one position's six relative moved between two figures.
type LineChange struct {
	Position int         `json:"position"`
	From     SixRelative `json:"from"`
	To       SixRelative `json:"to"`
}

// HexagramDiff represents the changes between an original and a transformed figure.
type HexagramDiff struct {
	// Flipped lists the positions whose polarity differs.
	Flipped []int `json:"flipped"`

	// Palace is set when the two figures belong to different palaces.
	Palace *Trigram `json:"palace,omitempty"`

	// Relatives contains only positions whose six relative changed.
	Relatives []LineChange `json:"relatives,omitempty"`
}

// Diff compares two hexagrams position by position.
// It returns nil if either side is missing or nothing differs.
func Diff(original, transformed *Hexagram) *HexagramDiff {
	if original == nil || transformed == nil {
		return nil
	}

	diff := &HexagramDiff{}
	for i := range original.Lines {
		a, b := original.Lines[i], transformed.Lines[i]
		if a.Polarity != b.Polarity {
			diff.Flipped = append(diff.Flipped, a.Position)
		}
		if a.Relative != b.Relative {
			diff.Relatives = append(diff.Relatives, LineChange{Position: a.Position, From: a.Relative, To: b.Relative})
		}
	}
	if original.Palace != transformed.Palace {
		p := transformed.Palace
		diff.Palace = &p
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *HexagramDiff) IsEmpty() bool {
	return len(d.Flipped) == 0 && d.Palace == nil && len(d.Relatives) == 0
}
