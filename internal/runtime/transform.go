package runtime

import "github.com/aretw0/najia/pkg/domain"

// Transform returns the figure reached once every moving line has flipped,
// or nil when nothing moves. The result is rebuilt from scratch: palace,
// World/Response and every line annotation belong to the new figure, and
// none of its lines move.
func Transform(h *domain.Hexagram, dayStem domain.Stem) (*domain.Hexagram, error) {
	if h == nil || len(h.Moving()) == 0 {
		return nil, nil
	}
	var draw Draw
	for i, l := range h.Lines {
		p := l.Polarity
		if l.Moving {
			p = p.Flip()
		}
		draw[i] = domain.LineDraw{Polarity: p}
	}
	return Build(draw, dayStem)
}
