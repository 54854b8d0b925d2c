package runtime

import (
	"github.com/aretw0/najia/pkg/domain"
)

// Build resolves six line values into a fully annotated hexagram.
//
// The steps are: match both trigram patterns, resolve the King Wen entry and
// its palace, place World and Response from the palace table, attach the
// najia stem and branch of every line, derive element and six relative from
// the palace element, and cycle the six spirits from the day stem.
//
// Any failed lookup means a static table is corrupt; no partial figure is
// returned.
func Build(draw Draw, dayStem domain.Stem) (*domain.Hexagram, error) {
	lower, err := domain.MatchTrigram([3]domain.Polarity{draw[0].Polarity, draw[1].Polarity, draw[2].Polarity})
	if err != nil {
		return nil, err
	}
	upper, err := domain.MatchTrigram([3]domain.Polarity{draw[3].Polarity, draw[4].Polarity, draw[5].Polarity})
	if err != nil {
		return nil, err
	}

	info, err := domain.LookupPair(lower, upper)
	if err != nil {
		return nil, err
	}
	palace, member, err := domain.PalaceOf(info.Number)
	if err != nil {
		return nil, err
	}

	h := &domain.Hexagram{
		Number:     info.Number,
		Name:       info.Name,
		Pinyin:     info.Pinyin,
		Title:      info.Title,
		Lower:      lower,
		Upper:      upper,
		Palace:     palace.Trigram,
		Generation: member.Generation,
		World:      member.World,
		Response:   member.Response,
	}

	palaceElement := palace.Element()
	for i := range draw {
		trigram, outer, local := lower, false, i
		if i >= 3 {
			trigram, outer, local = upper, true, i-3
		}
		stem, branch, err := domain.Najia(trigram, outer, local)
		if err != nil {
			return nil, err
		}
		spirit, err := domain.SpiritFor(dayStem, i+1)
		if err != nil {
			return nil, err
		}
		element := branch.Element()
		h.Lines[i] = domain.Line{
			Position: i + 1,
			Polarity: draw[i].Polarity,
			Moving:   draw[i].Moving,
			Stem:     stem,
			Branch:   branch,
			Element:  element,
			Relative: domain.RelativeOf(palaceElement, element),
			Spirit:   spirit,
			World:    i+1 == member.World,
			Response: i+1 == member.Response,
		}
	}
	return h, nil
}

// BuildFromSeed builds the figure of a (lower, upper, moving set) seed.
func BuildFromSeed(seed TrigramSeed, dayStem domain.Stem) (*domain.Hexagram, error) {
	if !seed.Lower.Valid() || !seed.Upper.Valid() {
		return nil, domain.InvalidInput(domain.MethodNumbers, "trigram indices must be 1..8")
	}
	draw, err := seed.Lines()
	if err != nil {
		return nil, err
	}
	return Build(draw, dayStem)
}
