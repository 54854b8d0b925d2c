package domain

// najiaEntry holds the stems and branches a trigram lends to its three
// lines, once as the inner (lower) trigram and once as the outer (upper).
type najiaEntry struct {
	innerStem, outerStem Stem
	inner, outer         [3]Branch
}

// najiaTable is indexed by Trigram-1; each triple runs bottom to top.
var najiaTable = [8]najiaEntry{
	Qian - 1: {Jia, Ren, [3]Branch{Zi, BranchYin, Chen}, [3]Branch{BranchWu, Shen, Xu}},
	Dui - 1:  {Ding, Ding, [3]Branch{Si, Mao, Chou}, [3]Branch{Hai, You, Wei}},
	Li - 1:   {Ji, Ji, [3]Branch{Mao, Chou, Hai}, [3]Branch{You, Wei, Si}},
	Zhen - 1: {Geng, Geng, [3]Branch{Zi, BranchYin, Chen}, [3]Branch{BranchWu, Shen, Xu}},
	Xun - 1:  {Xin, Xin, [3]Branch{Chou, Hai, You}, [3]Branch{Wei, Si, Mao}},
	Kan - 1:  {StemWu, StemWu, [3]Branch{BranchYin, Chen, BranchWu}, [3]Branch{Shen, Xu, Zi}},
	Gen - 1:  {Bing, Bing, [3]Branch{Chen, BranchWu, Shen}, [3]Branch{Xu, Zi, BranchYin}},
	Kun - 1:  {Yi, Gui, [3]Branch{Wei, Si, Mao}, [3]Branch{Chou, Hai, You}},
}

// Najia returns the stem and branch attached to a line. outer selects the
// upper-trigram triple; local is the position inside the trigram (0..2).
func Najia(t Trigram, outer bool, local int) (Stem, Branch, error) {
	if !t.Valid() || local < 0 || local > 2 {
		return 0, 0, corrupt("najia", "no entry for trigram %d position %d", int(t), local)
	}
	e := najiaTable[t-1]
	if outer {
		return e.outerStem, e.outer[local], nil
	}
	return e.innerStem, e.inner[local], nil
}

// SixRelative labels a line by how its element stands towards the palace.
type SixRelative int

const (
	Sibling SixRelative = iota
	Offspring
	Wealth
	Authority
	Progenitor
)

var (
	relativeNames  = []string{"Sibling", "Offspring", "Wealth", "Authority", "Progenitor"}
	relativeGlyphs = []string{"兄弟", "子孙", "妻财", "官鬼", "父母"}
)

// SixRelatives lists the five categories.
var SixRelatives = [5]SixRelative{Sibling, Offspring, Wealth, Authority, Progenitor}

func (r SixRelative) String() string { return nameOf(relativeNames, int(r)) }

// Glyph returns the traditional label.
func (r SixRelative) Glyph() string { return nameOf(relativeGlyphs, int(r)) }

func (r SixRelative) MarshalText() ([]byte, error) {
	return marshalName(relativeNames, int(r), "six relative")
}

func (r *SixRelative) UnmarshalText(text []byte) error {
	return unmarshalName(relativeNames, text, "six relative", (*int)(r))
}

// RelativeOf derives the six-relative label of a line element within a
// palace of the given element.
func RelativeOf(palace, line Element) SixRelative {
	switch RelationOf(palace, line) {
	case RelationSame:
		return Sibling
	case RelationGenerates:
		return Offspring
	case RelationGeneratedBy:
		return Progenitor
	case RelationControls:
		return Wealth
	default:
		return Authority
	}
}

// SixSpirit is the auxiliary label cycled over the lines from the day stem.
type SixSpirit int

const (
	AzureDragon SixSpirit = iota
	VermilionBird
	HookedChen
	FlyingSerpent
	WhiteTiger
	BlackTortoise
)

var (
	spiritNames  = []string{"AzureDragon", "VermilionBird", "HookedChen", "FlyingSerpent", "WhiteTiger", "BlackTortoise"}
	spiritGlyphs = []string{"青龙", "朱雀", "勾陈", "螣蛇", "白虎", "玄武"}
)

func (s SixSpirit) String() string { return nameOf(spiritNames, int(s)) }

// Glyph returns the traditional label.
func (s SixSpirit) Glyph() string { return nameOf(spiritGlyphs, int(s)) }

func (s SixSpirit) MarshalText() ([]byte, error) {
	return marshalName(spiritNames, int(s), "six spirit")
}

func (s *SixSpirit) UnmarshalText(text []byte) error {
	return unmarshalName(spiritNames, text, "six spirit", (*int)(s))
}

// spiritStart gives the spirit of the first line, keyed by day stem.
var spiritStart = [10]SixSpirit{
	Jia: AzureDragon, Yi: AzureDragon,
	Bing: VermilionBird, Ding: VermilionBird,
	StemWu: HookedChen,
	Ji:     FlyingSerpent,
	Geng:   WhiteTiger, Xin: WhiteTiger,
	Ren: BlackTortoise, Gui: BlackTortoise,
}

// SpiritFor returns the spirit of a line position (1..6) on a day with the
// given stem.
func SpiritFor(dayStem Stem, position int) (SixSpirit, error) {
	if dayStem < Jia || dayStem > Gui || position < 1 || position > 6 {
		return 0, corrupt("six spirits", "no entry for stem %d position %d", int(dayStem), position)
	}
	return SixSpirit((int(spiritStart[dayStem]) + position - 1) % 6), nil
}
