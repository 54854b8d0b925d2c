package domain

import (
	"fmt"
	"time"
)

// Stem is one of the ten heavenly stems.
type Stem int

const (
	Jia Stem = iota
	Yi
	Bing
	Ding
	StemWu
	Ji
	Geng
	Xin
	Ren
	Gui
)

var (
	stemNames  = []string{"Jia", "Yi", "Bing", "Ding", "Wu", "Ji", "Geng", "Xin", "Ren", "Gui"}
	stemGlyphs = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
)

func (s Stem) String() string { return nameOf(stemNames, int(s)) }

// Glyph returns the stem's Chinese character.
func (s Stem) Glyph() string { return nameOf(stemGlyphs, int(s)) }

func (s Stem) MarshalText() ([]byte, error) { return marshalName(stemNames, int(s), "stem") }

func (s *Stem) UnmarshalText(text []byte) error {
	return unmarshalName(stemNames, text, "stem", (*int)(s))
}

// Element pairs stems two by two: Jia/Yi Wood, Bing/Ding Fire, and so on.
func (s Stem) Element() Element { return Element(s / 2) }

// Polarity is yang for odd-numbered (1-based) stems.
func (s Stem) Polarity() Polarity {
	if s%2 == 0 {
		return Yang
	}
	return Yin
}

// Branch is one of the twelve earthly branches.
type Branch int

const (
	Zi Branch = iota
	Chou
	BranchYin
	Mao
	Chen
	Si
	BranchWu
	Wei
	Shen
	You
	Xu
	Hai
)

var (
	branchNames    = []string{"Zi", "Chou", "Yin", "Mao", "Chen", "Si", "Wu", "Wei", "Shen", "You", "Xu", "Hai"}
	branchGlyphs   = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
	branchElements = [12]Element{Water, Earth, Wood, Wood, Earth, Fire, Fire, Earth, Metal, Metal, Earth, Water}
)

func (b Branch) String() string { return nameOf(branchNames, int(b)) }

// Glyph returns the branch's Chinese character.
func (b Branch) Glyph() string { return nameOf(branchGlyphs, int(b)) }

func (b Branch) MarshalText() ([]byte, error) { return marshalName(branchNames, int(b), "branch") }

func (b *Branch) UnmarshalText(text []byte) error {
	return unmarshalName(branchNames, text, "branch", (*int)(b))
}

// Element returns the branch's fixed phase.
func (b Branch) Element() Element { return branchElements[b] }

// Number is the 1-based position of the branch (Zi = 1 ... Hai = 12).
func (b Branch) Number() int { return int(b) + 1 }

// Pillar is a stem-branch pair from the sexagenary cycle.
type Pillar struct {
	Ordinal int    `json:"ordinal" yaml:"ordinal"`
	Stem    Stem   `json:"stem" yaml:"stem"`
	Branch  Branch `json:"branch" yaml:"branch"`
}

func (p Pillar) String() string {
	return fmt.Sprintf("%s%s (%s %s)", p.Stem.Glyph(), p.Branch.Glyph(), p.Stem, p.Branch)
}

// PillarAt returns the pair at the given position of the 60-cycle.
// Ordinal 0 is Jia-Zi; any integer is reduced into range.
func PillarAt(ordinal int) Pillar {
	o := mod(ordinal, 60)
	return Pillar{Ordinal: o, Stem: Stem(o % 10), Branch: Branch(o % 12)}
}

// dayEpoch is 1900-01-01, a Jia-Xu day (ordinal 10).
var dayEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

const dayEpochOrdinal = 10

// DayPillar maps the civil date of t (in t's own location) to its day pillar.
func DayPillar(t time.Time) Pillar {
	y, m, d := t.Date()
	civil := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := int((civil.Unix() - dayEpoch.Unix()) / 86400)
	return PillarAt(days + dayEpochOrdinal)
}

// solarYear returns the year as counted from the Feb 4 turn of the year.
func solarYear(t time.Time) int {
	y, m, d := t.Date()
	if m < time.February || (m == time.February && d < 4) {
		return y - 1
	}
	return y
}

// YearPillar uses 1984 (Jia-Zi) as its reference. The year turns on Feb 4.
func YearPillar(t time.Time) Pillar {
	return PillarAt(solarYear(t) - 1984)
}

// monthBoundaryDay approximates the solar term opening each month.
const monthBoundaryDay = 6

// MonthPillar approximates the solar month: the Gregorian month maps to a
// branch (February -> Yin) with a fixed boundary day, and the stem follows
// from the year stem.
func MonthPillar(t time.Time) Pillar {
	y, m, d := t.Date()
	month := int(m)
	if d < monthBoundaryDay {
		month--
	}
	// Zi and Chou months close the previous year.
	if month < int(time.February) {
		y--
	}
	branch := mod(month, 12)
	sinceYin := mod(branch-int(BranchYin), 12)
	yearOrdinal := mod(y-1984, 60)
	return PillarAt(12*(yearOrdinal%5) + sinceYin + 2)
}

// HourBranch returns the two-hour watch of t. 23:00 opens Zi.
func HourBranch(t time.Time) Branch {
	return Branch(((t.Hour() + 1) / 2) % 12)
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
