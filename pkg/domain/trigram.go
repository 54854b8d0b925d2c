package domain

import "fmt"

// Trigram is one of the eight three-line primitives, numbered in the
// Earlier Heaven order used by number casting (Qian = 1 ... Kun = 8).
type Trigram int

const (
	Qian Trigram = iota + 1
	Dui
	Li
	Zhen
	Xun
	Kan
	Gen
	Kun
)

// TrigramInfo is the fixed catalog entry for a trigram.
type TrigramInfo struct {
	Trigram Trigram
	Name    string
	Glyph   string
	Image   string // nature image used in hexagram names (天, 泽, ...)
	Lines   [3]Polarity
	Element Element
}

// trigramCatalog is indexed by Trigram-1. Lines run bottom to top.
var trigramCatalog = [8]TrigramInfo{
	{Qian, "Qian", "乾", "天", [3]Polarity{Yang, Yang, Yang}, Metal},
	{Dui, "Dui", "兑", "泽", [3]Polarity{Yang, Yang, Yin}, Metal},
	{Li, "Li", "离", "火", [3]Polarity{Yang, Yin, Yang}, Fire},
	{Zhen, "Zhen", "震", "雷", [3]Polarity{Yang, Yin, Yin}, Wood},
	{Xun, "Xun", "巽", "风", [3]Polarity{Yin, Yang, Yang}, Wood},
	{Kan, "Kan", "坎", "水", [3]Polarity{Yin, Yang, Yin}, Water},
	{Gen, "Gen", "艮", "山", [3]Polarity{Yin, Yin, Yang}, Earth},
	{Kun, "Kun", "坤", "地", [3]Polarity{Yin, Yin, Yin}, Earth},
}

// Trigrams returns the catalog in numeric order.
func Trigrams() []TrigramInfo {
	out := make([]TrigramInfo, len(trigramCatalog))
	copy(out, trigramCatalog[:])
	return out
}

// Valid reports whether t names one of the eight trigrams.
func (t Trigram) Valid() bool { return t >= Qian && t <= Kun }

// Info returns the catalog entry. It panics on an invalid trigram.
func (t Trigram) Info() TrigramInfo {
	if !t.Valid() {
		panic(fmt.Sprintf("domain: invalid trigram %d", int(t)))
	}
	return trigramCatalog[t-1]
}

func (t Trigram) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Trigram(%d)", int(t))
	}
	return trigramCatalog[t-1].Name
}

func (t Trigram) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid trigram %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Trigram) UnmarshalText(text []byte) error {
	var i int
	if err := unmarshalName(trigramNames(), text, "trigram", &i); err != nil {
		return err
	}
	*t = Trigram(i + 1)
	return nil
}

func trigramNames() []string {
	names := make([]string, len(trigramCatalog))
	for i, info := range trigramCatalog {
		names[i] = info.Name
	}
	return names
}

// Element returns the trigram's phase, which is also its palace element.
func (t Trigram) Element() Element { return t.Info().Element }

// signature packs the three polarities bottom to top into bits 0..2.
func signature(lines [3]Polarity) int {
	return int(lines[0]) | int(lines[1])<<1 | int(lines[2])<<2
}

// MatchTrigram finds the trigram whose pattern equals lines (bottom to top).
// Exactly one entry must match; anything else means the catalog is corrupt.
func MatchTrigram(lines [3]Polarity) (Trigram, error) {
	sig := signature(lines)
	found := Trigram(0)
	for _, info := range trigramCatalog {
		if signature(info.Lines) != sig {
			continue
		}
		if found != 0 {
			return 0, corrupt("trigrams", "pattern %03b matches both %s and %s", sig, found, info.Trigram)
		}
		found = info.Trigram
	}
	if found == 0 {
		return 0, corrupt("trigrams", "no trigram matches pattern %03b", sig)
	}
	return found, nil
}
