package domain

// Generation is a hexagram's place within its palace lineage.
type Generation int

const (
	GenerationPure Generation = iota
	GenerationFirst
	GenerationSecond
	GenerationThird
	GenerationFourth
	GenerationFifth
	GenerationWandering
	GenerationReturning
)

var generationNames = []string{"pure", "first", "second", "third", "fourth", "fifth", "wandering_soul", "returning_soul"}

func (g Generation) String() string { return nameOf(generationNames, int(g)) }

func (g Generation) MarshalText() ([]byte, error) {
	return marshalName(generationNames, int(g), "generation")
}

func (g *Generation) UnmarshalText(text []byte) error {
	return unmarshalName(generationNames, text, "generation", (*int)(g))
}

// PalaceMember places one hexagram in a palace with its World and
// Response positions.
type PalaceMember struct {
	Number     int        `json:"number" yaml:"number"`
	Generation Generation `json:"generation" yaml:"generation"`
	World      int        `json:"world" yaml:"world"`
	Response   int        `json:"response" yaml:"response"`
}

// Palace is one of the eight lineages, headed by a doubled trigram.
type Palace struct {
	Trigram Trigram         `json:"trigram" yaml:"trigram"`
	Members [8]PalaceMember `json:"members" yaml:"members"`
}

// Element of a palace is the element of its heading trigram.
func (p Palace) Element() Element { return p.Trigram.Element() }

// palaceTable lists World/Response literally for every member. The
// positions are not derived from the generation on purpose.
var palaceTable = [8]Palace{
	{Qian, [8]PalaceMember{
		{1, GenerationPure, 6, 3}, {44, GenerationFirst, 1, 4}, {33, GenerationSecond, 2, 5}, {12, GenerationThird, 3, 6},
		{20, GenerationFourth, 4, 1}, {23, GenerationFifth, 5, 2}, {35, GenerationWandering, 4, 1}, {14, GenerationReturning, 3, 6},
	}},
	{Dui, [8]PalaceMember{
		{58, GenerationPure, 6, 3}, {47, GenerationFirst, 1, 4}, {45, GenerationSecond, 2, 5}, {31, GenerationThird, 3, 6},
		{39, GenerationFourth, 4, 1}, {15, GenerationFifth, 5, 2}, {62, GenerationWandering, 4, 1}, {54, GenerationReturning, 3, 6},
	}},
	{Li, [8]PalaceMember{
		{30, GenerationPure, 6, 3}, {56, GenerationFirst, 1, 4}, {50, GenerationSecond, 2, 5}, {64, GenerationThird, 3, 6},
		{4, GenerationFourth, 4, 1}, {59, GenerationFifth, 5, 2}, {6, GenerationWandering, 4, 1}, {13, GenerationReturning, 3, 6},
	}},
	{Zhen, [8]PalaceMember{
		{51, GenerationPure, 6, 3}, {16, GenerationFirst, 1, 4}, {40, GenerationSecond, 2, 5}, {32, GenerationThird, 3, 6},
		{46, GenerationFourth, 4, 1}, {48, GenerationFifth, 5, 2}, {28, GenerationWandering, 4, 1}, {17, GenerationReturning, 3, 6},
	}},
	{Xun, [8]PalaceMember{
		{57, GenerationPure, 6, 3}, {9, GenerationFirst, 1, 4}, {37, GenerationSecond, 2, 5}, {42, GenerationThird, 3, 6},
		{25, GenerationFourth, 4, 1}, {21, GenerationFifth, 5, 2}, {27, GenerationWandering, 4, 1}, {18, GenerationReturning, 3, 6},
	}},
	{Kan, [8]PalaceMember{
		{29, GenerationPure, 6, 3}, {60, GenerationFirst, 1, 4}, {3, GenerationSecond, 2, 5}, {63, GenerationThird, 3, 6},
		{49, GenerationFourth, 4, 1}, {55, GenerationFifth, 5, 2}, {36, GenerationWandering, 4, 1}, {7, GenerationReturning, 3, 6},
	}},
	{Gen, [8]PalaceMember{
		{52, GenerationPure, 6, 3}, {22, GenerationFirst, 1, 4}, {26, GenerationSecond, 2, 5}, {41, GenerationThird, 3, 6},
		{38, GenerationFourth, 4, 1}, {10, GenerationFifth, 5, 2}, {61, GenerationWandering, 4, 1}, {53, GenerationReturning, 3, 6},
	}},
	{Kun, [8]PalaceMember{
		{2, GenerationPure, 6, 3}, {24, GenerationFirst, 1, 4}, {19, GenerationSecond, 2, 5}, {11, GenerationThird, 3, 6},
		{34, GenerationFourth, 4, 1}, {43, GenerationFifth, 5, 2}, {5, GenerationWandering, 4, 1}, {8, GenerationReturning, 3, 6},
	}},
}

// Palaces returns the eight palaces.
func Palaces() []Palace {
	out := make([]Palace, len(palaceTable))
	copy(out, palaceTable[:])
	return out
}

// PalaceOf returns the palace and membership entry of a King Wen number.
func PalaceOf(number int) (Palace, PalaceMember, error) {
	if number < 1 || number > 64 {
		return Palace{}, PalaceMember{}, corrupt("palaces", "hexagram number %d out of range", number)
	}
	ref := tables.palaceOf[number]
	if !ref.ok {
		return Palace{}, PalaceMember{}, corrupt("palaces", "hexagram %d has no palace", number)
	}
	return palaceTable[ref.palace], palaceTable[ref.palace].Members[ref.member], nil
}
