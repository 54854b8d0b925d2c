package domain

// Element is one of the five phases.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

var elementNames = []string{"Wood", "Fire", "Earth", "Metal", "Water"}

// Elements lists the five phases in generation order.
var Elements = [5]Element{Wood, Fire, Earth, Metal, Water}

func (e Element) String() string { return nameOf(elementNames, int(e)) }

func (e Element) MarshalText() ([]byte, error) { return marshalName(elementNames, int(e), "element") }

func (e *Element) UnmarshalText(text []byte) error {
	return unmarshalName(elementNames, text, "element", (*int)(e))
}

// Generates returns the element this one feeds: Wood -> Fire -> Earth -> Metal -> Water -> Wood.
func (e Element) Generates() Element { return (e + 1) % 5 }

// GeneratedBy is the inverse of Generates.
func (e Element) GeneratedBy() Element { return (e + 4) % 5 }

// Controls returns the element this one overcomes: Wood -> Earth -> Water -> Fire -> Metal -> Wood.
func (e Element) Controls() Element { return (e + 2) % 5 }

// ControlledBy is the inverse of Controls.
func (e Element) ControlledBy() Element { return (e + 3) % 5 }

// Relation classifies how one element stands towards another.
type Relation int

const (
	RelationSame Relation = iota
	RelationGenerates
	RelationGeneratedBy
	RelationControls
	RelationControlledBy
)

var relationNames = []string{"same", "generates", "generated_by", "controls", "controlled_by"}

func (r Relation) String() string { return nameOf(relationNames, int(r)) }

func (r Relation) MarshalText() ([]byte, error) { return marshalName(relationNames, int(r), "relation") }

func (r *Relation) UnmarshalText(text []byte) error {
	return unmarshalName(relationNames, text, "relation", (*int)(r))
}

// RelationOf reports how from stands towards to. Every ordered pair of
// elements falls into exactly one of the five relations.
func RelationOf(from, to Element) Relation {
	switch to {
	case from:
		return RelationSame
	case from.Generates():
		return RelationGenerates
	case from.GeneratedBy():
		return RelationGeneratedBy
	case from.Controls():
		return RelationControls
	default:
		return RelationControlledBy
	}
}

// Polarity is the yin/yang value of a line or stem.
type Polarity int

const (
	Yin Polarity = iota
	Yang
)

var polarityNames = []string{"yin", "yang"}

func (p Polarity) String() string { return nameOf(polarityNames, int(p)) }

func (p Polarity) MarshalText() ([]byte, error) { return marshalName(polarityNames, int(p), "polarity") }

func (p *Polarity) UnmarshalText(text []byte) error {
	return unmarshalName(polarityNames, text, "polarity", (*int)(p))
}

// Flip returns the opposite polarity.
func (p Polarity) Flip() Polarity { return 1 - p }
