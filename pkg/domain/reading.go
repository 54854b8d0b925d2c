package domain

import "time"

// Method tags how a case was cast.
type Method string

const (
	MethodCoins   Method = "coins"
	MethodNumbers Method = "numbers"
	MethodMoment  Method = "moment"
)

// Seed records the raw material a case was derived from. Only the field
// matching the method is set.
type Seed struct {
	Coins   [][3]bool `json:"coins,omitempty" yaml:"coins,omitempty"`
	Numbers []int     `json:"numbers,omitempty" yaml:"numbers,omitempty"`
	Moment  time.Time `json:"moment,omitzero" yaml:"moment,omitempty"`
}

// TemporalContext is the calendar frame a case is judged against.
type TemporalContext struct {
	Year  Pillar `json:"year" yaml:"year"`
	Month Pillar `json:"month" yaml:"month"`
	Day   Pillar `json:"day" yaml:"day"`
	Hour  Branch `json:"hour" yaml:"hour"`
}

// Case is a single divination: the original figure, its transformation
// (present only when a line moves) and the moment it was cast.
type Case struct {
	ID          string          `json:"id" yaml:"id"`
	Method      Method          `json:"method" yaml:"method"`
	Query       string          `json:"query,omitempty" yaml:"query,omitempty"`
	CastAt      time.Time       `json:"cast_at" yaml:"cast_at"`
	Seed        Seed            `json:"seed" yaml:"seed"`
	Original    Hexagram        `json:"original" yaml:"original"`
	Transformed *Hexagram       `json:"transformed,omitempty" yaml:"transformed,omitempty"`
	Context     TemporalContext `json:"context" yaml:"context"`
}

// Target is the line category a query is about. When WorldLine is set the
// Relative field is meaningless and the World line is used instead.
type Target struct {
	Relative  SixRelative `json:"relative" yaml:"relative"`
	WorldLine bool        `json:"world_line,omitempty" yaml:"world_line,omitempty"`
	Keyword   string      `json:"keyword,omitempty" yaml:"keyword,omitempty"`
}

// WorldLineTarget is the default target for queries with no category match.
var WorldLineTarget = Target{WorldLine: true}

func (t Target) String() string {
	if t.WorldLine {
		return "World line"
	}
	return t.Relative.String()
}

// Verdict is the strength classification of the evaluated line.
type Verdict string

const (
	Prosperous Verdict = "prosperous"
	Balanced   Verdict = "balanced"
	Weak       Verdict = "weak"
)

// Evaluation is the outcome of scoring one line against the month and day.
type Evaluation struct {
	Target    Target   `json:"target" yaml:"target"`
	Matches   []int    `json:"matches" yaml:"matches"`
	Position  int      `json:"position" yaml:"position"`
	Fallback  bool     `json:"fallback" yaml:"fallback"`
	MonthTerm float64  `json:"month_term" yaml:"month_term"`
	DayTerm   float64  `json:"day_term" yaml:"day_term"`
	Score     float64  `json:"score" yaml:"score"`
	Verdict   Verdict  `json:"verdict" yaml:"verdict"`
	Notes     []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Analysis is the interpretive half of a reading.
type Analysis struct {
	Evaluation Evaluation `json:"evaluation" yaml:"evaluation"`
	Narrative  string     `json:"narrative" yaml:"narrative"`
}

// Reading is the serializable aggregate returned to callers.
type Reading struct {
	Case     Case     `json:"case" yaml:"case"`
	Analysis Analysis `json:"analysis" yaml:"analysis"`
}
