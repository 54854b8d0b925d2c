package runtime

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/ports"
)

// Draw is the raw six-line outcome of a cast, bottom to top.
type Draw [6]domain.LineDraw

// Moving returns the 1-based positions of the moving lines.
func (d Draw) Moving() []int {
	var out []int
	for i, l := range d {
		if l.Moving {
			out = append(out, i+1)
		}
	}
	return out
}

// TrigramSeed is the (lower, upper, moving set) form produced by number
// and time casting.
type TrigramSeed struct {
	Lower  domain.Trigram
	Upper  domain.Trigram
	Moving []int
}

// Lines expands the seed into its six line values. A moving position
// outside 1..6 means the seed was derived wrongly and is reported as a
// corrupt table.
func (s TrigramSeed) Lines() (Draw, error) {
	var d Draw
	lower, upper := s.Lower.Info().Lines, s.Upper.Info().Lines
	for i := 0; i < 3; i++ {
		d[i].Polarity = lower[i]
		d[i+3].Polarity = upper[i]
	}
	for _, p := range s.Moving {
		if p < 1 || p > 6 {
			return Draw{}, &domain.CorruptTableError{
				Table:  "seed",
				Detail: fmt.Sprintf("moving position %d outside 1..6", p),
			}
		}
		d[p-1].Moving = true
	}
	return d, nil
}

// LineFromYangCount maps the number of yang faces among three coins to a line:
// 0 old yin (moving), 1 young yin, 2 young yang, 3 old yang (moving).
func LineFromYangCount(yang int) (domain.LineDraw, error) {
	switch yang {
	case 0:
		return domain.LineDraw{Polarity: domain.Yin, Moving: true}, nil
	case 1:
		return domain.LineDraw{Polarity: domain.Yin}, nil
	case 2:
		return domain.LineDraw{Polarity: domain.Yang}, nil
	case 3:
		return domain.LineDraw{Polarity: domain.Yang, Moving: true}, nil
	default:
		return domain.LineDraw{}, domain.InvalidInput(domain.MethodCoins, "yang count %d outside 0..3", yang)
	}
}

// CoinDraw tosses three coins for each of the six positions. The returned
// tosses record each face (true = yang) for the case seed.
func CoinDraw(entropy ports.Entropy) (Draw, [][3]bool, error) {
	if entropy == nil {
		return Draw{}, nil, domain.InvalidInput(domain.MethodCoins, "no entropy source")
	}
	var d Draw
	tosses := make([][3]bool, 6)
	for pos := 0; pos < 6; pos++ {
		yang := 0
		for c := 0; c < 3; c++ {
			face := entropy.Intn(2) == 1
			tosses[pos][c] = face
			if face {
				yang++
			}
		}
		line, err := LineFromYangCount(yang)
		if err != nil {
			return Draw{}, nil, err
		}
		d[pos] = line
	}
	return d, tosses, nil
}

// reduce maps n onto 1..size, with a zero remainder standing for size.
func reduce(n, size int) int {
	r := n % size
	if r == 0 {
		return size
	}
	return r
}

// NumberSeed derives the figure from a sequence of non-negative integers.
//
// A single value below ten sets both trigrams; a longer single value is split
// into two halves of digits (upper first, the lower half taking any extra digit).
// With two or more values the first sets the upper trigram and the second the
// lower. The moving line always comes from the sum.
func NumberSeed(numbers []int) (TrigramSeed, error) {
	if len(numbers) == 0 {
		return TrigramSeed{}, domain.InvalidInput(domain.MethodNumbers, "at least one number is required")
	}
	// Only the sum mod 6 matters; reducing as we go keeps it from overflowing.
	sum := 0
	for i, n := range numbers {
		if n < 0 {
			return TrigramSeed{}, domain.InvalidInput(domain.MethodNumbers, "number %d at index %d is negative", n, i)
		}
		sum = (sum + n%6) % 6
	}

	var upper, lower int
	if len(numbers) == 1 {
		n := numbers[0]
		if n < 10 {
			upper, lower = n, n
		} else {
			digits := strconv.Itoa(n)
			half := len(digits) / 2
			upper, _ = strconv.Atoi(digits[:half])
			lower, _ = strconv.Atoi(digits[half:])
		}
	} else {
		upper, lower = numbers[0], numbers[1]
	}

	return TrigramSeed{
		Lower:  domain.Trigram(reduce(lower, 8)),
		Upper:  domain.Trigram(reduce(upper, 8)),
		Moving: []int{reduce(sum, 6)},
	}, nil
}

// MomentSeed derives the figure from the calendar position of t: year
// branch number plus month and day give the upper trigram; adding the hour
// branch number gives the lower trigram and the moving line.
func MomentSeed(t time.Time) TrigramSeed {
	_, month, day := t.Date()
	base := domain.YearPillar(t).Branch.Number() + int(month) + day
	withHour := base + domain.HourBranch(t).Number()
	return TrigramSeed{
		Upper:  domain.Trigram(reduce(base, 8)),
		Lower:  domain.Trigram(reduce(withHour, 8)),
		Moving: []int{reduce(withHour, 6)},
	}
}
