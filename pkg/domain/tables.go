package domain

import "fmt"

type palaceRef struct {
	palace, member int
	ok             bool
}

// derived holds the lookup indexes built once from the literal tables.
type derived struct {
	byPair   [8][8]int // [lower-1][upper-1] -> King Wen number
	palaceOf [65]palaceRef
}

var tables = mustDerive()

func mustDerive() derived {
	d, err := derive()
	if err != nil {
		panic(fmt.Sprintf("domain: %v", err))
	}
	return d
}

func derive() (derived, error) {
	var d derived
	for i, h := range hexagramCatalog {
		if h.Number != i+1 {
			return d, corrupt("hexagrams", "entry %d carries number %d", i+1, h.Number)
		}
		if !h.Lower.Valid() || !h.Upper.Valid() {
			return d, corrupt("hexagrams", "hexagram %d has an invalid trigram", h.Number)
		}
		slot := &d.byPair[h.Lower-1][h.Upper-1]
		if *slot != 0 {
			return d, corrupt("hexagrams", "hexagrams %d and %d share trigrams %s/%s", *slot, h.Number, h.Lower, h.Upper)
		}
		*slot = h.Number
	}

	for p, palace := range palaceTable {
		for m, member := range palace.Members {
			if member.Number < 1 || member.Number > 64 {
				return d, corrupt("palaces", "%s palace lists hexagram %d", palace.Trigram, member.Number)
			}
			if d.palaceOf[member.Number].ok {
				return d, corrupt("palaces", "hexagram %d belongs to two palaces", member.Number)
			}
			if member.World == member.Response || !validPosition(member.World) || !validPosition(member.Response) {
				return d, corrupt("palaces", "hexagram %d has world %d, response %d", member.Number, member.World, member.Response)
			}
			d.palaceOf[member.Number] = palaceRef{palace: p, member: m, ok: true}
		}
		head := hexagramCatalog[palace.Members[0].Number-1]
		if head.Lower != palace.Trigram || head.Upper != palace.Trigram {
			return d, corrupt("palaces", "%s palace is not headed by its pure hexagram", palace.Trigram)
		}
	}
	for n := 1; n <= 64; n++ {
		if !d.palaceOf[n].ok {
			return d, corrupt("palaces", "hexagram %d has no palace", n)
		}
	}

	seen := map[int]Trigram{}
	for _, info := range trigramCatalog {
		sig := signature(info.Lines)
		if other, dup := seen[sig]; dup {
			return d, corrupt("trigrams", "%s and %s share pattern %03b", other, info.Trigram, sig)
		}
		seen[sig] = info.Trigram
	}
	return d, nil
}

func validPosition(p int) bool { return p >= 1 && p <= 6 }

// VerifyTables re-runs the static table checks and reports the first
// violation instead of panicking.
func VerifyTables() error {
	_, err := derive()
	return err
}
