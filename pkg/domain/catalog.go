package domain

import "fmt"

// HexagramInfo is the fixed catalog entry of one of the 64 hexagrams,
// identified by its King Wen number.
type HexagramInfo struct {
	Number  int     `json:"number" yaml:"number"`
	Name    string  `json:"name" yaml:"name"`
	Pinyin  string  `json:"pinyin" yaml:"pinyin"`
	Title   string  `json:"title" yaml:"title"`
	Upper   Trigram `json:"upper" yaml:"upper"`
	Lower   Trigram `json:"lower" yaml:"lower"`
	Meaning string  `json:"meaning" yaml:"meaning"`
}

var hexagramCatalog = [64]HexagramInfo{
	{1, "乾为天", "Qian", "The Creative", Qian, Qian, "Strength in motion; persevere and the way opens."},
	{2, "坤为地", "Kun", "The Receptive", Kun, Kun, "Yield and support; success comes through devotion, not leadership."},
	{3, "水雷屯", "Zhun", "Difficulty at the Beginning", Kan, Zhen, "Things sprout amid confusion; gather helpers before advancing."},
	{4, "山水蒙", "Meng", "Youthful Folly", Gen, Kan, "Ignorance seeks instruction; ask once and listen."},
	{5, "水天需", "Xu", "Waiting", Kan, Qian, "Danger lies ahead; wait with confidence and nourish yourself."},
	{6, "天水讼", "Song", "Conflict", Qian, Kan, "Disputes arise; meet halfway rather than push to the end."},
	{7, "地水师", "Shi", "The Army", Kun, Kan, "Discipline and a worthy leader carry the many."},
	{8, "水地比", "Bi", "Holding Together", Kan, Kun, "Union brings good fortune; join early, not late."},
	{9, "风天小畜", "Xiao Xu", "Small Taming", Xun, Qian, "Dense clouds without rain; small restraint, gentle influence."},
	{10, "天泽履", "Lü", "Treading", Qian, Dui, "Treading on the tiger's tail; courtesy keeps you safe."},
	{11, "地天泰", "Tai", "Peace", Kun, Qian, "Heaven and earth meet; the small departs, the great arrives."},
	{12, "天地否", "Pi", "Standstill", Qian, Kun, "Heaven and earth apart; withdraw and keep your worth."},
	{13, "天火同人", "Tong Ren", "Fellowship", Qian, Li, "Fellowship in the open; cross the great water together."},
	{14, "火天大有", "Da You", "Great Possession", Li, Qian, "Supreme success; abundance held with modesty."},
	{15, "地山谦", "Qian", "Modesty", Kun, Gen, "Modesty carries things through to the end."},
	{16, "雷地豫", "Yu", "Enthusiasm", Zhen, Kun, "Enthusiasm moves others; prepare, then set out."},
	{17, "泽雷随", "Sui", "Following", Dui, Zhen, "Follow what is right and you will be followed."},
	{18, "山风蛊", "Gu", "Work on the Decayed", Gen, Xun, "Repair what was spoiled; deliberate before and after."},
	{19, "地泽临", "Lin", "Approach", Kun, Dui, "Influence approaches; act before the season turns."},
	{20, "风地观", "Guan", "Contemplation", Xun, Kun, "Observe and be observed; sincerity commands respect."},
	{21, "火雷噬嗑", "Shi He", "Biting Through", Li, Zhen, "Obstacles must be bitten through; justice is served."},
	{22, "山火贲", "Bi", "Grace", Gen, Li, "Adornment succeeds in small matters only."},
	{23, "山地剥", "Bo", "Splitting Apart", Gen, Kun, "Decay from below; it does not further to go anywhere."},
	{24, "地雷复", "Fu", "Return", Kun, Zhen, "The turning point; light returns, friends come without blame."},
	{25, "天雷无妄", "Wu Wang", "Innocence", Qian, Zhen, "Act without guile; scheming invites misfortune."},
	{26, "山天大畜", "Da Xu", "Great Taming", Gen, Qian, "Hold great power in check; it pays not to eat at home."},
	{27, "山雷颐", "Yi", "Nourishment", Gen, Zhen, "Watch what nourishes you and what you seek to fill your mouth."},
	{28, "泽风大过", "Da Guo", "Preponderance of the Great", Dui, Xun, "The ridgepole sags; extraordinary times need bold action."},
	{29, "坎为水", "Kan", "The Abysmal", Kan, Kan, "Danger upon danger; keep faith and flow on."},
	{30, "离为火", "Li", "The Clinging", Li, Li, "Clarity depends on what it clings to; care for the cow."},
	{31, "泽山咸", "Xian", "Influence", Dui, Gen, "Mutual attraction; receptiveness brings success."},
	{32, "雷风恒", "Heng", "Duration", Zhen, Xun, "Endurance without blame; keep to your course."},
	{33, "天山遁", "Dun", "Retreat", Qian, Gen, "Retreat in time; small perseverance furthers."},
	{34, "雷天大壮", "Da Zhuang", "Great Power", Zhen, Qian, "Great power must stay within what is right."},
	{35, "火地晋", "Jin", "Progress", Li, Kun, "Rapid progress; the sun rises over the earth."},
	{36, "地火明夷", "Ming Yi", "Darkening of the Light", Kun, Li, "Hide your light in adversity; persevere inwardly."},
	{37, "风火家人", "Jia Ren", "The Family", Xun, Li, "Order in the household radiates outward."},
	{38, "火泽睽", "Kui", "Opposition", Li, Dui, "Estrangement; small matters still succeed."},
	{39, "水山蹇", "Jian", "Obstruction", Kan, Gen, "The road is blocked; turn back and seek help."},
	{40, "雷水解", "Xie", "Deliverance", Zhen, Kan, "Tension dissolves; return to normal swiftly."},
	{41, "山泽损", "Sun", "Decrease", Gen, Dui, "Decrease below to increase above; sincerity makes it fortunate."},
	{42, "风雷益", "Yi", "Increase", Xun, Zhen, "Increase flows downward; undertake great things."},
	{43, "泽天夬", "Guai", "Breakthrough", Dui, Qian, "Resolve with openness; do not resort to arms."},
	{44, "天风姤", "Gou", "Coming to Meet", Qian, Xun, "An unexpected encounter; do not bind yourself hastily."},
	{45, "泽地萃", "Cui", "Gathering Together", Dui, Kun, "People gather; a great offering brings good fortune."},
	{46, "地风升", "Sheng", "Pushing Upward", Kun, Xun, "Steady ascent; seek the great one without fear."},
	{47, "泽水困", "Kun", "Oppression", Dui, Kan, "Exhaustion; words are not believed, keep your spirit."},
	{48, "水风井", "Jing", "The Well", Kan, Xun, "The well does not change; keep the rope long enough."},
	{49, "泽火革", "Ge", "Revolution", Dui, Li, "Change believed in on its own day; remorse vanishes."},
	{50, "火风鼎", "Ding", "The Cauldron", Li, Xun, "Nourishing the worthy; supreme good fortune."},
	{51, "震为雷", "Zhen", "The Arousing", Zhen, Zhen, "Shock comes and goes; laughter follows fear."},
	{52, "艮为山", "Gen", "Keeping Still", Gen, Gen, "Stillness at the right time; rest where you belong."},
	{53, "风山渐", "Jian", "Development", Xun, Gen, "Gradual progress, like a tree on a mountain."},
	{54, "雷泽归妹", "Gui Mei", "The Marrying Maiden", Zhen, Dui, "A subordinate position; forcing ahead brings misfortune."},
	{55, "雷火丰", "Feng", "Abundance", Zhen, Li, "Fullness at its zenith; be like the noonday sun."},
	{56, "火山旅", "Lü", "The Wanderer", Li, Gen, "Travel lightly; small success through persistence."},
	{57, "巽为风", "Xun", "The Gentle", Xun, Xun, "Penetrating gently; it furthers to see the great one."},
	{58, "兑为泽", "Dui", "The Joyous", Dui, Dui, "Joy shared; perseverance furthers."},
	{59, "风水涣", "Huan", "Dispersion", Xun, Kan, "Dissolve rigidity; cross the great water."},
	{60, "水泽节", "Jie", "Limitation", Kan, Dui, "Limits bring success, but galling limits cannot last."},
	{61, "风泽中孚", "Zhong Fu", "Inner Truth", Xun, Dui, "Inner sincerity reaches even pigs and fishes."},
	{62, "雷山小过", "Xiao Guo", "Small Preponderance", Zhen, Gen, "Small matters may be done, not great ones; stay low."},
	{63, "水火既济", "Ji Ji", "After Completion", Kan, Li, "Order achieved; good at first, disorder at the end."},
	{64, "火水未济", "Wei Ji", "Before Completion", Li, Kan, "Not yet across; the little fox gets its tail wet."},
}

// Hexagrams returns the catalog in King Wen order.
func Hexagrams() []HexagramInfo {
	out := make([]HexagramInfo, len(hexagramCatalog))
	copy(out, hexagramCatalog[:])
	return out
}

// LookupHexagram returns the catalog entry for a King Wen number (1..64).
func LookupHexagram(number int) (HexagramInfo, bool) {
	if number < 1 || number > len(hexagramCatalog) {
		return HexagramInfo{}, false
	}
	return hexagramCatalog[number-1], true
}

// LookupPair resolves the hexagram formed by a lower and an upper trigram.
func LookupPair(lower, upper Trigram) (HexagramInfo, error) {
	if !lower.Valid() || !upper.Valid() {
		return HexagramInfo{}, corrupt("hexagrams", "invalid trigram pair (%d, %d)", int(lower), int(upper))
	}
	n := tables.byPair[lower-1][upper-1]
	if n == 0 {
		return HexagramInfo{}, corrupt("hexagrams", "no hexagram for lower %s, upper %s", lower, upper)
	}
	return hexagramCatalog[n-1], nil
}

// CatalogEntry joins a catalog entry with its palace placement.
type CatalogEntry struct {
	HexagramInfo `yaml:",inline"`
	Palace       Trigram    `json:"palace" yaml:"palace"`
	Element      Element    `json:"element" yaml:"element"`
	Generation   Generation `json:"generation" yaml:"generation"`
	World        int        `json:"world" yaml:"world"`
	Response     int        `json:"response" yaml:"response"`
}

// Entry returns the catalog entry of a King Wen number together with its
// palace placement.
func Entry(number int) (CatalogEntry, error) {
	info, ok := LookupHexagram(number)
	if !ok {
		return CatalogEntry{}, fmt.Errorf("%w: %d", ErrHexagramNotFound, number)
	}
	palace, member, err := PalaceOf(number)
	if err != nil {
		return CatalogEntry{}, err
	}
	return CatalogEntry{
		HexagramInfo: info,
		Palace:       palace.Trigram,
		Element:      palace.Element(),
		Generation:   member.Generation,
		World:        member.World,
		Response:     member.Response,
	}, nil
}
