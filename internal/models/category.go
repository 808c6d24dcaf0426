package models

// Category identifies a scoring box on the scorecard
type Category string

const (
	CategoryOnes          Category = "ones"
	CategoryTwos          Category = "twos"
	CategoryThrees        Category = "threes"
	CategoryFours         Category = "fours"
	CategoryFives         Category = "fives"
	CategorySixes         Category = "sixes"
	CategoryOnePair       Category = "one-pair"
	CategoryTwoPairs      Category = "two-pairs"
	CategoryThreeKind     Category = "three-kind"
	CategoryFourKind      Category = "four-kind"
	CategorySmallStraight Category = "small-straight"
	CategoryLargeStraight Category = "large-straight"
	CategoryFullHouse     Category = "full-house"
	CategoryChance        Category = "chance"
	CategoryYatzy         Category = "yatzy"
)

const (
	// TotalCategories is the number of boxes on a full scorecard
	TotalCategories = 15

	// UpperBonusThreshold is the upper section sum that earns the bonus
	UpperBonusThreshold = 63

	// UpperBonus is the upper section bonus in every mode but double-bonus
	UpperBonus = 50

	// DoubleUpperBonus is the upper section bonus in double-bonus mode
	DoubleUpperBonus = 100

	// YatzyScore is the value of a five-of-a-kind in the yatzy box
	YatzyScore = 50

	// YatzyBonus is paid for each extra yatzy in unlimited-yatzy mode
	YatzyBonus = 50

	// SmallStraightScore is the value of 1-2-3-4-5
	SmallStraightScore = 15

	// LargeStraightScore is the value of 2-3-4-5-6
	LargeStraightScore = 20
)

// AllCategories lists every category in scorecard order
var AllCategories = []Category{
	CategoryOnes,
	CategoryTwos,
	CategoryThrees,
	CategoryFours,
	CategoryFives,
	CategorySixes,
	CategoryOnePair,
	CategoryTwoPairs,
	CategoryThreeKind,
	CategoryFourKind,
	CategorySmallStraight,
	CategoryLargeStraight,
	CategoryFullHouse,
	CategoryChance,
	CategoryYatzy,
}

// UpperCategories lists the upper section, ones through sixes
var UpperCategories = AllCategories[:6]

var categoryNames = map[Category]string{
	CategoryOnes:          "Ones",
	CategoryTwos:          "Twos",
	CategoryThrees:        "Threes",
	CategoryFours:         "Fours",
	CategoryFives:         "Fives",
	CategorySixes:         "Sixes",
	CategoryOnePair:       "One Pair",
	CategoryTwoPairs:      "Two Pairs",
	CategoryThreeKind:     "Three of a Kind",
	CategoryFourKind:      "Four of a Kind",
	CategorySmallStraight: "Small Straight",
	CategoryLargeStraight: "Large Straight",
	CategoryFullHouse:     "Full House",
	CategoryChance:        "Chance",
	CategoryYatzy:         "Yatzy",
}

// Valid reports whether c is one of the fifteen categories
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// IsUpper reports whether c belongs to the upper section
func (c Category) IsUpper() bool {
	return c.Face() != 0
}

// Face returns the face value counted by an upper section category, or 0
func (c Category) Face() int {
	for i, upper := range UpperCategories {
		if c == upper {
			return i + 1
		}
	}
	return 0
}

// DisplayName returns a human readable label
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}
