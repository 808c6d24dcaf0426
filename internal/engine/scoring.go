package engine

import (
	"sort"

	"github.com/KirkDiggler/yatzy/internal/models"
)

// CalculateScore returns what the dice are worth in a category. It is pure
// and total: unknown categories and unrolled dice score 0 where no rule
// matches.
func CalculateScore(category models.Category, dice models.Dice) int {
	counts := dice.Counts()
	sum := dice.Sum()

	if face := category.Face(); face != 0 {
		return counts[face] * face
	}

	switch category {
	case models.CategoryOnePair:
		return highestOfAKind(counts, 2) * 2

	case models.CategoryTwoPairs:
		var pairs []int
		for face := models.DiceSides; face >= 1; face-- {
			if counts[face] >= 2 {
				pairs = append(pairs, face)
			}
		}
		if len(pairs) >= 2 {
			return pairs[0]*2 + pairs[1]*2
		}
		return 0

	case models.CategoryThreeKind:
		return highestOfAKind(counts, 3) * 3

	case models.CategoryFourKind:
		return highestOfAKind(counts, 4) * 4

	case models.CategorySmallStraight:
		if isRun(dice, 1) {
			return models.SmallStraightScore
		}
		return 0

	case models.CategoryLargeStraight:
		if isRun(dice, 2) {
			return models.LargeStraightScore
		}
		return 0

	case models.CategoryFullHouse:
		hasThree, hasTwo := false, false
		for face := 1; face <= models.DiceSides; face++ {
			switch counts[face] {
			case 3:
				hasThree = true
			case 2:
				hasTwo = true
			}
		}
		if hasThree && hasTwo {
			return sum
		}
		return 0

	case models.CategoryChance:
		return sum

	case models.CategoryYatzy:
		for face := 1; face <= models.DiceSides; face++ {
			if counts[face] == models.NumDice {
				return models.YatzyScore
			}
		}
		return 0
	}

	return 0
}

// highestOfAKind scans faces from six down and returns the first face
// showing at least n times, or 0.
func highestOfAKind(counts [models.DiceSides + 1]int, n int) int {
	for face := models.DiceSides; face >= 1; face-- {
		if counts[face] >= n {
			return face
		}
	}
	return 0
}

// isRun reports whether the sorted dice are exactly start, start+1, ... start+4
func isRun(dice models.Dice, start int) bool {
	sorted := dice
	sort.Ints(sorted[:])
	for i, v := range sorted {
		if v != start+i {
			return false
		}
	}
	return true
}
