package engine

import (
	"testing"

	"github.com/KirkDiggler/yatzy/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		dice     models.Dice
		want     int
	}{
		{"ones counts only ones", models.CategoryOnes, models.Dice{1, 1, 2, 3, 1}, 3},
		{"twos", models.CategoryTwos, models.Dice{2, 2, 2, 2, 1}, 8},
		{"threes none", models.CategoryThrees, models.Dice{1, 2, 4, 5, 6}, 0},
		{"fours", models.CategoryFours, models.Dice{4, 1, 4, 2, 3}, 8},
		{"fives", models.CategoryFives, models.Dice{5, 5, 5, 5, 5}, 25},
		{"sixes", models.CategorySixes, models.Dice{6, 6, 6, 1, 2}, 18},

		{"one pair picks highest", models.CategoryOnePair, models.Dice{3, 3, 5, 5, 1}, 10},
		{"one pair none", models.CategoryOnePair, models.Dice{1, 2, 3, 4, 6}, 0},
		{"one pair from five of a kind", models.CategoryOnePair, models.Dice{6, 6, 6, 6, 6}, 12},

		{"two pairs", models.CategoryTwoPairs, models.Dice{3, 3, 5, 5, 1}, 16},
		{"two pairs from full house", models.CategoryTwoPairs, models.Dice{6, 6, 6, 4, 4}, 20},
		{"two pairs low", models.CategoryTwoPairs, models.Dice{1, 1, 2, 2, 2}, 6},
		{"two pairs needs distinct faces", models.CategoryTwoPairs, models.Dice{2, 2, 2, 2, 5}, 0},
		{"two pairs single pair", models.CategoryTwoPairs, models.Dice{2, 2, 3, 4, 5}, 0},

		{"three of a kind", models.CategoryThreeKind, models.Dice{4, 4, 4, 2, 2}, 12},
		{"three of a kind none", models.CategoryThreeKind, models.Dice{4, 4, 1, 2, 3}, 0},
		{"three of a kind from five", models.CategoryThreeKind, models.Dice{5, 5, 5, 5, 5}, 15},

		{"four of a kind", models.CategoryFourKind, models.Dice{2, 2, 2, 2, 6}, 8},
		{"four of a kind from five", models.CategoryFourKind, models.Dice{6, 6, 6, 6, 6}, 24},
		{"four of a kind none", models.CategoryFourKind, models.Dice{6, 6, 6, 1, 1}, 0},

		{"small straight", models.CategorySmallStraight, models.Dice{1, 2, 3, 4, 5}, 15},
		{"small straight unordered", models.CategorySmallStraight, models.Dice{5, 4, 3, 2, 1}, 15},
		{"small straight with a duplicate", models.CategorySmallStraight, models.Dice{1, 1, 3, 4, 5}, 0},
		{"small straight rejects large", models.CategorySmallStraight, models.Dice{2, 3, 4, 5, 6}, 0},

		{"large straight", models.CategoryLargeStraight, models.Dice{2, 3, 4, 5, 6}, 20},
		{"large straight unordered", models.CategoryLargeStraight, models.Dice{6, 2, 5, 3, 4}, 20},
		{"large straight rejects small", models.CategoryLargeStraight, models.Dice{1, 2, 3, 4, 5}, 0},

		{"full house", models.CategoryFullHouse, models.Dice{2, 2, 3, 3, 3}, 13},
		{"full house rejects five of a kind", models.CategoryFullHouse, models.Dice{1, 1, 1, 1, 1}, 0},
		{"full house rejects two pairs", models.CategoryFullHouse, models.Dice{1, 1, 2, 2, 3}, 0},
		{"full house rejects four of a kind", models.CategoryFullHouse, models.Dice{4, 4, 4, 4, 2}, 0},

		{"chance", models.CategoryChance, models.Dice{1, 2, 3, 4, 6}, 16},
		{"chance max", models.CategoryChance, models.Dice{6, 6, 6, 6, 6}, 30},

		{"yatzy", models.CategoryYatzy, models.Dice{6, 6, 6, 6, 6}, 50},
		{"yatzy ones", models.CategoryYatzy, models.Dice{1, 1, 1, 1, 1}, 50},
		{"yatzy none", models.CategoryYatzy, models.Dice{6, 6, 6, 6, 5}, 0},

		{"unknown category", models.Category("bogus"), models.Dice{6, 6, 6, 6, 6}, 0},
		{"unrolled chance", models.CategoryChance, models.Dice{}, 0},
		{"unrolled yatzy", models.CategoryYatzy, models.Dice{}, 0},
		{"unrolled pair", models.CategoryOnePair, models.Dice{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateScore(tt.category, tt.dice))
		})
	}
}

func TestCalculateScore_DoesNotReorderDice(t *testing.T) {
	dice := models.Dice{5, 4, 3, 2, 1}

	CalculateScore(models.CategorySmallStraight, dice)

	assert.Equal(t, models.Dice{5, 4, 3, 2, 1}, dice)
}

// forEachDice calls fn with every one of the 7776 possible throws
func forEachDice(fn func(models.Dice)) {
	var d models.Dice
	var walk func(pos int)
	walk = func(pos int) {
		if pos == models.NumDice {
			fn(d)
			return
		}
		for face := 1; face <= models.DiceSides; face++ {
			d[pos] = face
			walk(pos + 1)
		}
	}
	walk(0)
}

func TestCalculateScore_AllThrows(t *testing.T) {
	forEachDice(func(d models.Dice) {
		upper := 0
		for _, c := range models.UpperCategories {
			upper += CalculateScore(c, d)
		}
		// Every die lands in exactly one upper box
		assert.Equal(t, d.Sum(), upper)
		assert.LessOrEqual(t, upper, 30)

		for _, c := range models.AllCategories {
			first := CalculateScore(c, d)
			assert.GreaterOrEqual(t, first, 0)
			assert.Equal(t, first, CalculateScore(c, d), "category %s dice %v", c, d)
		}

		if CalculateScore(models.CategoryYatzy, d) == models.YatzyScore {
			assert.True(t, d.AllSame())
			assert.Zero(t, CalculateScore(models.CategoryFullHouse, d))
		}
	})
}
