package engine

import "github.com/KirkDiggler/yatzy/internal/models"

// RollResult describes what a call to Roll did. Presenters use it to decide
// which dice to animate; the engine itself has no notion of timing.
type RollResult struct {
	// Accepted is false when the roll was not allowed and nothing changed
	Accepted bool

	// FirstRoll is true when the roll started a new turn
	FirstRoll bool

	// Dice are the face values after the call
	Dice models.Dice

	// Rolled marks the positions that were re-drawn
	Rolled [models.NumDice]bool

	// RollsLeft is the number of re-rolls left in the turn
	RollsLeft int

	// Round is the turn number
	Round int

	// YatzyRolled is true when the dice show five of a kind
	YatzyRolled bool
}

// ScoreResult describes what a call to ScoreCategory did
type ScoreResult struct {
	// Accepted is false when the commit was not allowed and nothing changed
	Accepted bool

	// Category is the category that was requested
	Category models.Category

	// Score is the value written to the scorecard
	Score int

	// YatzyAchieved is true when 50 was scored in the yatzy box
	YatzyAchieved bool

	// YatzyBonusAwarded is true when the commit raised the unlimited-yatzy counter
	YatzyBonusAwarded bool

	// GameComplete is true when this commit filled the scorecard
	GameComplete bool
}
