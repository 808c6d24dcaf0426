package models

import (
	"time"
)

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	// GameStatusNotStarted indicates no dice have been rolled yet
	GameStatusNotStarted GameStatus = "not_started"

	// GameStatusInProgress indicates the game has started and boxes remain open
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusComplete indicates every category has been scored
	GameStatusComplete GameStatus = "complete"
)

// IsComplete returns true if the game is over
func (s GameStatus) IsComplete() bool {
	return s == GameStatusComplete
}

// Game is the stored state of a single-player game session
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// PlayerID is the Discord user ID of the player who owns the game
	PlayerID string

	// ChannelID is the Discord channel where the game was started
	ChannelID string

	// MessageID is the ID of the scorecard message in Discord
	MessageID string

	// Mode is the rule mode the game is played with
	Mode ModeName

	// Dice are the current face values
	Dice Dice

	// Held marks dice kept for the next re-roll
	Held HoldMask

	// Scores maps each scored category to its value
	Scores map[Category]int

	// YatzyCount counts qualifying yatzy events in unlimited-yatzy mode
	YatzyCount int

	// Round is the number of turns that have been started
	Round int

	// RollsLeft is the number of re-rolls left in the current turn
	RollsLeft int

	// Rolled is true once the dice have been thrown this turn
	Rolled bool

	// Status is the lifecycle state at the time the game was saved
	Status GameStatus

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}
