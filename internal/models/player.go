package models

import (
	"time"
)

// Player represents a Discord user who plays Yatzy
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// CurrentGameID is the ID of the game the player is currently in
	CurrentGameID string

	// LastMode is the rule mode the player picked most recently
	LastMode ModeName

	// UpdatedAt is when the player record was last written
	UpdatedAt time.Time
}
