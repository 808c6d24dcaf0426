package models

// DateLayout is the calendar date format used for LastPlayDate
const DateLayout = "2006-01-02"

// Stats are a player's results across games
type Stats struct {
	// PlayerID is the Discord user ID the stats belong to
	PlayerID string

	// HighScore is the best final total
	HighScore int

	// GamesPlayed is the number of completed games
	GamesPlayed int

	// Streak is the number of consecutive calendar days with a completed game
	Streak int

	// LastPlayDate is the date of the last completed game, empty if none
	LastPlayDate string
}
