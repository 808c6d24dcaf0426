package stats

import "github.com/KirkDiggler/yatzy/internal/models"

// LoadStatsInput contains parameters for loading stats
type LoadStatsInput struct {
	PlayerID string
}

// SaveStatsInput contains parameters for saving stats
type SaveStatsInput struct {
	Stats *models.Stats
}

// GetHighScoresInput contains parameters for reading the high score table
type GetHighScoresInput struct {
	// Limit caps the number of entries; zero means DefaultHighScoreLimit
	Limit int
}

// HighScoreEntry is one row of the high score table
type HighScoreEntry struct {
	PlayerID  string
	HighScore int
}

// GetHighScoresOutput contains the high score table
type GetHighScoresOutput struct {
	Entries []HighScoreEntry
}
