package game

import (
	"github.com/KirkDiggler/yatzy/internal/common/clock"
	"github.com/KirkDiggler/yatzy/internal/common/uuid"
	"github.com/KirkDiggler/yatzy/internal/dice"
	"github.com/KirkDiggler/yatzy/internal/engine"
	"github.com/KirkDiggler/yatzy/internal/models"
	gameRepo "github.com/KirkDiggler/yatzy/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/yatzy/internal/repositories/player"
	statsRepo "github.com/KirkDiggler/yatzy/internal/repositories/stats"
	"go.opentelemetry.io/otel/trace"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	StatsRepo  statsRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Tracer is optional; a noop tracer is used when nil
	Tracer trace.Tracer
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// ChannelID is the Discord channel the game is played in
	ChannelID string

	// Mode is the rule mode; empty means the player's last mode, then standard
	Mode models.ModeName
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game  *models.Game
	Sheet *Sheet
}

// GetGameInput defines the input for retrieving a game by ID
type GetGameInput struct {
	GameID string
}

// GetCurrentGameInput defines the input for retrieving a player's game
type GetCurrentGameInput struct {
	PlayerID string
}

// GetGameOutput contains a game and its scorecard
type GetGameOutput struct {
	Game  *models.Game
	Sheet *Sheet
}

// NewGameInput contains parameters for restarting a session
type NewGameInput struct {
	GameID   string
	PlayerID string

	// Mode is the rule mode of the new game; empty keeps the current one
	Mode models.ModeName
}

// NewGameOutput contains the restarted game
type NewGameOutput struct {
	Game  *models.Game
	Sheet *Sheet
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
	GameID   string
	PlayerID string
}

// RollDiceOutput contains the result of rolling dice
type RollDiceOutput struct {
	Game   *models.Game
	Sheet  *Sheet
	Result *engine.RollResult
}

// ToggleHoldInput contains parameters for holding a die
type ToggleHoldInput struct {
	GameID   string
	PlayerID string

	// Index is the die position, 0 through 4
	Index int
}

// ToggleHoldOutput contains the result of holding a die
type ToggleHoldOutput struct {
	// Accepted is false when holding was not allowed
	Accepted bool

	Game  *models.Game
	Sheet *Sheet
}

// ScoreCategoryInput contains parameters for scoring a category
type ScoreCategoryInput struct {
	GameID   string
	PlayerID string
	Category models.Category
}

// ScoreCategoryOutput contains the result of scoring a category
type ScoreCategoryOutput struct {
	Game   *models.Game
	Sheet  *Sheet
	Result *engine.ScoreResult

	// Stats are the player's updated stats when this commit ended the game
	Stats *models.Stats

	// StatsErr is set when the stats could not be updated. The move itself
	// still succeeded.
	StatsErr error
}

// AbandonGameInput contains parameters for abandoning a game
type AbandonGameInput struct {
	GameID   string
	PlayerID string
}

// AbandonGameOutput contains the result of abandoning a game
type AbandonGameOutput struct {
	Success bool
}

// UpdateGameMessageInput contains parameters for updating a game's message ID
type UpdateGameMessageInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// MessageID is the Discord message ID to associate with the game
	MessageID string
}

// UpdateGameMessageOutput contains the result of updating a game's message ID
type UpdateGameMessageOutput struct {
	// Success indicates if the message ID was successfully updated
	Success bool
}

// GetStatsInput contains parameters for retrieving stats
type GetStatsInput struct {
	PlayerID string
}

// GetStatsOutput contains a player's stats
type GetStatsOutput struct {
	Stats *models.Stats
}

// GetHighScoresInput contains parameters for retrieving the high score table
type GetHighScoresInput struct {
	Limit int
}

// HighScoreEntry is one row of the high score table
type HighScoreEntry struct {
	PlayerID   string
	PlayerName string
	HighScore  int
}

// GetHighScoresOutput contains the high score table
type GetHighScoresOutput struct {
	Entries []HighScoreEntry
}
