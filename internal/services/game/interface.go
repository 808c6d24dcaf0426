package game

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame starts a new game session for a player
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame returns a game and its scorecard
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetCurrentGame returns the game a player is currently playing
	GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetGameOutput, error)

	// NewGame resets an existing session into a fresh game
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// RollDice throws the dice for the current turn
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// ToggleHold keeps or releases a die between throws
	ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error)

	// ScoreCategory writes the dice into a category and ends the turn
	ScoreCategory(ctx context.Context, input *ScoreCategoryInput) (*ScoreCategoryOutput, error)

	// AbandonGame deletes a game session
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)

	// UpdateGameMessage records the Discord message showing the game
	UpdateGameMessage(ctx context.Context, input *UpdateGameMessageInput) (*UpdateGameMessageOutput, error)

	// GetStats returns a player's statistics
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// GetHighScores returns the high score table
	GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error)
}
