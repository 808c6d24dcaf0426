package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/yatzy/internal/repositories/stats Repository

import (
	"context"

	"github.com/KirkDiggler/yatzy/internal/models"
)

// Repository defines the interface for player statistics persistence
type Repository interface {
	// LoadStats retrieves a player's stats, zero valued if none were saved
	LoadStats(ctx context.Context, input *LoadStatsInput) (*models.Stats, error)

	// SaveStats persists a player's stats
	SaveStats(ctx context.Context, input *SaveStatsInput) error

	// GetHighScores returns the best players ordered by high score
	GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error)
}
