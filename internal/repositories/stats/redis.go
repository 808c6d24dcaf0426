package stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/yatzy/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	statsKeyPrefix = "yatzy:stats:"
	highScoresKey  = "yatzy:highscores"

	// Hash fields
	fieldHighScore    = "high_score"
	fieldGamesPlayed  = "games_played"
	fieldStreak       = "streak"
	fieldLastPlayDate = "last_play_date"

	// DefaultHighScoreLimit is the table size when no limit is given
	DefaultHighScoreLimit = 10
)

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed stats repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// LoadStats reads a player's stats hash. A player without saved stats gets
// zero values rather than an error.
func (r *redisRepository) LoadStats(ctx context.Context, input *LoadStatsInput) (*models.Stats, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, statsKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	stats := &models.Stats{
		PlayerID:     input.PlayerID,
		LastPlayDate: fields[fieldLastPlayDate],
	}

	for field, dst := range map[string]*int{
		fieldHighScore:   &stats.HighScore,
		fieldGamesPlayed: &stats.GamesPlayed,
		fieldStreak:      &stats.Streak,
	} {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stats field %s: %w", field, err)
		}
		*dst = v
	}

	return stats, nil
}

// SaveStats writes a player's stats hash and their high score entry
func (r *redisRepository) SaveStats(ctx context.Context, input *SaveStatsInput) error {
	if input == nil || input.Stats == nil {
		return errors.New("input and stats cannot be nil")
	}

	stats := input.Stats
	if stats.PlayerID == "" {
		return errors.New("player ID cannot be empty")
	}

	pipe := r.client.TxPipeline()

	pipe.HSet(ctx, statsKeyPrefix+stats.PlayerID,
		fieldHighScore, stats.HighScore,
		fieldGamesPlayed, stats.GamesPlayed,
		fieldStreak, stats.Streak,
		fieldLastPlayDate, stats.LastPlayDate,
	)

	pipe.ZAdd(ctx, highScoresKey, redis.Z{
		Score:  float64(stats.HighScore),
		Member: stats.PlayerID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	return nil
}

// GetHighScores reads the top of the high score table
func (r *redisRepository) GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error) {
	limit := DefaultHighScoreLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	entries, err := r.client.ZRevRangeWithScores(ctx, highScoresKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get high scores: %w", err)
	}

	output := &GetHighScoresOutput{
		Entries: make([]HighScoreEntry, 0, len(entries)),
	}
	for _, z := range entries {
		playerID, ok := z.Member.(string)
		if !ok {
			continue
		}
		output.Entries = append(output.Entries, HighScoreEntry{
			PlayerID:  playerID,
			HighScore: int(z.Score),
		})
	}

	return output, nil
}
