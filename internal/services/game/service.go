package game

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/KirkDiggler/yatzy/internal/common/clock"
	"github.com/KirkDiggler/yatzy/internal/common/uuid"
	"github.com/KirkDiggler/yatzy/internal/dice"
	"github.com/KirkDiggler/yatzy/internal/engine"
	"github.com/KirkDiggler/yatzy/internal/models"
	gameRepo "github.com/KirkDiggler/yatzy/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/yatzy/internal/repositories/player"
	statsRepo "github.com/KirkDiggler/yatzy/internal/repositories/stats"
	"github.com/KirkDiggler/yatzy/internal/stats"
	"github.com/KirkDiggler/yatzy/internal/telemetry"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	playerRepo    playerRepo.Repository
	statsRepo     statsRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	tracer        trace.Tracer

	// striped by id; a player lock is always taken before a game lock
	playerLocks [lockStripes]sync.Mutex
	gameLocks   [lockStripes]sync.Mutex
}

const lockStripes = 64

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		playerRepo:    cfg.PlayerRepo,
		statsRepo:     cfg.StatsRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		tracer:        tracer,
	}, nil
}

// CreateGame starts a new game for a player. A game still in progress must
// be abandoned first.
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	ctx, span := s.tracer.Start(ctx, "game.CreateGame")
	defer span.End()

	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	unlockPlayer := s.lockPlayer(input.PlayerID)
	defer unlockPlayer()

	player, err := s.loadOrNewPlayer(ctx, input.PlayerID, input.PlayerName)
	if err != nil {
		return nil, recordErr(span, err)
	}

	if player.CurrentGameID != "" {
		existing, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
			GameID: player.CurrentGameID,
		})
		if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, recordErr(span, fmt.Errorf("failed to get current game: %w", err))
		}
		if existing != nil && !existing.Status.IsComplete() {
			return nil, recordErr(span, ErrGameAlreadyExists)
		}
	}

	modeName := input.Mode
	if modeName == "" {
		modeName = player.LastMode
	}
	if modeName == "" {
		modeName = models.ModeStandard
	}

	mode, err := models.ModeFromName(modeName)
	if err != nil {
		return nil, recordErr(span, fmt.Errorf("%w: %s", ErrInvalidMode, modeName))
	}

	e, err := engine.New(&engine.Config{
		Mode:       mode,
		DiceRoller: s.diceRoller,
	})
	if err != nil {
		return nil, recordErr(span, err)
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:        s.uuidGenerator.NewUUID(),
		PlayerID:  input.PlayerID,
		ChannelID: input.ChannelID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.Snapshot(game)

	span.SetAttributes(
		attribute.String("game.id", game.ID),
		attribute.String("game.mode", string(game.Mode)),
	)

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, recordErr(span, fmt.Errorf("failed to save game: %w", err))
	}

	if input.PlayerName != "" {
		player.Name = input.PlayerName
	}
	player.CurrentGameID = game.ID
	player.LastMode = game.Mode
	player.UpdatedAt = now

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		return nil, recordErr(span, fmt.Errorf("failed to save player: %w", err))
	}

	log.Info().
		Str("game_id", game.ID).
		Str("player_id", game.PlayerID).
		Str("mode", string(game.Mode)).
		Msg("game created")

	return &CreateGameOutput{
		Game:  game,
		Sheet: buildSheet(e),
	}, nil
}

// GetGame returns a game and its scorecard
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	ctx, span := s.tracer.Start(ctx, "game.GetGame")
	defer span.End()

	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, recordErr(span, err)
	}

	e, err := s.restore(game)
	if err != nil {
		return nil, recordErr(span, err)
	}

	return &GetGameOutput{
		Game:  game,
		Sheet: buildSheet(e),
	}, nil
}

// GetCurrentGame returns the game a player last created
func (s *service) GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetGameOutput, error) {
	ctx, span := s.tracer.Start(ctx, "game.GetCurrentGame")
	defer span.End()

	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrNoCurrentGame
		}
		return nil, recordErr(span, fmt.Errorf("failed to get player: %w", err))
	}

	if player.CurrentGameID == "" {
		return nil, ErrNoCurrentGame
	}

	output, err := s.GetGame(ctx, &GetGameInput{GameID: player.CurrentGameID})
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil, ErrNoCurrentGame
		}
		return nil, err
	}

	return output, nil
}

// NewGame throws away the state of a session and starts over, optionally
// in another mode
func (s *service) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	ctx, span := s.tracer.Start(ctx, "game.NewGame")
	defer span.End()

	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	var mode models.RuleMode
	if input.Mode != "" {
		m, err := models.ModeFromName(input.Mode)
		if err != nil {
			return nil, recordErr(span, fmt.Errorf("%w: %s", ErrInvalidMode, input.Mode))
		}
		mode = m
	}

	game, e, err := s.applyMove(ctx, input.GameID, input.PlayerID, func(e *engine.Engine) bool {
		if input.Mode == "" {
			mode = e.Mode()
		}
		e.NewGame(mode)
		return true
	})
	if err != nil {
		return nil, recordErr(span, err)
	}

	if input.Mode != "" {
		if err := s.rememberMode(ctx, input.PlayerID, game.Mode); err != nil {
			return nil, recordErr(span, err)
		}
	}

	return &NewGameOutput{
		Game:  game,
		Sheet: buildSheet(e),
	}, nil
}

// RollDice throws the dice. A throw the rules do not allow is reported with
// Accepted=false and changes nothing.
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	ctx, span := s.tracer.Start(ctx, "game.RollDice")
	defer span.End()

	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	var result *engine.RollResult
	game, e, err := s.applyMove(ctx, input.GameID, input.PlayerID, func(e *engine.Engine) bool {
		result = e.Roll()
		return result.Accepted
	})
	if err != nil {
		return nil, recordErr(span, err)
	}

	span.SetAttributes(
		attribute.Bool("roll.accepted", result.Accepted),
		attribute.Int("roll.rolls_left", result.RollsLeft),
	)

	return &RollDiceOutput{
		Game:   game,
		Sheet:  buildSheet(e),
		Result: result,
	}, nil
}

// ToggleHold keeps or releases a die between throws
func (s *service) ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error) {
	ctx, span := s.tracer.Start(ctx, "game.ToggleHold")
	defer span.End()

	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	var accepted bool
	game, e, err := s.applyMove(ctx, input.GameID, input.PlayerID, func(e *engine.Engine) bool {
		accepted = e.ToggleHold(input.Index)
		return accepted
	})
	if err != nil {
		return nil, recordErr(span, err)
	}

	return &ToggleHoldOutput{
		Accepted: accepted,
		Game:     game,
		Sheet:    buildSheet(e),
	}, nil
}

// ScoreCategory commits the dice to a category. When that fills the last
// box the player's stats are updated; a stats failure is logged and
// returned on the output but does not fail the move.
func (s *service) ScoreCategory(ctx context.Context, input *ScoreCategoryInput) (*ScoreCategoryOutput, error) {
	ctx, span := s.tracer.Start(ctx, "game.ScoreCategory")
	defer span.End()

	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	if !input.Category.Valid() {
		return nil, recordErr(span, fmt.Errorf("%w: %s", ErrInvalidCategory, input.Category))
	}

	var result *engine.ScoreResult
	game, e, err := s.applyMove(ctx, input.GameID, input.PlayerID, func(e *engine.Engine) bool {
		result = e.ScoreCategory(input.Category)
		return result.Accepted
	})
	if err != nil {
		return nil, recordErr(span, err)
	}

	span.SetAttributes(
		attribute.String("score.category", string(input.Category)),
		attribute.Bool("score.accepted", result.Accepted),
		attribute.Int("score.value", result.Score),
	)

	output := &ScoreCategoryOutput{
		Game:   game,
		Sheet:  buildSheet(e),
		Result: result,
	}

	if !result.GameComplete {
		return output, nil
	}

	total := e.TotalScore()
	log.Info().
		Str("game_id", game.ID).
		Str("player_id", game.PlayerID).
		Int("total", total).
		Msg("game complete")

	updated, err := s.recordStats(ctx, game.PlayerID, total)
	if err != nil {
		log.Error().Err(err).
			Str("game_id", game.ID).
			Str("player_id", game.PlayerID).
			Msg("failed to update stats")
		span.RecordError(err)
		output.StatsErr = err
		return output, nil
	}

	output.Stats = updated
	return output, nil
}

// AbandonGame deletes a game and clears it from its player
func (s *service) AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error) {
	ctx, span := s.tracer.Start(ctx, "game.AbandonGame")
	defer span.End()

	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	unlockPlayer := s.lockPlayer(input.PlayerID)
	defer unlockPlayer()

	unlockGame := s.lockGame(input.GameID)
	defer unlockGame()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, recordErr(span, err)
	}

	if game.PlayerID != input.PlayerID {
		return nil, recordErr(span, ErrNotGameOwner)
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: input.GameID}); err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, recordErr(span, fmt.Errorf("failed to delete game: %w", err))
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: input.PlayerID})
	if err != nil && !errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return nil, recordErr(span, fmt.Errorf("failed to get player: %w", err))
	}

	if player != nil && player.CurrentGameID == input.GameID {
		player.CurrentGameID = ""
		player.UpdatedAt = s.clock.Now()
		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
			return nil, recordErr(span, fmt.Errorf("failed to save player: %w", err))
		}
	}

	log.Info().
		Str("game_id", input.GameID).
		Str("player_id", input.PlayerID).
		Msg("game abandoned")

	return &AbandonGameOutput{
		Success: true,
	}, nil
}

// UpdateGameMessage updates the Discord message ID for a game
func (s *service) UpdateGameMessage(ctx context.Context, input *UpdateGameMessageInput) (*UpdateGameMessageOutput, error) {
	ctx, span := s.tracer.Start(ctx, "game.UpdateGameMessage")
	defer span.End()

	if input == nil || input.GameID == "" || input.MessageID == "" {
		return nil, ErrInvalidInput
	}

	unlock := s.lockGame(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, recordErr(span, err)
	}

	game.MessageID = input.MessageID
	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, recordErr(span, fmt.Errorf("failed to save game: %w", err))
	}

	return &UpdateGameMessageOutput{
		Success: true,
	}, nil
}

// GetStats returns a player's statistics
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	ctx, span := s.tracer.Start(ctx, "game.GetStats")
	defer span.End()

	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	st, err := s.statsRepo.LoadStats(ctx, &statsRepo.LoadStatsInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, recordErr(span, fmt.Errorf("failed to load stats: %w", err))
	}

	return &GetStatsOutput{
		Stats: st,
	}, nil
}

// GetHighScores returns the best players with their display names
func (s *service) GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error) {
	ctx, span := s.tracer.Start(ctx, "game.GetHighScores")
	defer span.End()

	limit := 0
	if input != nil {
		limit = input.Limit
	}

	table, err := s.statsRepo.GetHighScores(ctx, &statsRepo.GetHighScoresInput{Limit: limit})
	if err != nil {
		return nil, recordErr(span, fmt.Errorf("failed to get high scores: %w", err))
	}

	entries := make([]HighScoreEntry, 0, len(table.Entries))
	for _, entry := range table.Entries {
		name := entry.PlayerID
		player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: entry.PlayerID})
		if err != nil && !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, recordErr(span, fmt.Errorf("failed to get player: %w", err))
		}
		if player != nil && player.Name != "" {
			name = player.Name
		}

		entries = append(entries, HighScoreEntry{
			PlayerID:   entry.PlayerID,
			PlayerName: name,
			HighScore:  entry.HighScore,
		})
	}

	return &GetHighScoresOutput{
		Entries: entries,
	}, nil
}

// applyMove loads a game owned by playerID, runs move against its engine
// and saves the result when move reports a change
func (s *service) applyMove(ctx context.Context, gameID, playerID string, move func(e *engine.Engine) bool) (*models.Game, *engine.Engine, error) {
	unlock := s.lockGame(gameID)
	defer unlock()

	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	if game.PlayerID != playerID {
		return nil, nil, ErrNotGameOwner
	}

	e, err := s.restore(game)
	if err != nil {
		return nil, nil, err
	}

	if !move(e) {
		return game, e, nil
	}

	e.Snapshot(game)
	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, nil, fmt.Errorf("failed to save game: %w", err)
	}

	return game, e, nil
}

func (s *service) loadGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

func (s *service) restore(game *models.Game) (*engine.Engine, error) {
	return engine.Restore(&engine.Config{DiceRoller: s.diceRoller}, game)
}

func (s *service) loadOrNewPlayer(ctx context.Context, playerID, name string) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: playerID})
	if err == nil {
		return player, nil
	}

	if !errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &models.Player{
		ID:   playerID,
		Name: name,
	}, nil
}

func (s *service) rememberMode(ctx context.Context, playerID string, mode models.ModeName) error {
	unlock := s.lockPlayer(playerID)
	defer unlock()

	player, err := s.loadOrNewPlayer(ctx, playerID, "")
	if err != nil {
		return err
	}

	player.LastMode = mode
	player.UpdatedAt = s.clock.Now()

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (s *service) recordStats(ctx context.Context, playerID string, total int) (*models.Stats, error) {
	prior, err := s.statsRepo.LoadStats(ctx, &statsRepo.LoadStatsInput{PlayerID: playerID})
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	updated := stats.Update(*prior, s.clock.Now(), total)
	updated.PlayerID = playerID

	if err := s.statsRepo.SaveStats(ctx, &statsRepo.SaveStatsInput{Stats: &updated}); err != nil {
		return nil, fmt.Errorf("failed to save stats: %w", err)
	}

	return &updated, nil
}

func (s *service) lockPlayer(playerID string) func() {
	mu := &s.playerLocks[stripe(playerID)]
	mu.Lock()
	return mu.Unlock
}

func (s *service) lockGame(gameID string) func() {
	mu := &s.gameLocks[stripe(gameID)]
	mu.Lock()
	return mu.Unlock
}

func stripe(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return h.Sum32() % lockStripes
}

func recordErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
