package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/yatzy/internal/common/clock"
	"github.com/KirkDiggler/yatzy/internal/common/uuid"
	"github.com/KirkDiggler/yatzy/internal/config"
	"github.com/KirkDiggler/yatzy/internal/dice"
	"github.com/KirkDiggler/yatzy/internal/handlers/discord"
	"github.com/KirkDiggler/yatzy/internal/repositories/game"
	"github.com/KirkDiggler/yatzy/internal/repositories/player"
	"github.com/KirkDiggler/yatzy/internal/repositories/stats"
	gameService "github.com/KirkDiggler/yatzy/internal/services/game"
	"github.com/KirkDiggler/yatzy/internal/services/messaging"
	"github.com/KirkDiggler/yatzy/internal/telemetry"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("bot exited")
	}
}

func run() error {
	// A missing .env is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	ctx := context.Background()

	tracer := telemetry.NoopTracer()
	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			return fmt.Errorf("failed to set up telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Msg("failed to shut down telemetry")
			}
		}()
		tracer = telemetry.Tracer("game")
	}

	bot, err := newBot(ctx, cfg, tracer)
	if err != nil {
		return fmt.Errorf("failed to set up bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("bot has been shut down")
	return nil
}

func newBot(ctx context.Context, cfg *config.Config, tracer trace.Tracer) (*discord.Bot, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient:  redisClient,
		CompletedTTL: cfg.CompletedGameTTL,
	})
	if err != nil {
		return nil, err
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return nil, err
	}

	statsRepo, err := stats.NewRedis(&stats.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return nil, err
	}

	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:      gameRepo,
		PlayerRepo:    playerRepo,
		StatsRepo:     statsRepo,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		Clock:         clock.New(cfg.Location()),
		UUIDGenerator: uuid.New(),
		Tracer:        tracer,
	})
	if err != nil {
		return nil, err
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return nil, err
	}

	return discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
	})
}
