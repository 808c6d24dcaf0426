package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/yatzy/internal/models"
	"github.com/KirkDiggler/yatzy/internal/services/game"
	"github.com/KirkDiggler/yatzy/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Subcommand and option names of /yatzy
const (
	subcommandStart       = "start"
	subcommandStats       = "stats"
	subcommandLeaderboard = "leaderboard"
	subcommandAbandon     = "abandon"

	optionMode = "mode"
)

// YatzyCommand handles the /yatzy command
type YatzyCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
}

// NewYatzyCommand creates a new yatzy command handler
func NewYatzyCommand(gameService game.Service, messagingService messaging.Service) *YatzyCommand {
	modeChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.ModeNames))
	for _, name := range models.ModeNames {
		modeChoices = append(modeChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name.DisplayName(),
			Value: string(name),
		})
	}

	return &YatzyCommand{
		BaseCommand: BaseCommand{
			Name:        "yatzy",
			Description: "Roll the bones against the Entity",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStart,
					Description: "Start a new game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionMode,
							Description: "Rule mode, defaults to the last one you played",
							Required:    false,
							Choices:     modeChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStats,
					Description: "Show your high score, games played and streak",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandLeaderboard,
					Description: "Show the high score table",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandAbandon,
					Description: "Abandon your current game",
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the yatzy command
func (c *YatzyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	userID, username := interactionUser(i)
	sub := data.Options[0]

	switch sub.Name {
	case subcommandStart:
		return c.handleStart(ctx, s, i, userID, username, modeOption(sub))
	case subcommandStats:
		return c.handleStats(ctx, s, i, userID, username)
	case subcommandLeaderboard:
		return c.handleLeaderboard(ctx, s, i)
	case subcommandAbandon:
		return c.handleAbandon(ctx, s, i, userID)
	default:
		return errors.New("unknown subcommand")
	}
}

// modeOption returns the mode picked for the start subcommand, if any
func modeOption(sub *discordgo.ApplicationCommandInteractionDataOption) models.ModeName {
	for _, opt := range sub.Options {
		if opt.Name == optionMode {
			return models.ModeName(opt.StringValue())
		}
	}
	return ""
}

// handleStart creates a game and posts its board
func (c *YatzyCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string, mode models.ModeName) error {
	output, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		PlayerID:   userID,
		PlayerName: username,
		ChannelID:  i.ChannelID,
		Mode:       mode,
	})
	if err != nil {
		errType := errorTypeFor(err)
		if errType == messaging.ErrorTypeUnknownError {
			log.Error().Err(err).Str("player_id", userID).Msg("error creating game")
		}
		return respondWithErrorType(s, i, c.messagingService, errType)
	}

	brd, err := buildBoard(ctx, c.messagingService, username, output.Sheet, "The trial begins. Roll the bones.")
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to draw the game: %v", err))
	}

	if err := respondWithBoard(s, i, brd); err != nil {
		return err
	}

	// Remember the message so other players cannot drive this board
	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Warn().Err(err).Str("game_id", output.Game.ID).Msg("failed to fetch game message")
		return nil
	}

	if _, err := c.gameService.UpdateGameMessage(ctx, &game.UpdateGameMessageInput{
		GameID:    output.Game.ID,
		MessageID: msg.ID,
	}); err != nil {
		log.Warn().Err(err).Str("game_id", output.Game.ID).Msg("failed to update game message")
	}

	return nil
}

// handleStats shows the caller's stats
func (c *YatzyCommand) handleStats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	output, err := c.gameService.GetStats(ctx, &game.GetStatsInput{PlayerID: userID})
	if err != nil {
		log.Error().Err(err).Str("player_id", userID).Msg("error getting stats")
		return respondWithErrorType(s, i, c.messagingService, messaging.ErrorTypeUnknownError)
	}

	return RespondWithEphemeralEmbed(s, i, renderStatsEmbed(username, output.Stats))
}

// handleLeaderboard shows the high score table
func (c *YatzyCommand) handleLeaderboard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.gameService.GetHighScores(ctx, &game.GetHighScoresInput{})
	if err != nil {
		log.Error().Err(err).Msg("error getting high scores")
		return respondWithErrorType(s, i, c.messagingService, messaging.ErrorTypeUnknownError)
	}

	return RespondWithEmbed(s, i, renderHighScoresEmbed(output.Entries))
}

// handleAbandon deletes the caller's current game
func (c *YatzyCommand) handleAbandon(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	current, err := c.gameService.GetCurrentGame(ctx, &game.GetCurrentGameInput{PlayerID: userID})
	if err != nil {
		return respondWithErrorType(s, i, c.messagingService, errorTypeFor(err))
	}

	if _, err := c.gameService.AbandonGame(ctx, &game.AbandonGameInput{
		GameID:   current.Game.ID,
		PlayerID: userID,
	}); err != nil {
		errType := errorTypeFor(err)
		if errType == messaging.ErrorTypeUnknownError {
			log.Error().Err(err).Str("game_id", current.Game.ID).Msg("error abandoning game")
		}
		return respondWithErrorType(s, i, c.messagingService, errType)
	}

	return RespondWithEphemeralMessage(s, i, "You walked away from the trial. The Entity remembers.")
}
