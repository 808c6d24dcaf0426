package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/yatzy/internal/models"
	"github.com/KirkDiggler/yatzy/internal/services/game"
	"github.com/KirkDiggler/yatzy/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	gameService      game.Service
	messagingService messaging.Service
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Messaging service
	MessagingService messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		config:           cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	yatzyCmd := NewYatzyCommand(b.gameService, b.messagingService)
	if err := b.RegisterCommand(yatzyCmd); err != nil {
		return fmt.Errorf("failed to register yatzy command: %w", err)
	}

	log.Info().Msg("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Warn().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("failed to delete command")
		} else {
			log.Info().Str("command", cmdName).Str("command_id", cmdID).Msg("deleted command")
		}
	}

	return b.session.Close()
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord. Commands are registered
// for the configured guild, or globally when there is none.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	guildID := b.config.GuildID
	if guildID != "" {
		log.Info().Str("command", cmd.GetName()).Str("guild_id", guildID).Msg("registering guild command")
	} else {
		log.Info().Str("command", cmd.GetName()).Msg("registering global command")
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Info().Str("command", cmd.GetName()).Str("command_id", createdCmd.ID).Msg("registered command")

	return nil
}

// Component custom IDs
const (
	ButtonRollDice = "roll_dice"
	ButtonNewGame  = "new_game"

	// holdButtonPrefix is followed by the die index, 0 through 4
	holdButtonPrefix = "hold_"

	// Select menu custom IDs
	SelectScoreCategory = "score_category"
)

func holdButtonID(index int) string {
	return holdButtonPrefix + strconv.Itoa(index)
}

// parseHoldButton returns the die index of a hold button custom ID
func parseHoldButton(customID string) (int, bool) {
	rest, found := strings.CutPrefix(customID, holdButtonPrefix)
	if !found {
		return 0, false
	}

	index, err := strconv.Atoi(rest)
	if err != nil || index < 0 || index >= models.NumDice {
		return 0, false
	}
	return index, true
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Error().Err(err).Str("command", name).Msg("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Error().Err(err).
				Str("custom_id", i.MessageComponentData().CustomID).
				Msg("error handling component interaction")
		}
	}
}

// handleComponentInteraction handles button clicks and the category menu.
// Components always act on the clicking user's current game.
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	customID := i.MessageComponentData().CustomID
	userID, username := interactionUser(i)

	current, err := b.gameService.GetCurrentGame(ctx, &game.GetCurrentGameInput{PlayerID: userID})
	if err != nil {
		return b.respondWithServiceError(s, i, err)
	}

	owned, adopt := boardOwnership(current.Game.MessageID, i.Message, userID)
	if !owned {
		return b.respondWithErrorType(s, i, messaging.ErrorTypeNotOwner)
	}

	gameID := current.Game.ID

	if adopt {
		if _, err := b.gameService.UpdateGameMessage(ctx, &game.UpdateGameMessageInput{
			GameID:    gameID,
			MessageID: i.Message.ID,
		}); err != nil {
			log.Warn().Err(err).Str("game_id", gameID).Msg("failed to update game message")
		}
	}

	if index, ok := parseHoldButton(customID); ok {
		return b.handleHoldButton(ctx, s, i, gameID, userID, username, index)
	}

	switch customID {
	case ButtonRollDice:
		return b.handleRollDiceButton(ctx, s, i, gameID, userID, username)
	case ButtonNewGame:
		return b.handleNewGameButton(ctx, s, i, gameID, userID, username)
	case SelectScoreCategory:
		return b.handleScoreCategorySelect(ctx, s, i, gameID, userID, username)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// boardOwnership reports whether msg is the board of the clicking user's
// current game. A game without a recorded message accepts a board posted by
// the user's own command, and adopt asks the caller to record it.
func boardOwnership(gameMessageID string, msg *discordgo.Message, userID string) (owned, adopt bool) {
	if msg == nil {
		return gameMessageID == "", false
	}

	if gameMessageID != "" {
		return msg.ID == gameMessageID, false
	}

	if msg.Interaction == nil || msg.Interaction.User == nil {
		return false, false
	}

	if msg.Interaction.User.ID != userID {
		return false, false
	}

	return true, true
}

// handleRollDiceButton handles the roll dice button click
func (b *Bot) handleRollDiceButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, gameID, userID, username string) error {
	output, err := b.gameService.RollDice(ctx, &game.RollDiceInput{
		GameID:   gameID,
		PlayerID: userID,
	})
	if err != nil {
		return b.respondWithServiceError(s, i, err)
	}

	if !output.Result.Accepted {
		return b.respondWithErrorType(s, i, messaging.ErrorTypeInvalidMove)
	}

	notice := ""
	if output.Result.YatzyRolled {
		notice = "Five of a kind on the table!"
	}

	return b.renderBoard(ctx, s, i, username, output.Sheet, notice)
}

// handleHoldButton handles a click on one of the dice
func (b *Bot) handleHoldButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, gameID, userID, username string, index int) error {
	output, err := b.gameService.ToggleHold(ctx, &game.ToggleHoldInput{
		GameID:   gameID,
		PlayerID: userID,
		Index:    index,
	})
	if err != nil {
		return b.respondWithServiceError(s, i, err)
	}

	if !output.Accepted {
		return b.respondWithErrorType(s, i, messaging.ErrorTypeInvalidMove)
	}

	return b.renderBoard(ctx, s, i, username, output.Sheet, "")
}

// handleScoreCategorySelect handles a choice from the category menu
func (b *Bot) handleScoreCategorySelect(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, gameID, userID, username string) error {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return b.respondWithErrorType(s, i, messaging.ErrorTypeInvalidMove)
	}

	output, err := b.gameService.ScoreCategory(ctx, &game.ScoreCategoryInput{
		GameID:   gameID,
		PlayerID: userID,
		Category: models.Category(values[0]),
	})
	if err != nil {
		return b.respondWithServiceError(s, i, err)
	}

	if !output.Result.Accepted {
		return b.respondWithErrorType(s, i, messaging.ErrorTypeInvalidMove)
	}

	scoreMsg, err := b.messagingService.GetScoreMessage(ctx, &messaging.GetScoreMessageInput{
		PlayerName:        username,
		CategoryName:      output.Result.Category.DisplayName(),
		Score:             output.Result.Score,
		YatzyAchieved:     output.Result.YatzyAchieved,
		YatzyBonusAwarded: output.Result.YatzyBonusAwarded,
	})
	if err != nil {
		return RespondWithError(s, i, "Failed to build score message")
	}

	notice := scoreMsg.Message
	if output.StatsErr != nil {
		statsMsg, err := b.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
			ErrorType: messaging.ErrorTypeStatsFailed,
		})
		if err == nil {
			notice += "\n" + statsMsg.Message
		}
	}

	return b.renderBoard(ctx, s, i, username, output.Sheet, notice)
}

// handleNewGameButton restarts the player's session in the same mode
func (b *Bot) handleNewGameButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, gameID, userID, username string) error {
	output, err := b.gameService.NewGame(ctx, &game.NewGameInput{
		GameID:   gameID,
		PlayerID: userID,
	})
	if err != nil {
		return b.respondWithServiceError(s, i, err)
	}

	return b.renderBoard(ctx, s, i, username, output.Sheet, "A new trial begins.")
}

func (b *Bot) renderBoard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, username string, sheet *game.Sheet, notice string) error {
	brd, err := buildBoard(ctx, b.messagingService, username, sheet, notice)
	if err != nil {
		log.Error().Err(err).Msg("failed to build board")
		return RespondWithError(s, i, "Failed to draw the game")
	}
	return respondWithBoard(s, i, brd)
}

func (b *Bot) respondWithServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	errType := errorTypeFor(err)
	if errType == messaging.ErrorTypeUnknownError {
		log.Error().Err(err).Msg("game service error")
	}
	return b.respondWithErrorType(s, i, errType)
}

func (b *Bot) respondWithErrorType(s *discordgo.Session, i *discordgo.InteractionCreate, errType messaging.ErrorType) error {
	return respondWithErrorType(s, i, b.messagingService, errType)
}
