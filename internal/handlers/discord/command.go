package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/yatzy/internal/services/game"
	"github.com/KirkDiggler/yatzy/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// interactionUser returns the ID and display name of whoever triggered i.
// Guild interactions carry a member, direct messages only a user.
func interactionUser(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.User.Username
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return i.Member.User.ID, name
	}

	if i.User != nil {
		return i.User.ID, i.User.Username
	}

	return "", ""
}

// errorTypeFor maps game service errors to player-facing messages
func errorTypeFor(err error) messaging.ErrorType {
	switch {
	case errors.Is(err, game.ErrNoCurrentGame), errors.Is(err, game.ErrGameNotFound):
		return messaging.ErrorTypeNoGame
	case errors.Is(err, game.ErrGameAlreadyExists):
		return messaging.ErrorTypeGameExists
	case errors.Is(err, game.ErrNotGameOwner):
		return messaging.ErrorTypeNotOwner
	case errors.Is(err, game.ErrInvalidMode):
		return messaging.ErrorTypeInvalidMode
	case errors.Is(err, game.ErrInvalidCategory), errors.Is(err, game.ErrInvalidInput):
		return messaging.ErrorTypeInvalidMove
	default:
		return messaging.ErrorTypeUnknownError
	}
}

// respondWithErrorType sends an ephemeral message for errType
func respondWithErrorType(s *discordgo.Session, i *discordgo.InteractionCreate, msgs messaging.Service, errType messaging.ErrorType) error {
	output, err := msgs.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{
		ErrorType: errType,
	})
	if err != nil {
		log.Error().Err(err).Str("error_type", string(errType)).Msg("failed to get error message")
		return RespondWithError(s, i, "Something went wrong")
	}

	return RespondWithEphemeralMessage(s, i, output.Message)
}

// RespondWithEmbed sends an embed response to an interaction
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// RespondWithEphemeralEmbed sends an embed only the caller can see
func RespondWithEphemeralEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithError sends an error response to an interaction
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, errorMessage string) error {
	embed := &discordgo.MessageEmbed{
		Title:       "Error",
		Description: errorMessage,
		Color:       0xff0000, // Red color
	}

	return RespondWithEphemeralEmbed(s, i, embed)
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
