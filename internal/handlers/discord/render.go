package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/yatzy/internal/models"
	"github.com/KirkDiggler/yatzy/internal/services/game"
	"github.com/KirkDiggler/yatzy/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorInProgress = 0x8b0000
	colorComplete   = 0xd4af37
	colorInfo       = 0x4b4b4b
)

var dieFaces = [...]string{"▫️", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// board is everything needed to draw one game message
type board struct {
	PlayerName string
	Sheet      *game.Sheet
	RollButton *messaging.GetRollButtonLabelOutput
	Progress   *messaging.GetProgressMessageOutput

	// Notice is an optional line about the last action
	Notice string

	// EndGame is set once the game is complete
	EndGame *messaging.GetEndGameMessageOutput
}

// buildBoard collects the texts for a sheet from the messaging service
func buildBoard(ctx context.Context, msgs messaging.Service, playerName string, sheet *game.Sheet, notice string) (*board, error) {
	mode, err := models.ModeFromName(sheet.Mode)
	if err != nil {
		return nil, err
	}

	complete := sheet.Status.IsComplete()

	rollButton, err := msgs.GetRollButtonLabel(ctx, &messaging.GetRollButtonLabelInput{
		Complete:    complete,
		SingleThrow: mode.SingleThrow,
		Rolled:      sheet.HasRolled,
		RollsLeft:   sheet.RollsLeft,
	})
	if err != nil {
		return nil, err
	}

	progress, err := msgs.GetProgressMessage(ctx, &messaging.GetProgressMessageInput{
		Round:       sheet.Round,
		RollNumber:  sheet.RollNumber,
		SingleThrow: mode.SingleThrow,
	})
	if err != nil {
		return nil, err
	}

	b := &board{
		PlayerName: playerName,
		Sheet:      sheet,
		RollButton: rollButton,
		Progress:   progress,
		Notice:     notice,
	}

	if complete {
		b.EndGame, err = msgs.GetEndGameMessage(ctx, &messaging.GetEndGameMessageInput{
			Total:          sheet.Total,
			UpperBonus:     sheet.UpperBonus,
			YatzyCount:     sheet.YatzyCount,
			DoubleBonus:    mode.DoubleBonus,
			UnlimitedYatzy: mode.UnlimitedYatzy,
		})
		if err != nil {
			return nil, err
		}
	}

	return b, nil
}

func diceLine(dice models.Dice, held models.HoldMask) string {
	parts := make([]string, 0, len(dice))
	for i, face := range dice {
		s := dieFaces[0]
		if face >= 1 && face <= models.DiceSides {
			s = dieFaces[face]
		}
		if held[i] {
			s = "[" + s + "]"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func rowText(row game.SheetRow) string {
	switch {
	case row.Scored:
		return fmt.Sprintf("%s: **%d**", row.Name, row.Score)
	case row.HasPreview:
		return fmt.Sprintf("%s: _%d_", row.Name, row.Preview)
	default:
		return fmt.Sprintf("%s: -", row.Name)
	}
}

// renderBoardEmbed draws the dice and scorecard
func renderBoardEmbed(b *board) *discordgo.MessageEmbed {
	sheet := b.Sheet

	title := fmt.Sprintf("Yatzy: %s", sheet.Mode.DisplayName())
	if b.PlayerName != "" {
		title = fmt.Sprintf("%s's Trial (%s)", b.PlayerName, sheet.Mode.DisplayName())
	}

	progress := b.Progress.Round
	if b.Progress.Roll != "" {
		progress += " | " + b.Progress.Roll
	}

	lines := []string{diceLine(sheet.Dice, sheet.Held), progress}
	if b.Notice != "" {
		lines = append(lines, b.Notice)
	}

	var upper, lower []string
	for _, row := range sheet.Rows {
		if row.Category.IsUpper() {
			upper = append(upper, rowText(row))
		} else {
			lower = append(lower, rowText(row))
		}
	}

	totals := []string{
		fmt.Sprintf("Upper: %d / %d", sheet.UpperSum, models.UpperBonusThreshold),
		fmt.Sprintf("Bonus: %d", sheet.UpperBonus),
	}
	if sheet.YatzyBonus > 0 {
		totals = append(totals, fmt.Sprintf("Yatzy Bonus: %d", sheet.YatzyBonus))
	}
	totals = append(totals, fmt.Sprintf("**Total: %d**", sheet.Total))

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.Join(lines, "\n"),
		Color:       colorInProgress,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Upper Section", Value: strings.Join(upper, "\n"), Inline: true},
			{Name: "Lower Section", Value: strings.Join(lower, "\n"), Inline: true},
			{Name: "Totals", Value: strings.Join(totals, "\n"), Inline: false},
		},
	}

	if b.EndGame != nil {
		embed.Color = colorComplete
		value := b.EndGame.Flavor + "\n" + b.EndGame.Summary
		if len(b.EndGame.Bonuses) > 0 {
			value += "\n" + strings.Join(b.EndGame.Bonuses, " ")
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  b.EndGame.Title,
			Value: value,
		})
	}

	return embed
}

// renderBoardComponents draws the hold buttons, the roll button and the
// category menu
func renderBoardComponents(b *board) []discordgo.MessageComponent {
	sheet := b.Sheet

	newGameButton := discordgo.Button{
		Label:    "New Game",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonNewGame,
	}

	if b.EndGame != nil {
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{newGameButton}},
		}
	}

	holdButtons := make([]discordgo.MessageComponent, 0, models.NumDice)
	for i, face := range sheet.Dice {
		label := "-"
		if face > 0 {
			label = fmt.Sprintf("%d", face)
		}
		style := discordgo.SecondaryButton
		if sheet.Held[i] {
			style = discordgo.SuccessButton
			label += " held"
		}
		holdButtons = append(holdButtons, discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: holdButtonID(i),
			Disabled: !sheet.CanHold,
		})
	}

	rollButton := discordgo.Button{
		Label:    b.RollButton.Label,
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonRollDice,
		Disabled: b.RollButton.Disabled,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎲",
		},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: holdButtons},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{rollButton, newGameButton}},
	}

	open := sheet.OpenCategories()
	if len(open) > 0 {
		options := make([]discordgo.SelectMenuOption, 0, len(open))
		for _, row := range open {
			options = append(options, discordgo.SelectMenuOption{
				Label:       row.Name,
				Value:       string(row.Category),
				Description: fmt.Sprintf("%d points", row.Preview),
			})
		}

		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    SelectScoreCategory,
					Placeholder: "Choose a category",
					Options:     options,
				},
			},
		})
	}

	return components
}

// renderStatsEmbed draws a player's stats
func renderStatsEmbed(playerName string, st *models.Stats) *discordgo.MessageEmbed {
	lastPlayed := st.LastPlayDate
	if lastPlayed == "" {
		lastPlayed = "never"
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Record", playerName),
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Best", Value: fmt.Sprintf("%d", st.HighScore), Inline: true},
			{Name: "Games", Value: fmt.Sprintf("%d", st.GamesPlayed), Inline: true},
			{Name: "Streak", Value: fmt.Sprintf("🔥 %d", st.Streak), Inline: true},
			{Name: "Last Played", Value: lastPlayed, Inline: true},
		},
	}
}

// renderHighScoresEmbed draws the high score table
func renderHighScoresEmbed(entries []game.HighScoreEntry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "High Scores",
			Description: "Nobody has survived a trial yet.",
			Color:       colorInfo,
		}
	}

	var sb strings.Builder
	for i, entry := range entries {
		fmt.Fprintf(&sb, "%d. **%s**: %d\n", i+1, entry.PlayerName, entry.HighScore)
	}

	return &discordgo.MessageEmbed{
		Title:       "High Scores",
		Description: sb.String(),
		Color:       colorComplete,
	}
}

// respondWithBoard sends the board, replacing the clicked message for
// component interactions
func respondWithBoard(s *discordgo.Session, i *discordgo.InteractionCreate, b *board) error {
	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if i.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{renderBoardEmbed(b)},
			Components: renderBoardComponents(b),
		},
	})
}
