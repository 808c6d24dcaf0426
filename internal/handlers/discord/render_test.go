package discord

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/yatzy/internal/models"
	"github.com/KirkDiggler/yatzy/internal/services/game"
	"github.com/KirkDiggler/yatzy/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RenderTestSuite struct {
	suite.Suite
	ctx  context.Context
	msgs messaging.Service
}

func (s *RenderTestSuite) SetupTest() {
	s.ctx = context.Background()

	msgs, err := messaging.NewService(&messaging.ServiceConfig{Seed: 7})
	s.Require().NoError(err)
	s.msgs = msgs
}

// rows builds scorecard rows with scored values from scores and previews
// for every other category when rolled is true
func rows(scores map[models.Category]int, rolled bool, preview int) []game.SheetRow {
	var out []game.SheetRow
	for _, c := range models.AllCategories {
		row := game.SheetRow{Category: c, Name: c.DisplayName()}
		if v, ok := scores[c]; ok {
			row.Score, row.Scored = v, true
		} else if rolled {
			row.Preview, row.HasPreview = preview, true
		}
		out = append(out, row)
	}
	return out
}

func (s *RenderTestSuite) TestBoard_MidTurn() {
	sheet := &game.Sheet{
		Mode:       models.ModeStandard,
		Status:     models.GameStatusInProgress,
		Dice:       models.Dice{2, 2, 5, 6, 1},
		Held:       models.HoldMask{true, true, false, false, false},
		Rows:       rows(map[models.Category]int{models.CategoryChance: 20}, true, 4),
		Total:      20,
		Round:      2,
		RollNumber: 2,
		RollsLeft:  1,
		HasRolled:  true,
		CanRoll:    true,
		CanHold:    true,
	}

	brd, err := buildBoard(s.ctx, s.msgs, "Meg", sheet, "")
	s.Require().NoError(err)
	s.Nil(brd.EndGame)
	s.Equal("Re-Roll (1 left)", brd.RollButton.Label)

	embed := renderBoardEmbed(brd)
	s.Equal("Meg's Trial (Standard)", embed.Title)
	s.Contains(embed.Description, "Round 2 / 15 | Roll 2 / 3")
	s.Contains(embed.Description, "[⚁] [⚁] ⚄ ⚅ ⚀")
	s.Contains(embed.Fields[1].Value, "Chance: **20**")
	s.Contains(embed.Fields[2].Value, "**Total: 20**")

	components := renderBoardComponents(brd)
	s.Require().Len(components, 3)

	holds := components[0].(discordgo.ActionsRow).Components
	s.Require().Len(holds, models.NumDice)
	first := holds[0].(discordgo.Button)
	s.Equal("hold_0", first.CustomID)
	s.Equal("2 held", first.Label)
	s.Equal(discordgo.SuccessButton, first.Style)
	s.False(first.Disabled)

	roll := components[1].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	s.Equal(ButtonRollDice, roll.CustomID)
	s.False(roll.Disabled)

	menu := components[2].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	s.Equal(SelectScoreCategory, menu.CustomID)
	s.Len(menu.Options, models.TotalCategories-1)
	s.Equal(string(models.CategoryOnes), menu.Options[0].Value)
	s.Equal("4 points", menu.Options[0].Description)
}

func (s *RenderTestSuite) TestBoard_BeforeRoll() {
	sheet := &game.Sheet{
		Mode:    models.ModeSingleThrow,
		Status:  models.GameStatusNotStarted,
		Rows:    rows(nil, false, 0),
		Round:   1,
		CanRoll: true,
	}

	brd, err := buildBoard(s.ctx, s.msgs, "", sheet, "")
	s.Require().NoError(err)
	s.Equal("Roll the Bones", brd.RollButton.Label)

	components := renderBoardComponents(brd)
	// No category menu until the dice are thrown
	s.Require().Len(components, 2)

	for _, c := range components[0].(discordgo.ActionsRow).Components {
		b := c.(discordgo.Button)
		s.True(b.Disabled)
		s.Equal("-", b.Label)
	}

	embed := renderBoardEmbed(brd)
	s.Equal("Yatzy: Single Throw", embed.Title)
	s.NotContains(embed.Description, "Roll ")
}

func (s *RenderTestSuite) TestBoard_Complete() {
	scores := make(map[models.Category]int)
	for _, c := range models.AllCategories {
		scores[c] = 20
	}

	sheet := &game.Sheet{
		Mode:       models.ModeDoubleBonus,
		Status:     models.GameStatusComplete,
		Rows:       rows(scores, false, 0),
		UpperSum:   120,
		UpperBonus: 100,
		Total:      400,
		Round:      15,
	}

	brd, err := buildBoard(s.ctx, s.msgs, "Meg", sheet, "")
	s.Require().NoError(err)
	s.Require().NotNil(brd.EndGame)
	s.Equal("Entity Pleased", brd.EndGame.Title)
	s.Equal("Trial Over", brd.RollButton.Label)

	embed := renderBoardEmbed(brd)
	last := embed.Fields[len(embed.Fields)-1]
	s.Equal("Entity Pleased", last.Name)
	s.Contains(last.Value, "Score: 400")
	s.Contains(last.Value, "Double Bonus!")

	components := renderBoardComponents(brd)
	s.Require().Len(components, 1)
	newGame := components[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	s.Equal(ButtonNewGame, newGame.CustomID)
}

func (s *RenderTestSuite) TestBoard_UnknownMode() {
	_, err := buildBoard(s.ctx, s.msgs, "", &game.Sheet{Mode: "bogus"}, "")
	s.Error(err)
}

func (s *RenderTestSuite) TestHighScoresEmbed() {
	embed := renderHighScoresEmbed([]game.HighScoreEntry{
		{PlayerID: "p1", PlayerName: "Meg", HighScore: 301},
		{PlayerID: "p2", PlayerName: "Claudette", HighScore: 188},
	})
	s.Equal("1. **Meg**: 301\n2. **Claudette**: 188\n", embed.Description)

	empty := renderHighScoresEmbed(nil)
	s.Contains(empty.Description, "Nobody")
}

func (s *RenderTestSuite) TestStatsEmbed() {
	embed := renderStatsEmbed("Meg", &models.Stats{HighScore: 250, GamesPlayed: 12, Streak: 3})
	s.Equal("Meg's Record", embed.Title)
	s.Equal("250", embed.Fields[0].Value)
	s.Equal("never", embed.Fields[3].Value)
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func TestParseHoldButton(t *testing.T) {
	for i := 0; i < models.NumDice; i++ {
		index, ok := parseHoldButton(holdButtonID(i))
		require.True(t, ok)
		assert.Equal(t, i, index)
	}

	for _, id := range []string{"hold_5", "hold_-1", "hold_x", "roll_dice", "hold_"} {
		_, ok := parseHoldButton(id)
		assert.False(t, ok, id)
	}
}

func TestErrorTypeFor(t *testing.T) {
	tests := []struct {
		err  error
		want messaging.ErrorType
	}{
		{game.ErrNoCurrentGame, messaging.ErrorTypeNoGame},
		{game.ErrGameNotFound, messaging.ErrorTypeNoGame},
		{game.ErrGameAlreadyExists, messaging.ErrorTypeGameExists},
		{game.ErrNotGameOwner, messaging.ErrorTypeNotOwner},
		{fmt.Errorf("%w: hardcore", game.ErrInvalidMode), messaging.ErrorTypeInvalidMode},
		{game.ErrInvalidCategory, messaging.ErrorTypeInvalidMove},
		{fmt.Errorf("redis down"), messaging.ErrorTypeUnknownError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, errorTypeFor(tt.err), tt.err.Error())
	}
}

func TestBoardOwnership(t *testing.T) {
	own := &discordgo.Message{
		ID:          "msg-1",
		Interaction: &discordgo.MessageInteraction{User: &discordgo.User{ID: "meg"}},
	}
	other := &discordgo.Message{
		ID:          "msg-2",
		Interaction: &discordgo.MessageInteraction{User: &discordgo.User{ID: "dwight"}},
	}
	bare := &discordgo.Message{ID: "msg-3"}

	tests := []struct {
		name          string
		gameMessageID string
		msg           *discordgo.Message
		owned, adopt  bool
	}{
		{"recorded board", "msg-1", own, true, false},
		{"recorded elsewhere", "msg-1", other, false, false},
		{"unrecorded own board", "", own, true, true},
		{"unrecorded foreign board", "", other, false, false},
		{"unrecorded unknown author", "", bare, false, false},
		{"no message", "", nil, true, false},
		{"no message with recorded board", "msg-1", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owned, adopt := boardOwnership(tt.gameMessageID, tt.msg, "meg")
			assert.Equal(t, tt.owned, owned)
			assert.Equal(t, tt.adopt, adopt)
		})
	}
}
