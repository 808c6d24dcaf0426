package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func (s *MessagingServiceTestSuite) TestGetRollButtonLabel() {
	tests := []struct {
		name     string
		input    *GetRollButtonLabelInput
		label    string
		disabled bool
	}{
		{"before first roll", &GetRollButtonLabelInput{}, "Roll the Bones", false},
		{"after first roll", &GetRollButtonLabelInput{Rolled: true, RollsLeft: 2}, "Re-Roll (2 left)", false},
		{"after second roll", &GetRollButtonLabelInput{Rolled: true, RollsLeft: 1}, "Re-Roll (1 left)", false},
		{"out of rolls", &GetRollButtonLabelInput{Rolled: true}, "Choose a Category", true},
		{"single throw rolled", &GetRollButtonLabelInput{SingleThrow: true, Rolled: true}, "Choose a Category", true},
		{"single throw ready", &GetRollButtonLabelInput{SingleThrow: true}, "Roll the Bones", false},
		{"complete", &GetRollButtonLabelInput{Complete: true}, "Trial Over", true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			output, err := s.service.GetRollButtonLabel(s.ctx, tt.input)
			s.Require().NoError(err)
			s.Equal(tt.label, output.Label)
			s.Equal(tt.disabled, output.Disabled)
		})
	}
}

func (s *MessagingServiceTestSuite) TestGetProgressMessage() {
	output, err := s.service.GetProgressMessage(s.ctx, &GetProgressMessageInput{Round: 3, RollNumber: 2})
	s.Require().NoError(err)
	s.Equal("Round 3 / 15", output.Round)
	s.Equal("Roll 2 / 3", output.Roll)

	output, err = s.service.GetProgressMessage(s.ctx, &GetProgressMessageInput{Round: 15})
	s.Require().NoError(err)
	s.Equal("Round 15 / 15", output.Round)
	s.Empty(output.Roll)

	output, err = s.service.GetProgressMessage(s.ctx, &GetProgressMessageInput{Round: 4, RollNumber: 1, SingleThrow: true})
	s.Require().NoError(err)
	s.Empty(output.Roll)
}

func (s *MessagingServiceTestSuite) TestGetEndGameMessage_Verdicts() {
	tests := []struct {
		total int
		title string
	}{
		{374, "Entity Pleased"},
		{300, "Entity Pleased"},
		{299, "Trial Complete"},
		{200, "Trial Complete"},
		{199, "Sacrificed"},
		{100, "Sacrificed"},
		{99, "Entity Displeased"},
		{0, "Entity Displeased"},
	}

	for _, tt := range tests {
		s.Run(tt.title, func() {
			output, err := s.service.GetEndGameMessage(s.ctx, &GetEndGameMessageInput{Total: tt.total})
			s.Require().NoError(err)
			s.Equal(tt.title, output.Title)
			s.NotEmpty(output.Flavor)
			s.Empty(output.Bonuses)
		})
	}
}

func (s *MessagingServiceTestSuite) TestGetEndGameMessage_Bonuses() {
	output, err := s.service.GetEndGameMessage(s.ctx, &GetEndGameMessageInput{
		Total:          320,
		UpperBonus:     100,
		YatzyCount:     3,
		DoubleBonus:    true,
		UnlimitedYatzy: true,
	})
	s.Require().NoError(err)
	s.Equal("Score: 320", output.Summary)
	s.Equal([]string{"Double Bonus!", "3x Yatzy!"}, output.Bonuses)

	output, err = s.service.GetEndGameMessage(s.ctx, &GetEndGameMessageInput{
		Total:      150,
		UpperBonus: 50,
		YatzyCount: 1,
	})
	s.Require().NoError(err)
	s.Equal([]string{"Upper Bonus!"}, output.Bonuses)

	// The counter only shows in unlimited mode
	output, err = s.service.GetEndGameMessage(s.ctx, &GetEndGameMessageInput{
		Total:      150,
		YatzyCount: 4,
	})
	s.Require().NoError(err)
	s.Empty(output.Bonuses)
}

func (s *MessagingServiceTestSuite) TestGetScoreMessage() {
	output, err := s.service.GetScoreMessage(s.ctx, &GetScoreMessageInput{
		PlayerName:   "Meg",
		CategoryName: "Chance",
		Score:        23,
	})
	s.Require().NoError(err)
	s.Equal("Meg scored 23 in Chance.", output.Message)
	s.Equal(ToneNeutral, output.Tone)

	output, err = s.service.GetScoreMessage(s.ctx, &GetScoreMessageInput{
		PlayerName:    "Meg",
		CategoryName:  "Yatzy",
		Score:         50,
		YatzyAchieved: true,
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "Meg")
	s.Equal(ToneCelebration, output.Tone)

	output, err = s.service.GetScoreMessage(s.ctx, &GetScoreMessageInput{CategoryName: "Sixes"})
	s.Require().NoError(err)
	s.Contains(output.Message, "Sixes")
	s.Equal(ToneOminous, output.Tone)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeInvalidMode})
	s.Require().NoError(err)
	s.Contains(output.Message, "unlimited-yatzy")
	s.Equal(ToneOminous, output.Tone)

	output, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		ErrorType:     ErrorTypeNoGame,
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.NotEmpty(output.Message)
	s.Equal(ToneNeutral, output.Tone)
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetEndGameMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetRollButtonLabel(s.ctx, nil)
	s.Error(err)
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
