package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/yatzy/internal/models"
)

// Verdict thresholds for the end of game message
const (
	pleasedScore   = 300
	completeScore  = 200
	sacrificeScore = 100
)

// service implements the Service interface
type service struct {
	mu sync.Mutex

	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetRollButtonLabel returns the label and state of the roll button
func (s *service) GetRollButtonLabel(ctx context.Context, input *GetRollButtonLabelInput) (*GetRollButtonLabelOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch {
	case input.Complete:
		return &GetRollButtonLabelOutput{Label: "Trial Over", Disabled: true}, nil
	case !input.Rolled:
		return &GetRollButtonLabelOutput{Label: "Roll the Bones"}, nil
	case input.SingleThrow || input.RollsLeft <= 0:
		return &GetRollButtonLabelOutput{Label: "Choose a Category", Disabled: true}, nil
	default:
		return &GetRollButtonLabelOutput{
			Label: fmt.Sprintf("Re-Roll (%d left)", input.RollsLeft),
		}, nil
	}
}

// GetProgressMessage returns the round and throw counters
func (s *service) GetProgressMessage(ctx context.Context, input *GetProgressMessageInput) (*GetProgressMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &GetProgressMessageOutput{
		Round: fmt.Sprintf("Round %d / %d", input.Round, models.TotalCategories),
	}

	if !input.SingleThrow && input.RollNumber > 0 {
		output.Roll = fmt.Sprintf("Roll %d / %d", input.RollNumber, models.RollsPerTurn)
	}

	return output, nil
}

// GetScoreMessage returns a short line after a category is scored
func (s *service) GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName
	if name == "" {
		name = "You"
	}

	switch {
	case input.YatzyAchieved:
		messages := []string{
			fmt.Sprintf("YATZY! %s offered five of a kind. The Entity stirs.", name),
			fmt.Sprintf("Five bones, one face. %s just scored a Yatzy!", name),
			fmt.Sprintf("The fog parts. %s rolled a Yatzy for 50!", name),
			fmt.Sprintf("%s hooked a Yatzy. Even the Entity is impressed.", name),
		}
		return &GetScoreMessageOutput{Message: s.pick(messages), Tone: ToneCelebration}, nil

	case input.YatzyBonusAwarded:
		messages := []string{
			fmt.Sprintf("Another Yatzy! %s feeds the Entity a bonus.", name),
			fmt.Sprintf("%s did it again. Yatzy bonus counted!", name),
			fmt.Sprintf("The Entity hungers and %s delivers. Bonus Yatzy!", name),
		}
		return &GetScoreMessageOutput{Message: s.pick(messages), Tone: ToneCelebration}, nil

	case input.Score == 0:
		messages := []string{
			fmt.Sprintf("%s sacrificed %s for nothing.", name, input.CategoryName),
			fmt.Sprintf("%s scratched %s. The Entity noticed.", name, input.CategoryName),
			fmt.Sprintf("Zero in %s. %s walks on.", input.CategoryName, name),
		}
		return &GetScoreMessageOutput{Message: s.pick(messages), Tone: ToneOminous}, nil
	}

	return &GetScoreMessageOutput{
		Message: fmt.Sprintf("%s scored %d in %s.", name, input.Score, input.CategoryName),
		Tone:    ToneNeutral,
	}, nil
}

// GetEndGameMessage returns the verdict shown when a game is complete
func (s *service) GetEndGameMessage(ctx context.Context, input *GetEndGameMessageInput) (*GetEndGameMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &GetEndGameMessageOutput{
		Summary: fmt.Sprintf("Score: %d", input.Total),
	}

	switch {
	case input.Total >= pleasedScore:
		output.Title = "Entity Pleased"
		output.Flavor = "A worthy sacrifice. The Entity grants you freedom."
	case input.Total >= completeScore:
		output.Title = "Trial Complete"
		output.Flavor = "You survived the trial. For now."
	case input.Total >= sacrificeScore:
		output.Title = "Sacrificed"
		output.Flavor = "The Entity consumes your offering."
	default:
		output.Title = "Entity Displeased"
		output.Flavor = "Your bones were not enough."
	}

	if input.UpperBonus > 0 {
		if input.DoubleBonus {
			output.Bonuses = append(output.Bonuses, "Double Bonus!")
		} else {
			output.Bonuses = append(output.Bonuses, "Upper Bonus!")
		}
	}

	if input.UnlimitedYatzy && input.YatzyCount > 1 {
		output.Bonuses = append(output.Bonuses, fmt.Sprintf("%dx Yatzy!", input.YatzyCount))
	}

	return output, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneOminous
	}

	var messages []string

	// Select messages based on error type
	switch input.ErrorType {
	case ErrorTypeNoGame:
		messages = []string{
			"You have no trial running. Use /yatzy start to begin.",
			"The fog is empty. Start a game with /yatzy start.",
			"No bones on the table yet. Try /yatzy start.",
		}
	case ErrorTypeGameExists:
		messages = []string{
			"You are already in a trial. Finish it or /yatzy abandon it.",
			"One trial at a time. Your dice are still waiting.",
			"The Entity has not released you yet. Finish your current game.",
		}
	case ErrorTypeNotOwner:
		messages = []string{
			"Those are not your bones to roll.",
			"Hands off! This trial belongs to someone else.",
			"Start your own game with /yatzy start.",
		}
	case ErrorTypeInvalidMove:
		messages = []string{
			"The Entity does not allow that move.",
			"That move is not open to you right now.",
		}
	case ErrorTypeInvalidMode:
		messages = []string{
			"No such trial. Pick standard, single-throw, double-bonus or unlimited-yatzy.",
		}
	case ErrorTypeStatsFailed:
		messages = []string{
			"Your game is saved, but the record keepers dropped your stats.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again later.",
			"The fog thickened. Try again.",
			"The Entity is displeased with our servers. Try again later.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
