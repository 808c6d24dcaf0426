package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRollButtonLabel returns the label and state of the roll button
	GetRollButtonLabel(ctx context.Context, input *GetRollButtonLabelInput) (*GetRollButtonLabelOutput, error)

	// GetProgressMessage returns the round and throw counters
	GetProgressMessage(ctx context.Context, input *GetProgressMessageInput) (*GetProgressMessageOutput, error)

	// GetScoreMessage returns a short line after a category is scored
	GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error)

	// GetEndGameMessage returns the verdict shown when a game is complete
	GetEndGameMessage(ctx context.Context, input *GetEndGameMessageInput) (*GetEndGameMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
