package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneOminous is the default tone of the trial
	ToneOminous MessageTone = "ominous"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType names the failures players can run into
type ErrorType string

const (
	ErrorTypeNoGame       ErrorType = "no_game"
	ErrorTypeGameExists   ErrorType = "game_exists"
	ErrorTypeNotOwner     ErrorType = "not_owner"
	ErrorTypeInvalidMove  ErrorType = "invalid_move"
	ErrorTypeInvalidMode  ErrorType = "invalid_mode"
	ErrorTypeStatsFailed  ErrorType = "stats_failed"
	ErrorTypeUnknownError ErrorType = "unknown"
)

// GetRollButtonLabelInput contains the turn state the roll button reflects
type GetRollButtonLabelInput struct {
	// Complete is true once every category is scored
	Complete bool

	// SingleThrow is true when the mode allows one throw per turn
	SingleThrow bool

	// Rolled is true when the dice were thrown this turn
	Rolled bool

	// RollsLeft is the number of re-rolls left this turn
	RollsLeft int
}

// GetRollButtonLabelOutput contains the roll button label
type GetRollButtonLabelOutput struct {
	Label string

	// Disabled is true when the button should not be pressed
	Disabled bool
}

// GetProgressMessageInput contains the counters of the current game
type GetProgressMessageInput struct {
	// Round is the displayed turn, 1 through 15
	Round int

	// RollNumber is the throw within the turn, 0 when not rolled
	RollNumber int

	SingleThrow bool
}

// GetProgressMessageOutput contains the progress texts
type GetProgressMessageOutput struct {
	// Round reads like "Round 3 / 15"
	Round string

	// Roll reads like "Roll 2 / 3", empty when nothing should be shown
	Roll string
}

// GetScoreMessageInput contains the result of a score commit
type GetScoreMessageInput struct {
	PlayerName   string
	CategoryName string
	Score        int

	// YatzyAchieved is true when 50 went into the yatzy box
	YatzyAchieved bool

	// YatzyBonusAwarded is true when the unlimited yatzy counter moved
	YatzyBonusAwarded bool
}

// GetScoreMessageOutput contains the score line
type GetScoreMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetEndGameMessageInput contains the final totals of a game
type GetEndGameMessageInput struct {
	Total      int
	UpperBonus int
	YatzyCount int

	DoubleBonus    bool
	UnlimitedYatzy bool
}

// GetEndGameMessageOutput contains the end of game verdict
type GetEndGameMessageOutput struct {
	Title  string
	Flavor string

	// Summary reads like "Score: 250"
	Summary string

	// Bonuses lists the bonus notes, such as "Upper Bonus!" or "3x Yatzy!"
	Bonuses []string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed for the message picker; zero seeds from the clock
	Seed int64
}
