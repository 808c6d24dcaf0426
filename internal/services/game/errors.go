package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound      GameError = "game not found"
	ErrNoCurrentGame     GameError = "player has no current game"
	ErrGameAlreadyExists GameError = "player already has a game in progress"
	ErrNotGameOwner      GameError = "game belongs to another player"
	ErrInvalidCategory   GameError = "invalid category"
	ErrInvalidMode       GameError = "invalid game mode"
	ErrInvalidInput      GameError = "invalid input"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilGameRepo       GameError = "game repository cannot be nil"
	ErrNilPlayerRepo     GameError = "player repository cannot be nil"
	ErrNilStatsRepo      GameError = "stats repository cannot be nil"
	ErrNilDiceRoller     GameError = "dice roller cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
)
