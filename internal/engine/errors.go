package engine

// EngineError is a custom error type for engine construction errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     EngineError = "config cannot be nil"
	ErrNilDiceRoller EngineError = "dice roller cannot be nil"
	ErrNilGame       EngineError = "game cannot be nil"
	ErrInvalidDice   EngineError = "stored dice contain an invalid face"
	ErrInvalidScores EngineError = "stored scores contain an unknown category"
	ErrInvalidRolls  EngineError = "stored rolls left is out of range"
)
