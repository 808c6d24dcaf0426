package models

import "fmt"

// ModeName is the stored identifier of a rule mode
type ModeName string

const (
	ModeStandard       ModeName = "standard"
	ModeSingleThrow    ModeName = "single-throw"
	ModeDoubleBonus    ModeName = "double-bonus"
	ModeUnlimitedYatzy ModeName = "unlimited-yatzy"
)

// ModeNames lists the selectable modes in menu order
var ModeNames = []ModeName{
	ModeStandard,
	ModeSingleThrow,
	ModeDoubleBonus,
	ModeUnlimitedYatzy,
}

// ErrUnknownMode is returned when a mode name is not recognised
type ErrUnknownMode struct {
	Name ModeName
}

func (e *ErrUnknownMode) Error() string {
	return fmt.Sprintf("unknown game mode %q", string(e.Name))
}

// RuleMode is the rule configuration of a single game. The flags are
// independent; selecting a mode by name only ever sets one of them.
type RuleMode struct {
	// SingleThrow allows one roll per turn and no holding
	SingleThrow bool

	// DoubleBonus pays 100 instead of 50 for the upper section bonus
	DoubleBonus bool

	// UnlimitedYatzy pays 50 for every yatzy after the first
	UnlimitedYatzy bool
}

// ModeFromName builds the rule configuration for a mode name
func ModeFromName(name ModeName) (RuleMode, error) {
	switch name {
	case ModeStandard:
		return RuleMode{}, nil
	case ModeSingleThrow:
		return RuleMode{SingleThrow: true}, nil
	case ModeDoubleBonus:
		return RuleMode{DoubleBonus: true}, nil
	case ModeUnlimitedYatzy:
		return RuleMode{UnlimitedYatzy: true}, nil
	default:
		return RuleMode{}, &ErrUnknownMode{Name: name}
	}
}

// Name returns the mode name for the configuration. Combinations that no
// single name describes report the first flag set, in declaration order.
func (m RuleMode) Name() ModeName {
	switch {
	case m.SingleThrow:
		return ModeSingleThrow
	case m.DoubleBonus:
		return ModeDoubleBonus
	case m.UnlimitedYatzy:
		return ModeUnlimitedYatzy
	default:
		return ModeStandard
	}
}

// DisplayName returns a human readable label for the mode
func (n ModeName) DisplayName() string {
	switch n {
	case ModeStandard:
		return "Standard"
	case ModeSingleThrow:
		return "Single Throw"
	case ModeDoubleBonus:
		return "Double Bonus"
	case ModeUnlimitedYatzy:
		return "Unlimited Yatzy"
	default:
		return string(n)
	}
}
