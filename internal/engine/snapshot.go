package engine

import (
	"fmt"

	"github.com/KirkDiggler/yatzy/internal/dice"
	"github.com/KirkDiggler/yatzy/internal/models"
)

// Snapshot copies the engine state into game. Identity and timestamps on
// game are left alone.
func (e *Engine) Snapshot(game *models.Game) {
	if game == nil {
		return
	}

	game.Mode = e.mode.Name()
	game.Dice = e.dice
	game.Held = e.held
	game.Scores = e.Scores()
	game.YatzyCount = e.yatzyCount
	game.Round = e.round
	game.RollsLeft = e.rollsLeft
	game.Rolled = e.rolled
	game.Status = e.Status()
}

// Restore rebuilds an engine from a stored game
func Restore(cfg *Config, game *models.Game) (*Engine, error) {
	if game == nil {
		return nil, ErrNilGame
	}

	mode, err := models.ModeFromName(game.Mode)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game %s: %w", game.ID, err)
	}

	for _, v := range game.Dice {
		if v < 0 || v > models.DiceSides {
			return nil, fmt.Errorf("failed to restore game %s: %w", game.ID, ErrInvalidDice)
		}
	}

	for c := range game.Scores {
		if !c.Valid() {
			return nil, fmt.Errorf("failed to restore game %s: %w", game.ID, ErrInvalidScores)
		}
	}

	if game.RollsLeft < 0 || game.RollsLeft > models.RerollsPerTurn {
		return nil, fmt.Errorf("failed to restore game %s: %w", game.ID, ErrInvalidRolls)
	}

	e, err := New(&Config{
		Mode:       mode,
		DiceRoller: cfg.diceRoller(),
	})
	if err != nil {
		return nil, err
	}

	e.dice = game.Dice
	e.held = game.Held
	for c, v := range game.Scores {
		e.scores[c] = v
	}
	e.yatzyCount = game.YatzyCount
	e.round = game.Round
	e.rollsLeft = game.RollsLeft
	e.rolled = game.Rolled

	return e, nil
}

func (c *Config) diceRoller() dice.Roller {
	if c == nil {
		return nil
	}
	return c.DiceRoller
}
