package engine

import (
	"github.com/KirkDiggler/yatzy/internal/dice"
	"github.com/KirkDiggler/yatzy/internal/models"
)

// Config holds configuration for an engine
type Config struct {
	// Mode is the rule configuration of the first game
	Mode models.RuleMode

	// DiceRoller draws die faces
	DiceRoller dice.Roller
}

// Engine holds the state of one Yatzy game and applies the rules to it.
// An Engine is not safe for concurrent use; each session owns its own.
//
// Illegal moves never return an error. They leave the state untouched and
// report Accepted=false, so a caller can forward user input without first
// checking whether it is allowed.
type Engine struct {
	roller dice.Roller
	mode   models.RuleMode

	dice       models.Dice
	held       models.HoldMask
	scores     map[models.Category]int
	yatzyCount int
	round      int
	rollsLeft  int
	rolled     bool
}

// New creates an engine ready for a fresh game in cfg.Mode
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	e := &Engine{
		roller: cfg.DiceRoller,
	}
	e.NewGame(cfg.Mode)

	return e, nil
}

// NewGame discards the current game and starts a new one in mode
func (e *Engine) NewGame(mode models.RuleMode) {
	e.mode = mode
	e.dice = models.Dice{}
	e.held = models.HoldMask{}
	e.scores = make(map[models.Category]int, models.TotalCategories)
	e.yatzyCount = 0
	e.round = 0
	e.rollsLeft = 0
	e.rolled = false
}

// Roll throws the dice. The first roll of a turn throws all five; later
// rolls in the same turn throw only the dice that are not held.
func (e *Engine) Roll() *RollResult {
	if !e.CanRoll() {
		return e.rollResult(false)
	}

	result := e.rollResult(true)

	if e.mode.SingleThrow || !e.rolled {
		e.rolled = true
		e.round++
		e.held = models.HoldMask{}
		if e.mode.SingleThrow {
			e.rollsLeft = 0
		} else {
			e.rollsLeft = models.RerollsPerTurn
		}
		result.FirstRoll = true
	} else {
		e.rollsLeft--
	}

	for i := range e.dice {
		if e.held[i] {
			continue
		}
		e.dice[i] = e.roller.Roll(models.DiceSides)
		result.Rolled[i] = true
	}

	result.Dice = e.dice
	result.RollsLeft = e.rollsLeft
	result.Round = e.round
	result.YatzyRolled = e.dice.AllSame()

	return result
}

// ToggleHold flips the hold flag of the die at index. It returns false and
// does nothing when holding is not allowed or index is outside [0, 5).
func (e *Engine) ToggleHold(index int) bool {
	if !e.CanHold() {
		return false
	}

	if index < 0 || index >= models.NumDice {
		return false
	}

	e.held[index] = !e.held[index]
	return true
}

// ScoreCategory writes the current dice into category and ends the turn
func (e *Engine) ScoreCategory(category models.Category) *ScoreResult {
	result := &ScoreResult{
		Category: category,
	}

	if e.IsComplete() || !e.rolled || !category.Valid() {
		return result
	}

	if _, scored := e.scores[category]; scored {
		return result
	}

	score := CalculateScore(category, e.dice)

	// Extra yatzys only count once the yatzy box itself holds a 50
	if e.mode.UnlimitedYatzy {
		if category == models.CategoryYatzy && score == models.YatzyScore {
			e.yatzyCount++
			result.YatzyBonusAwarded = true
		} else if category != models.CategoryYatzy && e.dice.AllSame() && e.yatzyCount > 0 {
			e.yatzyCount++
			result.YatzyBonusAwarded = true
		}
	}

	e.scores[category] = score
	e.rolled = false
	e.rollsLeft = 0
	e.held = models.HoldMask{}

	result.Accepted = true
	result.Score = score
	result.YatzyAchieved = category == models.CategoryYatzy && score == models.YatzyScore
	result.GameComplete = e.IsComplete()

	return result
}

func (e *Engine) rollResult(accepted bool) *RollResult {
	return &RollResult{
		Accepted:    accepted,
		Dice:        e.dice,
		RollsLeft:   e.rollsLeft,
		Round:       e.round,
		YatzyRolled: e.dice.AllSame(),
	}
}

// CanRoll reports whether Roll would be accepted
func (e *Engine) CanRoll() bool {
	if e.IsComplete() {
		return false
	}

	if e.mode.SingleThrow {
		return !e.rolled
	}

	return !e.rolled || e.rollsLeft > 0
}

// CanHold reports whether ToggleHold would be accepted for a valid index
func (e *Engine) CanHold() bool {
	return !e.mode.SingleThrow && e.rolled && e.rollsLeft > 0 && !e.IsComplete()
}

// CanScore reports whether category is open and the dice have been rolled
func (e *Engine) CanScore(category models.Category) bool {
	if !e.rolled || e.IsComplete() || !category.Valid() {
		return false
	}
	_, scored := e.scores[category]
	return !scored
}

// Status returns the lifecycle state of the game
func (e *Engine) Status() models.GameStatus {
	switch {
	case e.IsComplete():
		return models.GameStatusComplete
	case e.round == 0 && !e.rolled && len(e.scores) == 0:
		return models.GameStatusNotStarted
	default:
		return models.GameStatusInProgress
	}
}

// IsComplete reports whether every category has been scored
func (e *Engine) IsComplete() bool {
	return len(e.scores) >= models.TotalCategories
}

// Mode returns the rule configuration of the current game
func (e *Engine) Mode() models.RuleMode {
	return e.mode
}

// Dice returns the current face values
func (e *Engine) Dice() models.Dice {
	return e.dice
}

// Held returns the current hold flags
func (e *Engine) Held() models.HoldMask {
	return e.held
}

// RollsLeft returns the number of re-rolls left in the turn
func (e *Engine) RollsLeft() int {
	return e.rollsLeft
}

// Round returns the number of turns started so far
func (e *Engine) Round() int {
	return e.round
}

// HasRolled reports whether the dice have been thrown this turn
func (e *Engine) HasRolled() bool {
	return e.rolled
}

// YatzyCount returns the unlimited-yatzy counter
func (e *Engine) YatzyCount() int {
	return e.yatzyCount
}

// ScoredCount returns the number of filled categories
func (e *Engine) ScoredCount() int {
	return len(e.scores)
}

// DisplayRound is the turn number shown to the player, 1 through 15
func (e *Engine) DisplayRound() int {
	return min(len(e.scores)+1, models.TotalCategories)
}

// RollNumber is the throw within the current turn, 1 through 3. It is 0
// before the first roll of a turn and always 0 in single-throw mode.
func (e *Engine) RollNumber() int {
	if e.mode.SingleThrow || !e.rolled {
		return 0
	}
	return models.RollsPerTurn - e.rollsLeft
}

// Scores returns a copy of the scorecard
func (e *Engine) Scores() map[models.Category]int {
	scores := make(map[models.Category]int, len(e.scores))
	for c, v := range e.scores {
		scores[c] = v
	}
	return scores
}

// Score returns the committed value of category
func (e *Engine) Score(category models.Category) (int, bool) {
	v, ok := e.scores[category]
	return v, ok
}

// Preview returns what the current dice would score in category. It is
// only available for open categories while a roll is active.
func (e *Engine) Preview(category models.Category) (int, bool) {
	if !e.CanScore(category) {
		return 0, false
	}
	return CalculateScore(category, e.dice), true
}

// Previews returns the preview of every open category
func (e *Engine) Previews() map[models.Category]int {
	previews := make(map[models.Category]int)
	for _, c := range models.AllCategories {
		if v, ok := e.Preview(c); ok {
			previews[c] = v
		}
	}
	return previews
}

// UpperSum returns the sum of the scored upper section categories
func (e *Engine) UpperSum() int {
	sum := 0
	for _, c := range models.UpperCategories {
		sum += e.scores[c]
	}
	return sum
}

// UpperBonus returns the upper section bonus earned so far
func (e *Engine) UpperBonus() int {
	if e.UpperSum() < models.UpperBonusThreshold {
		return 0
	}
	if e.mode.DoubleBonus {
		return models.DoubleUpperBonus
	}
	return models.UpperBonus
}

// YatzyBonusTotal returns the unlimited-yatzy bonus. The first qualifying
// yatzy is the base score; each one after it pays the bonus.
func (e *Engine) YatzyBonusTotal() int {
	if !e.mode.UnlimitedYatzy {
		return 0
	}
	return max(0, e.yatzyCount-1) * models.YatzyBonus
}

// TotalScore returns the scorecard sum plus all bonuses
func (e *Engine) TotalScore() int {
	total := 0
	for _, v := range e.scores {
		total += v
	}
	return total + e.UpperBonus() + e.YatzyBonusTotal()
}
