package game

import (
	"github.com/KirkDiggler/yatzy/internal/engine"
	"github.com/KirkDiggler/yatzy/internal/models"
)

// SheetRow is one category line of the scorecard
type SheetRow struct {
	Category models.Category
	Name     string

	// Score is the committed value when Scored is true
	Score  int
	Scored bool

	// Preview is what the current dice would score, when HasPreview is true
	Preview    int
	HasPreview bool
}

// Sheet is a read-only view of a game for presenters
type Sheet struct {
	Mode   models.ModeName
	Status models.GameStatus
	Dice   models.Dice
	Held   models.HoldMask
	Rows   []SheetRow

	UpperSum   int
	UpperBonus int
	YatzyBonus int
	YatzyCount int
	Total      int

	// Round is the turn shown to the player, 1 through 15
	Round int

	// RollNumber is the throw within the turn, 0 when not rolled
	RollNumber int
	RollsLeft  int

	HasRolled bool
	CanRoll   bool
	CanHold   bool
}

// buildSheet reads every accessor the presentation layer needs
func buildSheet(e *engine.Engine) *Sheet {
	sheet := &Sheet{
		Mode:       e.Mode().Name(),
		Status:     e.Status(),
		Dice:       e.Dice(),
		Held:       e.Held(),
		Rows:       make([]SheetRow, 0, len(models.AllCategories)),
		UpperSum:   e.UpperSum(),
		UpperBonus: e.UpperBonus(),
		YatzyBonus: e.YatzyBonusTotal(),
		YatzyCount: e.YatzyCount(),
		Total:      e.TotalScore(),
		Round:      e.DisplayRound(),
		RollNumber: e.RollNumber(),
		RollsLeft:  e.RollsLeft(),
		HasRolled:  e.HasRolled(),
		CanRoll:    e.CanRoll(),
		CanHold:    e.CanHold(),
	}

	for _, c := range models.AllCategories {
		row := SheetRow{
			Category: c,
			Name:     c.DisplayName(),
		}
		row.Score, row.Scored = e.Score(c)
		row.Preview, row.HasPreview = e.Preview(c)
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet
}

// OpenCategories returns the rows that can still be scored this turn
func (s *Sheet) OpenCategories() []SheetRow {
	var rows []SheetRow
	for _, row := range s.Rows {
		if row.HasPreview {
			rows = append(rows, row)
		}
	}
	return rows
}
