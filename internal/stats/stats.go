// Package stats computes a player's long-running results when a game ends.
// Loading and saving stats is left to a repository.
package stats

import (
	"time"

	"github.com/KirkDiggler/yatzy/internal/models"
)

// Update returns prior updated for a game that finished on today with the
// given total. It does not modify prior.
func Update(prior models.Stats, today time.Time, total int) models.Stats {
	next := prior

	if total > next.HighScore {
		next.HighScore = total
	}
	next.GamesPlayed++

	days, ok := DaysBetween(prior.LastPlayDate, today)
	switch {
	case !ok:
		next.Streak = 1
	case days == 1:
		next.Streak++
	case days > 1:
		next.Streak = 1
	}
	// Same day (or a clock that went backwards) keeps the streak as is

	next.LastPlayDate = Date(today)

	return next
}

// DaysBetween returns the number of calendar days from the stored date last
// to today. ok is false when last is empty or cannot be parsed.
func DaysBetween(last string, today time.Time) (days int, ok bool) {
	if last == "" {
		return 0, false
	}

	lastDate, err := time.Parse(models.DateLayout, last)
	if err != nil {
		return 0, false
	}

	todayDate, err := time.Parse(models.DateLayout, Date(today))
	if err != nil {
		return 0, false
	}

	return int(todayDate.Sub(lastDate).Hours() / 24), true
}

// Date formats t as a calendar date in t's own location
func Date(t time.Time) string {
	return t.Format(models.DateLayout)
}
