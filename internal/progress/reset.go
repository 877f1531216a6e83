package progress

import (
	"math"
	"time"

	"github.com/example/questlog/pkg/models"
)

// ResetDue reports whether now falls in a later calendar month than lastReset.
// Both instants are compared in now's location.
func ResetDue(lastReset, now time.Time) bool {
	last := lastReset.In(now.Location())
	if now.Year() != last.Year() {
		return now.Year() > last.Year()
	}
	return now.Month() > last.Month()
}

// ExecuteReset clears the period counters, relocks every achievement and
// empties the history. The longest streak and last active day survive.
func ExecuteReset(p models.UserProgress) models.UserProgress {
	p.QuestsCompleted = 0
	p.TotalScore = 0
	p.CurrentStreak = 0
	p.Achievements = DefaultAchievements()
	p.CompletedQuests = []models.Quest{}
	return p
}

// NextResetDate returns the first instant of the month after now, in now's location
func NextResetDate(now time.Time) time.Time {
	y, m, _ := now.Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, now.Location())
}

// DaysUntilReset returns the number of days, rounded up, until the next reset
func DaysUntilReset(now time.Time) int {
	remaining := NextResetDate(now).Sub(now)
	return int(math.Ceil(remaining.Hours() / 24))
}

// UntilMidnight returns the time left before today's quest list expires
func UntilMidnight(now time.Time) time.Duration {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location()).Sub(now)
}
