package progress

import (
	"time"

	"github.com/example/questlog/pkg/models"
)

// DayLayout is the format of UserProgress.LastActiveDate and quest list day stamps
const DayLayout = "2006-01-02"

// Day returns the calendar day of t in t's own location
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// PreviousDay returns the calendar day before t in t's location. Noon is used
// as the anchor so a daylight saving shift can never move the result by a day.
func PreviousDay(t time.Time) string {
	y, m, d := t.Date()
	return Day(time.Date(y, m, d-1, 12, 0, 0, 0, t.Location()))
}

// UpdateStreak credits activity on the day of now.
//
// Activity on the same day is a no-op. Activity on the day after the last
// active day extends the streak; any other gap restarts it at 1 and leaves
// the longest streak untouched.
func UpdateStreak(p models.UserProgress, now time.Time) models.UserProgress {
	today := Day(now)

	if p.LastActiveDate == today {
		return p
	}

	if p.LastActiveDate == PreviousDay(now) {
		p.CurrentStreak++
		if p.CurrentStreak > p.LongestStreak {
			p.LongestStreak = p.CurrentStreak
		}
		p.LastActiveDate = today
		return p
	}

	p.CurrentStreak = 1
	p.LastActiveDate = today
	return p
}
