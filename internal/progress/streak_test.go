package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/example/questlog/pkg/models"
)

func day(t *testing.T, loc *time.Location, y int, m time.Month, d, hour int) time.Time {
	t.Helper()
	return time.Date(y, m, d, hour, 0, 0, 0, loc)
}

func TestUpdateStreak(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		progress    models.UserProgress
		wantCurrent int
		wantLongest int
		wantDay     string
	}{
		{
			name:        "same day is a no-op",
			progress:    models.UserProgress{CurrentStreak: 4, LongestStreak: 6, LastActiveDate: "2026-03-10"},
			wantCurrent: 4,
			wantLongest: 6,
			wantDay:     "2026-03-10",
		},
		{
			name:        "yesterday extends the streak",
			progress:    models.UserProgress{CurrentStreak: 4, LongestStreak: 6, LastActiveDate: "2026-03-09"},
			wantCurrent: 5,
			wantLongest: 6,
			wantDay:     "2026-03-10",
		},
		{
			name:        "yesterday raises the longest streak",
			progress:    models.UserProgress{CurrentStreak: 6, LongestStreak: 6, LastActiveDate: "2026-03-09"},
			wantCurrent: 7,
			wantLongest: 7,
			wantDay:     "2026-03-10",
		},
		{
			name:        "gap restarts at one",
			progress:    models.UserProgress{CurrentStreak: 9, LongestStreak: 12, LastActiveDate: "2026-03-07"},
			wantCurrent: 1,
			wantLongest: 12,
			wantDay:     "2026-03-10",
		},
		{
			name:        "no prior activity",
			progress:    models.UserProgress{},
			wantCurrent: 1,
			wantLongest: 0,
			wantDay:     "2026-03-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateStreak(tt.progress, now)
			assert.Equal(t, tt.wantCurrent, got.CurrentStreak)
			assert.Equal(t, tt.wantLongest, got.LongestStreak)
			assert.Equal(t, tt.wantDay, got.LastActiveDate)
		})
	}
}

func TestUpdateStreakSameDayTwice(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	p := models.UserProgress{CurrentStreak: 2, LongestStreak: 2, LastActiveDate: "2026-03-09"}

	p = UpdateStreak(p, now)
	p = UpdateStreak(p, now.Add(10*time.Hour))

	assert.Equal(t, 3, p.CurrentStreak)
	assert.Equal(t, 3, p.LongestStreak)
}

func TestUpdateStreakAcrossDaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}

	// Clocks go forward on 2026-03-29; the day is only 23 hours long.
	p := models.UserProgress{CurrentStreak: 1, LongestStreak: 1, LastActiveDate: "2026-03-29"}
	got := UpdateStreak(p, day(t, loc, 2026, time.March, 30, 0))
	assert.Equal(t, 2, got.CurrentStreak)

	// Clocks go back on 2026-10-25; the day is 25 hours long.
	p = models.UserProgress{CurrentStreak: 1, LongestStreak: 1, LastActiveDate: "2026-10-25"}
	got = UpdateStreak(p, day(t, loc, 2026, time.October, 26, 23))
	assert.Equal(t, 2, got.CurrentStreak)
}

func TestPreviousDayAcrossMonthAndYear(t *testing.T) {
	assert.Equal(t, "2026-02-28", PreviousDay(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-12-31", PreviousDay(time.Date(2026, time.January, 1, 23, 59, 0, 0, time.UTC)))
}
