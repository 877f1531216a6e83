package excel

import (
	"strconv"
	"strings"
	"time"
)

// Sheet names of a backup workbook
const (
	SheetProgress        = "Progress"
	SheetAchievements    = "Achievements"
	SheetDailyQuests     = "Daily Quests"
	SheetCompletedQuests = "Completed Quests"
)

// Column headers
const (
	colTotalScore      = "Total Score"
	colQuestsCompleted = "Quests Completed"
	colCurrentStreak   = "Current Streak"
	colLongestStreak   = "Longest Streak"
	colLastActiveDate  = "Last Active Date"

	colID          = "ID"
	colTitle       = "Title"
	colDescription = "Description"
	colIcon        = "Icon"
	colUnlocked    = "Unlocked"
	colUnlockedAt  = "Unlocked At"
	colRequirement = "Requirement"

	colPoints     = "Points"
	colDifficulty = "Difficulty"
	colCategory   = "Category"
	colCompleted  = "Completed"
	colCreatedAt  = "Created At"
)

const (
	yes = "Yes"
	no  = "No"

	// placeholder written for absent values
	placeholder = "-"
)

var (
	progressHeader        = []string{colTotalScore, colQuestsCompleted, colCurrentStreak, colLongestStreak, colLastActiveDate}
	achievementHeader     = []string{colID, colTitle, colDescription, colIcon, colUnlocked, colUnlockedAt, colRequirement}
	dailyQuestHeader      = []string{colID, colTitle, colDescription, colPoints, colDifficulty, colCategory, colCompleted, colCreatedAt}
	completedQuestsHeader = []string{colID, colTitle, colDescription, colPoints, colDifficulty, colCategory, colCreatedAt}
)

// record is one data row keyed by its column header
type record map[string]string

// text returns a free-text cell as written
func (r record) text(col string) string {
	return r[col]
}

// value returns a cell holding an identifier, date, number or enum with
// surrounding whitespace removed
func (r record) value(col string) string {
	return strings.TrimSpace(r[col])
}

// valueOr returns the trimmed cell, or def when the cell is empty
func (r record) valueOr(col, def string) string {
	if v := r.value(col); v != "" {
		return v
	}
	return def
}

// number parses a numeric cell. Missing or malformed numbers read as 0.
func (r record) number(col string) int {
	v := r.value(col)
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}

func (r record) flag(col string) bool {
	switch strings.ToLower(r.value(col)) {
	case "yes", "y", "true", "1", "ya":
		return true
	}
	return false
}

// timestamp parses a timestamp cell. ok is false for empty cells, the
// placeholder and anything unparseable.
func (r record) timestamp(col string) (t time.Time, ok bool) {
	v := r.value(col)
	if v == "" || v == placeholder {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func yesNo(b bool) string {
	if b {
		return yes
	}
	return no
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
