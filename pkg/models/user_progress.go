package models

// UserProgress is the durable aggregate of one user's score, counts, streak,
// achievements and quest history
type UserProgress struct {
	TotalScore      int           `json:"totalScore"`
	QuestsCompleted int           `json:"questsCompleted"`
	CurrentStreak   int           `json:"currentStreak"` // Consecutive days with a completed quest
	LongestStreak   int           `json:"longestStreak"`
	LastActiveDate  string        `json:"lastActiveDate"` // Local calendar day, YYYY-MM-DD
	Achievements    []Achievement `json:"achievements"`
	CompletedQuests []Quest       `json:"completedQuests"` // Most recent first
}
