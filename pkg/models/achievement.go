package models

import "time"

// Metric names the progress counter an achievement is measured against
type Metric string

const (
	// MetricNone marks an achievement that is never unlocked automatically
	MetricNone            Metric = ""
	MetricStreak          Metric = "streak"
	MetricPoints          Metric = "points"
	MetricQuestsCompleted Metric = "quests_completed"
)

// Achievement is a persistent badge unlocked by crossing a metric threshold
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
	Requirement int        `json:"requirement"`
	Metric      Metric     `json:"metric,omitempty"`
}
