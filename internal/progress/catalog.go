package progress

import (
	"strings"

	"github.com/example/questlog/pkg/models"
)

// FirstQuestID is the achievement granted for the very first completed quest
const FirstQuestID = "first_quest"

var defaultAchievements = []models.Achievement{
	{ID: FirstQuestID, Title: "First Steps", Description: "Complete your first quest", Icon: "Trophy", Requirement: 1, Metric: models.MetricQuestsCompleted},
	{ID: "five_quests", Title: "Getting Going", Description: "Complete 5 quests", Icon: "Star", Requirement: 5, Metric: models.MetricQuestsCompleted},
	{ID: "ten_quests", Title: "Diligent Learner", Description: "Complete 10 quests", Icon: "Award", Requirement: 10, Metric: models.MetricQuestsCompleted},
	{ID: "twenty_five_quests", Title: "Knowledge Seeker", Description: "Complete 25 quests", Icon: "Medal", Requirement: 25, Metric: models.MetricQuestsCompleted},
	{ID: "fifty_quests", Title: "Programming Master", Description: "Complete 50 quests", Icon: "Crown", Requirement: 50, Metric: models.MetricQuestsCompleted},
	{ID: "hundred_quests", Title: "Coding Legend", Description: "Complete 100 quests", Icon: "Rocket", Requirement: 100, Metric: models.MetricQuestsCompleted},
	{ID: "two_hundred_quests", Title: "Grandmaster", Description: "Complete 200 quests", Icon: "Gem", Requirement: 200, Metric: models.MetricQuestsCompleted},
	{ID: "hundred_points", Title: "Hundred Club", Description: "Earn 100 points", Icon: "Zap", Requirement: 100, Metric: models.MetricPoints},
	{ID: "five_hundred_points", Title: "Point Hunter", Description: "Earn 500 points", Icon: "TrendingUp", Requirement: 500, Metric: models.MetricPoints},
	{ID: "thousand_points", Title: "Point King", Description: "Earn 1000 points", Icon: "Crown", Requirement: 1000, Metric: models.MetricPoints},
	{ID: "five_thousand_points", Title: "Point Deity", Description: "Earn 5000 points", Icon: "Sparkles", Requirement: 5000, Metric: models.MetricPoints},
	{ID: "streak_three", Title: "Heating Up", Description: "Keep a 3 day streak", Icon: "Flame", Requirement: 3, Metric: models.MetricStreak},
	{ID: "streak_seven", Title: "Weekly Warrior", Description: "Keep a 7 day streak", Icon: "Target", Requirement: 7, Metric: models.MetricStreak},
	{ID: "streak_fourteen", Title: "Truly Consistent", Description: "Keep a 14 day streak", Icon: "Shield", Requirement: 14, Metric: models.MetricStreak},
	{ID: "streak_thirty", Title: "Month Warrior", Description: "Keep a 30 day streak", Icon: "Sword", Requirement: 30, Metric: models.MetricStreak},

	// No rule unlocks these: the signals they need (completion time of day,
	// difficulty history, full daily set) are not part of UserProgress.
	{ID: "perfect_day", Title: "Perfect Day", Description: "Complete all 7 quests in one day", Icon: "CheckCircle", Requirement: 7},
	{ID: "hard_quest_master", Title: "Challenge Conqueror", Description: "Complete 10 hard quests", Icon: "Mountain", Requirement: 10},
	{ID: "hard_quest_legend", Title: "Challenge Legend", Description: "Complete 50 hard quests", Icon: "Trophy", Requirement: 50},
	{ID: "early_bird", Title: "Early Bird", Description: "Complete a quest before 8 AM", Icon: "Sun", Requirement: 1},
	{ID: "night_owl", Title: "Night Owl", Description: "Complete a quest after 10 PM", Icon: "Moon", Requirement: 1},
}

// DefaultAchievements returns a fresh copy of the achievement catalog, all locked
func DefaultAchievements() []models.Achievement {
	out := make([]models.Achievement, len(defaultAchievements))
	copy(out, defaultAchievements)
	return out
}

// DefaultProgress returns the zero progress record
func DefaultProgress() models.UserProgress {
	return models.UserProgress{
		Achievements:    DefaultAchievements(),
		CompletedQuests: []models.Quest{},
	}
}

// MetricFor returns the metric governing the achievement with the given id.
// Catalog entries win; unknown ids fall back to the naming convention used by
// older backups.
func MetricFor(id string) models.Metric {
	for _, a := range defaultAchievements {
		if a.ID == id {
			return a.Metric
		}
	}

	switch {
	case strings.Contains(id, "streak"):
		return models.MetricStreak
	case strings.Contains(id, "_points"):
		return models.MetricPoints
	case strings.Contains(id, "_quests"), id == FirstQuestID:
		return models.MetricQuestsCompleted
	}
	return models.MetricNone
}

// Normalize repairs a loaded record: an empty achievement list becomes the
// default catalog, missing metric tags are derived from the id and a nil
// history becomes empty.
func Normalize(p models.UserProgress) models.UserProgress {
	if len(p.Achievements) == 0 {
		p.Achievements = DefaultAchievements()
	} else {
		achievements := make([]models.Achievement, len(p.Achievements))
		copy(achievements, p.Achievements)
		for i := range achievements {
			if achievements[i].Metric == models.MetricNone {
				achievements[i].Metric = MetricFor(achievements[i].ID)
			}
		}
		p.Achievements = achievements
	}

	if p.CompletedQuests == nil {
		p.CompletedQuests = []models.Quest{}
	}
	return p
}
