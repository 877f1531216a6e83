package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/questlog/pkg/models"
)

func findAchievement(t *testing.T, achievements []models.Achievement, id string) models.Achievement {
	t.Helper()
	for _, a := range achievements {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %q not found", id)
	return models.Achievement{}
}

func TestEvaluateQuestThreshold(t *testing.T) {
	now := time.Date(2026, time.May, 2, 10, 0, 0, 0, time.UTC)
	achievements := DefaultAchievements()

	updated, unlocked := Evaluate(achievements, Metrics{QuestsCompleted: 4}, now)
	assert.False(t, findAchievement(t, updated, "five_quests").Unlocked)
	assert.Len(t, unlocked, 1)
	assert.Equal(t, FirstQuestID, unlocked[0].ID)

	updated, unlocked = Evaluate(updated, Metrics{QuestsCompleted: 5}, now)
	five := findAchievement(t, updated, "five_quests")
	assert.True(t, five.Unlocked)
	require.NotNil(t, five.UnlockedAt)
	assert.True(t, five.UnlockedAt.Equal(now))
	require.Len(t, unlocked, 1)
	assert.Equal(t, "five_quests", unlocked[0].ID)
}

func TestEvaluateMetricFamilies(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		metrics Metrics
		want    []string
	}{
		{name: "points", metrics: Metrics{TotalScore: 500}, want: []string{"hundred_points", "five_hundred_points"}},
		{name: "streak", metrics: Metrics{CurrentStreak: 7}, want: []string{"streak_three", "streak_seven"}},
		{name: "quests", metrics: Metrics{QuestsCompleted: 10}, want: []string{FirstQuestID, "five_quests", "ten_quests"}},
		{name: "nothing", metrics: Metrics{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, unlocked := Evaluate(DefaultAchievements(), tt.metrics, now)
			var ids []string
			for _, a := range unlocked {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestEvaluateNeverRelocks(t *testing.T) {
	now := time.Now()
	updated, _ := Evaluate(DefaultAchievements(), Metrics{QuestsCompleted: 200, TotalScore: 5000, CurrentStreak: 30}, now)

	again, unlocked := Evaluate(updated, Metrics{}, now.Add(time.Hour))
	assert.Empty(t, unlocked)
	for i, a := range again {
		assert.Equal(t, updated[i].Unlocked, a.Unlocked, a.ID)
		assert.Equal(t, updated[i].UnlockedAt, a.UnlockedAt, a.ID)
	}
}

func TestEvaluateSkipsUngovernedAchievements(t *testing.T) {
	huge := Metrics{QuestsCompleted: 10000, TotalScore: 10000, CurrentStreak: 10000}
	updated, _ := Evaluate(DefaultAchievements(), huge, time.Now())

	for _, id := range []string{"perfect_day", "hard_quest_master", "hard_quest_legend", "early_bird", "night_owl"} {
		assert.False(t, findAchievement(t, updated, id).Unlocked, id)
	}
}

func TestEvaluateDoesNotModifyInput(t *testing.T) {
	achievements := DefaultAchievements()
	Evaluate(achievements, Metrics{QuestsCompleted: 1}, time.Now())
	assert.False(t, achievements[0].Unlocked)
}

func TestEvaluateUntaggedAchievement(t *testing.T) {
	achievements := []models.Achievement{{ID: "seven_quests", Requirement: 7}}
	_, unlocked := Evaluate(achievements, Metrics{QuestsCompleted: 7}, time.Now())
	assert.Len(t, unlocked, 1)
}

func TestPercent(t *testing.T) {
	at := time.Now()
	tests := []struct {
		name        string
		achievement models.Achievement
		metrics     Metrics
		want        float64
	}{
		{name: "unlocked", achievement: models.Achievement{Unlocked: true, UnlockedAt: &at, Requirement: 10, Metric: models.MetricPoints}, want: 1},
		{name: "half way", achievement: models.Achievement{Requirement: 10, Metric: models.MetricQuestsCompleted}, metrics: Metrics{QuestsCompleted: 5}, want: 0.5},
		{name: "capped", achievement: models.Achievement{Requirement: 3, Metric: models.MetricStreak}, metrics: Metrics{CurrentStreak: 9}, want: 1},
		{name: "no metric", achievement: models.Achievement{ID: "night_owl", Requirement: 1}, metrics: Metrics{QuestsCompleted: 50}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percent(tt.achievement, tt.metrics), 1e-9)
		})
	}
}

func TestMetricFor(t *testing.T) {
	assert.Equal(t, models.MetricQuestsCompleted, MetricFor(FirstQuestID))
	assert.Equal(t, models.MetricStreak, MetricFor("streak_ninety"))
	assert.Equal(t, models.MetricPoints, MetricFor("ten_thousand_points"))
	assert.Equal(t, models.MetricQuestsCompleted, MetricFor("three_hundred_quests"))
	assert.Equal(t, models.MetricNone, MetricFor("hard_quest_master"))
	assert.Equal(t, models.MetricNone, MetricFor("mystery"))
}

func TestNormalize(t *testing.T) {
	p := Normalize(models.UserProgress{})
	assert.Len(t, p.Achievements, len(defaultAchievements))
	assert.NotNil(t, p.CompletedQuests)

	p = Normalize(models.UserProgress{Achievements: []models.Achievement{{ID: "ten_quests", Requirement: 10}}})
	require.Len(t, p.Achievements, 1)
	assert.Equal(t, models.MetricQuestsCompleted, p.Achievements[0].Metric)
}
