package progress

import (
	"time"

	"github.com/example/questlog/pkg/models"
)

// Completion is the outcome of completing one quest
type Completion struct {
	Progress models.UserProgress
	Quests   []models.Quest       // Today's list with the quest marked completed
	Quest    models.Quest         // The completed quest
	Unlocked []models.Achievement // Achievements unlocked by this completion
}

// CompleteQuest applies the completion of questID from today's list.
//
// The returned bool is false, and nothing changes, when the quest is unknown
// or already completed. Inputs are never modified.
func CompleteQuest(p models.UserProgress, quests []models.Quest, questID string, now time.Time) (Completion, bool) {
	idx := -1
	for i, q := range quests {
		if q.ID == questID {
			idx = i
			break
		}
	}
	if idx < 0 || quests[idx].Completed {
		return Completion{Progress: p, Quests: quests}, false
	}

	updatedQuests := make([]models.Quest, len(quests))
	copy(updatedQuests, quests)
	updatedQuests[idx].Completed = true
	quest := updatedQuests[idx]

	p.TotalScore += quest.Points
	p.QuestsCompleted++
	p = UpdateStreak(p, now)

	history := make([]models.Quest, 0, len(p.CompletedQuests)+1)
	history = append(history, quest)
	history = append(history, p.CompletedQuests...)
	p.CompletedQuests = history

	if len(p.Achievements) == 0 {
		p.Achievements = DefaultAchievements()
	}
	var unlocked []models.Achievement
	p.Achievements, unlocked = Evaluate(p.Achievements, MetricsOf(p), now)

	return Completion{
		Progress: p,
		Quests:   updatedQuests,
		Quest:    quest,
		Unlocked: unlocked,
	}, true
}
