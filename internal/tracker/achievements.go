package tracker

import (
	"context"

	"github.com/example/questlog/internal/progress"
	"github.com/example/questlog/pkg/models"
)

// AchievementView is an achievement with the user's progress towards it
type AchievementView struct {
	models.Achievement
	// Percent is in [0, 100]
	Percent float64
}

// Achievements lists the catalog, unlocked entries first
func (t *Tracker) Achievements(ctx context.Context) []AchievementView {
	p := t.Status(ctx).Progress
	m := progress.MetricsOf(p)

	unlocked := make([]AchievementView, 0, len(p.Achievements))
	var locked []AchievementView
	for _, a := range p.Achievements {
		v := AchievementView{Achievement: a, Percent: progress.Percent(a, m) * 100}
		if a.Unlocked {
			unlocked = append(unlocked, v)
		} else {
			locked = append(locked, v)
		}
	}
	return append(unlocked, locked...)
}
