package progress

import (
	"time"

	"github.com/example/questlog/pkg/models"
)

// Metrics are the counters achievements are evaluated against
type Metrics struct {
	QuestsCompleted int
	TotalScore      int
	CurrentStreak   int
}

// MetricsOf extracts the evaluation counters from a progress record
func MetricsOf(p models.UserProgress) Metrics {
	return Metrics{
		QuestsCompleted: p.QuestsCompleted,
		TotalScore:      p.TotalScore,
		CurrentStreak:   p.CurrentStreak,
	}
}

// Value returns the counter selected by metric. ok is false for MetricNone.
func (m Metrics) Value(metric models.Metric) (value int, ok bool) {
	switch metric {
	case models.MetricStreak:
		return m.CurrentStreak, true
	case models.MetricPoints:
		return m.TotalScore, true
	case models.MetricQuestsCompleted:
		return m.QuestsCompleted, true
	}
	return 0, false
}

// Evaluate unlocks every locked achievement whose threshold is met by m.
// It returns the updated list and the achievements unlocked by this call.
// Unlocked achievements are never touched, so evaluation is idempotent.
func Evaluate(achievements []models.Achievement, m Metrics, now time.Time) ([]models.Achievement, []models.Achievement) {
	updated := make([]models.Achievement, len(achievements))
	copy(updated, achievements)

	var unlocked []models.Achievement
	for i := range updated {
		a := &updated[i]
		if a.Unlocked {
			continue
		}

		value, ok := m.Value(metricOf(*a))
		if !ok || value < a.Requirement {
			continue
		}

		at := now
		a.Unlocked = true
		a.UnlockedAt = &at
		unlocked = append(unlocked, *a)
	}

	return updated, unlocked
}

// Percent returns progress toward a as a fraction in [0, 1]. Unlocked
// achievements are complete; achievements without a metric report 0.
func Percent(a models.Achievement, m Metrics) float64 {
	if a.Unlocked {
		return 1
	}

	value, ok := m.Value(metricOf(a))
	if !ok {
		return 0
	}
	if a.Requirement <= 0 {
		return 1
	}

	ratio := float64(value) / float64(a.Requirement)
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}

func metricOf(a models.Achievement) models.Metric {
	if a.Metric != models.MetricNone {
		return a.Metric
	}
	return MetricFor(a.ID)
}
