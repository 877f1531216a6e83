package quests

import (
	"context"
	"math/rand"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/questlog/pkg/models"
	"github.com/example/questlog/pkg/monitoring"
)

const (
	// DailyCount is the number of quests handed out per day
	DailyCount = 7

	programmingPicks = 4
	generalPicks     = DailyCount - programmingPicks

	MaxTitleLength       = 50
	MaxDescriptionLength = 150
	MinPoints            = 10
	MaxPoints            = 50
	DefaultPoints        = 15

	defaultTitle       = "Daily Quest"
	defaultDescription = "Complete this quest to earn points!"
)

// Generator proposes quests, typically by asking a language model
type Generator interface {
	GenerateQuests(ctx context.Context) ([]models.QuestDraft, error)
}

// Supply produces the day's quest list. It never fails: when the generator
// is missing or misbehaves it assembles the list from the static pools.
type Supply struct {
	generator Generator
	logger    *zap.Logger
	now       func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures a Supply
type Option func(*Supply)

// WithClock overrides the creation timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Supply) { s.now = now }
}

// WithRand overrides the random source used by the fallback
func WithRand(rnd *rand.Rand) Option {
	return func(s *Supply) { s.rnd = rnd }
}

// NewSupply creates a quest supply. generator may be nil.
func NewSupply(generator Generator, logger *zap.Logger, opts ...Option) *Supply {
	s := &Supply{
		generator: generator,
		logger:    logger,
		now:       time.Now,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetDailyQuests returns a fresh quest list
func (s *Supply) GetDailyQuests(ctx context.Context) []models.Quest {
	if s.generator == nil {
		s.logger.Info("quest generator not configured, using fallback quests")
		monitoring.QuestGenerations.WithLabelValues(monitoring.SourceFallback).Inc()
		return s.Fallback()
	}

	drafts, err := s.generator.GenerateQuests(ctx)
	if err != nil {
		s.logger.Error("failed to generate quests", zap.Error(err))
		monitoring.QuestGenerations.WithLabelValues(monitoring.SourceFallback).Inc()
		return s.Fallback()
	}
	if len(drafts) == 0 {
		s.logger.Warn("generator returned no quests, using fallback quests")
		monitoring.QuestGenerations.WithLabelValues(monitoring.SourceFallback).Inc()
		return s.Fallback()
	}

	monitoring.QuestGenerations.WithLabelValues(monitoring.SourceGenerator).Inc()
	return Sanitize(drafts, s.now())
}

// DailyQuests implements the tracker's quest source
func (s *Supply) DailyQuests(ctx context.Context) ([]models.Quest, error) {
	return s.GetDailyQuests(ctx), nil
}

// RegenerateQuests implements the tracker's quest source
func (s *Supply) RegenerateQuests(ctx context.Context) ([]models.Quest, error) {
	return s.GetDailyQuests(ctx), nil
}

// Fallback samples the static pools without replacement and shuffles the result
func (s *Supply) Fallback() []models.Quest {
	s.mu.Lock()
	picked := append(sample(s.rnd, programmingPool, programmingPicks), sample(s.rnd, generalPool, generalPicks)...)
	s.rnd.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	s.mu.Unlock()

	now := s.now()
	out := make([]models.Quest, 0, len(picked))
	for _, t := range picked {
		out = append(out, models.Quest{
			ID:          newQuestID(),
			Title:       t.title,
			Description: t.description,
			Points:      t.points,
			Difficulty:  t.difficulty,
			Category:    t.category,
			CreatedAt:   now,
		})
	}
	return out
}

// Sanitize turns generator drafts into valid quests: text is truncated,
// points are clamped and unknown enum values fall back to their defaults.
func Sanitize(drafts []models.QuestDraft, now time.Time) []models.Quest {
	out := make([]models.Quest, 0, len(drafts))
	for _, d := range drafts {
		title := d.Title
		if title == "" {
			title = defaultTitle
		}
		description := d.Description
		if description == "" {
			description = defaultDescription
		}

		points := int(d.Points)
		if points == 0 {
			points = DefaultPoints
		}

		difficulty := models.Difficulty(d.Difficulty)
		if !difficulty.Valid() {
			difficulty = models.DifficultyEasy
		}
		category := models.Category(d.Category)
		if !category.Valid() {
			category = models.CategoryGeneral
		}

		out = append(out, models.Quest{
			ID:          newQuestID(),
			Title:       truncate(title, MaxTitleLength),
			Description: truncate(description, MaxDescriptionLength),
			Points:      clamp(points, MinPoints, MaxPoints),
			Difficulty:  difficulty,
			Category:    category,
			CreatedAt:   now,
		})
	}
	return out
}

func sample(rnd *rand.Rand, pool []template, n int) []template {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]template, 0, n)
	for _, i := range rnd.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}

func newQuestID() string {
	return "quest-" + uuid.NewString()
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
