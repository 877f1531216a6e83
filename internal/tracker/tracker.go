package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/example/questlog/internal/notify"
	"github.com/example/questlog/internal/progress"
	"github.com/example/questlog/pkg/models"
)

var (
	// ErrQuestsUnavailable is returned when no source produced a quest list
	ErrQuestsUnavailable = errors.New("no quests available, please try again later")
	// ErrStaleRefresh is returned by a refresh that was overtaken by a newer one
	ErrStaleRefresh = errors.New("refresh superseded by a newer request")
)

// Store persists the client's state documents
type Store interface {
	LoadProgress(ctx context.Context) (models.UserProgress, error)
	SaveProgress(ctx context.Context, p models.UserProgress) error

	LoadQuests(ctx context.Context, day string) ([]models.Quest, error)
	SaveQuests(ctx context.Context, day string, quests []models.Quest) error

	LastReset(ctx context.Context) (at time.Time, ok bool, err error)
	SetLastReset(ctx context.Context, at time.Time) error

	// Restore writes an imported backup atomically. A nil p or a nil
	// quests slice leaves that document untouched.
	Restore(ctx context.Context, p *models.UserProgress, day string, quests []models.Quest) error
}

// QuestSource hands out quest lists
type QuestSource interface {
	DailyQuests(ctx context.Context) ([]models.Quest, error)
	RegenerateQuests(ctx context.Context) ([]models.Quest, error)
}

// Tracker runs the user's actions against the store. One Tracker is the
// single writer of its store.
type Tracker struct {
	store    Store
	source   QuestSource
	fallback QuestSource
	notifier notify.Notifier
	logger   *zap.Logger
	loc      *time.Location
	now      func() time.Time

	mu sync.Mutex

	refreshMu     sync.Mutex
	refreshSeq    uint64
	cancelRefresh context.CancelFunc
}

// Option configures a Tracker
type Option func(*Tracker)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLocation sets the time zone that decides calendar days and months
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// WithFallback sets a source used when the primary source fails
func WithFallback(source QuestSource) Option {
	return func(t *Tracker) { t.fallback = source }
}

// WithNotifier replaces the default log notifier
func WithNotifier(n notify.Notifier) Option {
	return func(t *Tracker) {
		if n != nil {
			t.notifier = n
		}
	}
}

func New(store Store, source QuestSource, logger *zap.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		store:    store,
		source:   source,
		notifier: notify.NewLog(logger),
		logger:   logger,
		loc:      time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Status is a read-only view of the current state
type Status struct {
	Progress       models.UserProgress
	Quests         []models.Quest
	Day            string
	NextReset      time.Time
	DaysUntilReset int
	UntilNewQuests time.Duration
}

// Pending returns the number of today's quests not completed yet
func (s Status) Pending() int {
	n := 0
	for _, q := range s.Quests {
		if !q.Completed {
			n++
		}
	}
	return n
}

func (t *Tracker) clock() time.Time {
	return t.now().In(t.loc)
}

func (t *Tracker) status(p models.UserProgress, quests []models.Quest, now time.Time) Status {
	return Status{
		Progress:       p,
		Quests:         quests,
		Day:            progress.Day(now),
		NextReset:      progress.NextResetDate(now),
		DaysUntilReset: progress.DaysUntilReset(now),
		UntilNewQuests: progress.UntilMidnight(now),
	}
}

// loadProgress never fails: unreadable records are logged and replaced by
// the default record
func (t *Tracker) loadProgress(ctx context.Context) models.UserProgress {
	p, err := t.store.LoadProgress(ctx)
	if err != nil {
		t.logger.Warn("failed to load progress, starting from defaults", zap.Error(err))
		return progress.DefaultProgress()
	}
	return progress.Normalize(p)
}

func (t *Tracker) loadQuests(ctx context.Context, day string) []models.Quest {
	quests, err := t.store.LoadQuests(ctx, day)
	if err != nil {
		t.logger.Warn("failed to load quests", zap.String("day", day), zap.Error(err))
		return nil
	}
	return quests
}

func (t *Tracker) notify(ctx context.Context, n notify.Notice) {
	if err := t.notifier.Notify(ctx, n); err != nil {
		t.logger.Warn("failed to deliver notice", zap.String("kind", string(n.Kind)), zap.Error(err))
	}
}

// fetch asks the primary source and then the fallback for a non-empty list
func (t *Tracker) fetch(ctx context.Context, regenerate bool) ([]models.Quest, error) {
	var errs []error
	for _, source := range []QuestSource{t.source, t.fallback} {
		if source == nil {
			continue
		}

		var quests []models.Quest
		var err error
		if regenerate {
			quests, err = source.RegenerateQuests(ctx)
		} else {
			quests, err = source.DailyQuests(ctx)
		}
		if err == nil && len(quests) == 0 {
			err = errors.New("source returned an empty list")
		}
		if err == nil {
			return quests, nil
		}

		t.logger.Warn("quest source failed", zap.Error(err))
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		return nil, ErrQuestsUnavailable
	}
	return nil, fmt.Errorf("%w: %w", ErrQuestsUnavailable, errors.Join(errs...))
}
