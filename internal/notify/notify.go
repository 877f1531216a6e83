package notify

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Kind classifies a notice
type Kind string

const (
	KindQuestCompleted      Kind = "quest_completed"
	KindAchievementUnlocked Kind = "achievement_unlocked"
	KindPeriodStarted       Kind = "period_started"
	KindAchievementsReset   Kind = "achievements_reset"
	KindQuestsRefreshed     Kind = "quests_refreshed"
	KindRefreshFailed       Kind = "refresh_failed"
	KindExported            Kind = "exported"
	KindImportSucceeded     Kind = "import_succeeded"
	KindImportFailed        Kind = "import_failed"
	KindReminder            Kind = "reminder"
)

// Notice is a short message shown to the user
type Notice struct {
	Kind  Kind
	Title string
	Body  string
}

// Failure reports whether the notice tells the user something went wrong
func (n Notice) Failure() bool {
	return n.Kind == KindRefreshFailed || n.Kind == KindImportFailed
}

// Notifier delivers notices to the user
type Notifier interface {
	Notify(ctx context.Context, n Notice) error
}

// Log writes notices to a zap logger
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Notify(_ context.Context, n Notice) error {
	fields := []zap.Field{zap.String("kind", string(n.Kind)), zap.String("body", n.Body)}
	if n.Failure() {
		l.logger.Warn(n.Title, fields...)
	} else {
		l.logger.Info(n.Title, fields...)
	}
	return nil
}

// Multi fans a notice out to several notifiers. Every notifier is tried;
// the errors are joined.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notice) error {
	var errs []error
	for _, notifier := range m {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
