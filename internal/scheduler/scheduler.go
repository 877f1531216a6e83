package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/example/questlog/internal/tracker"
)

// DefaultReminderHour is the local hour of the daily reminder
const DefaultReminderHour = 18

// Jobs is the work run on schedule
type Jobs interface {
	Start(ctx context.Context) (tracker.Status, error)
	Remind(ctx context.Context) error
}

// Scheduler runs the calendar check at every local midnight and the
// reminder once a day
type Scheduler struct {
	scheduler    *gocron.Scheduler
	jobs         Jobs
	logger       *zap.Logger
	reminderHour int
	ctx          context.Context
}

// New creates a new scheduler instance working in loc
func New(jobs Jobs, loc *time.Location, reminderHour int, logger *zap.Logger) (*Scheduler, error) {
	if reminderHour < 0 || reminderHour > 23 {
		return nil, fmt.Errorf("reminder hour %d out of range 0-23", reminderHour)
	}
	if loc == nil {
		loc = time.Local
	}

	s := gocron.NewScheduler(loc)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler:    s,
		jobs:         jobs,
		logger:       logger,
		reminderHour: reminderHour,
		ctx:          context.Background(),
	}, nil
}

// Start registers the jobs and runs them in the background until ctx is
// done or Stop is called
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx = ctx

	if _, err := s.scheduler.Every(1).Day().At("00:00").Do(s.calendarCheck); err != nil {
		return fmt.Errorf("failed to schedule calendar check: %w", err)
	}
	at := fmt.Sprintf("%02d:00", s.reminderHour)
	if _, err := s.scheduler.Every(1).Day().At(at).Do(s.remind); err != nil {
		return fmt.Errorf("failed to schedule reminder: %w", err)
	}

	s.scheduler.StartAsync()
	s.logger.Info("scheduler started", zap.String("reminder_at", at))
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// calendarCheck runs the session start sequence, which resets the period
// on a new month and fetches the new day's quests
func (s *Scheduler) calendarCheck() {
	status, err := s.jobs.Start(s.ctx)
	if err != nil {
		s.logger.Error("calendar check failed", zap.Error(err))
		return
	}
	s.logger.Info("calendar check done",
		zap.String("day", status.Day),
		zap.Int("quests", len(status.Quests)),
		zap.Int("days_until_reset", status.DaysUntilReset),
	)
}

func (s *Scheduler) remind() {
	if err := s.jobs.Remind(s.ctx); err != nil {
		s.logger.Error("failed to send reminder", zap.Error(err))
	}
}
