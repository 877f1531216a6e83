package tracker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/questlog/internal/notify"
	"github.com/example/questlog/internal/progress"
)

// Start runs the session start sequence. The periodic reset check comes
// first; a quest list is fetched only when none is stored for today.
func (t *Tracker) Start(ctx context.Context) (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock()
	if err := t.checkReset(ctx, now); err != nil {
		return Status{}, err
	}

	p := t.loadProgress(ctx)
	day := progress.Day(now)
	quests := t.loadQuests(ctx, day)
	if len(quests) == 0 {
		fetched, err := t.fetch(ctx, false)
		if err != nil {
			// Not fatal: the user can still refresh by hand.
			t.logger.Error("failed to get today's quests", zap.String("day", day), zap.Error(err))
		} else {
			quests = fetched
			if err := t.store.SaveQuests(ctx, day, quests); err != nil {
				return Status{}, fmt.Errorf("failed to save quests: %w", err)
			}
		}
	}

	return t.status(p, quests, now), nil
}

// checkReset applies the monthly reset policy. Without a recorded baseline
// the current time becomes the baseline and nothing is reset.
func (t *Tracker) checkReset(ctx context.Context, now time.Time) error {
	last, ok, err := t.store.LastReset(ctx)
	if err != nil {
		t.logger.Warn("failed to read last reset, recording a new baseline", zap.Error(err))
		ok = false
	}
	if !ok {
		if err := t.store.SetLastReset(ctx, now); err != nil {
			return fmt.Errorf("failed to record reset baseline: %w", err)
		}
		return nil
	}
	if !progress.ResetDue(last, now) {
		return nil
	}

	t.logger.Info("new period started, resetting progress",
		zap.Time("last_reset", last),
		zap.Time("now", now),
	)
	if err := t.reset(ctx, now); err != nil {
		return err
	}
	t.notify(ctx, notify.Notice{
		Kind:  notify.KindPeriodStarted,
		Title: "New period started!",
		Body:  "This month's achievements have been reset. Time for a new adventure!",
	})
	return nil
}

// reset must be called with t.mu held
func (t *Tracker) reset(ctx context.Context, now time.Time) error {
	p := progress.ExecuteReset(t.loadProgress(ctx))
	if err := t.store.SaveProgress(ctx, p); err != nil {
		return fmt.Errorf("failed to save reset progress: %w", err)
	}
	if err := t.store.SetLastReset(ctx, now); err != nil {
		return fmt.Errorf("failed to record reset: %w", err)
	}
	return nil
}

// Status returns the stored state without fetching anything
func (t *Tracker) Status(ctx context.Context) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock()
	return t.status(t.loadProgress(ctx), t.loadQuests(ctx, progress.Day(now)), now)
}
