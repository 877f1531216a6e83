package tracker

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/questlog/internal/notify"
	"github.com/example/questlog/internal/progress"
	"github.com/example/questlog/pkg/models"
)

// CompleteQuest completes one of today's quests. Unknown or already
// completed quests are ignored and reported with ok false.
func (t *Tracker) CompleteQuest(ctx context.Context, questID string) (c progress.Completion, ok bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock()
	day := progress.Day(now)
	p := t.loadProgress(ctx)
	quests := t.loadQuests(ctx, day)

	c, ok = progress.CompleteQuest(p, quests, questID, now)
	if !ok {
		t.logger.Debug("quest not completable", zap.String("quest_id", questID))
		return c, false, nil
	}

	if err := t.store.SaveQuests(ctx, day, c.Quests); err != nil {
		return c, false, fmt.Errorf("failed to save quests: %w", err)
	}
	if err := t.store.SaveProgress(ctx, c.Progress); err != nil {
		return c, false, fmt.Errorf("failed to save progress: %w", err)
	}

	for _, a := range c.Unlocked {
		t.notify(ctx, notify.Notice{
			Kind:  notify.KindAchievementUnlocked,
			Title: "Achievement unlocked!",
			Body:  fmt.Sprintf("%s - %s", a.Title, a.Description),
		})
	}
	t.notify(ctx, notify.Notice{
		Kind:  notify.KindQuestCompleted,
		Title: "Quest completed!",
		Body:  fmt.Sprintf("You earned +%d points!", c.Quest.Points),
	})
	return c, true, nil
}

// RefreshQuests replaces today's list with a freshly generated one.
//
// Every call supersedes the previous one: the older request is cancelled
// and its result, should it still arrive, is dropped with ErrStaleRefresh.
func (t *Tracker) RefreshQuests(ctx context.Context) ([]models.Quest, error) {
	t.refreshMu.Lock()
	if t.cancelRefresh != nil {
		t.cancelRefresh()
	}
	t.refreshSeq++
	seq := t.refreshSeq
	ctx, cancel := context.WithCancel(ctx)
	t.cancelRefresh = cancel
	t.refreshMu.Unlock()
	defer cancel()

	quests, fetchErr := t.fetch(ctx, true)

	// Held until the result is stored so a newer refresh cannot be
	// overwritten by this one.
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	if seq != t.refreshSeq {
		t.logger.Info("dropping stale quest refresh", zap.Uint64("request", seq), zap.Uint64("latest", t.refreshSeq))
		return nil, ErrStaleRefresh
	}
	t.cancelRefresh = nil

	if fetchErr != nil {
		if !errors.Is(fetchErr, context.Canceled) {
			t.notify(ctx, notify.Notice{
				Kind:  notify.KindRefreshFailed,
				Title: "Failed to create quests",
				Body:  "Please try again later.",
			})
		}
		return nil, fetchErr
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	day := progress.Day(t.clock())
	if err := t.store.SaveQuests(ctx, day, quests); err != nil {
		return nil, fmt.Errorf("failed to save quests: %w", err)
	}
	t.notify(ctx, notify.Notice{
		Kind:  notify.KindQuestsRefreshed,
		Title: "New quests created!",
		Body:  "Your daily challenges have been updated.",
	})
	return quests, nil
}

// ResetAchievements runs the periodic reset on demand
func (t *Tracker) ResetAchievements(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.reset(ctx, t.clock()); err != nil {
		return err
	}
	t.notify(ctx, notify.Notice{
		Kind:  notify.KindAchievementsReset,
		Title: "Achievements reset",
		Body:  "All achievements have been reset. Time for a new adventure!",
	})
	return nil
}

// Remind sends the daily reminder when today's list still has open quests
func (t *Tracker) Remind(ctx context.Context) error {
	s := t.Status(ctx)

	var body string
	switch pending := s.Pending(); {
	case len(s.Quests) == 0:
		body = "New quests are waiting for you today."
	case pending == 0:
		t.logger.Debug("all quests done, no reminder needed")
		return nil
	case s.Progress.CurrentStreak > 0:
		body = fmt.Sprintf("%d quests left today. Keep your %d day streak alive!", pending, s.Progress.CurrentStreak)
	default:
		body = fmt.Sprintf("%d quests left today.", pending)
	}

	t.notify(ctx, notify.Notice{Kind: notify.KindReminder, Title: "Daily quests", Body: body})
	return nil
}
