package tracker

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/example/questlog/internal/excel"
	"github.com/example/questlog/internal/notify"
	"github.com/example/questlog/internal/progress"
	"github.com/example/questlog/pkg/models"
)

// Export writes the progress record and today's quests as a backup workbook
func (t *Tracker) Export(ctx context.Context, w io.Writer) error {
	s := t.Status(ctx)
	if err := excel.Export(w, s.Progress, s.Quests); err != nil {
		return fmt.Errorf("failed to export backup: %w", err)
	}
	t.notify(ctx, notify.Notice{
		Kind:  notify.KindExported,
		Title: "Data exported",
		Body:  "Your progress has been saved to an Excel file.",
	})
	return nil
}

// Import restores a backup workbook. A sheet present in the workbook
// replaces the whole stored record; absent sheets leave the store alone.
// Nothing is written unless the workbook parsed completely, and the progress
// record and quest list are written together or not at all.
func (t *Tracker) Import(ctx context.Context, r io.Reader) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock()
	backup, err := excel.Import(r, now)
	if err != nil {
		return t.importFailed(ctx, "Could not read the Excel file.", fmt.Errorf("failed to import backup: %w", err))
	}

	var quests []models.Quest
	if backup.HasQuests {
		quests = backup.Quests
		if quests == nil {
			quests = []models.Quest{}
		}
	}
	if err := t.store.Restore(ctx, backup.Progress, progress.Day(now), quests); err != nil {
		return t.importFailed(ctx, "Could not save the imported data.", fmt.Errorf("failed to save imported backup: %w", err))
	}

	t.notify(ctx, notify.Notice{
		Kind:  notify.KindImportSucceeded,
		Title: "Data imported",
		Body:  "Your progress has been restored.",
	})
	return nil
}

func (t *Tracker) importFailed(ctx context.Context, body string, err error) error {
	t.logger.Warn("failed to import backup", zap.Error(err))
	t.notify(ctx, notify.Notice{
		Kind:  notify.KindImportFailed,
		Title: "Import failed",
		Body:  body,
	})
	return err
}
