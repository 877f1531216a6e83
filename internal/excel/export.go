package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/example/questlog/pkg/models"
)

// Export writes a backup workbook holding the progress record and today's
// quest list. Quest sheets are left out when their list is empty.
func Export(w io.Writer, p models.UserProgress, quests []models.Quest) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetProgress)

	progressRows := [][]any{{
		p.TotalScore,
		p.QuestsCompleted,
		p.CurrentStreak,
		p.LongestStreak,
		p.LastActiveDate,
	}}
	if err := writeSheet(f, SheetProgress, progressHeader, progressRows); err != nil {
		return err
	}

	achievementRows := make([][]any, 0, len(p.Achievements))
	for _, a := range p.Achievements {
		unlockedAt := placeholder
		if a.UnlockedAt != nil {
			unlockedAt = formatTime(*a.UnlockedAt)
		}
		achievementRows = append(achievementRows, []any{
			a.ID, a.Title, a.Description, a.Icon, yesNo(a.Unlocked), unlockedAt, a.Requirement,
		})
	}
	if err := addSheet(f, SheetAchievements, achievementHeader, achievementRows); err != nil {
		return err
	}

	if len(quests) > 0 {
		rows := make([][]any, 0, len(quests))
		for _, q := range quests {
			rows = append(rows, []any{
				q.ID, q.Title, q.Description, q.Points, string(q.Difficulty), string(q.Category), yesNo(q.Completed), formatTime(q.CreatedAt),
			})
		}
		if err := addSheet(f, SheetDailyQuests, dailyQuestHeader, rows); err != nil {
			return err
		}
	}

	if len(p.CompletedQuests) > 0 {
		rows := make([][]any, 0, len(p.CompletedQuests))
		for _, q := range p.CompletedQuests {
			rows = append(rows, []any{
				q.ID, q.Title, q.Description, q.Points, string(q.Difficulty), string(q.Category), formatTime(q.CreatedAt),
			})
		}
		if err := addSheet(f, SheetCompletedQuests, completedQuestsHeader, rows); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func addSheet(f *excelize.File, name string, header []string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	return writeSheet(f, name, header, rows)
}

func writeSheet(f *excelize.File, name string, header []string, rows [][]any) error {
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i+2, err)
		}
	}
	return nil
}
