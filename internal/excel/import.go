package excel

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/questlog/internal/progress"
	"github.com/example/questlog/pkg/models"
)

// ErrNoBackupData is returned for workbooks with neither a progress nor a
// daily quests sheet
var ErrNoBackupData = errors.New("workbook contains no backup data")

// Backup is the content of an imported workbook. A nil Progress or a false
// HasQuests means the corresponding store must be left untouched.
type Backup struct {
	Progress  *models.UserProgress
	Quests    []models.Quest
	HasQuests bool
}

// Import reads a backup workbook. Malformed cells fall back to defaults; now
// stands in for missing timestamps. Nothing is returned unless the whole
// workbook parsed.
func Import(r io.Reader, now time.Time) (*Backup, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		sheets[name] = true
	}
	if !sheets[SheetProgress] && !sheets[SheetDailyQuests] {
		return nil, ErrNoBackupData
	}

	backup := &Backup{}

	if sheets[SheetProgress] {
		p, err := readProgress(f, sheets, now)
		if err != nil {
			return nil, err
		}
		backup.Progress = &p
	}

	if sheets[SheetDailyQuests] {
		records, err := readRecords(f, SheetDailyQuests)
		if err != nil {
			return nil, err
		}
		backup.HasQuests = true
		backup.Quests = make([]models.Quest, 0, len(records))
		for _, rec := range records {
			q := parseQuest(rec, now)
			q.Completed = rec.flag(colCompleted)
			backup.Quests = append(backup.Quests, q)
		}
	}

	return backup, nil
}

func readProgress(f *excelize.File, sheets map[string]bool, now time.Time) (models.UserProgress, error) {
	records, err := readRecords(f, SheetProgress)
	if err != nil {
		return models.UserProgress{}, err
	}
	if len(records) == 0 {
		return models.UserProgress{}, fmt.Errorf("sheet %s has no data row", SheetProgress)
	}
	summary := records[0]

	p := models.UserProgress{
		TotalScore:      summary.number(colTotalScore),
		QuestsCompleted: summary.number(colQuestsCompleted),
		CurrentStreak:   summary.number(colCurrentStreak),
		LongestStreak:   summary.number(colLongestStreak),
		LastActiveDate:  summary.value(colLastActiveDate),
		Achievements:    progress.DefaultAchievements(),
		CompletedQuests: []models.Quest{},
	}

	if sheets[SheetAchievements] {
		records, err := readRecords(f, SheetAchievements)
		if err != nil {
			return models.UserProgress{}, err
		}
		p.Achievements = make([]models.Achievement, 0, len(records))
		for _, rec := range records {
			p.Achievements = append(p.Achievements, parseAchievement(rec, now))
		}
	}

	if sheets[SheetCompletedQuests] {
		records, err := readRecords(f, SheetCompletedQuests)
		if err != nil {
			return models.UserProgress{}, err
		}
		for _, rec := range records {
			q := parseQuest(rec, now)
			q.Completed = true
			p.CompletedQuests = append(p.CompletedQuests, q)
		}
	}

	return progress.Normalize(p), nil
}

func parseAchievement(rec record, now time.Time) models.Achievement {
	id := rec.value(colID)
	a := models.Achievement{
		ID:          id,
		Title:       rec.text(colTitle),
		Description: rec.text(colDescription),
		Icon:        rec.valueOr(colIcon, "Trophy"),
		Unlocked:    rec.flag(colUnlocked),
		Requirement: rec.number(colRequirement),
		Metric:      progress.MetricFor(id),
	}
	if a.Unlocked {
		at, ok := rec.timestamp(colUnlockedAt)
		if !ok {
			at = now
		}
		a.UnlockedAt = &at
	}
	return a
}

func parseQuest(rec record, now time.Time) models.Quest {
	difficulty := models.Difficulty(strings.ToLower(rec.value(colDifficulty)))
	if !difficulty.Valid() {
		difficulty = models.DifficultyEasy
	}
	category := models.Category(strings.ToLower(rec.value(colCategory)))
	if !category.Valid() {
		category = models.CategoryGeneral
	}
	createdAt, ok := rec.timestamp(colCreatedAt)
	if !ok {
		createdAt = now
	}

	return models.Quest{
		ID:          rec.value(colID),
		Title:       rec.text(colTitle),
		Description: rec.text(colDescription),
		Points:      rec.number(colPoints),
		Difficulty:  difficulty,
		Category:    category,
		CreatedAt:   createdAt,
	}
}

// readRecords returns the data rows of a sheet keyed by the header row.
// Blank rows are skipped.
func readRecords(f *excelize.File, sheet string) ([]record, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record, len(header))
		blank := true
		for i, col := range header {
			if i < len(row) {
				rec[strings.TrimSpace(col)] = row[i]
				if strings.TrimSpace(row[i]) != "" {
					blank = false
				}
			}
		}
		if !blank {
			records = append(records, rec)
		}
	}
	return records, nil
}
