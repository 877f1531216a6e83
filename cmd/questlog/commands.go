package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/example/questlog/internal/quests"
	"github.com/example/questlog/internal/scheduler"
	"github.com/example/questlog/internal/tracker"
	"github.com/example/questlog/pkg/models"
)

var errUsage = errors.New("invalid usage")

type command struct {
	name    string
	args    string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = []command{
	{name: "today", summary: "show today's quests and your progress", run: runToday},
	{name: "complete", args: "<quest-id>", summary: "mark one of today's quests as completed", run: runComplete},
	{name: "refresh", summary: "replace today's quests with new ones", run: runRefresh},
	{name: "achievements", summary: "list achievements and your progress towards them", run: runAchievements},
	{name: "export", args: "<file.xlsx>", summary: "save your progress to an Excel file", run: runExport},
	{name: "import", args: "<file.xlsx>", summary: "restore your progress from an Excel file", run: runImport},
	{name: "reset", summary: "reset all achievements and the period counters (needs --yes)", run: runReset},
	{name: "resources", summary: "list learning resources", run: runResources},
	{name: "watch", summary: "stay running: new quests at midnight, monthly reset and a daily reminder", run: runWatch},
}

func findCommand(name string) (command, bool) {
	if name == "status" {
		name = "today"
	}
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// run executes one command. Every command except resources starts a
// session first, which applies the monthly reset and assigns today's quests.
func run(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	c, ok := findCommand(args[0])
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	return c.run(ctx, a, args[1:])
}

func runToday(ctx context.Context, a *app, _ []string) error {
	s, err := a.tracker.Start(ctx)
	if err != nil {
		return err
	}
	printStatus(a, s)
	return nil
}

func runComplete(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: complete needs a quest id", errUsage)
	}
	if _, err := a.tracker.Start(ctx); err != nil {
		return err
	}

	c, ok, err := a.tracker.CompleteQuest(ctx, args[0])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(a.out, "Quest %s is not on today's list or is already completed.\n", args[0])
		return nil
	}
	p := c.Progress
	fmt.Fprintf(a.out, "Score %d | streak %d | quests completed %d\n", p.TotalScore, p.CurrentStreak, p.QuestsCompleted)
	return nil
}

func runRefresh(ctx context.Context, a *app, _ []string) error {
	if _, err := a.tracker.Start(ctx); err != nil {
		return err
	}
	list, err := a.tracker.RefreshQuests(ctx)
	if err != nil {
		return err
	}
	printQuests(a, a.tracker.Status(ctx).Day, list)
	return nil
}

func runAchievements(ctx context.Context, a *app, _ []string) error {
	if _, err := a.tracker.Start(ctx); err != nil {
		return err
	}

	views := a.tracker.Achievements(ctx)
	unlocked := 0
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, v := range views {
		mark := "[ ]"
		detail := fmt.Sprintf("%3.0f%%", v.Percent)
		if v.Unlocked {
			unlocked++
			mark = "[x]"
			if v.UnlockedAt != nil {
				detail = v.UnlockedAt.In(a.loc).Format("2006-01-02")
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", mark, v.Title, v.Description, detail)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d of %d unlocked\n", unlocked, len(views))
	return nil
}

func runExport(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: export needs a file name", errUsage)
	}
	if _, err := a.tracker.Start(ctx); err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}
	if err := a.tracker.Export(ctx, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runImport(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: import needs a file name", errUsage)
	}
	if _, err := a.tracker.Start(ctx); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()
	return a.tracker.Import(ctx, f)
}

func runReset(ctx context.Context, a *app, _ []string) error {
	if !a.confirmed {
		fmt.Fprintln(a.out, "This resets all achievements and progress. Run again with --yes to confirm.")
		return nil
	}
	if _, err := a.tracker.Start(ctx); err != nil {
		return err
	}
	return a.tracker.ResetAchievements(ctx)
}

func runResources(ctx context.Context, a *app, _ []string) error {
	resources := quests.Resources()
	if a.client != nil {
		remote, err := a.client.Resources(ctx)
		if err != nil {
			a.logger.Sugar().Warnf("using built-in resources: %v", err)
		} else {
			resources = remote
		}
	}

	for _, r := range resources {
		fmt.Fprintf(a.out, "%s - %s\n", r.Title, r.Description)
		for _, l := range r.Links {
			fmt.Fprintf(a.out, "  %s: %s\n", l.Name, l.URL)
		}
	}
	return nil
}

func runWatch(ctx context.Context, a *app, _ []string) error {
	if _, err := a.tracker.Start(ctx); err != nil {
		return err
	}

	s, err := scheduler.New(a.tracker, a.loc, a.cfg.Scheduler.ReminderHour, a.logger)
	if err != nil {
		return err
	}
	if err := s.Start(ctx); err != nil {
		return err
	}
	defer s.Stop()

	fmt.Fprintln(a.out, "Watching. Press Ctrl+C to stop.")
	<-ctx.Done()
	return nil
}

func printStatus(a *app, s tracker.Status) {
	p := s.Progress
	fmt.Fprintf(a.out, "Score %d | streak %d (best %d) | quests completed %d\n",
		p.TotalScore, p.CurrentStreak, p.LongestStreak, p.QuestsCompleted)
	fmt.Fprintf(a.out, "Achievements reset on %s (%d days), new quests in %s\n\n",
		s.NextReset.Format("2006-01-02"), s.DaysUntilReset, s.UntilNewQuests.Truncate(time.Minute))
	printQuests(a, s.Day, s.Quests)
}

func printQuests(a *app, day string, list []models.Quest) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No quests for today yet. Try `questlog refresh`.")
		return
	}

	done := 0
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, q := range list {
		mark := "[ ]"
		if q.Completed {
			mark = "[x]"
			done++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t+%d\t%s/%s\n", mark, q.ID, q.Title, q.Points, q.Category, q.Difficulty)
	}
	w.Flush()
	fmt.Fprintf(a.out, "%s: %d of %d done\n", day, done, len(list))
}

func usageText(program string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [flags] <command> [args]\n\nCommands:\n", program)
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(w, "  %s %s\t%s\n", c.name, c.args, c.summary)
	}
	w.Flush()
	return b.String()
}
