package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/example/questlog/internal/ai"
	"github.com/example/questlog/internal/client"
	"github.com/example/questlog/internal/config"
	"github.com/example/questlog/internal/database"
	"github.com/example/questlog/internal/notify"
	"github.com/example/questlog/internal/quests"
	"github.com/example/questlog/internal/tracker"
)

// app holds everything a command needs
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	out     io.Writer
	loc     *time.Location
	db      *sqlx.DB
	tracker *tracker.Tracker

	// client is nil when quests are generated locally
	client *client.Client
	// confirmed is set by --yes
	confirmed bool
}

// newApp wires the store, the quest sources and the notifiers. Telegram
// notices are only sent when withTelegram is set.
func newApp(cfg *config.Config, lg *zap.Logger, out io.Writer, withTelegram bool) (*app, error) {
	loc, err := cfg.Client.Location()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	var generator quests.Generator
	if cfg.AI.APIKey != "" {
		gpt, err := ai.New(ai.Config{
			APIKey:  cfg.AI.APIKey,
			BaseURL: cfg.AI.BaseURL,
			Model:   cfg.AI.Model,
			Timeout: cfg.AI.Timeout,
		})
		if err != nil {
			db.Close()
			return nil, err
		}
		generator = gpt
	}
	local := quests.NewSupply(generator, lg)

	notifiers := notify.Multi{notify.NewConsole(out)}
	if withTelegram && cfg.Telegram.Token != "" {
		tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			lg.Warn("telegram notices disabled", zap.Error(err))
		} else {
			notifiers = append(notifiers, tg)
		}
	}

	a := &app{
		cfg:    cfg,
		logger: lg,
		out:    out,
		loc:    loc,
		db:     db,
	}

	opts := []tracker.Option{
		tracker.WithLocation(loc),
		tracker.WithNotifier(notifiers),
	}
	var source tracker.QuestSource = local
	if cfg.Client.ServerURL != "" {
		a.client = client.New(cfg.Client.ServerURL, cfg.Client.Timeout)
		source = a.client
		// The local pools keep the day going when the server is down
		opts = append(opts, tracker.WithFallback(local))
	}

	a.tracker = tracker.New(database.NewStore(db), source, lg, opts...)
	return a, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
