package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/questlog/internal/ai"
	"github.com/example/questlog/internal/config"
	"github.com/example/questlog/internal/quests"
	"github.com/example/questlog/internal/server"
	"github.com/example/questlog/pkg/logger"
)

func main() {
	cfg, err := config.Load(".", "configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg := logger.New(logger.Options{Debug: cfg.Log.Debug, File: cfg.Log.File})
	defer lg.Sync()

	// Without an API key every list comes from the static pools
	var generator quests.Generator
	gpt, err := ai.New(ai.Config{
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
		Timeout: cfg.AI.Timeout,
	})
	if err != nil {
		lg.Warn("quest generator disabled, serving fallback quests", zap.Error(err))
	} else {
		generator = gpt
	}

	supply := quests.NewSupply(generator, lg)
	router := server.NewRouter(server.Config{
		Mode:           cfg.Server.Mode,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, supply, quests.Resources(), lg)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		lg.Info("shutting down server")

		// Give in-flight generations time to finish
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		lg.Fatal("server stopped with error", zap.Error(err))
	}
	lg.Info("server stopped")
}
