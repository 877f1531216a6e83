package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/example/questlog/internal/config"
	"github.com/example/questlog/pkg/logger"
)

func main() {
	flags := pflag.NewFlagSet("questlog", pflag.ExitOnError)
	configDir := flags.StringP("config", "c", ".", "directory holding config.yaml")
	serverURL := flags.StringP("server", "s", "", "quest server URL, overrides client.server_url")
	dsn := flags.String("db", "", "store DSN, overrides store.dsn")
	timezone := flags.String("tz", "", "time zone deciding days and months, overrides client.timezone")
	yes := flags.BoolP("yes", "y", false, "confirm destructive commands")
	verbose := flags.BoolP("verbose", "v", false, "log everything to stderr")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usageText("questlog"))
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "questlog: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Client.ServerURL = *serverURL
	}
	if *dsn != "" {
		cfg.Store.DSN = *dsn
	}
	if *timezone != "" {
		cfg.Client.Timezone = *timezone
	}

	lg := logger.New(logger.Options{
		Debug: cfg.Log.Debug || *verbose,
		Quiet: !*verbose,
		File:  cfg.Log.File,
	})
	defer lg.Sync()

	args := flags.Args()
	watch := len(args) > 0 && args[0] == "watch"

	a, err := newApp(cfg, lg, os.Stdout, watch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "questlog: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()
	a.confirmed = *yes

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, a, args); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "questlog: %v\n\n", err)
			flags.Usage()
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "questlog: %v\n", err)
		os.Exit(1)
	}
}
