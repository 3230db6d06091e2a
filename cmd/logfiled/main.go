// logfiled is a small HTTP service demonstrating the logfile backend and
// the host bridge.
//
// Usage:
//
//	logfiled [--config logging.yaml] [--addr :8080] [--interval 1s] [--watch]
//
// GET /api/log logs a warning directly through the backend. A background
// loop logs an information entry through the bridge on every tick. With
// --watch the level filters follow changes to the config file.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/philipp01105/logfile"
	"github.com/philipp01105/logfile/bridge"
	"github.com/philipp01105/logfile/config"
	"github.com/philipp01105/logfile/core"
)

const (
	defaultAddr     = ":8080"
	defaultInterval = time.Second
	shutdownTimeout = 5 * time.Second
)

// Version can be set with -ldflags "-X main.Version=..."
var Version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := createApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func createApp() *cli.Command {
	return &cli.Command{
		Name:    "logfiled",
		Usage:   "serve a demo API that logs through logfile",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML or JSON logging config (default: console, all levels)",
			},
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "listen address",
				Value:   defaultAddr,
			},
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "ticker interval",
				Value:   defaultInterval,
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "reload level filters when the config file changes",
			},
		},
		Action: serve,
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	lf, err := cfg.Build(logfile.WithCoarseClock())
	if err != nil {
		return err
	}
	defer lf.Close()

	provider, err := bridge.NewStandardProvider(lf, bridge.WithOnError(func(err error) {
		fmt.Fprintln(os.Stderr, "logfiled: dropped log entry:", err)
	}))
	if err != nil {
		return err
	}
	defer provider.Close()

	if cmd.Bool("watch") && cmd.String("config") != "" {
		w, err := config.Watch(cmd.String("config"), lf, config.WithReloadFunc(func(_ *config.Config, err error) {
			if err != nil {
				fmt.Fprintln(os.Stderr, "logfiled: config reload failed:", err)
			}
		}))
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	httpLogger, err := provider.CreateLogger("http")
	if err != nil {
		return err
	}
	tickLogger, err := provider.CreateLogger("ticker")
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cmd.String("addr"),
		Handler:           newRouter(lf.Proxy("api"), slogFor(httpLogger)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	go runTicker(ctx, tickLogger, cmd.Duration("interval"))

	_ = lf.Log(core.InfoLevel, "listening", core.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
