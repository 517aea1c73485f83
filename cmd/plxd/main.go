// Command plxd serves the reference platform API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/maruel/plx/internal/logging"
	"github.com/maruel/plx/internal/server"
	"golang.org/x/time/rate"
)

func mainImpl() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	addr := flag.String("http", ":8000", "address to listen on")
	dataDir := flag.String("data", "", "directory holding the database and run events (default $XDG_DATA_HOME/plxd)")
	token := flag.String("token", os.Getenv("PLXD_TOKEN"), "API token required on every request; empty disables auth")
	healthRate := flag.Float64("health-rate", 10, "max /healthz requests per second per client IP")
	healthBurst := flag.Int("health-burst", 20, "/healthz burst per client IP")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	watch := flag.Bool("watch", false, "exit when the executable is rebuilt")
	flag.Parse()
	if args := flag.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	if err := logging.Init(*logLevel); err != nil {
		return err
	}
	if *dataDir == "" {
		*dataDir = defaultDataDir()
	}
	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		return err
	}
	if *token == "" {
		slog.Warn("authentication disabled")
	}

	if *watch {
		// Exit when executable is rebuilt (systemd restarts the service).
		if err := watchExecutable(ctx, cancel); err != nil {
			slog.Warn("failed to watch executable", "err", err)
		}
	}
	srv, err := server.New(ctx, &server.Options{
		Token:       *token,
		DataDir:     *dataDir,
		HealthRate:  rate.Limit(*healthRate),
		HealthBurst: *healthBurst,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			slog.Error("failed to close database", "err", err)
		}
	}()
	slog.Info("serving", "data", *dataDir)
	return srv.ListenAndServe(ctx, *addr)
}

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "plxd: %v\n", err)
		os.Exit(1)
	}
}

// defaultDataDir returns $XDG_DATA_HOME/plxd with a fallback to
// ~/.local/share/plxd.
func defaultDataDir() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "plxd")
}

// watchExecutable watches the current executable for modifications and calls
// stop to trigger graceful shutdown when detected.
func watchExecutable(ctx context.Context, stop context.CancelFunc) error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(exe); err != nil {
		_ = w.Close()
		return err
	}
	go func() {
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Chmod) {
					slog.Info("executable modified, shutting down")
					stop()
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("error watching executable", "err", err)
			}
		}
	}()
	return nil
}
