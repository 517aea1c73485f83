// Package logging configures slog for the plx binaries.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ParseLevel converts "debug", "info", "warn" or "error" into a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// Init installs a tint handler on stderr as the default slog logger.
// Timestamps are omitted under systemd (JOURNAL_STREAM), colors when stderr
// is not a terminal, and zero-value attributes are dropped.
func Init(level string) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}
	ll := &slog.LevelVar{}
	ll.Set(l)
	underSystemd := os.Getenv("JOURNAL_STREAM") != ""
	noColor := !isatty.IsTerminal(os.Stderr.Fd())
	slog.SetDefault(slog.New(NewHandler(colorable.NewColorable(os.Stderr), ll, noColor, underSystemd)))
	return nil
}

// NewHandler returns the tint handler used by Init.
func NewHandler(w io.Writer, level slog.Leveler, noColor, noTime bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if noTime && a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if isZero(a.Value.Any()) {
				return slog.Attr{}
			}
			return a
		},
	})
}

func isZero(val any) bool {
	switch t := val.(type) {
	case string:
		return t == ""
	case bool:
		return !t
	case uint64:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	case time.Time:
		return t.IsZero()
	case time.Duration:
		return t == 0
	case nil:
		return true
	}
	return false
}
