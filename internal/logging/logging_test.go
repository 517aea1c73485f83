package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	data := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, line := range data {
		got, err := ParseLevel(line.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != line.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", line.in, got, line.want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected error")
	}
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelInfo, true, true))
	log.Debug("hidden")
	log.Info("request", "method", "GET", "empty", "", "n", 0, "ok", false, "code", 200)
	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug line logged: %q", got)
	}
	for _, want := range []string{"request", "method=GET", "code=200"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q lacks %q", got, want)
		}
	}
	for _, unwanted := range []string{"empty=", "n=", "ok="} {
		if strings.Contains(got, unwanted) {
			t.Errorf("output %q contains zero attribute %q", got, unwanted)
		}
	}
	if strings.Count(got, ":") != 0 {
		t.Errorf("output %q contains a timestamp", got)
	}
}
