package events

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/maruel/plx/models"
)

// Tail calls fn for every event in the file at path, then for every event
// appended to it until ctx is canceled or fn returns an error. The file may
// not exist yet.
func Tail(ctx context.Context, path string, kind models.ArtifactKind, fn func(*models.Event) error) error {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()
	// Watch the directory so creation and rotation are seen.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	t := tailer{path: path, kind: kind, fn: fn}
	defer t.close()
	if err := t.read(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				t.close()
				continue
			}
			if err := t.read(); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("error watching events", "path", path, "err", err)
		}
	}
}

type tailer struct {
	path string
	kind models.ArtifactKind
	fn   func(*models.Event) error
	f    *os.File
	buf  []byte
}

func (t *tailer) close() {
	if t.f != nil {
		_ = t.f.Close()
		t.f = nil
	}
	t.buf = nil
}

// read consumes the complete lines appended since the last call.
func (t *tailer) read() error {
	if t.f == nil {
		f, err := os.Open(t.path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}
		t.f = f
	}
	data, err := io.ReadAll(t.f)
	if err != nil {
		return err
	}
	t.buf = append(t.buf, data...)
	for {
		i := bytes.IndexByte(t.buf, '\n')
		if i < 0 {
			return nil
		}
		line := strings.TrimSuffix(string(t.buf[:i]), "\r")
		t.buf = t.buf[i+1:]
		if line == "" || line == Header(t.kind) {
			continue
		}
		e, err := ParseRow(t.kind, line)
		if err != nil {
			return err
		}
		if err := t.fn(e); err != nil {
			return err
		}
	}
}
