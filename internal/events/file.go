package events

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/plx/models"
)

// Ext is the extension of event files.
const Ext = ".plx"

// ValidName returns an error if name cannot be used as an event file name.
func ValidName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`+Separator+"\n") {
		return fmt.Errorf("invalid event name %q", name)
	}
	return nil
}

// Path returns the file holding the events of the given kind and name under
// root.
func Path(root string, kind models.ArtifactKind, name string) string {
	return filepath.Join(root, "events", string(kind), name+Ext)
}

// Names returns the sorted names of the events of kind stored under root.
func Names(root string, kind models.ArtifactKind) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(root, "events", string(kind)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), Ext); ok && !e.IsDir() {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out, nil
}

// Append appends events to the file at path, creating it with its header
// when needed. Every event must carry the primitive matching kind.
func Append(path string, kind models.ArtifactKind, events ...*models.Event) error {
	if err := CheckKind(kind); err != nil {
		return err
	}
	var b strings.Builder
	for i, e := range events {
		row, err := FormatRow(kind, e)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return err
	}
	out := b.String()
	if st.Size() == 0 {
		out = Header(kind) + "\n" + out
	}
	if _, err := f.WriteString(out); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Parse decodes the content of an event file.
func Parse(kind models.ArtifactKind, name string, data []byte) (*models.LoggedEventList, error) {
	l := models.NewLoggedEventList().WithName(name).WithKind(kind).WithEvents([]*models.Event{})
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if i == 0 {
			if line != Header(kind) {
				return nil, fmt.Errorf("unexpected header %q, want %q", line, Header(kind))
			}
			continue
		}
		e, err := ParseRow(kind, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		l.AddEventsItem(e)
	}
	return l, nil
}

// ReadFile reads the event file at path.
func ReadFile(path string, kind models.ArtifactKind, name string) (*models.LoggedEventList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := Parse(kind, name, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Sample returns at most n events of l, evenly spaced and always keeping the
// first and the last one. n <= 0 returns l unchanged.
func Sample(l *models.LoggedEventList, n int) *models.LoggedEventList {
	events := l.GetEvents()
	if n <= 0 || len(events) <= n {
		return l
	}
	out := make([]*models.Event, n)
	if n == 1 {
		out[0] = events[len(events)-1]
	} else {
		for i := range n {
			out[i] = events[i*(len(events)-1)/(n-1)]
		}
	}
	return models.NewLoggedEventList().WithName(l.GetName()).WithKind(l.GetKind()).WithEvents(out)
}
