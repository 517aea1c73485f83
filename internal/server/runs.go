package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/maruel/plx/internal/events"
	"github.com/maruel/plx/models"
)

// runReq identifies a run.
type runReq struct {
	Namespace string `path:"namespace"`
	Owner     string `path:"owner"`
	Project   string `path:"project"`
	UUID      string `path:"uuid"`
}

// validSegment reports whether v can be used as one path element under the
// data directory.
func validSegment(v string) bool {
	return v != "" && v != "." && v != ".." && !strings.ContainsAny(v, `/\`)
}

func (r *runReq) validate() error {
	for _, v := range []string{r.Namespace, r.Owner, r.Project, r.UUID} {
		if !validSegment(v) {
			return badRequest("invalid run path")
		}
	}
	return nil
}

func (s *Server) runDir(r *runReq) string {
	return filepath.Join(s.dataDir, r.Namespace, r.Owner, r.Project, "runs", r.UUID)
}

type collectLogsReq struct {
	runReq
	Kind string `path:"kind"`
}

func (r *collectLogsReq) Validate() error {
	if err := r.runReq.validate(); err != nil {
		return err
	}
	if !validSegment(r.Kind) || strings.HasPrefix(r.Kind, ".") {
		return badRequest("invalid log kind")
	}
	return nil
}

type logEventsReq struct {
	runReq
	Kind string                  `path:"kind"`
	Body *models.LoggedEventList `body:"LoggedEventList"`

	kind models.ArtifactKind
}

func (r *logEventsReq) Validate() error {
	if err := r.runReq.validate(); err != nil {
		return err
	}
	k, err := parseEventKind(r.Kind)
	if err != nil {
		return err
	}
	r.kind = k
	if r.Body.HasKind() && r.Body.GetKind() != k {
		return badRequest("kind in body does not match the path")
	}
	if err := events.ValidName(r.Body.GetName()); err != nil {
		return badRequest(err.Error())
	}
	for i, e := range r.Body.GetEvents() {
		if err := e.Validate(); err != nil {
			return badRequest(fmt.Sprintf("event %d: %v", i, err))
		}
		if e.Kind() != k {
			return badRequest(fmt.Sprintf("event %d: kind %s, want %s", i, e.Kind(), k))
		}
	}
	return nil
}

type getEventsReq struct {
	runReq
	Kind   string `path:"kind"`
	Names  string `query:"names"`
	Sample int    `query:"sample"`

	kind  models.ArtifactKind
	names []string
}

func (r *getEventsReq) Validate() error {
	if err := r.runReq.validate(); err != nil {
		return err
	}
	k, err := parseEventKind(r.Kind)
	if err != nil {
		return err
	}
	r.kind = k
	if r.Sample < 0 {
		return badRequest("sample must not be negative")
	}
	for n := range strings.SplitSeq(r.Names, ",") {
		if n = strings.TrimSpace(n); n == "" {
			continue
		}
		if err := events.ValidName(n); err != nil {
			return badRequest(err.Error())
		}
		r.names = append(r.names, n)
	}
	return nil
}

func parseEventKind(s string) (models.ArtifactKind, error) {
	k, err := models.ParseArtifactKind(s)
	if err != nil {
		return "", badRequest(err.Error())
	}
	if err := events.CheckKind(k); err != nil {
		return "", badRequest(err.Error())
	}
	return k, nil
}

// collectRunLogs records that the logs of the run were collected. The run
// must have logged at least one event.
func (s *Server) collectRunLogs(_ context.Context, req *collectLogsReq) (*struct{}, error) {
	dir := s.runDir(&req.runReq)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, notFound("run not found")
	} else if err != nil {
		return nil, err
	}
	p := filepath.Join(dir, "logs", req.Kind+".collected")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(p, []byte(s.now().Format(time.RFC3339Nano)+"\n"), 0o644); err != nil {
		return nil, err
	}
	slog.Info("collected run logs", "run", req.UUID, "kind", req.Kind)
	return nil, nil
}

func (s *Server) logRunEvents(_ context.Context, req *logEventsReq) (*struct{}, error) {
	if len(req.Body.GetEvents()) == 0 {
		return nil, nil
	}
	now := s.now()
	evs := make([]*models.Event, len(req.Body.Events))
	for i, e := range req.Body.Events {
		c := *e
		if !c.HasTimestamp() {
			c.SetTimestamp(now)
		}
		evs[i] = &c
	}
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	p := events.Path(s.runDir(&req.runReq), req.kind, req.Body.GetName())
	if err := events.Append(p, req.kind, evs...); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *Server) getRunEvents(_ context.Context, req *getEventsReq) (*models.EventsResponse, error) {
	root := s.runDir(&req.runReq)
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	names := req.names
	if len(names) == 0 {
		var err error
		if names, err = events.Names(root, req.kind); err != nil {
			return nil, err
		}
	}
	resp := models.NewEventsResponse().WithData([]*models.LoggedEventList{})
	for _, n := range names {
		l, err := events.ReadFile(events.Path(root, req.kind, n), req.kind, n)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		resp.AddDataItem(events.Sample(l, req.Sample))
	}
	return resp, nil
}
