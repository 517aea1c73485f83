package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/maruel/plx/models"
	"golang.org/x/time/rate"
)

const testToken = "secret"

type testServer struct {
	*httptest.Server
	dataDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	base := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var tick atomic.Int64
	dir := t.TempDir()
	s, err := New(t.Context(), &Options{
		Token:       testToken,
		DataDir:     dir,
		HealthRate:  rate.Limit(0.001),
		HealthBurst: 2,
		Now: func() time.Time {
			return base.Add(time.Duration(tick.Add(1)) * time.Second)
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return &testServer{Server: ts, dataDir: dir}
}

// call sends body as JSON and decodes the response into out when the
// response has a body. It returns the status code.
func (ts *testServer) call(t *testing.T, method, path string, body, out any) int {
	t.Helper()
	var r io.Reader = http.NoBody
	if body != nil {
		var b []byte
		if raw, ok := body.(string); ok {
			b = []byte(raw)
		} else {
			var err error
			if b, err = json.Marshal(body); err != nil {
				t.Fatal(err)
			}
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(t.Context(), method, ts.URL+path, r)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Token "+testToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if out != nil && len(b) != 0 {
		if err := json.Unmarshal(b, out); err != nil {
			t.Fatalf("%s %s: %v: %s", method, path, err, b)
		}
	}
	return resp.StatusCode
}

func TestAuth(t *testing.T) {
	ts := newTestServer(t)
	data := []struct {
		name   string
		header string
		want   int
	}{
		{"Missing", "", http.StatusForbidden},
		{"Wrong", "Token nope", http.StatusForbidden},
		{"Token", "Token " + testToken, http.StatusOK},
		{"Bearer", "Bearer " + testToken, http.StatusOK},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(t.Context(), http.MethodGet, ts.URL+"/api/v1/orgs/acme/connections", http.NoBody)
			if line.header != "" {
				req.Header.Set("Authorization", line.header)
			}
			resp, err := ts.Client().Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode != line.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, line.want)
			}
			if line.want != http.StatusForbidden {
				return
			}
			var re models.RuntimeError
			if err := json.NewDecoder(resp.Body).Decode(&re); err != nil {
				t.Fatal(err)
			}
			if re.GetCode() != http.StatusForbidden {
				t.Errorf("code = %d, want 403", re.GetCode())
			}
			if re.GetErrorText() != "Forbidden" {
				t.Errorf("error = %q, want %q", re.GetErrorText(), "Forbidden")
			}
		})
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		resp, err := ts.Client().Get(ts.URL + "/healthz")
		if err != nil {
			t.Fatal(err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != want {
			t.Errorf("request %d: status = %d, want %d", i, resp.StatusCode, want)
		}
	}
}

func TestOpenAPI(t *testing.T) {
	ts := newTestServer(t)
	resp, err := ts.Client().Get(ts.URL + "/openapi.json")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc["paths"]; !ok {
		t.Errorf("missing paths in %v", doc)
	}
}

func TestUnknownEndpoint(t *testing.T) {
	ts := newTestServer(t)
	var re models.RuntimeError
	if got := ts.call(t, http.MethodGet, "/api/v1/nope", nil, &re); got != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", got)
	}
	if re.GetCode() != http.StatusNotFound {
		t.Errorf("code = %d, want 404", re.GetCode())
	}
}

func TestConnections(t *testing.T) {
	ts := newTestServer(t)
	const base = "/api/v1/orgs/acme/connections"

	in := models.NewConnectionResponse().WithName("bucket").WithKind(models.ConnectionKindS3).WithTags([]string{"data"})
	var c models.ConnectionResponse
	if got := ts.call(t, http.MethodPost, base, in, &c); got != http.StatusOK {
		t.Fatalf("create status = %d", got)
	}
	if c.GetUUID() == "" {
		t.Fatal("missing uuid")
	}
	if c.GetLiveState() != 1 {
		t.Errorf("live_state = %d, want 1", c.GetLiveState())
	}
	if !c.HasCreatedAt() || !c.GetCreatedAt().Equal(c.GetUpdatedAt()) {
		t.Errorf("created_at = %v, updated_at = %v", c.CreatedAt, c.UpdatedAt)
	}

	t.Run("Duplicate", func(t *testing.T) {
		if got := ts.call(t, http.MethodPost, base, in, nil); got != http.StatusConflict {
			t.Errorf("status = %d, want 409", got)
		}
	})
	t.Run("InvalidBody", func(t *testing.T) {
		data := []struct {
			name string
			body string
		}{
			{"BadKind", `{"name":"x","kind":"ftps"}`},
			{"MissingKind", `{"name":"x"}`},
			{"MissingName", `{"kind":"s3"}`},
			{"BadTags", `{"name":"x","kind":"s3","tags":"a"}`},
			{"NotJSON", `{`},
		}
		for _, line := range data {
			t.Run(line.name, func(t *testing.T) {
				var re models.RuntimeError
				if got := ts.call(t, http.MethodPost, base, line.body, &re); got != http.StatusBadRequest {
					t.Fatalf("status = %d, want 400", got)
				}
				if re.GetMessage() == "" {
					t.Error("missing message")
				}
			})
		}
	})
	t.Run("Get", func(t *testing.T) {
		var got models.ConnectionResponse
		if status := ts.call(t, http.MethodGet, base+"/"+c.GetUUID(), nil, &got); status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if !got.Equal(&c) {
			t.Errorf("got %s\nwant %s", &got, &c)
		}
	})
	t.Run("Patch", func(t *testing.T) {
		var got models.ConnectionResponse
		patch := models.NewConnectionResponse().WithDescription("raw data")
		if status := ts.call(t, http.MethodPatch, base+"/"+c.GetUUID(), patch, &got); status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if got.GetDescription() != "raw data" || got.GetName() != "bucket" || got.GetKind() != models.ConnectionKindS3 {
			t.Errorf("got %s", &got)
		}
		if !got.GetUpdatedAt().After(got.GetCreatedAt()) {
			t.Errorf("updated_at %v not after created_at %v", got.GetUpdatedAt(), got.GetCreatedAt())
		}
	})
	t.Run("Update", func(t *testing.T) {
		var got models.ConnectionResponse
		upd := models.NewConnectionResponse().WithName("bucket2").WithKind(models.ConnectionKindGCS)
		if status := ts.call(t, http.MethodPut, base+"/"+c.GetUUID(), upd, &got); status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if got.HasDescription() || got.HasTags() {
			t.Errorf("update kept old fields: %s", &got)
		}
		if got.GetUUID() != c.GetUUID() || !got.GetCreatedAt().Equal(c.GetCreatedAt()) {
			t.Errorf("identity changed: %s", &got)
		}
		mismatch := models.NewConnectionResponse().WithUUID("other").WithName("b").WithKind(models.ConnectionKindGCS)
		if status := ts.call(t, http.MethodPut, base+"/"+c.GetUUID(), mismatch, nil); status != http.StatusBadRequest {
			t.Errorf("mismatched uuid status = %d, want 400", status)
		}
	})
	t.Run("Names", func(t *testing.T) {
		var got models.ListConnectionsResponse
		if status := ts.call(t, http.MethodGet, base+"/names", nil, &got); status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if got.GetCount() != 1 || len(got.Results) != 1 {
			t.Fatalf("got %s", &got)
		}
		r := got.Results[0]
		if r.GetName() != "bucket2" || r.GetUUID() != c.GetUUID() || r.HasKind() {
			t.Errorf("got %s", r)
		}
	})
	t.Run("Delete", func(t *testing.T) {
		if status := ts.call(t, http.MethodDelete, base+"/"+c.GetUUID(), nil, nil); status != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", status)
		}
		if status := ts.call(t, http.MethodGet, base+"/"+c.GetUUID(), nil, nil); status != http.StatusNotFound {
			t.Errorf("get after delete status = %d, want 404", status)
		}
		if status := ts.call(t, http.MethodDelete, base+"/"+c.GetUUID(), nil, nil); status != http.StatusNotFound {
			t.Errorf("second delete status = %d, want 404", status)
		}
	})
}

func TestConnectionsList(t *testing.T) {
	ts := newTestServer(t)
	const base = "/api/v1/orgs/acme/connections"
	kinds := []models.ConnectionKind{models.ConnectionKindS3, models.ConnectionKindGCS, models.ConnectionKindS3, models.ConnectionKindGit, models.ConnectionKindS3}
	for i, k := range kinds {
		in := models.NewConnectionResponse().WithName(string(rune('a'+i)) + "-conn").WithKind(k)
		if status := ts.call(t, http.MethodPost, base, in, nil); status != http.StatusOK {
			t.Fatalf("create %d status = %d", i, status)
		}
	}
	names := func(l *models.ListConnectionsResponse) string {
		var out []string
		for _, c := range l.Results {
			out = append(out, c.GetName())
		}
		return strings.Join(out, ",")
	}
	data := []struct {
		name  string
		query string
		count int32
		want  string
		prev  bool
		next  bool
	}{
		{"Default", "", 5, "e-conn,d-conn,c-conn,b-conn,a-conn", false, false},
		{"SortName", "?sort=name", 5, "a-conn,b-conn,c-conn,d-conn,e-conn", false, false},
		{"FirstPage", "?sort=name&limit=2", 5, "a-conn,b-conn", false, true},
		{"MiddlePage", "?sort=name&limit=2&offset=2", 5, "c-conn,d-conn", true, true},
		{"LastPage", "?sort=name&limit=2&offset=4", 5, "e-conn", true, false},
		{"PastEnd", "?limit=2&offset=10", 5, "", true, false},
		{"Kind", "?sort=name&query=kind:s3", 3, "a-conn,c-conn,e-conn", false, false},
		{"KindOr", "?sort=name&query=kind:gcs|git", 2, "b-conn,d-conn", false, false},
		{"KindNot", "?sort=name&query=kind:~s3", 2, "b-conn,d-conn", false, false},
		{"KindAndName", "?query=kind:s3,name:c-conn", 1, "c-conn", false, false},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			var got models.ListConnectionsResponse
			if status := ts.call(t, http.MethodGet, base+line.query, nil, &got); status != http.StatusOK {
				t.Fatalf("status = %d", status)
			}
			if got.GetCount() != line.count {
				t.Errorf("count = %d, want %d", got.GetCount(), line.count)
			}
			if n := names(&got); n != line.want {
				t.Errorf("results = %q, want %q", n, line.want)
			}
			if got.HasPrevious() != line.prev {
				t.Errorf("previous = %q", got.GetPrevious())
			}
			if got.HasNext() != line.next {
				t.Errorf("next = %q", got.GetNext())
			}
		})
	}
	t.Run("Invalid", func(t *testing.T) {
		for _, q := range []string{"?limit=1000", "?limit=x", "?offset=-1", "?sort=kind", "?query=owner:me", "?query=name"} {
			if status := ts.call(t, http.MethodGet, base+q, nil, nil); status != http.StatusBadRequest {
				t.Errorf("%s: status = %d, want 400", q, status)
			}
		}
	})
}

func TestQueues(t *testing.T) {
	ts := newTestServer(t)
	var q1, q2 models.Queue
	if status := ts.call(t, http.MethodPost, "/api/v1/orgs/acme/agents/a1/queues", models.NewQueue().WithName("gpu").WithConcurrency(4), &q1); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if status := ts.call(t, http.MethodPost, "/api/v1/orgs/acme/agents/a2/queues", models.NewQueue().WithName("gpu"), &q2); status != http.StatusOK {
		t.Fatalf("same name on another agent: status = %d", status)
	}
	if q1.GetAgent() != "a1" || q1.GetPriority() != 0 || !q1.HasPriority() || q1.GetConcurrency() != 4 {
		t.Errorf("got %s", &q1)
	}
	if status := ts.call(t, http.MethodPost, "/api/v1/orgs/acme/agents/a1/queues", models.NewQueue().WithName("gpu"), nil); status != http.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", status)
	}
	if status := ts.call(t, http.MethodPost, "/api/v1/orgs/acme/agents/a1/queues", models.NewQueue().WithName("x").WithAgent("a2"), nil); status != http.StatusBadRequest {
		t.Errorf("agent mismatch status = %d, want 400", status)
	}

	var all, one models.ListQueuesResponse
	if status := ts.call(t, http.MethodGet, "/api/v1/orgs/acme/queues", nil, &all); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if all.GetCount() != 2 {
		t.Errorf("org count = %d, want 2", all.GetCount())
	}
	if status := ts.call(t, http.MethodGet, "/api/v1/orgs/acme/agents/a1/queues", nil, &one); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if one.GetCount() != 1 || !one.Results[0].Equal(&q1) {
		t.Errorf("agent list = %s", &one)
	}

	var got models.Queue
	if status := ts.call(t, http.MethodGet, "/api/v1/orgs/acme/agents/a1/queues/"+q1.GetUUID(), nil, &got); status != http.StatusOK || !got.Equal(&q1) {
		t.Errorf("get status = %d: %s", status, &got)
	}
	if status := ts.call(t, http.MethodGet, "/api/v1/orgs/acme/agents/a2/queues/"+q1.GetUUID(), nil, nil); status != http.StatusNotFound {
		t.Errorf("wrong agent status = %d, want 404", status)
	}
	if status := ts.call(t, http.MethodGet, "/api/v1/orgs/other/agents/a1/queues/"+q1.GetUUID(), nil, nil); status != http.StatusNotFound {
		t.Errorf("wrong owner status = %d, want 404", status)
	}
	if status := ts.call(t, http.MethodDelete, "/api/v1/orgs/acme/agents/a1/queues/"+q1.GetUUID(), nil, nil); status != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", status)
	}
	if status := ts.call(t, http.MethodDelete, "/api/v1/orgs/acme/agents/a1/queues/"+q1.GetUUID(), nil, nil); status != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", status)
	}
}

func TestRunEvents(t *testing.T) {
	ts := newTestServer(t)
	const run = "/streams/v1/default/acme/mnist/runs/r1"

	if status := ts.call(t, http.MethodPost, "/streams/v1/default/_internal/acme/mnist/runs/r1/k8s/logs", nil, nil); status != http.StatusNotFound {
		t.Errorf("collect before events status = %d, want 404", status)
	}

	ts1 := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	loss := models.NewLoggedEventList().WithName("loss").WithKind(models.ArtifactKindMetric).WithEvents([]*models.Event{
		models.NewEvent().WithStep(1).WithMetric(0.5).WithTimestamp(ts1),
		models.NewEvent().WithStep(2).WithMetric(0.25),
	})
	if status := ts.call(t, http.MethodPost, run+"/events/metric", loss, nil); status != http.StatusNoContent {
		t.Fatalf("log status = %d, want 204", status)
	}
	acc := models.NewLoggedEventList().WithName("acc").WithEvents([]*models.Event{
		models.NewEvent().WithStep(1).WithMetric(0.9),
	})
	if status := ts.call(t, http.MethodPost, run+"/events/metric", acc, nil); status != http.StatusNoContent {
		t.Fatalf("log status = %d, want 204", status)
	}
	if _, err := os.Stat(filepath.Join(ts.dataDir, "default", "acme", "mnist", "runs", "r1", "events", "metric", "loss.plx")); err != nil {
		t.Errorf("event file: %v", err)
	}

	t.Run("Invalid", func(t *testing.T) {
		data := []struct {
			name string
			path string
			body any
		}{
			{"KindMismatch", run + "/events/metric", models.NewLoggedEventList().WithName("x").WithKind(models.ArtifactKindText)},
			{"EventKindMismatch", run + "/events/metric", models.NewLoggedEventList().WithName("x").WithEvents([]*models.Event{models.NewEvent().WithText("hi")})},
			{"NoPrimitive", run + "/events/metric", models.NewLoggedEventList().WithName("x").WithEvents([]*models.Event{models.NewEvent().WithStep(1)})},
			{"NotEventKind", run + "/events/env", models.NewLoggedEventList().WithName("x")},
			{"UnknownKind", run + "/events/bogus", models.NewLoggedEventList().WithName("x")},
			{"BadName", run + "/events/metric", models.NewLoggedEventList().WithName("../x")},
		}
		for _, line := range data {
			t.Run(line.name, func(t *testing.T) {
				if status := ts.call(t, http.MethodPost, line.path, line.body, nil); status != http.StatusBadRequest {
					t.Errorf("status = %d, want 400", status)
				}
			})
		}
	})

	t.Run("GetAll", func(t *testing.T) {
		var got models.EventsResponse
		if status := ts.call(t, http.MethodGet, run+"/events/metric", nil, &got); status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if len(got.Data) != 2 {
			t.Fatalf("got %s", &got)
		}
		if got.Data[0].GetName() != "acc" || got.Data[1].GetName() != "loss" {
			t.Errorf("names = %q, %q", got.Data[0].GetName(), got.Data[1].GetName())
		}
		evs := got.Data[1].GetEvents()
		if len(evs) != 2 {
			t.Fatalf("events = %d, want 2", len(evs))
		}
		if !evs[0].GetTimestamp().Equal(ts1) || evs[0].GetMetric() != 0.5 {
			t.Errorf("event 0 = %s", evs[0])
		}
		if !evs[1].HasTimestamp() || evs[1].GetStep() != 2 || evs[1].GetMetric() != 0.25 {
			t.Errorf("event 1 = %s", evs[1])
		}
	})

	t.Run("GetNamesSample", func(t *testing.T) {
		var got models.EventsResponse
		if status := ts.call(t, http.MethodGet, run+"/events/metric?names=loss,missing&sample=1", nil, &got); status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if len(got.Data) != 1 || got.Data[0].GetName() != "loss" {
			t.Fatalf("got %s", &got)
		}
		if n := len(got.Data[0].GetEvents()); n != 1 {
			t.Errorf("sampled events = %d, want 1", n)
		}
	})

	t.Run("GetEmpty", func(t *testing.T) {
		var got models.EventsResponse
		if status := ts.call(t, http.MethodGet, run+"/events/image", nil, &got); status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if got.Data == nil || len(got.Data) != 0 {
			t.Errorf("got %s, want empty data", &got)
		}
	})

	t.Run("CollectLogs", func(t *testing.T) {
		if status := ts.call(t, http.MethodPost, "/streams/v1/default/_internal/acme/mnist/runs/r1/k8s/logs", nil, nil); status != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", status)
		}
		if _, err := os.Stat(filepath.Join(ts.dataDir, "default", "acme", "mnist", "runs", "r1", "logs", "k8s.collected")); err != nil {
			t.Error(err)
		}
	})

	t.Run("CollectLogsBadKind", func(t *testing.T) {
		for _, kind := range []string{"..%2F..%2F..%2F..%2F..%2F..%2Fescaped", "a%5Cb", ".k8s"} {
			p := "/streams/v1/default/_internal/acme/mnist/runs/r1/" + kind + "/logs"
			if status := ts.call(t, http.MethodPost, p, nil, nil); status != http.StatusBadRequest {
				t.Errorf("%s: status = %d, want 400", kind, status)
			}
		}
	})
}

func TestRunEventsConcurrentReads(t *testing.T) {
	s, err := New(t.Context(), &Options{DataDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	run := runReq{Namespace: "default", Owner: "acme", Project: "p", UUID: "r1"}
	const writes = 50
	errs := make(chan error, 2*writes)
	var wg sync.WaitGroup
	for i := range writes {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l := models.NewLoggedEventList().WithName("loss").AddEventsItem(
				models.NewEvent().WithStep(int64(i)).WithMetric(float64(i) / 3).WithTimestamp(time.Now()))
			_, err := s.logRunEvents(t.Context(), &logEventsReq{runReq: run, Kind: "metric", Body: l, kind: models.ArtifactKindMetric})
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := s.getRunEvents(t.Context(), &getEventsReq{runReq: run, Kind: "metric", kind: models.ArtifactKindMetric})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
	got, err := s.getRunEvents(t.Context(), &getEventsReq{runReq: run, Kind: "metric", kind: models.ArtifactKindMetric})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Data) != 1 || len(got.Data[0].Events) != writes {
		t.Errorf("got %d lists, want 1 with %d events", len(got.Data), writes)
	}
}
