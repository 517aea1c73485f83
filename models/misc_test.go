package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestIntervalSchedule(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewIntervalScheduleWithDefaults().WithStartAt(start).WithFrequency(3600).WithDependsOnPast(false)
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	const want = `{"kind":"interval","start_at":"2024-01-01T00:00:00Z","frequency":3600,"depends_on_past":false}`
	if string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}
	if s.Equal(NewIntervalScheduleWithDefaults().WithStartAt(start).WithFrequency(3600)) {
		t.Error("depends_on_past=false equals absent")
	}
}

func TestHyperband(t *testing.T) {
	const input = `{"kind":"hyperband","maxIterations":3,"max_iterations":81,"eta":3,"resource":{"name":"epochs","type":"int"},"metric":{"name":"loss","optimization":"minimize"},"params":{"lr":{"kind":"uniform","value":[0,1]}},"seed":1}`
	var h Hyperband
	if err := json.Unmarshal([]byte(input), &h); err != nil {
		t.Fatal(err)
	}
	if h.GetMaxIterations() != 81 || h.GetEta() != 3 {
		t.Errorf("MaxIterations = %d, Eta = %g", h.GetMaxIterations(), h.GetEta())
	}
	if h.GetResource().GetType() != OptimizationResourceTypeInt {
		t.Errorf("Resource = %v", h.GetResource())
	}
	if h.GetMetric().GetOptimization() != OptimizationMinimize {
		t.Errorf("Metric = %v", h.GetMetric())
	}
	if h.HasResume() || h.HasEarlyStopping() {
		t.Error("absent fields decoded as present")
	}
	h.AddEarlyStoppingItem(map[string]any{"kind": "metric_early_stopping"})
	if len(h.GetEarlyStopping()) != 1 {
		t.Errorf("EarlyStopping = %v", h.GetEarlyStopping())
	}
	var bad Hyperband
	if err := json.Unmarshal([]byte(`{"resource":{"type":"double"}}`), &bad); err == nil {
		t.Error("expected error for unknown resource type")
	}
}

func TestRuntimeError(t *testing.T) {
	data := []struct {
		name string
		e    *RuntimeError
		want string
	}{
		{"Message", NewRuntimeError().WithMessage("not found").WithCode(5), "not found (code 5)"},
		{"ErrorText", NewRuntimeError().WithErrorText("boom"), "boom"},
		{"Code", NewRuntimeError().WithCode(16), "code 16"},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			if got := line.e.Error(); got != line.want {
				t.Errorf("Error() = %q, want %q", got, line.want)
			}
		})
	}
	var err error = NewRuntimeError().WithMessage("x")
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Error("errors.As failed")
	}
	b, err := json.Marshal(NewRuntimeError().WithErrorText("e").WithCode(3).WithDetails([]any{"d"}))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"error":"e","code":3,"details":["d"]}` {
		t.Errorf("Marshal = %s", b)
	}
}

func TestListResponses(t *testing.T) {
	const input = `{"count":2,"results":[{"uuid":"a","name":"default","kind":"s3","live_state":1,"tags":["x"]},{"uuid":"b","kind":"git"}],"next":"http://h/api?offset=2"}`
	var l ListConnectionsResponse
	if err := json.Unmarshal([]byte(input), &l); err != nil {
		t.Fatal(err)
	}
	if l.GetCount() != 2 || len(l.GetResults()) != 2 {
		t.Fatalf("got %v", &l)
	}
	if got := l.GetResults()[0].GetKind(); got != ConnectionKindS3 {
		t.Errorf("Kind = %q", got)
	}
	if l.HasPrevious() {
		t.Error("Previous should be absent")
	}
	var q ListQueuesResponse
	if err := json.Unmarshal([]byte(`{"count":0,"results":[]}`), &q); err != nil {
		t.Fatal(err)
	}
	if q.Results == nil {
		t.Error("empty results decoded as absent")
	}
}
