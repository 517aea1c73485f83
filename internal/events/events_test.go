package events

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/maruel/plx/models"
)

var ts0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestFormatRow(t *testing.T) {
	data := []struct {
		name string
		kind models.ArtifactKind
		e    *models.Event
		want string
	}{
		{"Metric", models.ArtifactKindMetric, models.NewEvent().WithStep(1).WithTimestamp(ts0).WithMetric(0.25), "1|2024-03-01T12:00:00Z|0.25"},
		{"NoStep", models.ArtifactKindMetric, models.NewEvent().WithMetric(-1e-7), "||-1e-07"},
		{"Text", models.ArtifactKindText, models.NewEvent().WithStep(2).WithText("a|b\nc"), `2||"a|b\nc"`},
		{"HTML", models.ArtifactKindHTML, models.NewEvent().WithHTML("<p>"), `||"<p>"`},
		{"Curve", models.ArtifactKindCurve, models.NewEvent().WithStep(3).WithCurve(models.NewEventCurve().WithKind(models.EventCurveKindRoc).WithX([]float64{0, 1}).WithY([]float64{0, 1})), `3||{"kind":"roc","x":[0,1],"y":[0,1]}`},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			got, err := FormatRow(line.kind, line.e)
			if err != nil {
				t.Fatal(err)
			}
			if got != line.want {
				t.Errorf("FormatRow() = %q, want %q", got, line.want)
			}
			e, err := ParseRow(line.kind, got)
			if err != nil {
				t.Fatal(err)
			}
			if !e.Equal(line.e) {
				t.Errorf("ParseRow() =\n%v\nwant\n%v", e, line.e)
			}
		})
	}
	t.Run("WrongKind", func(t *testing.T) {
		if _, err := FormatRow(models.ArtifactKindImage, models.NewEvent().WithMetric(1)); err == nil {
			t.Error("expected error")
		}
	})
}

func TestParseRow(t *testing.T) {
	t.Run("LegacyTimestamp", func(t *testing.T) {
		e, err := ParseRow(models.ArtifactKindMetric, "5|2024-03-01 13:00:00.5+01:00|1.5")
		if err != nil {
			t.Fatal(err)
		}
		want := ts0.Add(500 * time.Millisecond)
		if !e.GetTimestamp().Equal(want) {
			t.Errorf("Timestamp = %v, want %v", e.GetTimestamp(), want)
		}
		if e.GetStep() != 5 || e.GetMetric() != 1.5 {
			t.Errorf("got %v", e)
		}
	})
	t.Run("UnquotedText", func(t *testing.T) {
		e, err := ParseRow(models.ArtifactKindText, "1||hello | world")
		if err != nil {
			t.Fatal(err)
		}
		if e.GetText() != "hello | world" {
			t.Errorf("Text = %q", e.GetText())
		}
	})
	t.Run("NaN", func(t *testing.T) {
		e, err := ParseRow(models.ArtifactKindMetric, "1||nan")
		if err != nil {
			t.Fatal(err)
		}
		if !math.IsNaN(e.GetMetric()) {
			t.Errorf("Metric = %g", e.GetMetric())
		}
	})
	bad := []struct {
		name string
		kind models.ArtifactKind
		line string
	}{
		{"Columns", models.ArtifactKindMetric, "1|2"},
		{"Step", models.ArtifactKindMetric, "x||1"},
		{"Timestamp", models.ArtifactKindMetric, "1|yesterday|1"},
		{"Metric", models.ArtifactKindMetric, "1||high"},
		{"Enum", models.ArtifactKindCurve, `1||{"kind":"lift"}`},
		{"NotEvent", models.ArtifactKindTensorboard, `1||{}`},
	}
	for _, line := range bad {
		t.Run(line.name, func(t *testing.T) {
			if _, err := ParseRow(line.kind, line.line); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFile(t *testing.T) {
	root := t.TempDir()
	p := Path(root, models.ArtifactKindMetric, "loss")
	if want := filepath.Join(root, "events", "metric", "loss.plx"); p != want {
		t.Fatalf("Path() = %q, want %q", p, want)
	}
	if err := Append(p, models.ArtifactKindMetric, models.NewEvent().WithStep(1).WithTimestamp(ts0).WithMetric(3)); err != nil {
		t.Fatal(err)
	}
	if err := Append(p, models.ArtifactKindMetric,
		models.NewEvent().WithStep(2).WithTimestamp(ts0.Add(time.Second)).WithMetric(1),
		models.NewEvent().WithStep(3).WithTimestamp(ts0.Add(2*time.Second)).WithMetric(2),
	); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	const want = "step|timestamp|metric\n1|2024-03-01T12:00:00Z|3\n2|2024-03-01T12:00:01Z|1\n3|2024-03-01T12:00:02Z|2\n"
	if string(raw) != want {
		t.Errorf("file =\n%s\nwant\n%s", raw, want)
	}
	l, err := ReadFile(p, models.ArtifactKindMetric, "loss")
	if err != nil {
		t.Fatal(err)
	}
	if l.GetName() != "loss" || l.GetKind() != models.ArtifactKindMetric || len(l.GetEvents()) != 3 {
		t.Fatalf("got %v", l)
	}
	if _, err := ReadFile(p, models.ArtifactKindText, "loss"); err == nil {
		t.Error("expected header mismatch")
	}
	if err := Append(p, models.ArtifactKindMetric, models.NewEvent().WithText("x")); err == nil {
		t.Error("expected error appending a text event to a metric file")
	}
	if err := Append(p, models.ArtifactKindTensorboard); !errors.Is(err, ErrNotEvent) {
		t.Errorf("err = %v, want ErrNotEvent", err)
	}
	if err := Append(Path(root, models.ArtifactKindMetric, "acc"), models.ArtifactKindMetric, models.NewEvent().WithMetric(1)); err != nil {
		t.Fatal(err)
	}
	names, err := Names(root, models.ArtifactKindMetric)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(names, ",") != "acc,loss" {
		t.Errorf("Names() = %v", names)
	}
	if names, err := Names(root, models.ArtifactKindImage); err != nil || names != nil {
		t.Errorf("Names(image) = %v, %v", names, err)
	}
}

func TestValidName(t *testing.T) {
	for _, n := range []string{"loss", "val-acc.top1", "a b"} {
		if err := ValidName(n); err != nil {
			t.Errorf("ValidName(%q) = %v", n, err)
		}
	}
	for _, n := range []string{"", "..", "a/b", `a\b`, "a|b"} {
		if err := ValidName(n); err == nil {
			t.Errorf("ValidName(%q) succeeded", n)
		}
	}
}

func TestSample(t *testing.T) {
	l := models.NewLoggedEventList().WithName("m").WithKind(models.ArtifactKindMetric)
	for i := range 10 {
		l.AddEventsItem(models.NewEvent().WithStep(int64(i)).WithMetric(float64(i)))
	}
	s := Sample(l, 4)
	var steps []int64
	for _, e := range s.GetEvents() {
		steps = append(steps, e.GetStep())
	}
	if len(steps) != 4 || steps[0] != 0 || steps[1] != 3 || steps[2] != 6 || steps[3] != 9 {
		t.Errorf("steps = %v, want [0 3 6 9]", steps)
	}
	if Sample(l, 0) != l || Sample(l, 20) != l {
		t.Error("Sample should return the list unchanged")
	}
}

func TestSummarize(t *testing.T) {
	l := models.NewLoggedEventList().WithName("loss").WithKind(models.ArtifactKindMetric)
	for i, v := range []float64{4, 1, 3, 2} {
		l.AddEventsItem(models.NewEvent().WithStep(int64(i + 10)).WithTimestamp(ts0.Add(time.Duration(i) * time.Second)).WithMetric(v))
	}
	l.AddEventsItem(models.NewEvent().WithMetric(math.NaN()))
	s := Summarize(l)
	if !s.IsEvent {
		t.Error("IsEvent = false")
	}
	if s.Step == nil || s.Step.Count != 4 || s.Step.Min != 10 || s.Step.Max != 13 {
		t.Errorf("Step = %+v", s.Step)
	}
	if s.Timestamp == nil || !s.Timestamp.Min.Equal(ts0) || !s.Timestamp.Max.Equal(ts0.Add(3*time.Second)) {
		t.Errorf("Timestamp = %+v", s.Timestamp)
	}
	m := s.Metric
	if m == nil {
		t.Fatal("Metric = nil")
	}
	if m.Count != 4 || m.Mean != 2.5 || m.Min != 1 || m.Max != 4 || m.Last != 2 {
		t.Errorf("Metric = %+v", m)
	}
	if m.P25 != 1.75 || m.P50 != 2.5 || m.P75 != 3.25 {
		t.Errorf("percentiles = %g %g %g", m.P25, m.P50, m.P75)
	}
	if m.Std == nil || math.Abs(*m.Std-1.2909944487358056) > 1e-12 {
		t.Errorf("Std = %v", m.Std)
	}
	one := models.NewLoggedEventList().WithKind(models.ArtifactKindMetric).AddEventsItem(models.NewEvent().WithMetric(1))
	if s := Summarize(one); s.Metric == nil || s.Metric.Std != nil || s.Step != nil {
		t.Errorf("Summarize(one) = %+v", s)
	}
	txt := models.NewLoggedEventList().WithKind(models.ArtifactKindText).AddEventsItem(models.NewEvent().WithText("x"))
	if s := Summarize(txt); s.Metric != nil {
		t.Errorf("Metric = %+v for text events", s.Metric)
	}
}

func TestTail(t *testing.T) {
	root := t.TempDir()
	p := Path(root, models.ArtifactKindMetric, "loss")
	if err := Append(p, models.ArtifactKindMetric, models.NewEvent().WithStep(1).WithMetric(1)); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	got := make(chan int64, 10)
	done := make(chan error, 1)
	go func() {
		done <- Tail(ctx, p, models.ArtifactKindMetric, func(e *models.Event) error {
			got <- e.GetStep()
			return nil
		})
	}()
	wait := func(want int64) {
		t.Helper()
		select {
		case s := <-got:
			if s != want {
				t.Fatalf("step = %d, want %d", s, want)
			}
		case <-time.After(10 * time.Second):
			t.Fatalf("timed out waiting for step %d", want)
		}
	}
	wait(1)
	if err := Append(p, models.ArtifactKindMetric, models.NewEvent().WithStep(2).WithMetric(2), models.NewEvent().WithStep(3).WithMetric(3)); err != nil {
		t.Fatal(err)
	}
	wait(2)
	wait(3)
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Tail() = %v, want context.Canceled", err)
	}
}
