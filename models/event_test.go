package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestEventValidate(t *testing.T) {
	data := []struct {
		name string
		e    *Event
		kind ArtifactKind
		ok   bool
	}{
		{"Empty", NewEvent().WithStep(1), ArtifactKindUnspecified, false},
		{"Metric", NewEvent().WithMetric(0.1), ArtifactKindMetric, true},
		{"Text", NewEvent().WithText(""), ArtifactKindText, true},
		{"Curve", NewEvent().WithCurve(NewEventCurve()), ArtifactKindCurve, true},
		{"Dataframe", NewEvent().WithDataframe(NewEventDataframe().WithPath("df.parquet")), ArtifactKindDataframe, true},
		{"Two", NewEvent().WithMetric(1).WithHTML("<b>"), ArtifactKindMetric, false},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			err := line.e.Validate()
			if (err == nil) != line.ok {
				t.Errorf("Validate() = %v, want ok=%t", err, line.ok)
			}
			if got := line.e.Kind(); got != line.kind {
				t.Errorf("Kind() = %q, want %q", got, line.kind)
			}
		})
	}
	if err := NewEvent().Validate(); !errors.Is(err, ErrNoPrimitive) {
		t.Errorf("Validate() = %v, want ErrNoPrimitive", err)
	}
}

func TestEventValue(t *testing.T) {
	img := NewEventImage().WithPath("a.png").WithHeight(3)
	e := NewEvent().WithImage(img)
	if got := e.Value(ArtifactKindImage); got != img {
		t.Errorf("Value(image) = %v", got)
	}
	if got := e.Value(ArtifactKindMetric); got != nil {
		t.Errorf("Value(metric) = %v, want nil", got)
	}
	if got := NewEvent().WithMetric(2).Value(ArtifactKindMetric); got != 2.0 {
		t.Errorf("Value(metric) = %v, want 2", got)
	}
	if n := len(EventKinds()); n != 13 {
		t.Errorf("len(EventKinds()) = %d, want 13", n)
	}
	if got := e.Value(ArtifactKindTensor); got != nil {
		t.Errorf("Value(tensor) = %v, want nil", got)
	}
}

func TestEventRoundTrip(t *testing.T) {
	ts := time.Date(2023, 11, 2, 8, 15, 1, 123456000, time.UTC)
	r := NewEventsResponse().AddDataItem(
		NewLoggedEventList().WithName("cm").WithKind(ArtifactKindConfusion).
			AddEventsItem(NewEvent().WithTimestamp(ts).WithStep(1).WithConfusion(
				NewEventConfusionMatrix().WithX([]any{"a", "b"}).WithY([]any{"a", "b"}).WithZ([]any{[]any{1.0, 0.0}, []any{0.0, 1.0}}))))
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	const want = `{"data":[{"name":"cm","kind":"confusion","events":[{"timestamp":"2023-11-02T08:15:01.123456Z","step":1,"confusion":{"x":["a","b"],"y":["a","b"],"z":[[1,0],[0,1]]}}]}]}`
	if string(b) != want {
		t.Fatalf("Marshal =\n%s\nwant\n%s", b, want)
	}
	var got EventsResponse
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if !got.Equal(r) {
		t.Errorf("round trip =\n%v\nwant\n%v", &got, r)
	}
	if got.Hash() != r.Hash() {
		t.Error("round trip changed the hash")
	}
}
