package models

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestFieldTables(t *testing.T) {
	for _, m := range All() {
		t.Run(m.ModelName(), func(t *testing.T) {
			typ := reflect.TypeOf(m).Elem()
			if typ.Name() != m.ModelName() {
				t.Errorf("ModelName() = %q, want %q", m.ModelName(), typ.Name())
			}
			fields := m.Fields()
			if len(fields) != typ.NumField() {
				t.Fatalf("len(Fields()) = %d, want %d", len(fields), typ.NumField())
			}
			for i, f := range fields {
				sf := typ.Field(i)
				if sf.Name != f.Name {
					t.Errorf("field %d = %q, want %q", i, f.Name, sf.Name)
				}
				key, opts, _ := strings.Cut(sf.Tag.Get("json"), ",")
				if key != f.Key {
					t.Errorf("%s key = %q, want %q", f.Name, f.Key, key)
				}
				want := "omitempty"
				if sf.Type.Kind() == reflect.Slice || sf.Type.Kind() == reflect.Map {
					want = "omitzero"
				}
				if opts != want {
					t.Errorf("%s tag options = %q, want %q", f.Name, opts, want)
				}
			}
		})
	}
}

func TestFieldsIsACopy(t *testing.T) {
	c := NewEventCurve()
	f := c.Fields()
	f[0].Key = "mutated"
	if got := c.Fields()[0].Key; got != "kind" {
		t.Errorf("Fields()[0].Key = %q, want %q", got, "kind")
	}
}

func TestEmptyModels(t *testing.T) {
	for _, m := range All() {
		t.Run(m.ModelName(), func(t *testing.T) {
			b, err := json.Marshal(m)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != "{}" {
				t.Errorf("Marshal = %s, want {}", b)
			}
			if !Equal(m, m) {
				t.Error("model is not equal to itself")
			}
			if m.Hash() != m.Hash() {
				t.Error("hash is not stable")
			}
			s := m.String()
			if !strings.HasPrefix(s, m.ModelName()+" {\n") || !strings.HasSuffix(s, "\n}") {
				t.Errorf("String() = %q", s)
			}
			for _, f := range m.Fields() {
				if !strings.Contains(s, "\n"+indent+f.Key+": null\n") {
					t.Errorf("String() lacks %q: null", f.Key)
				}
			}
		})
	}
}

func TestEqualAcrossTypes(t *testing.T) {
	all := All()
	for i, a := range all {
		for j, b := range all {
			if got := Equal(a, b); got != (i == j) {
				t.Errorf("Equal(%s, %s) = %t", a.ModelName(), b.ModelName(), got)
			}
		}
	}
	if Equal(nil, NewEventCurve()) {
		t.Error("Equal(nil, model) = true")
	}
	if !Equal(nil, nil) {
		t.Error("Equal(nil, nil) = false")
	}
	var c *EventCurve
	if !c.Equal(nil) {
		t.Error("nil.Equal(nil) = false")
	}
	if c.Equal(NewEventCurve()) {
		t.Error("nil.Equal(empty) = true")
	}
	if c.Hash() != 0 || c.String() != "null" {
		t.Errorf("nil model: Hash() = %d, String() = %q", c.Hash(), c.String())
	}
}

func TestHashNegativeZero(t *testing.T) {
	a := NewEvent().WithMetric(0)
	b := NewEvent().WithMetric(math.Copysign(0, -1))
	if !a.Equal(b) {
		t.Fatal("0 != -0")
	}
	if a.Hash() != b.Hash() {
		t.Error("0 and -0 hash differently")
	}
}

func TestNaNEquality(t *testing.T) {
	// Two NaNs with different payloads.
	nan1 := math.NaN()
	nan2 := math.Float64frombits(0x7ff8000000000001)
	data := []struct {
		name string
		a, b Model
	}{
		{"EventCurve", NewEventCurve().WithKind(EventCurveKindRoc).AddXItem(nan1), NewEventCurve().WithKind(EventCurveKindRoc).AddXItem(nan2)},
		{"EventMetric", NewEvent().WithMetric(nan1), NewEvent().WithMetric(nan2)},
		{"EventNested", NewEvent().WithCurve(NewEventCurve().AddYItem(nan1)), NewEvent().WithCurve(NewEventCurve().AddYItem(nan2))},
		{"Hyperband", NewHyperband().WithEta(nan1).WithParams(map[string]any{"lr": []any{nan1}}), NewHyperband().WithEta(nan2).WithParams(map[string]any{"lr": []any{nan2}})},
		{"Confusion", NewEventConfusionMatrix().WithX([]any{nan1, "a"}), NewEventConfusionMatrix().WithX([]any{nan2, "a"})},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			if !Equal(line.a, line.a) {
				t.Errorf("Equal(a, a) = false\n%s", line.a)
			}
			if !Equal(line.a, line.b) {
				t.Errorf("Equal(a, b) = false\n%s\n%s", line.a, line.b)
			}
			if line.a.Hash() != line.b.Hash() {
				t.Error("equal models hash differently")
			}
		})
	}
	if NewEvent().WithMetric(nan1).Equal(NewEvent().WithMetric(0)) {
		t.Error("NaN equals 0")
	}
	if NewEventCurve().AddXItem(nan1).Equal(NewEventCurve().AddXItem(1)) {
		t.Error("[NaN] equals [1]")
	}
}

func TestHashAbsentVersusZero(t *testing.T) {
	if NewEvent().Hash() == NewEvent().WithStep(0).Hash() {
		t.Error("absent step hashes like step 0")
	}
	if NewEventHistogram().Hash() == NewEventHistogram().WithValues([]float64{}).Hash() {
		t.Error("absent values hash like empty values")
	}
	if NewEventChart().Hash() == NewEventChart().WithFigure(map[string]any{}).Hash() {
		t.Error("absent figure hashes like empty figure")
	}
}

func TestHashObjectKeyOrder(t *testing.T) {
	var a, b EventModel
	if err := json.Unmarshal([]byte(`{"spec":{"a":1,"b":[true,"x",null]}}`), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"spec":{"b":[true,"x",null],"a":1}}`), &b); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(&b) {
		t.Fatal("specs differ")
	}
	if a.Hash() != b.Hash() {
		t.Error("hash depends on key order")
	}
	c := NewEventModel().WithSpec(map[string]any{"a": 2.0, "b": []any{true, "x", nil}})
	if a.Equal(c) || a.Hash() == c.Hash() {
		t.Error("different specs compare equal")
	}
}

func TestTimeEquality(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 500, time.UTC)
	a := NewEvent().WithTimestamp(ts)
	b := NewEvent().WithTimestamp(ts.In(time.FixedZone("x", 3600)))
	if !a.Equal(b) {
		t.Error("same instant in different zones is not equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("same instant in different zones hashes differently")
	}
}

func TestDecodeUnknownKeys(t *testing.T) {
	var q Queue
	if err := json.Unmarshal([]byte(`{"name":"q","added_later":{"x":1}}`), &q); err != nil {
		t.Fatal(err)
	}
	if q.GetName() != "q" {
		t.Errorf("Name = %q, want %q", q.GetName(), "q")
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	var q Queue
	err := json.Unmarshal([]byte(`{"priority":"high"}`), &q)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DecodeError", err)
	}
	if de.Model != "Queue" {
		t.Errorf("Model = %q, want %q", de.Model, "Queue")
	}
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) {
		t.Errorf("err = %v, want to wrap *json.UnmarshalTypeError", err)
	}
}

func TestDecodeNestedError(t *testing.T) {
	var r EventsResponse
	err := json.Unmarshal([]byte(`{"data":[{"name":"loss","kind":"metric","events":[{"curve":{"kind":"bogus"}}]}]}`), &r)
	var ee *EnumError
	if !errors.As(err, &ee) {
		t.Fatalf("err = %v, want *EnumError", err)
	}
	if ee.Enum != "EventCurveKind" || ee.Value != "bogus" {
		t.Errorf("EnumError = %+v", ee)
	}
}

func TestNestedText(t *testing.T) {
	e := NewEvent().WithStep(3).WithCurve(NewEventCurveWithDefaults().WithX([]float64{1}))
	want := strings.Join([]string{
		"Event {",
		"    timestamp: null",
		"    step: 3",
		"    metric: null",
		"    image: null",
		"    histogram: null",
		"    audio: null",
		"    video: null",
		"    html: null",
		"    text: null",
		"    chart: null",
		"    curve: EventCurve {",
		"        kind: roc",
		"        x: [1]",
		"        y: null",
		"        annotation: null",
		"    }",
		"    confusion: null",
		"    artifact: null",
		"    model: null",
		"    dataframe: null",
		"}",
	}, "\n")
	if got := e.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestPtr(t *testing.T) {
	v := 3
	p := Ptr(v)
	v = 4
	if *p != 3 {
		t.Errorf("*Ptr(3) = %d", *p)
	}
}
