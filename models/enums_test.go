package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestEnums(t *testing.T) {
	type enum interface {
		IsValid() bool
	}
	t.Run("ZeroIsNotValid", func(t *testing.T) {
		for _, e := range []enum{
			EventCurveKindUnspecified, EventChartKindUnspecified, ArtifactKindUnspecified,
			OptimizationUnspecified, OptimizationResourceTypeUnspecified, ConnectionKindUnspecified,
		} {
			if e.IsValid() {
				t.Errorf("%T zero value is valid", e)
			}
		}
	})
	t.Run("Counts", func(t *testing.T) {
		if n := len(ArtifactKindValues()); n != 31 {
			t.Errorf("len(ArtifactKindValues()) = %d, want 31", n)
		}
		if n := len(ConnectionKindValues()); n != 33 {
			t.Errorf("len(ConnectionKindValues()) = %d, want 33", n)
		}
	})
	t.Run("RoundTrip", func(t *testing.T) {
		for _, k := range ConnectionKindValues() {
			b, err := json.Marshal(k)
			if err != nil {
				t.Fatal(err)
			}
			var got ConnectionKind
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatal(err)
			}
			if got != k {
				t.Errorf("round trip %q = %q", k, got)
			}
		}
	})
	t.Run("Unknown", func(t *testing.T) {
		var o Optimization
		err := json.Unmarshal([]byte(`"maximise"`), &o)
		var ee *EnumError
		if !errors.As(err, &ee) {
			t.Fatalf("err = %v, want *EnumError", err)
		}
		if ee.Enum != "Optimization" || ee.Value != "maximise" {
			t.Errorf("EnumError = %+v", ee)
		}
		if o != OptimizationUnspecified {
			t.Errorf("o = %q after failed decode", o)
		}
	})
	t.Run("NotAString", func(t *testing.T) {
		var k EventChartKind
		if err := json.Unmarshal([]byte(`3`), &k); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("ValuesIsACopy", func(t *testing.T) {
		v := EventCurveKindValues()
		v[0] = "x"
		if EventCurveKindValues()[0] != EventCurveKindRoc {
			t.Error("Values() exposes the backing array")
		}
	})
}

func TestArtifactKindClassifiers(t *testing.T) {
	data := []struct {
		k                                   ArtifactKind
		single, multi, dir, file, fileOrDir bool
	}{
		{ArtifactKindMetric, true, false, false, false, false},
		{ArtifactKindImage, false, true, false, false, false},
		{ArtifactKindTensorboard, false, false, true, false, false},
		{ArtifactKindDockerfile, false, false, false, true, false},
		{ArtifactKindModel, false, true, false, false, true},
		{ArtifactKindCoderef, false, false, false, false, false},
	}
	for _, line := range data {
		t.Run(string(line.k), func(t *testing.T) {
			if got := line.k.IsSingleFileEvent(); got != line.single {
				t.Errorf("IsSingleFileEvent() = %t", got)
			}
			if got := line.k.IsSingleOrMultiFileEvent(); got != line.multi {
				t.Errorf("IsSingleOrMultiFileEvent() = %t", got)
			}
			if got := line.k.IsDir(); got != line.dir {
				t.Errorf("IsDir() = %t", got)
			}
			if got := line.k.IsFile(); got != line.file {
				t.Errorf("IsFile() = %t", got)
			}
			if got := line.k.IsFileOrDir(); got != line.fileOrDir {
				t.Errorf("IsFileOrDir() = %t", got)
			}
		})
	}
	if _, err := ParseArtifactKind("nope"); err == nil {
		t.Error("ParseArtifactKind(nope) succeeded")
	}
	if k, err := ParseArtifactKind("curve"); err != nil || k != ArtifactKindCurve {
		t.Errorf("ParseArtifactKind(curve) = %q, %v", k, err)
	}
}
