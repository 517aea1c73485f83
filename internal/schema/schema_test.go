package schema

import (
	"encoding/json"
	"slices"
	"sort"
	"testing"

	"github.com/maruel/plx/models"
)

func strs[T ~string](v []T) []string {
	out := make([]string, len(v))
	for i := range v {
		out[i] = string(v[i])
	}
	sort.Strings(out)
	return out
}

func TestLoad(t *testing.T) {
	doc, err := Load(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if doc.Paths.Find("/api/v1/orgs/{owner}/connections/{uuid}") == nil {
		t.Error("missing connection path")
	}
	b, err := JSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	var v map[string]any
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatal(err)
	}
	if v["openapi"] != "3.0.3" {
		t.Errorf("openapi = %v", v["openapi"])
	}
}

func TestModelFields(t *testing.T) {
	doc, err := Load(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range models.All() {
		t.Run(m.ModelName(), func(t *testing.T) {
			props, err := Properties(doc, m.ModelName())
			if err != nil {
				t.Fatal(err)
			}
			var keys []string
			for _, f := range m.Fields() {
				keys = append(keys, f.Key)
			}
			sort.Strings(keys)
			if !slices.Equal(props, keys) {
				t.Errorf("schema properties = %v\nfield keys = %v", props, keys)
			}
		})
	}
}

func TestEnums(t *testing.T) {
	doc, err := Load(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	data := map[string][]string{
		"EventCurveKind":           strs(models.EventCurveKindValues()),
		"EventChartKind":           strs(models.EventChartKindValues()),
		"ArtifactKind":             strs(models.ArtifactKindValues()),
		"Optimization":             strs(models.OptimizationValues()),
		"OptimizationResourceType": strs(models.OptimizationResourceTypeValues()),
		"ConnectionKind":           strs(models.ConnectionKindValues()),
	}
	for name, want := range data {
		t.Run(name, func(t *testing.T) {
			got, err := EnumValues(doc, name)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, want) {
				t.Errorf("schema enum = %v\nGo enum = %v", got, want)
			}
		})
	}
	if _, err := EnumValues(doc, "Queue"); err == nil {
		t.Error("Queue is not an enum")
	}
	if _, err := Properties(doc, "Nope"); err == nil {
		t.Error("expected error for unknown schema")
	}
}

func TestValidateJSON(t *testing.T) {
	doc, err := Load(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	data := []struct {
		name  string
		model string
		in    string
		ok    bool
	}{
		{"Connection", "ConnectionResponse", `{"name":"s3-bucket","kind":"s3","tags":["a"]}`, true},
		{"ConnectionUnknownKeys", "ConnectionResponse", `{"name":"c","extra":1}`, true},
		{"ConnectionBadKind", "ConnectionResponse", `{"name":"c","kind":"ftps"}`, false},
		{"ConnectionBadTags", "ConnectionResponse", `{"tags":"a"}`, false},
		{"QueuePriority", "Queue", `{"name":"q","priority":1.5}`, false},
		{"Events", "LoggedEventList", `{"name":"loss","kind":"metric","events":[{"step":1,"metric":0.5}]}`, true},
		{"EventsNested", "LoggedEventList", `{"events":[{"curve":{"kind":"roc","x":["a"]}}]}`, false},
		{"NotJSON", "Queue", `{`, false},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			err := ValidateJSON(doc, line.model, []byte(line.in))
			if (err == nil) != line.ok {
				t.Errorf("ValidateJSON() = %v, want ok=%t", err, line.ok)
			}
		})
	}
}
