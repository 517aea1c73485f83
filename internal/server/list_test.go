package server

import (
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/maruel/plx/models"
)

func TestParseQuery(t *testing.T) {
	got, err := parseQuery(" name:a|b , tags:~old,")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d terms, want 2", len(got))
	}
	if got[0].key != "name" || !slices.Equal(got[0].values, []string{"a", "b"}) || got[0].neg {
		t.Errorf("term 0 = %+v", got[0])
	}
	if got[1].key != "tags" || !slices.Equal(got[1].values, []string{"old"}) || !got[1].neg {
		t.Errorf("term 1 = %+v", got[1])
	}
	for _, q := range []string{"name", "name:", "owner:x"} {
		if _, err := parseQuery(q); err == nil {
			t.Errorf("parseQuery(%q) succeeded", q)
		}
	}
}

func TestParseSort(t *testing.T) {
	data := []struct {
		in   string
		key  string
		desc bool
	}{
		{"", "created_at", true},
		{"name", "name", false},
		{"-updated_at", "updated_at", true},
	}
	for _, line := range data {
		key, desc, err := parseSort(line.in)
		if err != nil {
			t.Fatal(err)
		}
		if key != line.key || desc != line.desc {
			t.Errorf("parseSort(%q) = %q, %t, want %q, %t", line.in, key, desc, line.key, line.desc)
		}
	}
	if _, _, err := parseSort("-kind"); err == nil {
		t.Error("expected error")
	}
}

func TestPage(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var items []*models.Queue
	for i, name := range []string{"c", "a", "b"} {
		items = append(items, models.NewQueue().
			WithUUID(name+"-id").
			WithName(name).
			WithAgent("agent").
			WithTags([]string{"t" + name}).
			WithCreatedAt(base.Add(time.Duration(i)*time.Hour)))
	}
	items[2].SetAgent("other")
	data := []struct {
		name  string
		req   listReq
		want  string
		total int
	}{
		{"Default", listReq{Limit: 10}, "b,a,c", 3},
		{"Name", listReq{Limit: 10, Sort: "name"}, "a,b,c", 3},
		{"Agent", listReq{Limit: 10, Agent: "agent"}, "a,c", 2},
		{"Tags", listReq{Limit: 10, Query: "tags:ta|tc"}, "a,c", 2},
		{"NotTags", listReq{Limit: 10, Query: "tags:~ta"}, "b,c", 2},
		{"Slice", listReq{Limit: 1, Offset: 1, Sort: "name"}, "b", 3},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			got, total := page(items, &line.req, baseAttrs[*models.Queue])
			var names []string
			for _, q := range got {
				names = append(names, q.GetName())
			}
			if s := strings.Join(names, ","); s != line.want {
				t.Errorf("page() = %q, want %q", s, line.want)
			}
			if total != line.total {
				t.Errorf("total = %d, want %d", total, line.total)
			}
		})
	}
}

func TestPageLinks(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/api/v1/orgs/acme/queues?sort=name&offset=2&limit=2", nil)
	req := &listReq{Offset: 2, Limit: 2, HTTP: r}
	prev, next := pageLinks(req, 5)
	if want := "http://example.com/api/v1/orgs/acme/queues?limit=2&offset=0&sort=name"; prev != want {
		t.Errorf("prev = %q, want %q", prev, want)
	}
	if want := "http://example.com/api/v1/orgs/acme/queues?limit=2&offset=4&sort=name"; next != want {
		t.Errorf("next = %q, want %q", next, want)
	}
	req.Offset = 4
	if _, next := pageLinks(req, 5); next != "" {
		t.Errorf("next = %q, want empty", next)
	}
}

func TestRunReqValidate(t *testing.T) {
	good := runReq{Namespace: "default", Owner: "acme", Project: "p", UUID: "r1"}
	if err := good.validate(); err != nil {
		t.Fatal(err)
	}
	for _, bad := range []runReq{
		{Namespace: "default", Owner: "acme", Project: "p"},
		{Namespace: "default", Owner: "..", Project: "p", UUID: "r1"},
		{Namespace: "default", Owner: "acme", Project: `a\b`, UUID: "r1"},
	} {
		if err := bad.validate(); err == nil {
			t.Errorf("%+v: expected error", bad)
		}
	}
}

func TestCollectLogsReqValidate(t *testing.T) {
	run := runReq{Namespace: "default", Owner: "acme", Project: "p", UUID: "r1"}
	data := []struct {
		kind string
		ok   bool
	}{
		{"k8s", true},
		{"docker-logs", true},
		{"", false},
		{".", false},
		{"..", false},
		{".hidden", false},
		{"../../escaped", false},
		{`a\b`, false},
	}
	for _, line := range data {
		r := collectLogsReq{runReq: run, Kind: line.kind}
		if err := r.Validate(); (err == nil) != line.ok {
			t.Errorf("Validate(%q) = %v, want ok=%t", line.kind, err, line.ok)
		}
	}
}
