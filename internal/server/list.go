package server

import (
	"cmp"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// listReq holds the common list parameters.
type listReq struct {
	Owner  string `path:"owner"`
	Agent  string `path:"agent"`
	Offset int    `query:"offset"`
	Limit  int    `query:"limit"`
	Sort   string `query:"sort"`
	Query  string `query:"query"`
	HTTP   *http.Request
}

func (r *listReq) Validate() error {
	if r.Offset < 0 {
		return badRequest("offset must not be negative")
	}
	if r.Limit < 0 || r.Limit > maxLimit {
		return badRequest("limit must be between 1 and " + strconv.Itoa(maxLimit))
	}
	if r.Limit == 0 {
		r.Limit = defaultLimit
	}
	if _, _, err := parseSort(r.Sort); err != nil {
		return err
	}
	if _, err := parseQuery(r.Query); err != nil {
		return err
	}
	return nil
}

// listable is implemented by the stored entities.
type listable interface {
	GetUUID() string
	GetName() string
	GetAgent() string
	GetTags() []string
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// term is one key:value filter. Values are alternatives; neg inverts the
// match.
type term struct {
	key    string
	values []string
	neg    bool
}

// parseQuery parses "name:foo,kind:s3|gcs,tags:~old".
func parseQuery(q string) ([]term, error) {
	var out []term
	for part := range strings.SplitSeq(q, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, ":")
		if !ok || v == "" {
			return nil, badRequest("invalid query term " + strconv.Quote(part))
		}
		switch k = strings.TrimSpace(k); k {
		case "name", "kind", "agent", "tags":
		default:
			return nil, badRequest("unsupported query key " + strconv.Quote(k))
		}
		t := term{key: k}
		v = strings.TrimSpace(v)
		if rest, ok := strings.CutPrefix(v, "~"); ok {
			t.neg = true
			v = rest
		}
		t.values = strings.Split(v, "|")
		out = append(out, t)
	}
	return out, nil
}

func parseSort(s string) (string, bool, error) {
	if s == "" {
		return "created_at", true, nil
	}
	key, desc := strings.CutPrefix(s, "-")
	switch key {
	case "name", "created_at", "updated_at":
		return key, desc, nil
	default:
		return "", false, badRequest("unsupported sort key " + strconv.Quote(key))
	}
}

// attrs returns the values of e matched by a query key.
type attrs[T listable] func(e T, key string) []string

func baseAttrs[T listable](e T, key string) []string {
	switch key {
	case "name":
		return []string{e.GetName()}
	case "agent":
		return []string{e.GetAgent()}
	case "tags":
		return e.GetTags()
	}
	return nil
}

func (t term) match(got []string) bool {
	found := false
	for _, g := range got {
		if slices.Contains(t.values, g) {
			found = true
			break
		}
	}
	return found != t.neg
}

// page filters, sorts and slices items. It returns the page and the total
// count after filtering.
func page[T listable](items []T, req *listReq, attr attrs[T]) ([]T, int) {
	terms, _ := parseQuery(req.Query)
	key, desc, _ := parseSort(req.Sort)
	out := make([]T, 0, len(items))
	for _, e := range items {
		ok := req.Agent == "" || e.GetAgent() == req.Agent
		for _, t := range terms {
			if !t.match(attr(e, t.key)) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		var c int
		switch key {
		case "name":
			c = cmp.Compare(a.GetName(), b.GetName())
		case "updated_at":
			c = a.GetUpdatedAt().Compare(b.GetUpdatedAt())
		default:
			c = a.GetCreatedAt().Compare(b.GetCreatedAt())
		}
		if desc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.GetUUID(), b.GetUUID())
		}
		return c
	})
	total := len(out)
	start := min(req.Offset, total)
	end := min(start+req.Limit, total)
	return out[start:end], total
}

// pageLinks returns the previous and next page URLs, empty when there is
// none.
func pageLinks(req *listReq, total int) (prev, next string) {
	if req.HTTP == nil {
		return "", ""
	}
	link := func(offset int) string {
		u := url.URL{Scheme: "http", Host: req.HTTP.Host, Path: req.HTTP.URL.Path}
		if req.HTTP.TLS != nil {
			u.Scheme = "https"
		}
		q := req.HTTP.URL.Query()
		q.Set("offset", strconv.Itoa(offset))
		q.Set("limit", strconv.Itoa(req.Limit))
		u.RawQuery = q.Encode()
		return u.String()
	}
	if req.Offset > 0 {
		prev = link(max(req.Offset-req.Limit, 0))
	}
	if req.Offset+req.Limit < total {
		next = link(req.Offset + req.Limit)
	}
	return prev, next
}
