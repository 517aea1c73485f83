package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/maruel/plx/models"
)

// Run identifies a run.
type Run struct {
	Namespace string
	Owner     string
	Project   string
	UUID      string
}

func (r *Run) params(kind string) map[string]string {
	if r == nil {
		return map[string]string{"kind": kind}
	}
	return map[string]string{
		"namespace": r.Namespace,
		"owner":     r.Owner,
		"project":   r.Project,
		"uuid":      r.UUID,
		"kind":      kind,
	}
}

const eventsRoute = "/streams/v1/{namespace}/{owner}/{project}/runs/{uuid}/events/{kind}"

// CollectRunLogs asks the server to collect the logs of kind of a run.
func (c *Client) CollectRunLogs(ctx context.Context, run *Run, kind string) error {
	return c.do(ctx, &call{
		op:     "collectRunLogs",
		method: http.MethodPost,
		route:  "/streams/v1/{namespace}/_internal/{owner}/{project}/runs/{uuid}/{kind}/logs",
		params: run.params(kind),
	}, nil)
}

// LogRunEvents appends the events of body to the run.
func (c *Client) LogRunEvents(ctx context.Context, run *Run, kind models.ArtifactKind, body *models.LoggedEventList) error {
	if body == nil {
		return &RequiredError{Op: "logRunEvents", Param: "body"}
	}
	return c.do(ctx, &call{
		op:     "logRunEvents",
		method: http.MethodPost,
		route:  eventsRoute,
		params: run.params(string(kind)),
		body:   body,
	}, nil)
}

// EventsOptions selects the events returned by GetRunEvents.
type EventsOptions struct {
	// Names defaults to every event of the kind.
	Names []string
	// Sample caps the number of events per name, evenly spaced.
	Sample int
}

// GetRunEvents returns the events of kind of the run.
func (c *Client) GetRunEvents(ctx context.Context, run *Run, kind models.ArtifactKind, opts *EventsOptions) (*models.EventsResponse, error) {
	q := url.Values{}
	if opts != nil {
		if len(opts.Names) != 0 {
			q.Set("names", strings.Join(opts.Names, ","))
		}
		if opts.Sample > 0 {
			q.Set("sample", strconv.Itoa(opts.Sample))
		}
	}
	out := models.NewEventsResponse()
	err := c.do(ctx, &call{
		op:     "getRunEvents",
		method: http.MethodGet,
		route:  eventsRoute,
		params: run.params(string(kind)),
		query:  q,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
