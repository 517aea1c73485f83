package client

import (
	"context"
	"net/http"

	"github.com/maruel/plx/models"
)

const (
	queuesRoute = "/api/v1/orgs/{owner}/agents/{agent}/queues"
	queueRoute  = queuesRoute + "/{uuid}"
)

// CreateQueue creates a queue on agent.
func (c *Client) CreateQueue(ctx context.Context, owner, agent string, body *models.Queue) (*models.Queue, error) {
	if body == nil {
		return nil, &RequiredError{Op: "createQueue", Param: "body"}
	}
	out := models.NewQueue()
	err := c.do(ctx, &call{
		op:     "createQueue",
		method: http.MethodPost,
		route:  queuesRoute,
		params: map[string]string{"owner": owner, "agent": agent},
		body:   body,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetQueue returns a queue of agent.
func (c *Client) GetQueue(ctx context.Context, owner, agent, uuid string) (*models.Queue, error) {
	out := models.NewQueue()
	err := c.do(ctx, &call{
		op:     "getQueue",
		method: http.MethodGet,
		route:  queueRoute,
		params: map[string]string{"owner": owner, "agent": agent, "uuid": uuid},
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteQueue deletes a queue of agent.
func (c *Client) DeleteQueue(ctx context.Context, owner, agent, uuid string) error {
	return c.do(ctx, &call{
		op:     "deleteQueue",
		method: http.MethodDelete,
		route:  queueRoute,
		params: map[string]string{"owner": owner, "agent": agent, "uuid": uuid},
	}, nil)
}

// ListQueues returns a page of the queues of agent.
func (c *Client) ListQueues(ctx context.Context, owner, agent string, opts *ListOptions) (*models.ListQueuesResponse, error) {
	return c.listQueues(ctx, "listQueues", queuesRoute, map[string]string{"owner": owner, "agent": agent}, opts)
}

// ListOrganizationQueues returns a page of the queues of every agent of
// owner.
func (c *Client) ListOrganizationQueues(ctx context.Context, owner string, opts *ListOptions) (*models.ListQueuesResponse, error) {
	return c.listQueues(ctx, "listOrganizationQueues", "/api/v1/orgs/{owner}/queues", map[string]string{"owner": owner}, opts)
}

func (c *Client) listQueues(ctx context.Context, op, route string, params map[string]string, opts *ListOptions) (*models.ListQueuesResponse, error) {
	out := models.NewListQueuesResponse()
	err := c.do(ctx, &call{
		op:     op,
		method: http.MethodGet,
		route:  route,
		params: params,
		query:  opts.values(),
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
