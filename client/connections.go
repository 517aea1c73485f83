package client

import (
	"context"
	"net/http"

	"github.com/maruel/plx/models"
)

const (
	connectionsRoute = "/api/v1/orgs/{owner}/connections"
	connectionRoute  = connectionsRoute + "/{uuid}"
)

// CreateConnection creates a connection owned by owner.
func (c *Client) CreateConnection(ctx context.Context, owner string, body *models.ConnectionResponse) (*models.ConnectionResponse, error) {
	if body == nil {
		return nil, &RequiredError{Op: "createConnection", Param: "body"}
	}
	out := models.NewConnectionResponse()
	err := c.do(ctx, &call{
		op:     "createConnection",
		method: http.MethodPost,
		route:  connectionsRoute,
		params: map[string]string{"owner": owner},
		body:   body,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetConnection returns a connection.
func (c *Client) GetConnection(ctx context.Context, owner, uuid string) (*models.ConnectionResponse, error) {
	out := models.NewConnectionResponse()
	err := c.do(ctx, &call{
		op:     "getConnection",
		method: http.MethodGet,
		route:  connectionRoute,
		params: map[string]string{"owner": owner, "uuid": uuid},
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteConnection deletes a connection.
func (c *Client) DeleteConnection(ctx context.Context, owner, uuid string) error {
	return c.do(ctx, &call{
		op:     "deleteConnection",
		method: http.MethodDelete,
		route:  connectionRoute,
		params: map[string]string{"owner": owner, "uuid": uuid},
	}, nil)
}

// ListConnections returns a page of the connections of owner.
func (c *Client) ListConnections(ctx context.Context, owner string, opts *ListOptions) (*models.ListConnectionsResponse, error) {
	return c.listConnections(ctx, "listConnections", connectionsRoute, owner, opts)
}

// ListConnectionNames is ListConnections with only the uuid and name of
// each result.
func (c *Client) ListConnectionNames(ctx context.Context, owner string, opts *ListOptions) (*models.ListConnectionsResponse, error) {
	return c.listConnections(ctx, "listConnectionNames", connectionsRoute+"/names", owner, opts)
}

func (c *Client) listConnections(ctx context.Context, op, route, owner string, opts *ListOptions) (*models.ListConnectionsResponse, error) {
	out := models.NewListConnectionsResponse()
	err := c.do(ctx, &call{
		op:     op,
		method: http.MethodGet,
		route:  route,
		params: map[string]string{"owner": owner},
		query:  opts.values(),
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PatchConnection updates the fields present in body.
func (c *Client) PatchConnection(ctx context.Context, owner, uuid string, body *models.ConnectionResponse) (*models.ConnectionResponse, error) {
	return c.writeConnection(ctx, "patchConnection", http.MethodPatch, owner, uuid, body)
}

// UpdateConnection replaces the connection with body.
func (c *Client) UpdateConnection(ctx context.Context, owner, uuid string, body *models.ConnectionResponse) (*models.ConnectionResponse, error) {
	return c.writeConnection(ctx, "updateConnection", http.MethodPut, owner, uuid, body)
}

func (c *Client) writeConnection(ctx context.Context, op, method, owner, uuid string, body *models.ConnectionResponse) (*models.ConnectionResponse, error) {
	if body == nil {
		return nil, &RequiredError{Op: op, Param: "body"}
	}
	out := models.NewConnectionResponse()
	err := c.do(ctx, &call{
		op:     op,
		method: method,
		route:  connectionRoute,
		params: map[string]string{"owner": owner, "uuid": uuid},
		body:   body,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
