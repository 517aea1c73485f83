package server

import (
	"context"
	"reflect"

	"github.com/maruel/ksid"
	"github.com/maruel/plx/models"
)

type connectionReq struct {
	Owner string `path:"owner"`
	UUID  string `path:"uuid"`
}

func (r *connectionReq) Validate() error {
	if r.Owner == "" || r.UUID == "" {
		return badRequest("owner and uuid are required")
	}
	return nil
}

type createConnectionReq struct {
	Owner string                     `path:"owner"`
	Body  *models.ConnectionResponse `body:"ConnectionResponse"`
}

func (r *createConnectionReq) Validate() error {
	if r.Owner == "" {
		return badRequest("owner is required")
	}
	if r.Body.GetName() == "" {
		return badRequest("name is required")
	}
	if !r.Body.HasKind() {
		return badRequest("kind is required")
	}
	return nil
}

type updateConnectionReq struct {
	Owner string                     `path:"owner"`
	UUID  string                     `path:"uuid"`
	Body  *models.ConnectionResponse `body:"ConnectionResponse"`
}

func (r *updateConnectionReq) Validate() error {
	if r.Owner == "" || r.UUID == "" {
		return badRequest("owner and uuid are required")
	}
	if r.Body.HasUUID() && r.Body.GetUUID() != r.UUID {
		return badRequest("uuid in body does not match the path")
	}
	return nil
}

// merge returns a copy of cur with every field present in patch replaced.
func merge[T any](cur, patch *T, fields []models.Field) *T {
	out := *cur
	dst := reflect.ValueOf(&out).Elem()
	src := reflect.ValueOf(patch).Elem()
	for _, f := range fields {
		if v := src.FieldByName(f.Name); !v.IsNil() {
			dst.FieldByName(f.Name).Set(v)
		}
	}
	return &out
}

func connectionAttrs(c *models.ConnectionResponse, key string) []string {
	if key == "kind" {
		return []string{string(c.GetKind())}
	}
	return baseAttrs(c, key)
}

func (s *Server) createConnection(_ context.Context, req *createConnectionReq) (*models.ConnectionResponse, error) {
	c := *req.Body
	now := s.now()
	c.SetUUID(ksid.NewID().String())
	c.SetCreatedAt(now)
	c.SetUpdatedAt(now)
	if !c.HasLiveState() {
		c.SetLiveState(1)
	}
	if err := s.connections.put(req.Owner, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Server) getConnection(_ context.Context, req *connectionReq) (*models.ConnectionResponse, error) {
	c, ok, err := s.connections.get(req.Owner, req.UUID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("connection not found")
	}
	return c, nil
}

func (s *Server) deleteConnection(_ context.Context, req *connectionReq) (*struct{}, error) {
	found, err := s.connections.delete(req.Owner, req.UUID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound("connection not found")
	}
	return nil, nil
}

func (s *Server) listConnections(_ context.Context, req *listReq) (*models.ListConnectionsResponse, error) {
	all, err := s.connections.list(req.Owner)
	if err != nil {
		return nil, err
	}
	items, total := page(all, req, connectionAttrs)
	resp := models.NewListConnectionsResponse().WithCount(int32(total)).WithResults(items)
	prev, next := pageLinks(req, total)
	if prev != "" {
		resp.SetPrevious(prev)
	}
	if next != "" {
		resp.SetNext(next)
	}
	return resp, nil
}

func (s *Server) listConnectionNames(ctx context.Context, req *listReq) (*models.ListConnectionsResponse, error) {
	resp, err := s.listConnections(ctx, req)
	if err != nil {
		return nil, err
	}
	names := make([]*models.ConnectionResponse, len(resp.Results))
	for i, c := range resp.Results {
		names[i] = models.NewConnectionResponse().WithUUID(c.GetUUID()).WithName(c.GetName())
	}
	resp.SetResults(names)
	return resp, nil
}

func (s *Server) updateConnection(ctx context.Context, req *updateConnectionReq) (*models.ConnectionResponse, error) {
	cur, err := s.getConnection(ctx, &connectionReq{Owner: req.Owner, UUID: req.UUID})
	if err != nil {
		return nil, err
	}
	c := *req.Body
	c.UUID = cur.UUID
	c.CreatedAt = cur.CreatedAt
	c.SetUpdatedAt(s.now())
	if !c.HasName() {
		return nil, badRequest("name is required")
	}
	if !c.HasKind() {
		return nil, badRequest("kind is required")
	}
	if err := s.connections.put(req.Owner, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Server) patchConnection(ctx context.Context, req *updateConnectionReq) (*models.ConnectionResponse, error) {
	cur, err := s.getConnection(ctx, &connectionReq{Owner: req.Owner, UUID: req.UUID})
	if err != nil {
		return nil, err
	}
	c := merge(cur, req.Body, cur.Fields())
	c.UUID = cur.UUID
	c.CreatedAt = cur.CreatedAt
	c.SetUpdatedAt(s.now())
	if err := s.connections.put(req.Owner, c); err != nil {
		return nil, err
	}
	return c, nil
}
