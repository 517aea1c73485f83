package server

import (
	"context"

	"github.com/maruel/ksid"
	"github.com/maruel/plx/models"
)

type queueReq struct {
	Owner string `path:"owner"`
	Agent string `path:"agent"`
	UUID  string `path:"uuid"`
}

func (r *queueReq) Validate() error {
	if r.Owner == "" || r.Agent == "" || r.UUID == "" {
		return badRequest("owner, agent and uuid are required")
	}
	return nil
}

type createQueueReq struct {
	Owner string        `path:"owner"`
	Agent string        `path:"agent"`
	Body  *models.Queue `body:"Queue"`
}

func (r *createQueueReq) Validate() error {
	if r.Owner == "" || r.Agent == "" {
		return badRequest("owner and agent are required")
	}
	if r.Body.GetName() == "" {
		return badRequest("name is required")
	}
	if r.Body.HasAgent() && r.Body.GetAgent() != r.Agent {
		return badRequest("agent in body does not match the path")
	}
	return nil
}

func (s *Server) createQueue(_ context.Context, req *createQueueReq) (*models.Queue, error) {
	q := *req.Body
	now := s.now()
	q.SetUUID(ksid.NewID().String())
	q.SetAgent(req.Agent)
	q.SetCreatedAt(now)
	q.SetUpdatedAt(now)
	if !q.HasPriority() {
		q.SetPriority(0)
	}
	if err := s.queues.put(req.Owner, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *Server) getQueue(_ context.Context, req *queueReq) (*models.Queue, error) {
	q, ok, err := s.queues.get(req.Owner, req.UUID)
	if err != nil {
		return nil, err
	}
	if !ok || q.GetAgent() != req.Agent {
		return nil, notFound("queue not found")
	}
	return q, nil
}

func (s *Server) deleteQueue(ctx context.Context, req *queueReq) (*struct{}, error) {
	if _, err := s.getQueue(ctx, req); err != nil {
		return nil, err
	}
	if _, err := s.queues.delete(req.Owner, req.UUID); err != nil {
		return nil, err
	}
	return nil, nil
}

// listQueues lists the queues of one agent, or of every agent when the route
// has no agent.
func (s *Server) listQueues(_ context.Context, req *listReq) (*models.ListQueuesResponse, error) {
	all, err := s.queues.list(req.Owner)
	if err != nil {
		return nil, err
	}
	items, total := page(all, req, baseAttrs[*models.Queue])
	resp := models.NewListQueuesResponse().WithCount(int32(total)).WithResults(items)
	prev, next := pageLinks(req, total)
	if prev != "" {
		resp.SetPrevious(prev)
	}
	if next != "" {
		resp.SetNext(next)
	}
	return resp, nil
}
