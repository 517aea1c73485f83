package models

import "time"

// Queue is an agent queue runs are scheduled on.
type Queue struct {
	UUID        *string    `json:"uuid,omitempty"`
	Agent       *string    `json:"agent,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitzero"`
	Priority    *int32     `json:"priority,omitempty"`
	Concurrency *int32     `json:"concurrency,omitempty"`
	Resource    *string    `json:"resource,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

var queueFields = fieldTable{
	{"UUID", "uuid"},
	{"Agent", "agent"},
	{"Name", "name"},
	{"Description", "description"},
	{"Tags", "tags"},
	{"Priority", "priority"},
	{"Concurrency", "concurrency"},
	{"Resource", "resource"},
	{"CreatedAt", "created_at"},
	{"UpdatedAt", "updated_at"},
}

// NewQueue returns a Queue with every field absent.
func NewQueue() *Queue {
	return &Queue{}
}

// ModelName implements Model.
func (*Queue) ModelName() string { return "Queue" }

// Fields implements Model.
func (*Queue) Fields() []Field { return queueFields.clone() }

// GetUUID returns UUID, or the zero value when absent.
func (c *Queue) GetUUID() string { return get(c.UUID) }

// HasUUID reports whether UUID is set.
func (c *Queue) HasUUID() bool { return c.UUID != nil }

// SetUUID sets UUID.
func (c *Queue) SetUUID(v string) { c.UUID = &v }

// WithUUID sets UUID and returns c.
func (c *Queue) WithUUID(v string) *Queue {
	c.UUID = &v
	return c
}

// GetAgent returns Agent, or the zero value when absent.
func (c *Queue) GetAgent() string { return get(c.Agent) }

// HasAgent reports whether Agent is set.
func (c *Queue) HasAgent() bool { return c.Agent != nil }

// SetAgent sets Agent.
func (c *Queue) SetAgent(v string) { c.Agent = &v }

// WithAgent sets Agent and returns c.
func (c *Queue) WithAgent(v string) *Queue {
	c.Agent = &v
	return c
}

// GetName returns Name, or the zero value when absent.
func (c *Queue) GetName() string { return get(c.Name) }

// HasName reports whether Name is set.
func (c *Queue) HasName() bool { return c.Name != nil }

// SetName sets Name.
func (c *Queue) SetName(v string) { c.Name = &v }

// WithName sets Name and returns c.
func (c *Queue) WithName(v string) *Queue {
	c.Name = &v
	return c
}

// GetDescription returns Description, or the zero value when absent.
func (c *Queue) GetDescription() string { return get(c.Description) }

// HasDescription reports whether Description is set.
func (c *Queue) HasDescription() bool { return c.Description != nil }

// SetDescription sets Description.
func (c *Queue) SetDescription(v string) { c.Description = &v }

// WithDescription sets Description and returns c.
func (c *Queue) WithDescription(v string) *Queue {
	c.Description = &v
	return c
}

// GetTags returns Tags.
func (c *Queue) GetTags() []string { return c.Tags }

// HasTags reports whether Tags is set.
func (c *Queue) HasTags() bool { return c.Tags != nil }

// SetTags sets Tags.
func (c *Queue) SetTags(v []string) { c.Tags = v }

// WithTags sets Tags and returns c.
func (c *Queue) WithTags(v []string) *Queue {
	c.Tags = v
	return c
}

// AddTagsItem appends v to Tags, creating it when absent.
func (c *Queue) AddTagsItem(v string) *Queue {
	if c.Tags == nil {
		c.Tags = make([]string, 0, 1)
	}
	c.Tags = append(c.Tags, v)
	return c
}

// GetPriority returns Priority, or the zero value when absent.
func (c *Queue) GetPriority() int32 { return get(c.Priority) }

// HasPriority reports whether Priority is set.
func (c *Queue) HasPriority() bool { return c.Priority != nil }

// SetPriority sets Priority.
func (c *Queue) SetPriority(v int32) { c.Priority = &v }

// WithPriority sets Priority and returns c.
func (c *Queue) WithPriority(v int32) *Queue {
	c.Priority = &v
	return c
}

// GetConcurrency returns Concurrency, or the zero value when absent.
func (c *Queue) GetConcurrency() int32 { return get(c.Concurrency) }

// HasConcurrency reports whether Concurrency is set.
func (c *Queue) HasConcurrency() bool { return c.Concurrency != nil }

// SetConcurrency sets Concurrency.
func (c *Queue) SetConcurrency(v int32) { c.Concurrency = &v }

// WithConcurrency sets Concurrency and returns c.
func (c *Queue) WithConcurrency(v int32) *Queue {
	c.Concurrency = &v
	return c
}

// GetResource returns Resource, or the zero value when absent.
func (c *Queue) GetResource() string { return get(c.Resource) }

// HasResource reports whether Resource is set.
func (c *Queue) HasResource() bool { return c.Resource != nil }

// SetResource sets Resource.
func (c *Queue) SetResource(v string) { c.Resource = &v }

// WithResource sets Resource and returns c.
func (c *Queue) WithResource(v string) *Queue {
	c.Resource = &v
	return c
}

// GetCreatedAt returns CreatedAt, or the zero value when absent.
func (c *Queue) GetCreatedAt() time.Time { return get(c.CreatedAt) }

// HasCreatedAt reports whether CreatedAt is set.
func (c *Queue) HasCreatedAt() bool { return c.CreatedAt != nil }

// SetCreatedAt sets CreatedAt.
func (c *Queue) SetCreatedAt(v time.Time) { c.CreatedAt = &v }

// WithCreatedAt sets CreatedAt and returns c.
func (c *Queue) WithCreatedAt(v time.Time) *Queue {
	c.CreatedAt = &v
	return c
}

// GetUpdatedAt returns UpdatedAt, or the zero value when absent.
func (c *Queue) GetUpdatedAt() time.Time { return get(c.UpdatedAt) }

// HasUpdatedAt reports whether UpdatedAt is set.
func (c *Queue) HasUpdatedAt() bool { return c.UpdatedAt != nil }

// SetUpdatedAt sets UpdatedAt.
func (c *Queue) SetUpdatedAt(v time.Time) { c.UpdatedAt = &v }

// WithUpdatedAt sets UpdatedAt and returns c.
func (c *Queue) WithUpdatedAt(v time.Time) *Queue {
	c.UpdatedAt = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *Queue) Equal(o *Queue) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.UUID, o.UUID) &&
		eqPtr(c.Agent, o.Agent) &&
		eqPtr(c.Name, o.Name) &&
		eqPtr(c.Description, o.Description) &&
		eqSlice(c.Tags, o.Tags) &&
		eqPtr(c.Priority, o.Priority) &&
		eqPtr(c.Concurrency, o.Concurrency) &&
		eqPtr(c.Resource, o.Resource) &&
		eqTime(c.CreatedAt, o.CreatedAt) &&
		eqTime(c.UpdatedAt, o.UpdatedAt)
}

func (c *Queue) equal(m Model) bool {
	o, ok := m.(*Queue)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *Queue) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("Queue")
	hashStr(h, c.UUID)
	hashStr(h, c.Agent)
	hashStr(h, c.Name)
	hashStr(h, c.Description)
	hashStrs(h, c.Tags)
	hashInt(h, c.Priority)
	hashInt(h, c.Concurrency)
	hashStr(h, c.Resource)
	hashTime(h, c.CreatedAt)
	hashTime(h, c.UpdatedAt)
	return h.Sum()
}

func (c *Queue) String() string {
	if c == nil {
		return "null"
	}
	t := newText("Queue")
	t.field("uuid", textStr(c.UUID))
	t.field("agent", textStr(c.Agent))
	t.field("name", textStr(c.Name))
	t.field("description", textStr(c.Description))
	t.field("tags", textStrs(c.Tags))
	t.field("priority", textInt(c.Priority))
	t.field("concurrency", textInt(c.Concurrency))
	t.field("resource", textStr(c.Resource))
	t.field("created_at", textTime(c.CreatedAt))
	t.field("updated_at", textTime(c.UpdatedAt))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Queue) UnmarshalJSON(data []byte) error {
	type alias Queue
	return decode("Queue", data, (*alias)(c), queueFields)
}

// ListQueuesResponse is one page of queues.
type ListQueuesResponse struct {
	Count    *int32   `json:"count,omitempty"`
	Results  []*Queue `json:"results,omitzero"`
	Previous *string  `json:"previous,omitempty"`
	Next     *string  `json:"next,omitempty"`
}

var listQueuesResponseFields = fieldTable{
	{"Count", "count"},
	{"Results", "results"},
	{"Previous", "previous"},
	{"Next", "next"},
}

// NewListQueuesResponse returns a ListQueuesResponse with every field absent.
func NewListQueuesResponse() *ListQueuesResponse {
	return &ListQueuesResponse{}
}

// ModelName implements Model.
func (*ListQueuesResponse) ModelName() string { return "ListQueuesResponse" }

// Fields implements Model.
func (*ListQueuesResponse) Fields() []Field { return listQueuesResponseFields.clone() }

// GetCount returns Count.
func (c *ListQueuesResponse) GetCount() int32 { return get(c.Count) }

// HasCount reports whether Count is set.
func (c *ListQueuesResponse) HasCount() bool { return c.Count != nil }

// SetCount sets Count.
func (c *ListQueuesResponse) SetCount(v int32) { c.Count = &v }

// WithCount sets Count and returns c.
func (c *ListQueuesResponse) WithCount(v int32) *ListQueuesResponse {
	c.Count = &v
	return c
}

// GetResults returns Results.
func (c *ListQueuesResponse) GetResults() []*Queue { return c.Results }

// HasResults reports whether Results is set.
func (c *ListQueuesResponse) HasResults() bool { return c.Results != nil }

// SetResults sets Results.
func (c *ListQueuesResponse) SetResults(v []*Queue) { c.Results = v }

// WithResults sets Results and returns c.
func (c *ListQueuesResponse) WithResults(v []*Queue) *ListQueuesResponse {
	c.Results = v
	return c
}

// AddResultsItem appends v to Results, creating it when absent.
func (c *ListQueuesResponse) AddResultsItem(v *Queue) *ListQueuesResponse {
	if c.Results == nil {
		c.Results = make([]*Queue, 0, 1)
	}
	c.Results = append(c.Results, v)
	return c
}

// GetPrevious returns Previous.
func (c *ListQueuesResponse) GetPrevious() string { return get(c.Previous) }

// HasPrevious reports whether Previous is set.
func (c *ListQueuesResponse) HasPrevious() bool { return c.Previous != nil }

// SetPrevious sets Previous.
func (c *ListQueuesResponse) SetPrevious(v string) { c.Previous = &v }

// WithPrevious sets Previous and returns c.
func (c *ListQueuesResponse) WithPrevious(v string) *ListQueuesResponse {
	c.Previous = &v
	return c
}

// GetNext returns Next.
func (c *ListQueuesResponse) GetNext() string { return get(c.Next) }

// HasNext reports whether Next is set.
func (c *ListQueuesResponse) HasNext() bool { return c.Next != nil }

// SetNext sets Next.
func (c *ListQueuesResponse) SetNext(v string) { c.Next = &v }

// WithNext sets Next and returns c.
func (c *ListQueuesResponse) WithNext(v string) *ListQueuesResponse {
	c.Next = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *ListQueuesResponse) Equal(o *ListQueuesResponse) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Count, o.Count) &&
		eqModels(c.Results, o.Results) &&
		eqPtr(c.Previous, o.Previous) &&
		eqPtr(c.Next, o.Next)
}

func (c *ListQueuesResponse) equal(m Model) bool {
	o, ok := m.(*ListQueuesResponse)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *ListQueuesResponse) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("ListQueuesResponse")
	hashInt(h, c.Count)
	hashModels(h, c.Results)
	hashStr(h, c.Previous)
	hashStr(h, c.Next)
	return h.Sum()
}

func (c *ListQueuesResponse) String() string {
	if c == nil {
		return "null"
	}
	t := newText("ListQueuesResponse")
	t.field("count", textInt(c.Count))
	t.field("results", textModels(c.Results))
	t.field("previous", textStr(c.Previous))
	t.field("next", textStr(c.Next))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ListQueuesResponse) UnmarshalJSON(data []byte) error {
	type alias ListQueuesResponse
	return decode("ListQueuesResponse", data, (*alias)(c), listQueuesResponseFields)
}
