package models

import "time"

// ConnectionResponse describes a connection to an external system.
type ConnectionResponse struct {
	UUID        *string         `json:"uuid,omitempty"`
	Name        *string         `json:"name,omitempty"`
	Agent       *string         `json:"agent,omitempty"`
	Description *string         `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitzero"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
	LiveState   *int32          `json:"live_state,omitempty"`
	Kind        *ConnectionKind `json:"kind,omitempty"`
}

var connectionResponseFields = fieldTable{
	{"UUID", "uuid"},
	{"Name", "name"},
	{"Agent", "agent"},
	{"Description", "description"},
	{"Tags", "tags"},
	{"CreatedAt", "created_at"},
	{"UpdatedAt", "updated_at"},
	{"LiveState", "live_state"},
	{"Kind", "kind"},
}

// NewConnectionResponse returns a ConnectionResponse with every field absent.
func NewConnectionResponse() *ConnectionResponse {
	return &ConnectionResponse{}
}

// ModelName implements Model.
func (*ConnectionResponse) ModelName() string { return "ConnectionResponse" }

// Fields implements Model.
func (*ConnectionResponse) Fields() []Field { return connectionResponseFields.clone() }

// GetUUID returns UUID, or the zero value when absent.
func (c *ConnectionResponse) GetUUID() string { return get(c.UUID) }

// HasUUID reports whether UUID is set.
func (c *ConnectionResponse) HasUUID() bool { return c.UUID != nil }

// SetUUID sets UUID.
func (c *ConnectionResponse) SetUUID(v string) { c.UUID = &v }

// WithUUID sets UUID and returns c.
func (c *ConnectionResponse) WithUUID(v string) *ConnectionResponse {
	c.UUID = &v
	return c
}

// GetName returns Name, or the zero value when absent.
func (c *ConnectionResponse) GetName() string { return get(c.Name) }

// HasName reports whether Name is set.
func (c *ConnectionResponse) HasName() bool { return c.Name != nil }

// SetName sets Name.
func (c *ConnectionResponse) SetName(v string) { c.Name = &v }

// WithName sets Name and returns c.
func (c *ConnectionResponse) WithName(v string) *ConnectionResponse {
	c.Name = &v
	return c
}

// GetAgent returns Agent, or the zero value when absent.
func (c *ConnectionResponse) GetAgent() string { return get(c.Agent) }

// HasAgent reports whether Agent is set.
func (c *ConnectionResponse) HasAgent() bool { return c.Agent != nil }

// SetAgent sets Agent.
func (c *ConnectionResponse) SetAgent(v string) { c.Agent = &v }

// WithAgent sets Agent and returns c.
func (c *ConnectionResponse) WithAgent(v string) *ConnectionResponse {
	c.Agent = &v
	return c
}

// GetDescription returns Description, or the zero value when absent.
func (c *ConnectionResponse) GetDescription() string { return get(c.Description) }

// HasDescription reports whether Description is set.
func (c *ConnectionResponse) HasDescription() bool { return c.Description != nil }

// SetDescription sets Description.
func (c *ConnectionResponse) SetDescription(v string) { c.Description = &v }

// WithDescription sets Description and returns c.
func (c *ConnectionResponse) WithDescription(v string) *ConnectionResponse {
	c.Description = &v
	return c
}

// GetTags returns Tags.
func (c *ConnectionResponse) GetTags() []string { return c.Tags }

// HasTags reports whether Tags is set.
func (c *ConnectionResponse) HasTags() bool { return c.Tags != nil }

// SetTags sets Tags.
func (c *ConnectionResponse) SetTags(v []string) { c.Tags = v }

// WithTags sets Tags and returns c.
func (c *ConnectionResponse) WithTags(v []string) *ConnectionResponse {
	c.Tags = v
	return c
}

// AddTagsItem appends v to Tags, creating it when absent.
func (c *ConnectionResponse) AddTagsItem(v string) *ConnectionResponse {
	if c.Tags == nil {
		c.Tags = make([]string, 0, 1)
	}
	c.Tags = append(c.Tags, v)
	return c
}

// GetCreatedAt returns CreatedAt, or the zero value when absent.
func (c *ConnectionResponse) GetCreatedAt() time.Time { return get(c.CreatedAt) }

// HasCreatedAt reports whether CreatedAt is set.
func (c *ConnectionResponse) HasCreatedAt() bool { return c.CreatedAt != nil }

// SetCreatedAt sets CreatedAt.
func (c *ConnectionResponse) SetCreatedAt(v time.Time) { c.CreatedAt = &v }

// WithCreatedAt sets CreatedAt and returns c.
func (c *ConnectionResponse) WithCreatedAt(v time.Time) *ConnectionResponse {
	c.CreatedAt = &v
	return c
}

// GetUpdatedAt returns UpdatedAt, or the zero value when absent.
func (c *ConnectionResponse) GetUpdatedAt() time.Time { return get(c.UpdatedAt) }

// HasUpdatedAt reports whether UpdatedAt is set.
func (c *ConnectionResponse) HasUpdatedAt() bool { return c.UpdatedAt != nil }

// SetUpdatedAt sets UpdatedAt.
func (c *ConnectionResponse) SetUpdatedAt(v time.Time) { c.UpdatedAt = &v }

// WithUpdatedAt sets UpdatedAt and returns c.
func (c *ConnectionResponse) WithUpdatedAt(v time.Time) *ConnectionResponse {
	c.UpdatedAt = &v
	return c
}

// GetLiveState returns LiveState, or the zero value when absent.
func (c *ConnectionResponse) GetLiveState() int32 { return get(c.LiveState) }

// HasLiveState reports whether LiveState is set.
func (c *ConnectionResponse) HasLiveState() bool { return c.LiveState != nil }

// SetLiveState sets LiveState.
func (c *ConnectionResponse) SetLiveState(v int32) { c.LiveState = &v }

// WithLiveState sets LiveState and returns c.
func (c *ConnectionResponse) WithLiveState(v int32) *ConnectionResponse {
	c.LiveState = &v
	return c
}

// GetKind returns Kind, or the zero value when absent.
func (c *ConnectionResponse) GetKind() ConnectionKind { return get(c.Kind) }

// HasKind reports whether Kind is set.
func (c *ConnectionResponse) HasKind() bool { return c.Kind != nil }

// SetKind sets Kind.
func (c *ConnectionResponse) SetKind(v ConnectionKind) { c.Kind = &v }

// WithKind sets Kind and returns c.
func (c *ConnectionResponse) WithKind(v ConnectionKind) *ConnectionResponse {
	c.Kind = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *ConnectionResponse) Equal(o *ConnectionResponse) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.UUID, o.UUID) &&
		eqPtr(c.Name, o.Name) &&
		eqPtr(c.Agent, o.Agent) &&
		eqPtr(c.Description, o.Description) &&
		eqSlice(c.Tags, o.Tags) &&
		eqTime(c.CreatedAt, o.CreatedAt) &&
		eqTime(c.UpdatedAt, o.UpdatedAt) &&
		eqPtr(c.LiveState, o.LiveState) &&
		eqPtr(c.Kind, o.Kind)
}

func (c *ConnectionResponse) equal(m Model) bool {
	o, ok := m.(*ConnectionResponse)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *ConnectionResponse) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("ConnectionResponse")
	hashStr(h, c.UUID)
	hashStr(h, c.Name)
	hashStr(h, c.Agent)
	hashStr(h, c.Description)
	hashStrs(h, c.Tags)
	hashTime(h, c.CreatedAt)
	hashTime(h, c.UpdatedAt)
	hashInt(h, c.LiveState)
	hashStr(h, c.Kind)
	return h.Sum()
}

func (c *ConnectionResponse) String() string {
	if c == nil {
		return "null"
	}
	t := newText("ConnectionResponse")
	t.field("uuid", textStr(c.UUID))
	t.field("name", textStr(c.Name))
	t.field("agent", textStr(c.Agent))
	t.field("description", textStr(c.Description))
	t.field("tags", textStrs(c.Tags))
	t.field("created_at", textTime(c.CreatedAt))
	t.field("updated_at", textTime(c.UpdatedAt))
	t.field("live_state", textInt(c.LiveState))
	t.field("kind", textStr(c.Kind))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ConnectionResponse) UnmarshalJSON(data []byte) error {
	type alias ConnectionResponse
	return decode("ConnectionResponse", data, (*alias)(c), connectionResponseFields)
}

// ListConnectionsResponse is one page of connections.
type ListConnectionsResponse struct {
	Count    *int32                `json:"count,omitempty"`
	Results  []*ConnectionResponse `json:"results,omitzero"`
	Previous *string               `json:"previous,omitempty"`
	Next     *string               `json:"next,omitempty"`
}

var listConnectionsResponseFields = fieldTable{
	{"Count", "count"},
	{"Results", "results"},
	{"Previous", "previous"},
	{"Next", "next"},
}

// NewListConnectionsResponse returns a ListConnectionsResponse with every field absent.
func NewListConnectionsResponse() *ListConnectionsResponse {
	return &ListConnectionsResponse{}
}

// ModelName implements Model.
func (*ListConnectionsResponse) ModelName() string { return "ListConnectionsResponse" }

// Fields implements Model.
func (*ListConnectionsResponse) Fields() []Field { return listConnectionsResponseFields.clone() }

// GetCount returns Count, or the zero value when absent.
func (c *ListConnectionsResponse) GetCount() int32 { return get(c.Count) }

// HasCount reports whether Count is set.
func (c *ListConnectionsResponse) HasCount() bool { return c.Count != nil }

// SetCount sets Count.
func (c *ListConnectionsResponse) SetCount(v int32) { c.Count = &v }

// WithCount sets Count and returns c.
func (c *ListConnectionsResponse) WithCount(v int32) *ListConnectionsResponse {
	c.Count = &v
	return c
}

// GetResults returns Results.
func (c *ListConnectionsResponse) GetResults() []*ConnectionResponse { return c.Results }

// HasResults reports whether Results is set.
func (c *ListConnectionsResponse) HasResults() bool { return c.Results != nil }

// SetResults sets Results.
func (c *ListConnectionsResponse) SetResults(v []*ConnectionResponse) { c.Results = v }

// WithResults sets Results and returns c.
func (c *ListConnectionsResponse) WithResults(v []*ConnectionResponse) *ListConnectionsResponse {
	c.Results = v
	return c
}

// AddResultsItem appends v to Results, creating it when absent.
func (c *ListConnectionsResponse) AddResultsItem(v *ConnectionResponse) *ListConnectionsResponse {
	if c.Results == nil {
		c.Results = make([]*ConnectionResponse, 0, 1)
	}
	c.Results = append(c.Results, v)
	return c
}

// GetPrevious returns Previous, or the zero value when absent.
func (c *ListConnectionsResponse) GetPrevious() string { return get(c.Previous) }

// HasPrevious reports whether Previous is set.
func (c *ListConnectionsResponse) HasPrevious() bool { return c.Previous != nil }

// SetPrevious sets Previous.
func (c *ListConnectionsResponse) SetPrevious(v string) { c.Previous = &v }

// WithPrevious sets Previous and returns c.
func (c *ListConnectionsResponse) WithPrevious(v string) *ListConnectionsResponse {
	c.Previous = &v
	return c
}

// GetNext returns Next, or the zero value when absent.
func (c *ListConnectionsResponse) GetNext() string { return get(c.Next) }

// HasNext reports whether Next is set.
func (c *ListConnectionsResponse) HasNext() bool { return c.Next != nil }

// SetNext sets Next.
func (c *ListConnectionsResponse) SetNext(v string) { c.Next = &v }

// WithNext sets Next and returns c.
func (c *ListConnectionsResponse) WithNext(v string) *ListConnectionsResponse {
	c.Next = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *ListConnectionsResponse) Equal(o *ListConnectionsResponse) bool {
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

func (c *ListConnectionsResponse) equal(m Model) bool {
	o, ok := m.(*ListConnectionsResponse)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *ListConnectionsResponse) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("ListConnectionsResponse")
	hashInt(h, c.Count)
	hashModels(h, c.Results)
	hashStr(h, c.Previous)
	hashStr(h, c.Next)
	return h.Sum()
}

func (c *ListConnectionsResponse) String() string {
	if c == nil {
		return "null"
	}
	t := newText("ListConnectionsResponse")
	t.field("count", textInt(c.Count))
	t.field("results", textModels(c.Results))
	t.field("previous", textStr(c.Previous))
	t.field("next", textStr(c.Next))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ListConnectionsResponse) UnmarshalJSON(data []byte) error {
	type alias ListConnectionsResponse
	return decode("ListConnectionsResponse", data, (*alias)(c), listConnectionsResponseFields)
}
