package models

// EventCurve is a curve event: the x and y coordinates of a ROC, PR or
// custom curve, in plotting order.
type EventCurve struct {
	Kind       *EventCurveKind `json:"kind,omitempty"`
	X          []float64       `json:"x,omitzero"`
	Y          []float64       `json:"y,omitzero"`
	Annotation *string         `json:"annotation,omitempty"`
}

var eventCurveFields = fieldTable{
	{"Kind", "kind"},
	{"X", "x"},
	{"Y", "y"},
	{"Annotation", "annotation"},
}

// NewEventCurve returns an EventCurve with every field absent.
func NewEventCurve() *EventCurve {
	return &EventCurve{}
}

// NewEventCurveWithDefaults returns an EventCurve with the schema defaults set.
func NewEventCurveWithDefaults() *EventCurve {
	return &EventCurve{Kind: Ptr(DefaultEventCurveKind)}
}

// ModelName implements Model.
func (*EventCurve) ModelName() string { return "EventCurve" }

// Fields implements Model.
func (*EventCurve) Fields() []Field { return eventCurveFields.clone() }

// GetKind returns Kind, or the zero value when absent.
func (c *EventCurve) GetKind() EventCurveKind { return get(c.Kind) }

// HasKind reports whether Kind is set.
func (c *EventCurve) HasKind() bool { return c.Kind != nil }

// SetKind sets Kind.
func (c *EventCurve) SetKind(v EventCurveKind) { c.Kind = &v }

// WithKind sets Kind and returns c.
func (c *EventCurve) WithKind(v EventCurveKind) *EventCurve {
	c.Kind = &v
	return c
}

// GetX returns X.
func (c *EventCurve) GetX() []float64 { return c.X }

// HasX reports whether X is set.
func (c *EventCurve) HasX() bool { return c.X != nil }

// SetX sets X.
func (c *EventCurve) SetX(v []float64) { c.X = v }

// WithX sets X and returns c.
func (c *EventCurve) WithX(v []float64) *EventCurve {
	c.X = v
	return c
}

// AddXItem appends v to X, creating it when absent.
func (c *EventCurve) AddXItem(v float64) *EventCurve {
	if c.X == nil {
		c.X = make([]float64, 0, 1)
	}
	c.X = append(c.X, v)
	return c
}

// GetY returns Y.
func (c *EventCurve) GetY() []float64 { return c.Y }

// HasY reports whether Y is set.
func (c *EventCurve) HasY() bool { return c.Y != nil }

// SetY sets Y.
func (c *EventCurve) SetY(v []float64) { c.Y = v }

// WithY sets Y and returns c.
func (c *EventCurve) WithY(v []float64) *EventCurve {
	c.Y = v
	return c
}

// AddYItem appends v to Y, creating it when absent.
func (c *EventCurve) AddYItem(v float64) *EventCurve {
	if c.Y == nil {
		c.Y = make([]float64, 0, 1)
	}
	c.Y = append(c.Y, v)
	return c
}

// GetAnnotation returns Annotation, or the zero value when absent.
func (c *EventCurve) GetAnnotation() string { return get(c.Annotation) }

// HasAnnotation reports whether Annotation is set.
func (c *EventCurve) HasAnnotation() bool { return c.Annotation != nil }

// SetAnnotation sets Annotation.
func (c *EventCurve) SetAnnotation(v string) { c.Annotation = &v }

// WithAnnotation sets Annotation and returns c.
func (c *EventCurve) WithAnnotation(v string) *EventCurve {
	c.Annotation = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *EventCurve) Equal(o *EventCurve) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Kind, o.Kind) &&
		eqSlice(c.X, o.X) &&
		eqSlice(c.Y, o.Y) &&
		eqPtr(c.Annotation, o.Annotation)
}

func (c *EventCurve) equal(m Model) bool {
	o, ok := m.(*EventCurve)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *EventCurve) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("EventCurve")
	hashStr(h, c.Kind)
	hashFloats(h, c.X)
	hashFloats(h, c.Y)
	hashStr(h, c.Annotation)
	return h.Sum()
}

func (c *EventCurve) String() string {
	if c == nil {
		return "null"
	}
	t := newText("EventCurve")
	t.field("kind", textStr(c.Kind))
	t.field("x", textFloats(c.X))
	t.field("y", textFloats(c.Y))
	t.field("annotation", textStr(c.Annotation))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EventCurve) UnmarshalJSON(data []byte) error {
	type alias EventCurve
	return decode("EventCurve", data, (*alias)(c), eventCurveFields)
}
