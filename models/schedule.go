package models

import "time"

// IntervalScheduleKind is the discriminator of IntervalSchedule.
const IntervalScheduleKind = "interval"

// IntervalSchedule triggers a run every Frequency seconds between StartAt and
// EndAt.
type IntervalSchedule struct {
	Kind          *string    `json:"kind,omitempty"`
	StartAt       *time.Time `json:"start_at,omitempty"`
	EndAt         *time.Time `json:"end_at,omitempty"`
	Frequency     *int64     `json:"frequency,omitempty"`
	DependsOnPast *bool      `json:"depends_on_past,omitempty"`
}

var intervalScheduleFields = fieldTable{
	{"Kind", "kind"},
	{"StartAt", "start_at"},
	{"EndAt", "end_at"},
	{"Frequency", "frequency"},
	{"DependsOnPast", "depends_on_past"},
}

// NewIntervalSchedule returns an IntervalSchedule with every field absent.
func NewIntervalSchedule() *IntervalSchedule {
	return &IntervalSchedule{}
}

// NewIntervalScheduleWithDefaults returns an IntervalSchedule with the schema defaults set.
func NewIntervalScheduleWithDefaults() *IntervalSchedule {
	return &IntervalSchedule{Kind: Ptr(IntervalScheduleKind)}
}

// ModelName implements Model.
func (*IntervalSchedule) ModelName() string { return "IntervalSchedule" }

// Fields implements Model.
func (*IntervalSchedule) Fields() []Field { return intervalScheduleFields.clone() }

// GetKind returns Kind, or the zero value when absent.
func (c *IntervalSchedule) GetKind() string { return get(c.Kind) }

// HasKind reports whether Kind is set.
func (c *IntervalSchedule) HasKind() bool { return c.Kind != nil }

// SetKind sets Kind.
func (c *IntervalSchedule) SetKind(v string) { c.Kind = &v }

// WithKind sets Kind and returns c.
func (c *IntervalSchedule) WithKind(v string) *IntervalSchedule {
	c.Kind = &v
	return c
}

// GetStartAt returns StartAt, or the zero value when absent.
func (c *IntervalSchedule) GetStartAt() time.Time { return get(c.StartAt) }

// HasStartAt reports whether StartAt is set.
func (c *IntervalSchedule) HasStartAt() bool { return c.StartAt != nil }

// SetStartAt sets StartAt.
func (c *IntervalSchedule) SetStartAt(v time.Time) { c.StartAt = &v }

// WithStartAt sets StartAt and returns c.
func (c *IntervalSchedule) WithStartAt(v time.Time) *IntervalSchedule {
	c.StartAt = &v
	return c
}

// GetEndAt returns EndAt, or the zero value when absent.
func (c *IntervalSchedule) GetEndAt() time.Time { return get(c.EndAt) }

// HasEndAt reports whether EndAt is set.
func (c *IntervalSchedule) HasEndAt() bool { return c.EndAt != nil }

// SetEndAt sets EndAt.
func (c *IntervalSchedule) SetEndAt(v time.Time) { c.EndAt = &v }

// WithEndAt sets EndAt and returns c.
func (c *IntervalSchedule) WithEndAt(v time.Time) *IntervalSchedule {
	c.EndAt = &v
	return c
}

// GetFrequency returns Frequency, or the zero value when absent.
func (c *IntervalSchedule) GetFrequency() int64 { return get(c.Frequency) }

// HasFrequency reports whether Frequency is set.
func (c *IntervalSchedule) HasFrequency() bool { return c.Frequency != nil }

// SetFrequency sets Frequency.
func (c *IntervalSchedule) SetFrequency(v int64) { c.Frequency = &v }

// WithFrequency sets Frequency and returns c.
func (c *IntervalSchedule) WithFrequency(v int64) *IntervalSchedule {
	c.Frequency = &v
	return c
}

// GetDependsOnPast returns DependsOnPast, or the zero value when absent.
func (c *IntervalSchedule) GetDependsOnPast() bool { return get(c.DependsOnPast) }

// HasDependsOnPast reports whether DependsOnPast is set.
func (c *IntervalSchedule) HasDependsOnPast() bool { return c.DependsOnPast != nil }

// SetDependsOnPast sets DependsOnPast.
func (c *IntervalSchedule) SetDependsOnPast(v bool) { c.DependsOnPast = &v }

// WithDependsOnPast sets DependsOnPast and returns c.
func (c *IntervalSchedule) WithDependsOnPast(v bool) *IntervalSchedule {
	c.DependsOnPast = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *IntervalSchedule) Equal(o *IntervalSchedule) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Kind, o.Kind) &&
		eqTime(c.StartAt, o.StartAt) &&
		eqTime(c.EndAt, o.EndAt) &&
		eqPtr(c.Frequency, o.Frequency) &&
		eqPtr(c.DependsOnPast, o.DependsOnPast)
}

func (c *IntervalSchedule) equal(m Model) bool {
	o, ok := m.(*IntervalSchedule)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *IntervalSchedule) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("IntervalSchedule")
	hashStr(h, c.Kind)
	hashTime(h, c.StartAt)
	hashTime(h, c.EndAt)
	hashInt(h, c.Frequency)
	hashBool(h, c.DependsOnPast)
	return h.Sum()
}

func (c *IntervalSchedule) String() string {
	if c == nil {
		return "null"
	}
	t := newText("IntervalSchedule")
	t.field("kind", textStr(c.Kind))
	t.field("start_at", textTime(c.StartAt))
	t.field("end_at", textTime(c.EndAt))
	t.field("frequency", textInt(c.Frequency))
	t.field("depends_on_past", textBool(c.DependsOnPast))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *IntervalSchedule) UnmarshalJSON(data []byte) error {
	type alias IntervalSchedule
	return decode("IntervalSchedule", data, (*alias)(c), intervalScheduleFields)
}
