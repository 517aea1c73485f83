package models

import (
	"errors"
	"fmt"
	"time"
)

// Event is one logged value. Exactly one primitive (Metric, Image, Histogram,
// Audio, Video, HTML, Text, Chart, Curve, Confusion, Artifact, Model or
// Dataframe) is expected to be set; see Validate.
type Event struct {
	Timestamp *time.Time            `json:"timestamp,omitempty"`
	Step      *int64                `json:"step,omitempty"`
	Metric    *float64              `json:"metric,omitempty"`
	Image     *EventImage           `json:"image,omitempty"`
	Histogram *EventHistogram       `json:"histogram,omitempty"`
	Audio     *EventAudio           `json:"audio,omitempty"`
	Video     *EventVideo           `json:"video,omitempty"`
	HTML      *string               `json:"html,omitempty"`
	Text      *string               `json:"text,omitempty"`
	Chart     *EventChart           `json:"chart,omitempty"`
	Curve     *EventCurve           `json:"curve,omitempty"`
	Confusion *EventConfusionMatrix `json:"confusion,omitempty"`
	Artifact  *EventArtifact        `json:"artifact,omitempty"`
	Model     *EventModel           `json:"model,omitempty"`
	Dataframe *EventDataframe       `json:"dataframe,omitempty"`
}

var eventFields = fieldTable{
	{"Timestamp", "timestamp"},
	{"Step", "step"},
	{"Metric", "metric"},
	{"Image", "image"},
	{"Histogram", "histogram"},
	{"Audio", "audio"},
	{"Video", "video"},
	{"HTML", "html"},
	{"Text", "text"},
	{"Chart", "chart"},
	{"Curve", "curve"},
	{"Confusion", "confusion"},
	{"Artifact", "artifact"},
	{"Model", "model"},
	{"Dataframe", "dataframe"},
}

// NewEvent returns an Event with every field absent.
func NewEvent() *Event {
	return &Event{}
}

// ModelName implements Model.
func (*Event) ModelName() string { return "Event" }

// Fields implements Model.
func (*Event) Fields() []Field { return eventFields.clone() }

// GetTimestamp returns Timestamp, or the zero value when absent.
func (c *Event) GetTimestamp() time.Time { return get(c.Timestamp) }

// HasTimestamp reports whether Timestamp is set.
func (c *Event) HasTimestamp() bool { return c.Timestamp != nil }

// SetTimestamp sets Timestamp.
func (c *Event) SetTimestamp(v time.Time) { c.Timestamp = &v }

// WithTimestamp sets Timestamp and returns c.
func (c *Event) WithTimestamp(v time.Time) *Event {
	c.Timestamp = &v
	return c
}

// GetStep returns Step, or the zero value when absent.
func (c *Event) GetStep() int64 { return get(c.Step) }

// HasStep reports whether Step is set.
func (c *Event) HasStep() bool { return c.Step != nil }

// SetStep sets Step.
func (c *Event) SetStep(v int64) { c.Step = &v }

// WithStep sets Step and returns c.
func (c *Event) WithStep(v int64) *Event {
	c.Step = &v
	return c
}

// GetMetric returns Metric, or the zero value when absent.
func (c *Event) GetMetric() float64 { return get(c.Metric) }

// HasMetric reports whether Metric is set.
func (c *Event) HasMetric() bool { return c.Metric != nil }

// SetMetric sets Metric.
func (c *Event) SetMetric(v float64) { c.Metric = &v }

// WithMetric sets Metric and returns c.
func (c *Event) WithMetric(v float64) *Event {
	c.Metric = &v
	return c
}

// GetImage returns Image.
func (c *Event) GetImage() *EventImage { return c.Image }

// HasImage reports whether Image is set.
func (c *Event) HasImage() bool { return c.Image != nil }

// SetImage sets Image.
func (c *Event) SetImage(v *EventImage) { c.Image = v }

// WithImage sets Image and returns c.
func (c *Event) WithImage(v *EventImage) *Event {
	c.Image = v
	return c
}

// GetHistogram returns Histogram.
func (c *Event) GetHistogram() *EventHistogram { return c.Histogram }

// HasHistogram reports whether Histogram is set.
func (c *Event) HasHistogram() bool { return c.Histogram != nil }

// SetHistogram sets Histogram.
func (c *Event) SetHistogram(v *EventHistogram) { c.Histogram = v }

// WithHistogram sets Histogram and returns c.
func (c *Event) WithHistogram(v *EventHistogram) *Event {
	c.Histogram = v
	return c
}

// GetAudio returns Audio.
func (c *Event) GetAudio() *EventAudio { return c.Audio }

// HasAudio reports whether Audio is set.
func (c *Event) HasAudio() bool { return c.Audio != nil }

// SetAudio sets Audio.
func (c *Event) SetAudio(v *EventAudio) { c.Audio = v }

// WithAudio sets Audio and returns c.
func (c *Event) WithAudio(v *EventAudio) *Event {
	c.Audio = v
	return c
}

// GetVideo returns Video.
func (c *Event) GetVideo() *EventVideo { return c.Video }

// HasVideo reports whether Video is set.
func (c *Event) HasVideo() bool { return c.Video != nil }

// SetVideo sets Video.
func (c *Event) SetVideo(v *EventVideo) { c.Video = v }

// WithVideo sets Video and returns c.
func (c *Event) WithVideo(v *EventVideo) *Event {
	c.Video = v
	return c
}

// GetHTML returns HTML, or the zero value when absent.
func (c *Event) GetHTML() string { return get(c.HTML) }

// HasHTML reports whether HTML is set.
func (c *Event) HasHTML() bool { return c.HTML != nil }

// SetHTML sets HTML.
func (c *Event) SetHTML(v string) { c.HTML = &v }

// WithHTML sets HTML and returns c.
func (c *Event) WithHTML(v string) *Event {
	c.HTML = &v
	return c
}

// GetText returns Text, or the zero value when absent.
func (c *Event) GetText() string { return get(c.Text) }

// HasText reports whether Text is set.
func (c *Event) HasText() bool { return c.Text != nil }

// SetText sets Text.
func (c *Event) SetText(v string) { c.Text = &v }

// WithText sets Text and returns c.
func (c *Event) WithText(v string) *Event {
	c.Text = &v
	return c
}

// GetChart returns Chart.
func (c *Event) GetChart() *EventChart { return c.Chart }

// HasChart reports whether Chart is set.
func (c *Event) HasChart() bool { return c.Chart != nil }

// SetChart sets Chart.
func (c *Event) SetChart(v *EventChart) { c.Chart = v }

// WithChart sets Chart and returns c.
func (c *Event) WithChart(v *EventChart) *Event {
	c.Chart = v
	return c
}

// GetCurve returns Curve.
func (c *Event) GetCurve() *EventCurve { return c.Curve }

// HasCurve reports whether Curve is set.
func (c *Event) HasCurve() bool { return c.Curve != nil }

// SetCurve sets Curve.
func (c *Event) SetCurve(v *EventCurve) { c.Curve = v }

// WithCurve sets Curve and returns c.
func (c *Event) WithCurve(v *EventCurve) *Event {
	c.Curve = v
	return c
}

// GetConfusion returns Confusion.
func (c *Event) GetConfusion() *EventConfusionMatrix { return c.Confusion }

// HasConfusion reports whether Confusion is set.
func (c *Event) HasConfusion() bool { return c.Confusion != nil }

// SetConfusion sets Confusion.
func (c *Event) SetConfusion(v *EventConfusionMatrix) { c.Confusion = v }

// WithConfusion sets Confusion and returns c.
func (c *Event) WithConfusion(v *EventConfusionMatrix) *Event {
	c.Confusion = v
	return c
}

// GetArtifact returns Artifact.
func (c *Event) GetArtifact() *EventArtifact { return c.Artifact }

// HasArtifact reports whether Artifact is set.
func (c *Event) HasArtifact() bool { return c.Artifact != nil }

// SetArtifact sets Artifact.
func (c *Event) SetArtifact(v *EventArtifact) { c.Artifact = v }

// WithArtifact sets Artifact and returns c.
func (c *Event) WithArtifact(v *EventArtifact) *Event {
	c.Artifact = v
	return c
}

// GetModel returns Model.
func (c *Event) GetModel() *EventModel { return c.Model }

// HasModel reports whether Model is set.
func (c *Event) HasModel() bool { return c.Model != nil }

// SetModel sets Model.
func (c *Event) SetModel(v *EventModel) { c.Model = v }

// WithModel sets Model and returns c.
func (c *Event) WithModel(v *EventModel) *Event {
	c.Model = v
	return c
}

// GetDataframe returns Dataframe.
func (c *Event) GetDataframe() *EventDataframe { return c.Dataframe }

// HasDataframe reports whether Dataframe is set.
func (c *Event) HasDataframe() bool { return c.Dataframe != nil }

// SetDataframe sets Dataframe.
func (c *Event) SetDataframe(v *EventDataframe) { c.Dataframe = v }

// WithDataframe sets Dataframe and returns c.
func (c *Event) WithDataframe(v *EventDataframe) *Event {
	c.Dataframe = v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *Event) Equal(o *Event) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqTime(c.Timestamp, o.Timestamp) &&
		eqPtr(c.Step, o.Step) &&
		eqPtr(c.Metric, o.Metric) &&
		c.Image.Equal(o.Image) &&
		c.Histogram.Equal(o.Histogram) &&
		c.Audio.Equal(o.Audio) &&
		c.Video.Equal(o.Video) &&
		eqPtr(c.HTML, o.HTML) &&
		eqPtr(c.Text, o.Text) &&
		c.Chart.Equal(o.Chart) &&
		c.Curve.Equal(o.Curve) &&
		c.Confusion.Equal(o.Confusion) &&
		c.Artifact.Equal(o.Artifact) &&
		c.Model.Equal(o.Model) &&
		c.Dataframe.Equal(o.Dataframe)
}

func (c *Event) equal(m Model) bool {
	o, ok := m.(*Event)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *Event) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("Event")
	hashTime(h, c.Timestamp)
	hashInt(h, c.Step)
	hashFloat(h, c.Metric)
	h.nested(c.Image != nil, c.Image.Hash())
	h.nested(c.Histogram != nil, c.Histogram.Hash())
	h.nested(c.Audio != nil, c.Audio.Hash())
	h.nested(c.Video != nil, c.Video.Hash())
	hashStr(h, c.HTML)
	hashStr(h, c.Text)
	h.nested(c.Chart != nil, c.Chart.Hash())
	h.nested(c.Curve != nil, c.Curve.Hash())
	h.nested(c.Confusion != nil, c.Confusion.Hash())
	h.nested(c.Artifact != nil, c.Artifact.Hash())
	h.nested(c.Model != nil, c.Model.Hash())
	h.nested(c.Dataframe != nil, c.Dataframe.Hash())
	return h.Sum()
}

func (c *Event) String() string {
	if c == nil {
		return "null"
	}
	t := newText("Event")
	t.field("timestamp", textTime(c.Timestamp))
	t.field("step", textInt(c.Step))
	t.field("metric", textFloat(c.Metric))
	t.field("image", textModel(c.Image, c.Image != nil))
	t.field("histogram", textModel(c.Histogram, c.Histogram != nil))
	t.field("audio", textModel(c.Audio, c.Audio != nil))
	t.field("video", textModel(c.Video, c.Video != nil))
	t.field("html", textStr(c.HTML))
	t.field("text", textStr(c.Text))
	t.field("chart", textModel(c.Chart, c.Chart != nil))
	t.field("curve", textModel(c.Curve, c.Curve != nil))
	t.field("confusion", textModel(c.Confusion, c.Confusion != nil))
	t.field("artifact", textModel(c.Artifact, c.Artifact != nil))
	t.field("model", textModel(c.Model, c.Model != nil))
	t.field("dataframe", textModel(c.Dataframe, c.Dataframe != nil))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Event) UnmarshalJSON(data []byte) error {
	type alias Event
	return decode("Event", data, (*alias)(c), eventFields)
}

// LoggedEventList is the series of events logged under one name and kind.
type LoggedEventList struct {
	Name   *string       `json:"name,omitempty"`
	Kind   *ArtifactKind `json:"kind,omitempty"`
	Events []*Event      `json:"events,omitzero"`
}

var loggedEventListFields = fieldTable{
	{"Name", "name"},
	{"Kind", "kind"},
	{"Events", "events"},
}

// NewLoggedEventList returns a LoggedEventList with every field absent.
func NewLoggedEventList() *LoggedEventList {
	return &LoggedEventList{}
}

// ModelName implements Model.
func (*LoggedEventList) ModelName() string { return "LoggedEventList" }

// Fields implements Model.
func (*LoggedEventList) Fields() []Field { return loggedEventListFields.clone() }

// GetName returns Name, or the zero value when absent.
func (c *LoggedEventList) GetName() string { return get(c.Name) }

// HasName reports whether Name is set.
func (c *LoggedEventList) HasName() bool { return c.Name != nil }

// SetName sets Name.
func (c *LoggedEventList) SetName(v string) { c.Name = &v }

// WithName sets Name and returns c.
func (c *LoggedEventList) WithName(v string) *LoggedEventList {
	c.Name = &v
	return c
}

// GetKind returns Kind, or the zero value when absent.
func (c *LoggedEventList) GetKind() ArtifactKind { return get(c.Kind) }

// HasKind reports whether Kind is set.
func (c *LoggedEventList) HasKind() bool { return c.Kind != nil }

// SetKind sets Kind.
func (c *LoggedEventList) SetKind(v ArtifactKind) { c.Kind = &v }

// WithKind sets Kind and returns c.
func (c *LoggedEventList) WithKind(v ArtifactKind) *LoggedEventList {
	c.Kind = &v
	return c
}

// GetEvents returns Events.
func (c *LoggedEventList) GetEvents() []*Event { return c.Events }

// HasEvents reports whether Events is set.
func (c *LoggedEventList) HasEvents() bool { return c.Events != nil }

// SetEvents sets Events.
func (c *LoggedEventList) SetEvents(v []*Event) { c.Events = v }

// WithEvents sets Events and returns c.
func (c *LoggedEventList) WithEvents(v []*Event) *LoggedEventList {
	c.Events = v
	return c
}

// AddEventsItem appends v to Events, creating it when absent.
func (c *LoggedEventList) AddEventsItem(v *Event) *LoggedEventList {
	if c.Events == nil {
		c.Events = make([]*Event, 0, 1)
	}
	c.Events = append(c.Events, v)
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *LoggedEventList) Equal(o *LoggedEventList) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Name, o.Name) &&
		eqPtr(c.Kind, o.Kind) &&
		eqModels(c.Events, o.Events)
}

func (c *LoggedEventList) equal(m Model) bool {
	o, ok := m.(*LoggedEventList)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *LoggedEventList) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("LoggedEventList")
	hashStr(h, c.Name)
	hashStr(h, c.Kind)
	hashModels(h, c.Events)
	return h.Sum()
}

func (c *LoggedEventList) String() string {
	if c == nil {
		return "null"
	}
	t := newText("LoggedEventList")
	t.field("name", textStr(c.Name))
	t.field("kind", textStr(c.Kind))
	t.field("events", textModels(c.Events))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *LoggedEventList) UnmarshalJSON(data []byte) error {
	type alias LoggedEventList
	return decode("LoggedEventList", data, (*alias)(c), loggedEventListFields)
}

// EventsResponse is returned when fetching the events of a run.
type EventsResponse struct {
	Data []*LoggedEventList `json:"data,omitzero"`
}

var eventsResponseFields = fieldTable{
	{"Data", "data"},
}

// NewEventsResponse returns an EventsResponse with every field absent.
func NewEventsResponse() *EventsResponse {
	return &EventsResponse{}
}

// ModelName implements Model.
func (*EventsResponse) ModelName() string { return "EventsResponse" }

// Fields implements Model.
func (*EventsResponse) Fields() []Field { return eventsResponseFields.clone() }

// GetData returns Data.
func (c *EventsResponse) GetData() []*LoggedEventList { return c.Data }

// HasData reports whether Data is set.
func (c *EventsResponse) HasData() bool { return c.Data != nil }

// SetData sets Data.
func (c *EventsResponse) SetData(v []*LoggedEventList) { c.Data = v }

// WithData sets Data and returns c.
func (c *EventsResponse) WithData(v []*LoggedEventList) *EventsResponse {
	c.Data = v
	return c
}

// AddDataItem appends v to Data, creating it when absent.
func (c *EventsResponse) AddDataItem(v *LoggedEventList) *EventsResponse {
	if c.Data == nil {
		c.Data = make([]*LoggedEventList, 0, 1)
	}
	c.Data = append(c.Data, v)
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *EventsResponse) Equal(o *EventsResponse) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqModels(c.Data, o.Data)
}

func (c *EventsResponse) equal(m Model) bool {
	o, ok := m.(*EventsResponse)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *EventsResponse) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("EventsResponse")
	hashModels(h, c.Data)
	return h.Sum()
}

func (c *EventsResponse) String() string {
	if c == nil {
		return "null"
	}
	t := newText("EventsResponse")
	t.field("data", textModels(c.Data))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EventsResponse) UnmarshalJSON(data []byte) error {
	type alias EventsResponse
	return decode("EventsResponse", data, (*alias)(c), eventsResponseFields)
}

// ErrNoPrimitive is returned by Event.Validate when no primitive is set.
var ErrNoPrimitive = errors.New("an event should have one and only one primitive, found 0")

// EventKinds returns the artifact kinds an Event can carry, in wire order.
func EventKinds() []ArtifactKind {
	return []ArtifactKind{
		ArtifactKindMetric, ArtifactKindImage, ArtifactKindHistogram, ArtifactKindAudio,
		ArtifactKindVideo, ArtifactKindHTML, ArtifactKindText, ArtifactKindChart,
		ArtifactKindCurve, ArtifactKindConfusion, ArtifactKindArtifact, ArtifactKindModel,
		ArtifactKindDataframe,
	}
}

// primitives lists the kinds of the primitives set on c, in wire order.
func (c *Event) primitives() []ArtifactKind {
	var out []ArtifactKind
	add := func(set bool, k ArtifactKind) {
		if set {
			out = append(out, k)
		}
	}
	add(c.Metric != nil, ArtifactKindMetric)
	add(c.Image != nil, ArtifactKindImage)
	add(c.Histogram != nil, ArtifactKindHistogram)
	add(c.Audio != nil, ArtifactKindAudio)
	add(c.Video != nil, ArtifactKindVideo)
	add(c.HTML != nil, ArtifactKindHTML)
	add(c.Text != nil, ArtifactKindText)
	add(c.Chart != nil, ArtifactKindChart)
	add(c.Curve != nil, ArtifactKindCurve)
	add(c.Confusion != nil, ArtifactKindConfusion)
	add(c.Artifact != nil, ArtifactKindArtifact)
	add(c.Model != nil, ArtifactKindModel)
	add(c.Dataframe != nil, ArtifactKindDataframe)
	return out
}

// Validate returns an error unless exactly one primitive is set.
func (c *Event) Validate() error {
	switch p := c.primitives(); len(p) {
	case 0:
		return ErrNoPrimitive
	case 1:
		return nil
	default:
		return fmt.Errorf("an event should have one and only one primitive, found %d: %v", len(p), p)
	}
}

// Kind returns the kind of the first primitive set, or ArtifactKindUnspecified
// when none is.
func (c *Event) Kind() ArtifactKind {
	if p := c.primitives(); len(p) != 0 {
		return p[0]
	}
	return ArtifactKindUnspecified
}

// Value returns the primitive of c matching kind, or nil when it is absent.
// Metric, HTML and Text are returned by value, the others as model pointers.
func (c *Event) Value(kind ArtifactKind) any {
	switch kind {
	case ArtifactKindMetric:
		if c.Metric != nil {
			return *c.Metric
		}
	case ArtifactKindHTML:
		if c.HTML != nil {
			return *c.HTML
		}
	case ArtifactKindText:
		if c.Text != nil {
			return *c.Text
		}
	case ArtifactKindImage:
		if c.Image != nil {
			return c.Image
		}
	case ArtifactKindHistogram:
		if c.Histogram != nil {
			return c.Histogram
		}
	case ArtifactKindAudio:
		if c.Audio != nil {
			return c.Audio
		}
	case ArtifactKindVideo:
		if c.Video != nil {
			return c.Video
		}
	case ArtifactKindChart:
		if c.Chart != nil {
			return c.Chart
		}
	case ArtifactKindCurve:
		if c.Curve != nil {
			return c.Curve
		}
	case ArtifactKindConfusion:
		if c.Confusion != nil {
			return c.Confusion
		}
	case ArtifactKindArtifact:
		if c.Artifact != nil {
			return c.Artifact
		}
	case ArtifactKindModel:
		if c.Model != nil {
			return c.Model
		}
	case ArtifactKindDataframe:
		if c.Dataframe != nil {
			return c.Dataframe
		}
	}
	return nil
}
