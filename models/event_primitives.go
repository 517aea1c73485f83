package models

// EventChart is a chart event holding a figure serialized by a plotting
// library.
type EventChart struct {
	Kind   *EventChartKind `json:"kind,omitempty"`
	Figure map[string]any  `json:"figure,omitzero"`
}

var eventChartFields = fieldTable{
	{"Kind", "kind"},
	{"Figure", "figure"},
}

// NewEventChart returns an EventChart with every field absent.
func NewEventChart() *EventChart {
	return &EventChart{}
}

// ModelName implements Model.
func (*EventChart) ModelName() string { return "EventChart" }

// Fields implements Model.
func (*EventChart) Fields() []Field { return eventChartFields.clone() }

// GetKind returns Kind, or the zero value when absent.
func (c *EventChart) GetKind() EventChartKind { return get(c.Kind) }

// HasKind reports whether Kind is set.
func (c *EventChart) HasKind() bool { return c.Kind != nil }

// SetKind sets Kind.
func (c *EventChart) SetKind(v EventChartKind) { c.Kind = &v }

// WithKind sets Kind and returns c.
func (c *EventChart) WithKind(v EventChartKind) *EventChart {
	c.Kind = &v
	return c
}

// GetFigure returns Figure.
func (c *EventChart) GetFigure() map[string]any { return c.Figure }

// HasFigure reports whether Figure is set.
func (c *EventChart) HasFigure() bool { return c.Figure != nil }

// SetFigure sets Figure.
func (c *EventChart) SetFigure(v map[string]any) { c.Figure = v }

// WithFigure sets Figure and returns c.
func (c *EventChart) WithFigure(v map[string]any) *EventChart {
	c.Figure = v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *EventChart) Equal(o *EventChart) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Kind, o.Kind) &&
		eqValue(c.Figure, o.Figure)
}

func (c *EventChart) equal(m Model) bool {
	o, ok := m.(*EventChart)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *EventChart) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("EventChart")
	hashStr(h, c.Kind)
	hashObject(h, c.Figure)
	return h.Sum()
}

func (c *EventChart) String() string {
	if c == nil {
		return "null"
	}
	t := newText("EventChart")
	t.field("kind", textStr(c.Kind))
	t.field("figure", textValue(c.Figure))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EventChart) UnmarshalJSON(data []byte) error {
	type alias EventChart
	return decode("EventChart", data, (*alias)(c), eventChartFields)
}

// EventImage references an image file logged as an event.
type EventImage struct {
	Height     *int32  `json:"height,omitempty"`
	Width      *int32  `json:"width,omitempty"`
	Colorspace *int32  `json:"colorspace,omitempty"`
	Path       *string `json:"path,omitempty"`
}

var eventImageFields = fieldTable{
	{"Height", "height"},
	{"Width", "width"},
	{"Colorspace", "colorspace"},
	{"Path", "path"},
}

// NewEventImage returns an EventImage with every field absent.
func NewEventImage() *EventImage {
	return &EventImage{}
}

// ModelName implements Model.
func (*EventImage) ModelName() string { return "EventImage" }

// Fields implements Model.
func (*EventImage) Fields() []Field { return eventImageFields.clone() }

// GetHeight returns Height, or the zero value when absent.
func (c *EventImage) GetHeight() int32 { return get(c.Height) }

// HasHeight reports whether Height is set.
func (c *EventImage) HasHeight() bool { return c.Height != nil }

// SetHeight sets Height.
func (c *EventImage) SetHeight(v int32) { c.Height = &v }

// WithHeight sets Height and returns c.
func (c *EventImage) WithHeight(v int32) *EventImage {
	c.Height = &v
	return c
}

// GetWidth returns Width, or the zero value when absent.
func (c *EventImage) GetWidth() int32 { return get(c.Width) }

// HasWidth reports whether Width is set.
func (c *EventImage) HasWidth() bool { return c.Width != nil }

// SetWidth sets Width.
func (c *EventImage) SetWidth(v int32) { c.Width = &v }

// WithWidth sets Width and returns c.
func (c *EventImage) WithWidth(v int32) *EventImage {
	c.Width = &v
	return c
}

// GetColorspace returns Colorspace, or the zero value when absent.
func (c *EventImage) GetColorspace() int32 { return get(c.Colorspace) }

// HasColorspace reports whether Colorspace is set.
func (c *EventImage) HasColorspace() bool { return c.Colorspace != nil }

// SetColorspace sets Colorspace.
func (c *EventImage) SetColorspace(v int32) { c.Colorspace = &v }

// WithColorspace sets Colorspace and returns c.
func (c *EventImage) WithColorspace(v int32) *EventImage {
	c.Colorspace = &v
	return c
}

// GetPath returns Path, or the zero value when absent.
func (c *EventImage) GetPath() string { return get(c.Path) }

// HasPath reports whether Path is set.
func (c *EventImage) HasPath() bool { return c.Path != nil }

// SetPath sets Path.
func (c *EventImage) SetPath(v string) { c.Path = &v }

// WithPath sets Path and returns c.
func (c *EventImage) WithPath(v string) *EventImage {
	c.Path = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *EventImage) Equal(o *EventImage) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Height, o.Height) &&
		eqPtr(c.Width, o.Width) &&
		eqPtr(c.Colorspace, o.Colorspace) &&
		eqPtr(c.Path, o.Path)
}

func (c *EventImage) equal(m Model) bool {
	o, ok := m.(*EventImage)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *EventImage) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("EventImage")
	hashInt(h, c.Height)
	hashInt(h, c.Width)
	hashInt(h, c.Colorspace)
	hashStr(h, c.Path)
	return h.Sum()
}

func (c *EventImage) String() string {
	if c == nil {
		return "null"
	}
	t := newText("EventImage")
	t.field("height", textInt(c.Height))
	t.field("width", textInt(c.Width))
	t.field("colorspace", textInt(c.Colorspace))
	t.field("path", textStr(c.Path))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EventImage) UnmarshalJSON(data []byte) error {
	type alias EventImage
	return decode("EventImage", data, (*alias)(c), eventImageFields)
}

// EventVideo references a video file logged as an event.
type EventVideo struct {
	Height      *int32  `json:"height,omitempty"`
	Width       *int32  `json:"width,omitempty"`
	Colorspace  *int32  `json:"colorspace,omitempty"`
	Path        *string `json:"path,omitempty"`
	ContentType *string `json:"content_type,omitempty"`
}

var eventVideoFields = fieldTable{
	{"Height", "height"},
	{"Width", "width"},
	{"Colorspace", "colorspace"},
	{"Path", "path"},
	{"ContentType", "content_type"},
}

// NewEventVideo returns an EventVideo with every field absent.
func NewEventVideo() *EventVideo {
	return &EventVideo{}
}

// ModelName implements Model.
func (*EventVideo) ModelName() string { return "EventVideo" }

// Fields implements Model.
func (*EventVideo) Fields() []Field { return eventVideoFields.clone() }

// GetHeight returns Height, or the zero value when absent.
func (c *EventVideo) GetHeight() int32 { return get(c.Height) }

// HasHeight reports whether Height is set.
func (c *EventVideo) HasHeight() bool { return c.Height != nil }

// SetHeight sets Height.
func (c *EventVideo) SetHeight(v int32) { c.Height = &v }

// WithHeight sets Height and returns c.
func (c *EventVideo) WithHeight(v int32) *EventVideo {
	c.Height = &v
	return c
}

// GetWidth returns Width, or the zero value when absent.
func (c *EventVideo) GetWidth() int32 { return get(c.Width) }

// HasWidth reports whether Width is set.
func (c *EventVideo) HasWidth() bool { return c.Width != nil }

// SetWidth sets Width.
func (c *EventVideo) SetWidth(v int32) { c.Width = &v }

// WithWidth sets Width and returns c.
func (c *EventVideo) WithWidth(v int32) *EventVideo {
	c.Width = &v
	return c
}

// GetColorspace returns Colorspace, or the zero value when absent.
func (c *EventVideo) GetColorspace() int32 { return get(c.Colorspace) }

// HasColorspace reports whether Colorspace is set.
func (c *EventVideo) HasColorspace() bool { return c.Colorspace != nil }

// SetColorspace sets Colorspace.
func (c *EventVideo) SetColorspace(v int32) { c.Colorspace = &v }

// WithColorspace sets Colorspace and returns c.
func (c *EventVideo) WithColorspace(v int32) *EventVideo {
	c.Colorspace = &v
	return c
}

// GetPath returns Path, or the zero value when absent.
func (c *EventVideo) GetPath() string { return get(c.Path) }

// HasPath reports whether Path is set.
func (c *EventVideo) HasPath() bool { return c.Path != nil }

// SetPath sets Path.
func (c *EventVideo) SetPath(v string) { c.Path = &v }

// WithPath sets Path and returns c.
func (c *EventVideo) WithPath(v string) *EventVideo {
	c.Path = &v
	return c
}

// GetContentType returns ContentType, or the zero value when absent.
func (c *EventVideo) GetContentType() string { return get(c.ContentType) }

// HasContentType reports whether ContentType is set.
func (c *EventVideo) HasContentType() bool { return c.ContentType != nil }

// SetContentType sets ContentType.
func (c *EventVideo) SetContentType(v string) { c.ContentType = &v }

// WithContentType sets ContentType and returns c.
func (c *EventVideo) WithContentType(v string) *EventVideo {
	c.ContentType = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *EventVideo) Equal(o *EventVideo) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Height, o.Height) &&
		eqPtr(c.Width, o.Width) &&
		eqPtr(c.Colorspace, o.Colorspace) &&
		eqPtr(c.Path, o.Path) &&
		eqPtr(c.ContentType, o.ContentType)
}

func (c *EventVideo) equal(m Model) bool {
	o, ok := m.(*EventVideo)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *EventVideo) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("EventVideo")
	hashInt(h, c.Height)
	hashInt(h, c.Width)
	hashInt(h, c.Colorspace)
	hashStr(h, c.Path)
	hashStr(h, c.ContentType)
	return h.Sum()
}

func (c *EventVideo) String() string {
	if c == nil {
		return "null"
	}
	t := newText("EventVideo")
	t.field("height", textInt(c.Height))
	t.field("width", textInt(c.Width))
	t.field("colorspace", textInt(c.Colorspace))
	t.field("path", textStr(c.Path))
	t.field("content_type", textStr(c.ContentType))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EventVideo) UnmarshalJSON(data []byte) error {
	type alias EventVideo
	return decode("EventVideo", data, (*alias)(c), eventVideoFields)
}

// EventAudio references an audio file logged as an event.
type EventAudio struct {
	SampleRate   *float64 `json:"sample_rate,omitempty"`
	NumChannels  *int32   `json:"num_channels,omitempty"`
	LengthFrames *int32   `json:"length_frames,omitempty"`
	Path         *string  `json:"path,omitempty"`
	ContentType  *string  `json:"content_type,omitempty"`
}

var eventAudioFields = fieldTable{
	{"SampleRate", "sample_rate"},
	{"NumChannels", "num_channels"},
	{"LengthFrames", "length_frames"},
	{"Path", "path"},
	{"ContentType", "content_type"},
}

// NewEventAudio returns an EventAudio with every field absent.
func NewEventAudio() *EventAudio {
	return &EventAudio{}
}

// ModelName implements Model.
func (*EventAudio) ModelName() string { return "EventAudio" }

// Fields implements Model.
func (*EventAudio) Fields() []Field { return eventAudioFields.clone() }

// GetSampleRate returns SampleRate, or the zero value when absent.
func (c *EventAudio) GetSampleRate() float64 { return get(c.SampleRate) }

// HasSampleRate reports whether SampleRate is set.
func (c *EventAudio) HasSampleRate() bool { return c.SampleRate != nil }

// SetSampleRate sets SampleRate.
func (c *EventAudio) SetSampleRate(v float64) { c.SampleRate = &v }

// WithSampleRate sets SampleRate and returns c.
func (c *EventAudio) WithSampleRate(v float64) *EventAudio {
	c.SampleRate = &v
	return c
}

// GetNumChannels returns NumChannels, or the zero value when absent.
func (c *EventAudio) GetNumChannels() int32 { return get(c.NumChannels) }

// HasNumChannels reports whether NumChannels is set.
func (c *EventAudio) HasNumChannels() bool { return c.NumChannels != nil }

// SetNumChannels sets NumChannels.
func (c *EventAudio) SetNumChannels(v int32) { c.NumChannels = &v }

// WithNumChannels sets NumChannels and returns c.
func (c *EventAudio) WithNumChannels(v int32) *EventAudio {
	c.NumChannels = &v
	return c
}

// GetLengthFrames returns LengthFrames, or the zero value when absent.
func (c *EventAudio) GetLengthFrames() int32 { return get(c.LengthFrames) }

// HasLengthFrames reports whether LengthFrames is set.
func (c *EventAudio) HasLengthFrames() bool { return c.LengthFrames != nil }

// SetLengthFrames sets LengthFrames.
func (c *EventAudio) SetLengthFrames(v int32) { c.LengthFrames = &v }

// WithLengthFrames sets LengthFrames and returns c.
func (c *EventAudio) WithLengthFrames(v int32) *EventAudio {
	c.LengthFrames = &v
	return c
}

// GetPath returns Path, or the zero value when absent.
func (c *EventAudio) GetPath() string { return get(c.Path) }

// HasPath reports whether Path is set.
func (c *EventAudio) HasPath() bool { return c.Path != nil }

// SetPath sets Path.
func (c *EventAudio) SetPath(v string) { c.Path = &v }

// WithPath sets Path and returns c.
func (c *EventAudio) WithPath(v string) *EventAudio {
	c.Path = &v
	return c
}

// GetContentType returns ContentType, or the zero value when absent.
func (c *EventAudio) GetContentType() string { return get(c.ContentType) }

// HasContentType reports whether ContentType is set.
func (c *EventAudio) HasContentType() bool { return c.ContentType != nil }

// SetContentType sets ContentType.
func (c *EventAudio) SetContentType(v string) { c.ContentType = &v }

// WithContentType sets ContentType and returns c.
func (c *EventAudio) WithContentType(v string) *EventAudio {
	c.ContentType = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *EventAudio) Equal(o *EventAudio) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.SampleRate, o.SampleRate) &&
		eqPtr(c.NumChannels, o.NumChannels) &&
		eqPtr(c.LengthFrames, o.LengthFrames) &&
		eqPtr(c.Path, o.Path) &&
		eqPtr(c.ContentType, o.ContentType)
}

func (c *EventAudio) equal(m Model) bool {
	o, ok := m.(*EventAudio)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *EventAudio) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("EventAudio")
	hashFloat(h, c.SampleRate)
	hashInt(h, c.NumChannels)
	hashInt(h, c.LengthFrames)
	hashStr(h, c.Path)
	hashStr(h, c.ContentType)
	return h.Sum()
}

func (c *EventAudio) String() string {
	if c == nil {
		return "null"
	}
	t := newText("EventAudio")
	t.field("sample_rate", textFloat(c.SampleRate))
	t.field("num_channels", textInt(c.NumChannels))
	t.field("length_frames", textInt(c.LengthFrames))
	t.field("path", textStr(c.Path))
	t.field("content_type", textStr(c.ContentType))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EventAudio) UnmarshalJSON(data []byte) error {
	type alias EventAudio
	return decode("EventAudio", data, (*alias)(c), eventAudioFields)
}

// EventHistogram is a histogram event. Values are the bucket edges and Counts
// the number of samples per bucket.
type EventHistogram struct {
	Values []float64 `json:"values,omitzero"`
	Counts []float64 `json:"counts,omitzero"`
}

var eventHistogramFields = fieldTable{
	{"Values", "values"},
	{"Counts", "counts"},
}

// NewEventHistogram returns an EventHistogram with every field absent.
func NewEventHistogram() *EventHistogram {
	return &EventHistogram{}
}

// ModelName implements Model.
func (*EventHistogram) ModelName() string { return "EventHistogram" }

// Fields implements Model.
func (*EventHistogram) Fields() []Field { return eventHistogramFields.clone() }

// GetValues returns Values.
func (c *EventHistogram) GetValues() []float64 { return c.Values }

// HasValues reports whether Values is set.
func (c *EventHistogram) HasValues() bool { return c.Values != nil }

// SetValues sets Values.
func (c *EventHistogram) SetValues(v []float64) { c.Values = v }

// WithValues sets Values and returns c.
func (c *EventHistogram) WithValues(v []float64) *EventHistogram {
	c.Values = v
	return c
}

// AddValuesItem appends v to Values, creating it when absent.
func (c *EventHistogram) AddValuesItem(v float64) *EventHistogram {
	if c.Values == nil {
		c.Values = make([]float64, 0, 1)
	}
	c.Values = append(c.Values, v)
	return c
}

// GetCounts returns Counts.
func (c *EventHistogram) GetCounts() []float64 { return c.Counts }

// HasCounts reports whether Counts is set.
func (c *EventHistogram) HasCounts() bool { return c.Counts != nil }

// SetCounts sets Counts.
func (c *EventHistogram) SetCounts(v []float64) { c.Counts = v }

// WithCounts sets Counts and returns c.
func (c *EventHistogram) WithCounts(v []float64) *EventHistogram {
	c.Counts = v
	return c
}

// AddCountsItem appends v to Counts, creating it when absent.
func (c *EventHistogram) AddCountsItem(v float64) *EventHistogram {
	if c.Counts == nil {
		c.Counts = make([]float64, 0, 1)
	}
	c.Counts = append(c.Counts, v)
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *EventHistogram) Equal(o *EventHistogram) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqSlice(c.Values, o.Values) &&
		eqSlice(c.Counts, o.Counts)
}

func (c *EventHistogram) equal(m Model) bool {
	o, ok := m.(*EventHistogram)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *EventHistogram) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("EventHistogram")
	hashFloats(h, c.Values)
	hashFloats(h, c.Counts)
	return h.Sum()
}

func (c *EventHistogram) String() string {
	if c == nil {
		return "null"
	}
	t := newText("EventHistogram")
	t.field("values", textFloats(c.Values))
	t.field("counts", textFloats(c.Counts))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EventHistogram) UnmarshalJSON(data []byte) error {
	type alias EventHistogram
	return decode("EventHistogram", data, (*alias)(c), eventHistogramFields)
}

// EventDataframe references a serialized dataframe.
type EventDataframe struct {
	Path        *string `json:"path,omitempty"`
	ContentType *string `json:"content_type,omitempty"`
}

var eventDataframeFields = fieldTable{
	{"Path", "path"},
	{"ContentType", "content_type"},
}

// NewEventDataframe returns an EventDataframe with every field absent.
func NewEventDataframe() *EventDataframe {
	return &EventDataframe{}
}

// ModelName implements Model.
func (*EventDataframe) ModelName() string { return "EventDataframe" }

// Fields implements Model.
func (*EventDataframe) Fields() []Field { return eventDataframeFields.clone() }

// GetPath returns Path.
func (c *EventDataframe) GetPath() string { return get(c.Path) }

// HasPath reports whether Path is set.
func (c *EventDataframe) HasPath() bool { return c.Path != nil }

// SetPath sets Path.
func (c *EventDataframe) SetPath(v string) { c.Path = &v }

// WithPath sets Path and returns c.
func (c *EventDataframe) WithPath(v string) *EventDataframe {
	c.Path = &v
	return c
}

// GetContentType returns ContentType.
func (c *EventDataframe) GetContentType() string { return get(c.ContentType) }

// HasContentType reports whether ContentType is set.
func (c *EventDataframe) HasContentType() bool { return c.ContentType != nil }

// SetContentType sets ContentType.
func (c *EventDataframe) SetContentType(v string) { c.ContentType = &v }

// WithContentType sets ContentType and returns c.
func (c *EventDataframe) WithContentType(v string) *EventDataframe {
	c.ContentType = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *EventDataframe) Equal(o *EventDataframe) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Path, o.Path) &&
		eqPtr(c.ContentType, o.ContentType)
}

func (c *EventDataframe) equal(m Model) bool {
	o, ok := m.(*EventDataframe)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *EventDataframe) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("EventDataframe")
	hashStr(h, c.Path)
	hashStr(h, c.ContentType)
	return h.Sum()
}

func (c *EventDataframe) String() string {
	if c == nil {
		return "null"
	}
	t := newText("EventDataframe")
	t.field("path", textStr(c.Path))
	t.field("content_type", textStr(c.ContentType))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EventDataframe) UnmarshalJSON(data []byte) error {
	type alias EventDataframe
	return decode("EventDataframe", data, (*alias)(c), eventDataframeFields)
}

// EventConfusionMatrix is a confusion matrix event. X and Y are the axis
// labels and Z the matrix rows; all three hold arbitrary JSON values.
type EventConfusionMatrix struct {
	X []any `json:"x,omitzero"`
	Y []any `json:"y,omitzero"`
	Z []any `json:"z,omitzero"`
}

var eventConfusionMatrixFields = fieldTable{
	{"X", "x"},
	{"Y", "y"},
	{"Z", "z"},
}

// NewEventConfusionMatrix returns an EventConfusionMatrix with every field absent.
func NewEventConfusionMatrix() *EventConfusionMatrix {
	return &EventConfusionMatrix{}
}

// ModelName implements Model.
func (*EventConfusionMatrix) ModelName() string { return "EventConfusionMatrix" }

// Fields implements Model.
func (*EventConfusionMatrix) Fields() []Field { return eventConfusionMatrixFields.clone() }

// GetX returns X.
func (c *EventConfusionMatrix) GetX() []any { return c.X }

// HasX reports whether X is set.
func (c *EventConfusionMatrix) HasX() bool { return c.X != nil }

// SetX sets X.
func (c *EventConfusionMatrix) SetX(v []any) { c.X = v }

// WithX sets X and returns c.
func (c *EventConfusionMatrix) WithX(v []any) *EventConfusionMatrix {
	c.X = v
	return c
}

// AddXItem appends v to X, creating it when absent.
func (c *EventConfusionMatrix) AddXItem(v any) *EventConfusionMatrix {
	if c.X == nil {
		c.X = make([]any, 0, 1)
	}
	c.X = append(c.X, v)
	return c
}

// GetY returns Y.
func (c *EventConfusionMatrix) GetY() []any { return c.Y }

// HasY reports whether Y is set.
func (c *EventConfusionMatrix) HasY() bool { return c.Y != nil }

// SetY sets Y.
func (c *EventConfusionMatrix) SetY(v []any) { c.Y = v }

// WithY sets Y and returns c.
func (c *EventConfusionMatrix) WithY(v []any) *EventConfusionMatrix {
	c.Y = v
	return c
}

// AddYItem appends v to Y, creating it when absent.
func (c *EventConfusionMatrix) AddYItem(v any) *EventConfusionMatrix {
	if c.Y == nil {
		c.Y = make([]any, 0, 1)
	}
	c.Y = append(c.Y, v)
	return c
}

// GetZ returns Z.
func (c *EventConfusionMatrix) GetZ() []any { return c.Z }

// HasZ reports whether Z is set.
func (c *EventConfusionMatrix) HasZ() bool { return c.Z != nil }

// SetZ sets Z.
func (c *EventConfusionMatrix) SetZ(v []any) { c.Z = v }

// WithZ sets Z and returns c.
func (c *EventConfusionMatrix) WithZ(v []any) *EventConfusionMatrix {
	c.Z = v
	return c
}

// AddZItem appends v to Z, creating it when absent.
func (c *EventConfusionMatrix) AddZItem(v any) *EventConfusionMatrix {
	if c.Z == nil {
		c.Z = make([]any, 0, 1)
	}
	c.Z = append(c.Z, v)
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *EventConfusionMatrix) Equal(o *EventConfusionMatrix) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqValue(c.X, o.X) &&
		eqValue(c.Y, o.Y) &&
		eqValue(c.Z, o.Z)
}

func (c *EventConfusionMatrix) equal(m Model) bool {
	o, ok := m.(*EventConfusionMatrix)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *EventConfusionMatrix) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("EventConfusionMatrix")
	hashValues(h, c.X)
	hashValues(h, c.Y)
	hashValues(h, c.Z)
	return h.Sum()
}

func (c *EventConfusionMatrix) String() string {
	if c == nil {
		return "null"
	}
	t := newText("EventConfusionMatrix")
	t.field("x", textValue(c.X))
	t.field("y", textValue(c.Y))
	t.field("z", textValue(c.Z))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EventConfusionMatrix) UnmarshalJSON(data []byte) error {
	type alias EventConfusionMatrix
	return decode("EventConfusionMatrix", data, (*alias)(c), eventConfusionMatrixFields)
}

// EventArtifact references a generic artifact.
type EventArtifact struct {
	Kind *ArtifactKind `json:"kind,omitempty"`
	Path *string       `json:"path,omitempty"`
}

var eventArtifactFields = fieldTable{
	{"Kind", "kind"},
	{"Path", "path"},
}

// NewEventArtifact returns an EventArtifact with every field absent.
func NewEventArtifact() *EventArtifact {
	return &EventArtifact{}
}

// ModelName implements Model.
func (*EventArtifact) ModelName() string { return "EventArtifact" }

// Fields implements Model.
func (*EventArtifact) Fields() []Field { return eventArtifactFields.clone() }

// GetKind returns Kind.
func (c *EventArtifact) GetKind() ArtifactKind { return get(c.Kind) }

// HasKind reports whether Kind is set.
func (c *EventArtifact) HasKind() bool { return c.Kind != nil }

// SetKind sets Kind.
func (c *EventArtifact) SetKind(v ArtifactKind) { c.Kind = &v }

// WithKind sets Kind and returns c.
func (c *EventArtifact) WithKind(v ArtifactKind) *EventArtifact {
	c.Kind = &v
	return c
}

// GetPath returns Path.
func (c *EventArtifact) GetPath() string { return get(c.Path) }

// HasPath reports whether Path is set.
func (c *EventArtifact) HasPath() bool { return c.Path != nil }

// SetPath sets Path.
func (c *EventArtifact) SetPath(v string) { c.Path = &v }

// WithPath sets Path and returns c.
func (c *EventArtifact) WithPath(v string) *EventArtifact {
	c.Path = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *EventArtifact) Equal(o *EventArtifact) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Kind, o.Kind) &&
		eqPtr(c.Path, o.Path)
}

func (c *EventArtifact) equal(m Model) bool {
	o, ok := m.(*EventArtifact)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *EventArtifact) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("EventArtifact")
	hashStr(h, c.Kind)
	hashStr(h, c.Path)
	return h.Sum()
}

func (c *EventArtifact) String() string {
	if c == nil {
		return "null"
	}
	t := newText("EventArtifact")
	t.field("kind", textStr(c.Kind))
	t.field("path", textStr(c.Path))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EventArtifact) UnmarshalJSON(data []byte) error {
	type alias EventArtifact
	return decode("EventArtifact", data, (*alias)(c), eventArtifactFields)
}

// EventModel references a trained model.
type EventModel struct {
	Framework *string        `json:"framework,omitempty"`
	Path      *string        `json:"path,omitempty"`
	Spec      map[string]any `json:"spec,omitzero"`
}

var eventModelFields = fieldTable{
	{"Framework", "framework"},
	{"Path", "path"},
	{"Spec", "spec"},
}

// NewEventModel returns an EventModel with every field absent.
func NewEventModel() *EventModel {
	return &EventModel{}
}

// ModelName implements Model.
func (*EventModel) ModelName() string { return "EventModel" }

// Fields implements Model.
func (*EventModel) Fields() []Field { return eventModelFields.clone() }

// GetFramework returns Framework, or the zero value when absent.
func (c *EventModel) GetFramework() string { return get(c.Framework) }

// HasFramework reports whether Framework is set.
func (c *EventModel) HasFramework() bool { return c.Framework != nil }

// SetFramework sets Framework.
func (c *EventModel) SetFramework(v string) { c.Framework = &v }

// WithFramework sets Framework and returns c.
func (c *EventModel) WithFramework(v string) *EventModel {
	c.Framework = &v
	return c
}

// GetPath returns Path, or the zero value when absent.
func (c *EventModel) GetPath() string { return get(c.Path) }

// HasPath reports whether Path is set.
func (c *EventModel) HasPath() bool { return c.Path != nil }

// SetPath sets Path.
func (c *EventModel) SetPath(v string) { c.Path = &v }

// WithPath sets Path and returns c.
func (c *EventModel) WithPath(v string) *EventModel {
	c.Path = &v
	return c
}

// GetSpec returns Spec.
func (c *EventModel) GetSpec() map[string]any { return c.Spec }

// HasSpec reports whether Spec is set.
func (c *EventModel) HasSpec() bool { return c.Spec != nil }

// SetSpec sets Spec.
func (c *EventModel) SetSpec(v map[string]any) { c.Spec = v }

// WithSpec sets Spec and returns c.
func (c *EventModel) WithSpec(v map[string]any) *EventModel {
	c.Spec = v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *EventModel) Equal(o *EventModel) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Framework, o.Framework) &&
		eqPtr(c.Path, o.Path) &&
		eqValue(c.Spec, o.Spec)
}

func (c *EventModel) equal(m Model) bool {
	o, ok := m.(*EventModel)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *EventModel) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("EventModel")
	hashStr(h, c.Framework)
	hashStr(h, c.Path)
	hashObject(h, c.Spec)
	return h.Sum()
}

func (c *EventModel) String() string {
	if c == nil {
		return "null"
	}
	t := newText("EventModel")
	t.field("framework", textStr(c.Framework))
	t.field("path", textStr(c.Path))
	t.field("spec", textValue(c.Spec))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *EventModel) UnmarshalJSON(data []byte) error {
	type alias EventModel
	return decode("EventModel", data, (*alias)(c), eventModelFields)
}
