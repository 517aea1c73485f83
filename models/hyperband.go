package models

// HyperbandKind is the discriminator of Hyperband.
const HyperbandKind = "hyperband"

// OptimizationMetric is the metric a tuning algorithm optimizes.
type OptimizationMetric struct {
	Name         *string       `json:"name,omitempty"`
	Optimization *Optimization `json:"optimization,omitempty"`
}

var optimizationMetricFields = fieldTable{
	{"Name", "name"},
	{"Optimization", "optimization"},
}

// NewOptimizationMetric returns an OptimizationMetric with every field absent.
func NewOptimizationMetric() *OptimizationMetric {
	return &OptimizationMetric{}
}

// ModelName implements Model.
func (*OptimizationMetric) ModelName() string { return "OptimizationMetric" }

// Fields implements Model.
func (*OptimizationMetric) Fields() []Field { return optimizationMetricFields.clone() }

// GetName returns Name, or the zero value when absent.
func (c *OptimizationMetric) GetName() string { return get(c.Name) }

// HasName reports whether Name is set.
func (c *OptimizationMetric) HasName() bool { return c.Name != nil }

// SetName sets Name.
func (c *OptimizationMetric) SetName(v string) { c.Name = &v }

// WithName sets Name and returns c.
func (c *OptimizationMetric) WithName(v string) *OptimizationMetric {
	c.Name = &v
	return c
}

// GetOptimization returns Optimization, or the zero value when absent.
func (c *OptimizationMetric) GetOptimization() Optimization { return get(c.Optimization) }

// HasOptimization reports whether Optimization is set.
func (c *OptimizationMetric) HasOptimization() bool { return c.Optimization != nil }

// SetOptimization sets Optimization.
func (c *OptimizationMetric) SetOptimization(v Optimization) { c.Optimization = &v }

// WithOptimization sets Optimization and returns c.
func (c *OptimizationMetric) WithOptimization(v Optimization) *OptimizationMetric {
	c.Optimization = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *OptimizationMetric) Equal(o *OptimizationMetric) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Name, o.Name) &&
		eqPtr(c.Optimization, o.Optimization)
}

func (c *OptimizationMetric) equal(m Model) bool {
	o, ok := m.(*OptimizationMetric)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *OptimizationMetric) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("OptimizationMetric")
	hashStr(h, c.Name)
	hashStr(h, c.Optimization)
	return h.Sum()
}

func (c *OptimizationMetric) String() string {
	if c == nil {
		return "null"
	}
	t := newText("OptimizationMetric")
	t.field("name", textStr(c.Name))
	t.field("optimization", textStr(c.Optimization))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *OptimizationMetric) UnmarshalJSON(data []byte) error {
	type alias OptimizationMetric
	return decode("OptimizationMetric", data, (*alias)(c), optimizationMetricFields)
}

// OptimizationResource is the budget a tuning algorithm allocates.
type OptimizationResource struct {
	Name *string                   `json:"name,omitempty"`
	Type *OptimizationResourceType `json:"type,omitempty"`
}

var optimizationResourceFields = fieldTable{
	{"Name", "name"},
	{"Type", "type"},
}

// NewOptimizationResource returns an OptimizationResource with every field absent.
func NewOptimizationResource() *OptimizationResource {
	return &OptimizationResource{}
}

// ModelName implements Model.
func (*OptimizationResource) ModelName() string { return "OptimizationResource" }

// Fields implements Model.
func (*OptimizationResource) Fields() []Field { return optimizationResourceFields.clone() }

// GetName returns Name.
func (c *OptimizationResource) GetName() string { return get(c.Name) }

// HasName reports whether Name is set.
func (c *OptimizationResource) HasName() bool { return c.Name != nil }

// SetName sets Name.
func (c *OptimizationResource) SetName(v string) { c.Name = &v }

// WithName sets Name and returns c.
func (c *OptimizationResource) WithName(v string) *OptimizationResource {
	c.Name = &v
	return c
}

// GetType returns Type.
func (c *OptimizationResource) GetType() OptimizationResourceType { return get(c.Type) }

// HasType reports whether Type is set.
func (c *OptimizationResource) HasType() bool { return c.Type != nil }

// SetType sets Type.
func (c *OptimizationResource) SetType(v OptimizationResourceType) { c.Type = &v }

// WithType sets Type and returns c.
func (c *OptimizationResource) WithType(v OptimizationResourceType) *OptimizationResource {
	c.Type = &v
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *OptimizationResource) Equal(o *OptimizationResource) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Name, o.Name) &&
		eqPtr(c.Type, o.Type)
}

func (c *OptimizationResource) equal(m Model) bool {
	o, ok := m.(*OptimizationResource)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *OptimizationResource) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("OptimizationResource")
	hashStr(h, c.Name)
	hashStr(h, c.Type)
	return h.Sum()
}

func (c *OptimizationResource) String() string {
	if c == nil {
		return "null"
	}
	t := newText("OptimizationResource")
	t.field("name", textStr(c.Name))
	t.field("type", textStr(c.Type))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *OptimizationResource) UnmarshalJSON(data []byte) error {
	type alias OptimizationResource
	return decode("OptimizationResource", data, (*alias)(c), optimizationResourceFields)
}

// Hyperband configures the hyperband tuning algorithm.
type Hyperband struct {
	Kind          *string               `json:"kind,omitempty"`
	Params        map[string]any        `json:"params,omitzero"`
	MaxIterations *int32                `json:"max_iterations,omitempty"`
	Eta           *float64              `json:"eta,omitempty"`
	Resource      *OptimizationResource `json:"resource,omitempty"`
	Metric        *OptimizationMetric   `json:"metric,omitempty"`
	Resume        *bool                 `json:"resume,omitempty"`
	Seed          *int32                `json:"seed,omitempty"`
	Concurrency   *int32                `json:"concurrency,omitempty"`
	EarlyStopping []any                 `json:"early_stopping,omitzero"`
}

var hyperbandFields = fieldTable{
	{"Kind", "kind"},
	{"Params", "params"},
	{"MaxIterations", "max_iterations"},
	{"Eta", "eta"},
	{"Resource", "resource"},
	{"Metric", "metric"},
	{"Resume", "resume"},
	{"Seed", "seed"},
	{"Concurrency", "concurrency"},
	{"EarlyStopping", "early_stopping"},
}

// NewHyperband returns a Hyperband with every field absent.
func NewHyperband() *Hyperband {
	return &Hyperband{}
}

// NewHyperbandWithDefaults returns a Hyperband with the schema defaults set.
func NewHyperbandWithDefaults() *Hyperband {
	return &Hyperband{Kind: Ptr(HyperbandKind)}
}

// ModelName implements Model.
func (*Hyperband) ModelName() string { return "Hyperband" }

// Fields implements Model.
func (*Hyperband) Fields() []Field { return hyperbandFields.clone() }

// GetKind returns Kind, or the zero value when absent.
func (c *Hyperband) GetKind() string { return get(c.Kind) }

// HasKind reports whether Kind is set.
func (c *Hyperband) HasKind() bool { return c.Kind != nil }

// SetKind sets Kind.
func (c *Hyperband) SetKind(v string) { c.Kind = &v }

// WithKind sets Kind and returns c.
func (c *Hyperband) WithKind(v string) *Hyperband {
	c.Kind = &v
	return c
}

// GetParams returns Params.
func (c *Hyperband) GetParams() map[string]any { return c.Params }

// HasParams reports whether Params is set.
func (c *Hyperband) HasParams() bool { return c.Params != nil }

// SetParams sets Params.
func (c *Hyperband) SetParams(v map[string]any) { c.Params = v }

// WithParams sets Params and returns c.
func (c *Hyperband) WithParams(v map[string]any) *Hyperband {
	c.Params = v
	return c
}

// GetMaxIterations returns MaxIterations, or the zero value when absent.
func (c *Hyperband) GetMaxIterations() int32 { return get(c.MaxIterations) }

// HasMaxIterations reports whether MaxIterations is set.
func (c *Hyperband) HasMaxIterations() bool { return c.MaxIterations != nil }

// SetMaxIterations sets MaxIterations.
func (c *Hyperband) SetMaxIterations(v int32) { c.MaxIterations = &v }

// WithMaxIterations sets MaxIterations and returns c.
func (c *Hyperband) WithMaxIterations(v int32) *Hyperband {
	c.MaxIterations = &v
	return c
}

// GetEta returns Eta, or the zero value when absent.
func (c *Hyperband) GetEta() float64 { return get(c.Eta) }

// HasEta reports whether Eta is set.
func (c *Hyperband) HasEta() bool { return c.Eta != nil }

// SetEta sets Eta.
func (c *Hyperband) SetEta(v float64) { c.Eta = &v }

// WithEta sets Eta and returns c.
func (c *Hyperband) WithEta(v float64) *Hyperband {
	c.Eta = &v
	return c
}

// GetResource returns Resource.
func (c *Hyperband) GetResource() *OptimizationResource { return c.Resource }

// HasResource reports whether Resource is set.
func (c *Hyperband) HasResource() bool { return c.Resource != nil }

// SetResource sets Resource.
func (c *Hyperband) SetResource(v *OptimizationResource) { c.Resource = v }

// WithResource sets Resource and returns c.
func (c *Hyperband) WithResource(v *OptimizationResource) *Hyperband {
	c.Resource = v
	return c
}

// GetMetric returns Metric.
func (c *Hyperband) GetMetric() *OptimizationMetric { return c.Metric }

// HasMetric reports whether Metric is set.
func (c *Hyperband) HasMetric() bool { return c.Metric != nil }

// SetMetric sets Metric.
func (c *Hyperband) SetMetric(v *OptimizationMetric) { c.Metric = v }

// WithMetric sets Metric and returns c.
func (c *Hyperband) WithMetric(v *OptimizationMetric) *Hyperband {
	c.Metric = v
	return c
}

// GetResume returns Resume, or the zero value when absent.
func (c *Hyperband) GetResume() bool { return get(c.Resume) }

// HasResume reports whether Resume is set.
func (c *Hyperband) HasResume() bool { return c.Resume != nil }

// SetResume sets Resume.
func (c *Hyperband) SetResume(v bool) { c.Resume = &v }

// WithResume sets Resume and returns c.
func (c *Hyperband) WithResume(v bool) *Hyperband {
	c.Resume = &v
	return c
}

// GetSeed returns Seed, or the zero value when absent.
func (c *Hyperband) GetSeed() int32 { return get(c.Seed) }

// HasSeed reports whether Seed is set.
func (c *Hyperband) HasSeed() bool { return c.Seed != nil }

// SetSeed sets Seed.
func (c *Hyperband) SetSeed(v int32) { c.Seed = &v }

// WithSeed sets Seed and returns c.
func (c *Hyperband) WithSeed(v int32) *Hyperband {
	c.Seed = &v
	return c
}

// GetConcurrency returns Concurrency, or the zero value when absent.
func (c *Hyperband) GetConcurrency() int32 { return get(c.Concurrency) }

// HasConcurrency reports whether Concurrency is set.
func (c *Hyperband) HasConcurrency() bool { return c.Concurrency != nil }

// SetConcurrency sets Concurrency.
func (c *Hyperband) SetConcurrency(v int32) { c.Concurrency = &v }

// WithConcurrency sets Concurrency and returns c.
func (c *Hyperband) WithConcurrency(v int32) *Hyperband {
	c.Concurrency = &v
	return c
}

// GetEarlyStopping returns EarlyStopping.
func (c *Hyperband) GetEarlyStopping() []any { return c.EarlyStopping }

// HasEarlyStopping reports whether EarlyStopping is set.
func (c *Hyperband) HasEarlyStopping() bool { return c.EarlyStopping != nil }

// SetEarlyStopping sets EarlyStopping.
func (c *Hyperband) SetEarlyStopping(v []any) { c.EarlyStopping = v }

// WithEarlyStopping sets EarlyStopping and returns c.
func (c *Hyperband) WithEarlyStopping(v []any) *Hyperband {
	c.EarlyStopping = v
	return c
}

// AddEarlyStoppingItem appends v to EarlyStopping, creating it when absent.
func (c *Hyperband) AddEarlyStoppingItem(v any) *Hyperband {
	if c.EarlyStopping == nil {
		c.EarlyStopping = make([]any, 0, 1)
	}
	c.EarlyStopping = append(c.EarlyStopping, v)
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *Hyperband) Equal(o *Hyperband) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.Kind, o.Kind) &&
		eqValue(c.Params, o.Params) &&
		eqPtr(c.MaxIterations, o.MaxIterations) &&
		eqPtr(c.Eta, o.Eta) &&
		c.Resource.Equal(o.Resource) &&
		c.Metric.Equal(o.Metric) &&
		eqPtr(c.Resume, o.Resume) &&
		eqPtr(c.Seed, o.Seed) &&
		eqPtr(c.Concurrency, o.Concurrency) &&
		eqValue(c.EarlyStopping, o.EarlyStopping)
}

func (c *Hyperband) equal(m Model) bool {
	o, ok := m.(*Hyperband)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *Hyperband) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("Hyperband")
	hashStr(h, c.Kind)
	hashObject(h, c.Params)
	hashInt(h, c.MaxIterations)
	hashFloat(h, c.Eta)
	h.nested(c.Resource != nil, c.Resource.Hash())
	h.nested(c.Metric != nil, c.Metric.Hash())
	hashBool(h, c.Resume)
	hashInt(h, c.Seed)
	hashInt(h, c.Concurrency)
	hashValues(h, c.EarlyStopping)
	return h.Sum()
}

func (c *Hyperband) String() string {
	if c == nil {
		return "null"
	}
	t := newText("Hyperband")
	t.field("kind", textStr(c.Kind))
	t.field("params", textValue(c.Params))
	t.field("max_iterations", textInt(c.MaxIterations))
	t.field("eta", textFloat(c.Eta))
	t.field("resource", textModel(c.Resource, c.Resource != nil))
	t.field("metric", textModel(c.Metric, c.Metric != nil))
	t.field("resume", textBool(c.Resume))
	t.field("seed", textInt(c.Seed))
	t.field("concurrency", textInt(c.Concurrency))
	t.field("early_stopping", textValue(c.EarlyStopping))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Hyperband) UnmarshalJSON(data []byte) error {
	type alias Hyperband
	return decode("Hyperband", data, (*alias)(c), hyperbandFields)
}
