package models

import "strconv"

// RuntimeError is the error payload returned by the API for unexpected
// responses.
type RuntimeError struct {
	ErrorText *string `json:"error,omitempty"`
	Code      *int32  `json:"code,omitempty"`
	Message   *string `json:"message,omitempty"`
	Details   []any   `json:"details,omitzero"`
}

var runtimeErrorFields = fieldTable{
	{"ErrorText", "error"},
	{"Code", "code"},
	{"Message", "message"},
	{"Details", "details"},
}

// NewRuntimeError returns a RuntimeError with every field absent.
func NewRuntimeError() *RuntimeError {
	return &RuntimeError{}
}

// ModelName implements Model.
func (*RuntimeError) ModelName() string { return "RuntimeError" }

// Fields implements Model.
func (*RuntimeError) Fields() []Field { return runtimeErrorFields.clone() }

// GetErrorText returns ErrorText, or the zero value when absent.
func (c *RuntimeError) GetErrorText() string { return get(c.ErrorText) }

// HasErrorText reports whether ErrorText is set.
func (c *RuntimeError) HasErrorText() bool { return c.ErrorText != nil }

// SetErrorText sets ErrorText.
func (c *RuntimeError) SetErrorText(v string) { c.ErrorText = &v }

// WithErrorText sets ErrorText and returns c.
func (c *RuntimeError) WithErrorText(v string) *RuntimeError {
	c.ErrorText = &v
	return c
}

// GetCode returns Code, or the zero value when absent.
func (c *RuntimeError) GetCode() int32 { return get(c.Code) }

// HasCode reports whether Code is set.
func (c *RuntimeError) HasCode() bool { return c.Code != nil }

// SetCode sets Code.
func (c *RuntimeError) SetCode(v int32) { c.Code = &v }

// WithCode sets Code and returns c.
func (c *RuntimeError) WithCode(v int32) *RuntimeError {
	c.Code = &v
	return c
}

// GetMessage returns Message, or the zero value when absent.
func (c *RuntimeError) GetMessage() string { return get(c.Message) }

// HasMessage reports whether Message is set.
func (c *RuntimeError) HasMessage() bool { return c.Message != nil }

// SetMessage sets Message.
func (c *RuntimeError) SetMessage(v string) { c.Message = &v }

// WithMessage sets Message and returns c.
func (c *RuntimeError) WithMessage(v string) *RuntimeError {
	c.Message = &v
	return c
}

// GetDetails returns Details.
func (c *RuntimeError) GetDetails() []any { return c.Details }

// HasDetails reports whether Details is set.
func (c *RuntimeError) HasDetails() bool { return c.Details != nil }

// SetDetails sets Details.
func (c *RuntimeError) SetDetails(v []any) { c.Details = v }

// WithDetails sets Details and returns c.
func (c *RuntimeError) WithDetails(v []any) *RuntimeError {
	c.Details = v
	return c
}

// AddDetailsItem appends v to Details, creating it when absent.
func (c *RuntimeError) AddDetailsItem(v any) *RuntimeError {
	if c.Details == nil {
		c.Details = make([]any, 0, 1)
	}
	c.Details = append(c.Details, v)
	return c
}

// Equal reports whether all fields of c and o are equal.
func (c *RuntimeError) Equal(o *RuntimeError) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return eqPtr(c.ErrorText, o.ErrorText) &&
		eqPtr(c.Code, o.Code) &&
		eqPtr(c.Message, o.Message) &&
		eqValue(c.Details, o.Details)
}

func (c *RuntimeError) equal(m Model) bool {
	o, ok := m.(*RuntimeError)
	return ok && c.Equal(o)
}

// Hash implements Model.
func (c *RuntimeError) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("RuntimeError")
	hashStr(h, c.ErrorText)
	hashInt(h, c.Code)
	hashStr(h, c.Message)
	hashValues(h, c.Details)
	return h.Sum()
}

func (c *RuntimeError) String() string {
	if c == nil {
		return "null"
	}
	t := newText("RuntimeError")
	t.field("error", textStr(c.ErrorText))
	t.field("code", textInt(c.Code))
	t.field("message", textStr(c.Message))
	t.field("details", textValue(c.Details))
	return t.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *RuntimeError) UnmarshalJSON(data []byte) error {
	type alias RuntimeError
	return decode("RuntimeError", data, (*alias)(c), runtimeErrorFields)
}

// Error implements error.
func (c *RuntimeError) Error() string {
	msg := c.GetMessage()
	if msg == "" {
		msg = c.GetErrorText()
	}
	if c.Code == nil {
		return msg
	}
	if msg == "" {
		return "code " + strconv.Itoa(int(*c.Code))
	}
	return msg + " (code " + strconv.Itoa(int(*c.Code)) + ")"
}
