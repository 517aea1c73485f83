// Package models holds the wire types exchanged with the platform API.
//
// Every type follows the same shape: all fields are optional (nil pointer or
// nil slice means "not provided"), a static Field table maps Go fields to
// wire keys, and each type provides accessors, fluent setters, structural
// equality, a hash consistent with that equality and a multi-line text
// rendering meant for diagnostics.
//
// Values are plain mutable records without synchronization.
package models

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Model is implemented by every wire type in this package.
type Model interface {
	fmt.Stringer
	// ModelName is the schema name of the type, e.g. "EventCurve".
	ModelName() string
	// Fields returns the static Go field to wire key table.
	Fields() []Field
	// Hash is consistent with Equal: equal models hash equal.
	Hash() uint64

	equal(Model) bool
}

// Field maps a Go struct field to its wire key.
type Field struct {
	Name string // Go field identifier, e.g. "ContentType".
	Key  string // Wire key, e.g. "content_type".
}

// Equal reports whether a and b are the same concrete type and all their
// fields compare equal.
func Equal(a, b Model) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.equal(b)
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// DecodeError is returned when a wire document cannot be decoded into a
// model.
type DecodeError struct {
	Model string
	Err   error
}

func (e *DecodeError) Error() string {
	return "decode " + e.Model + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type fieldTable []Field

func (t fieldTable) clone() []Field {
	return slices.Clone(t)
}

// unknown returns the sorted keys of raw that are not in the table.
func (t fieldTable) unknown(raw map[string]json.RawMessage) []string {
	var out []string
	for k := range raw {
		if !slices.ContainsFunc(t, func(f Field) bool { return f.Key == k }) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// decode unmarshals data into v, which must be an alias of the model type
// so its UnmarshalJSON is not called recursively. Unknown keys are logged
// and dropped.
func decode[T any](name string, data []byte, v *T, fields fieldTable) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Model: name, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{Model: name, Err: err}
	}
	if extra := fields.unknown(raw); len(extra) != 0 {
		slog.Warn("unknown fields in model", "model", name, "fields", extra)
	}
	return nil
}

func get[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// same is == except that NaN equals NaN, so every model equals itself.
func same[T comparable](a, b T) bool {
	return a == b || (a != a && b != b)
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return same(*a, *b)
}

func eqTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// eqSlice differs from slices.Equal in that a nil slice never equals an
// empty one and NaN elements compare equal.
func eqSlice[T comparable](a, b []T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return slices.EqualFunc(a, b, same[T])
}

func eqModels[M interface{ Equal(M) bool }](a, b []M) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// eqValue compares decoded JSON values (nil, bool, float64, string, []any,
// map[string]any and their nesting). NaN leaves compare equal.
func eqValue(a, b any) bool {
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		return ok && same(x, y)
	case []any:
		y, ok := b.([]any)
		return ok && (x == nil) == (y == nil) && slices.EqualFunc(x, y, eqValue)
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || (x == nil) != (y == nil) || len(x) != len(y) {
			return false
		}
		for k, v := range x {
			w, ok := y[k]
			if !ok || !eqValue(v, w) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// hasher builds a canonical byte stream of a model's fields. Every field
// writes a presence byte first so an absent field and a zero value differ.
type hasher struct {
	d *xxhash.Digest
}

func newHasher(name string) *hasher {
	h := &hasher{d: xxhash.New()}
	_, _ = h.d.WriteString(name)
	return h
}

func (h *hasher) Sum() uint64 {
	return h.d.Sum64()
}

func (h *hasher) flag(present bool) {
	if present {
		_, _ = h.d.Write([]byte{1})
	} else {
		_, _ = h.d.Write([]byte{0})
	}
}

func (h *hasher) u64(v uint64) {
	var b [8]byte
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	_, _ = h.d.Write(b[:])
}

func (h *hasher) f64(v float64) {
	switch {
	case v == 0:
		// -0 and +0 compare equal.
		v = 0
	case math.IsNaN(v):
		v = math.NaN()
	}
	h.u64(math.Float64bits(v))
}

func (h *hasher) str(s string) {
	h.u64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

func (h *hasher) nested(present bool, sum uint64) {
	h.flag(present)
	if present {
		h.u64(sum)
	}
}

// value hashes a decoded JSON value; map keys are visited in sorted order.
func (h *hasher) value(v any) {
	switch t := v.(type) {
	case nil:
		h.flag(false)
	case bool:
		h.flag(true)
		h.str("b")
		h.flag(t)
	case float64:
		h.flag(true)
		h.str("n")
		h.f64(t)
	case string:
		h.flag(true)
		h.str("s")
		h.str(t)
	case []any:
		h.flag(true)
		h.str("a")
		h.u64(uint64(len(t)))
		for _, e := range t {
			h.value(e)
		}
	case map[string]any:
		h.flag(true)
		h.str("o")
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		h.u64(uint64(len(keys)))
		for _, k := range keys {
			h.str(k)
			h.value(t[k])
		}
	default:
		// Non-JSON values set by callers; hash their text form.
		h.flag(true)
		h.str(fmt.Sprintf("%T:%v", v, v))
	}
}

func hashStr[T ~string](h *hasher, p *T) {
	h.flag(p != nil)
	if p != nil {
		h.str(string(*p))
	}
}

func hashInt[T ~int32 | ~int64](h *hasher, p *T) {
	h.flag(p != nil)
	if p != nil {
		h.u64(uint64(*p))
	}
}

func hashFloat(h *hasher, p *float64) {
	h.flag(p != nil)
	if p != nil {
		h.f64(*p)
	}
}

func hashBool(h *hasher, p *bool) {
	h.flag(p != nil)
	if p != nil {
		h.flag(*p)
	}
}

func hashTime(h *hasher, p *time.Time) {
	h.flag(p != nil)
	if p != nil {
		h.u64(uint64(p.UnixNano()))
	}
}

func hashFloats(h *hasher, s []float64) {
	h.flag(s != nil)
	h.u64(uint64(len(s)))
	for _, v := range s {
		h.f64(v)
	}
}

func hashStrs(h *hasher, s []string) {
	h.flag(s != nil)
	h.u64(uint64(len(s)))
	for _, v := range s {
		h.str(v)
	}
}

func hashValues(h *hasher, s []any) {
	h.flag(s != nil)
	h.u64(uint64(len(s)))
	for _, v := range s {
		h.value(v)
	}
}

func hashObject(h *hasher, m map[string]any) {
	if m == nil {
		h.flag(false)
		return
	}
	h.value(m)
}

func hashModels[M interface{ Hash() uint64 }](h *hasher, s []M) {
	h.flag(s != nil)
	h.u64(uint64(len(s)))
	for _, m := range s {
		h.u64(m.Hash())
	}
}

const indent = "    "

// text renders a model as:
//
//	Name {
//	    key: value
//	}
type text struct {
	b strings.Builder
}

func newText(name string) *text {
	t := &text{}
	t.b.WriteString(name)
	t.b.WriteString(" {\n")
	return t
}

func (t *text) field(key, value string) {
	t.b.WriteString(indent)
	t.b.WriteString(key)
	t.b.WriteString(": ")
	t.b.WriteString(strings.ReplaceAll(value, "\n", "\n"+indent))
	t.b.WriteString("\n")
}

func (t *text) String() string {
	t.b.WriteString("}")
	return t.b.String()
}

func textStr[T ~string](p *T) string {
	if p == nil {
		return "null"
	}
	return string(*p)
}

func textInt[T ~int32 | ~int64](p *T) string {
	if p == nil {
		return "null"
	}
	return strconv.FormatInt(int64(*p), 10)
}

func textFloat(p *float64) string {
	if p == nil {
		return "null"
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func textBool(p *bool) string {
	if p == nil {
		return "null"
	}
	return strconv.FormatBool(*p)
}

func textTime(p *time.Time) string {
	if p == nil {
		return "null"
	}
	return p.Format(time.RFC3339Nano)
}

func textFloats(s []float64) string {
	if s == nil {
		return "null"
	}
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func textStrs(s []string) string {
	if s == nil {
		return "null"
	}
	return "[" + strings.Join(s, ", ") + "]"
}

// textValue renders decoded JSON values compactly.
func textValue(v any) string {
	if v == nil {
		return "null"
	}
	if m, ok := v.(map[string]any); ok && m == nil {
		return "null"
	}
	if s, ok := v.([]any); ok && s == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func textModel(m fmt.Stringer, present bool) string {
	if !present {
		return "null"
	}
	return m.String()
}

func textModels[M fmt.Stringer](s []M) string {
	if s == nil {
		return "null"
	}
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
