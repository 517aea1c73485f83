// Generic HTTP handler wrappers that decode requests, validate, call a typed
// handler function, and encode JSON responses or RuntimeError payloads.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"github.com/maruel/plx/internal/schema"
)

// validatable is implemented by every request type.
type validatable interface {
	Validate() error
}

// handle wraps a typed handler function into an http.HandlerFunc. It fills
// fields tagged `path:"name"` and `query:"name"`, decodes the JSON body into
// the field tagged `body:"Schema"` after validating it against that OpenAPI
// component, validates, calls fn, and writes the JSON response or error.
func handle[In any, PtrIn interface {
	*In
	validatable
}, Out any](s *Server, fn func(context.Context, PtrIn) (*Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := PtrIn(new(In))
		if err := s.populate(r, in); err != nil {
			writeError(w, err)
			return
		}
		if err := in.Validate(); err != nil {
			writeError(w, err)
			return
		}
		out, err := fn(r.Context(), in)
		writeJSONResponse(w, out, err)
	}
}

// populate extracts path and query parameters and the request body into the
// tagged fields of input. Embedded structs are visited recursively.
func (s *Server) populate(r *http.Request, input any) error {
	val := reflect.ValueOf(input)
	if val.Kind() != reflect.Pointer {
		return nil
	}
	elem := val.Elem()
	if elem.Kind() != reflect.Struct {
		return nil
	}
	return s.populateStruct(r, elem)
}

func (s *Server) populateStruct(r *http.Request, elem reflect.Value) error {
	typ := elem.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := s.populateStruct(r, elem.Field(i)); err != nil {
				return err
			}
			continue
		}
		if tag := field.Tag.Get("path"); tag != "" {
			if err := setParam(elem.Field(i), tag, r.PathValue(tag)); err != nil {
				return err
			}
		}
		if tag := field.Tag.Get("query"); tag != "" {
			if err := setParam(elem.Field(i), tag, r.URL.Query().Get(tag)); err != nil {
				return err
			}
		}
		if tag := field.Tag.Get("body"); tag != "" {
			if err := s.decodeBody(r, tag, elem.Field(i)); err != nil {
				return err
			}
		}
		if field.IsExported() && field.Type == reflect.TypeFor[*http.Request]() {
			elem.Field(i).Set(reflect.ValueOf(r))
		}
	}
	return nil
}

func setParam(f reflect.Value, name, value string) error {
	if value == "" {
		return nil
	}
	//exhaustive:ignore
	switch f.Kind() {
	case reflect.String:
		f.SetString(value)
	case reflect.Int:
		v, err := strconv.Atoi(value)
		if err != nil {
			return badRequest("invalid " + name + ": " + value)
		}
		f.SetInt(int64(v))
	}
	return nil
}

// decodeBody validates the body against the named schema component, then
// decodes it into f, which must be a pointer to a model.
func (s *Server) decodeBody(r *http.Request, name string, f reflect.Value) error {
	body, err := io.ReadAll(r.Body)
	if err2 := r.Body.Close(); err == nil {
		err = err2
	}
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return tooLarge()
		}
		return badRequest("failed to read request body")
	}
	if len(body) == 0 {
		return badRequest("request body is required")
	}
	if err := schema.ValidateJSON(s.doc, name, body); err != nil {
		slog.Debug("request body failed validation", "schema", name, "err", err)
		return badRequest("invalid request body", err.Error())
	}
	v := reflect.New(f.Type().Elem())
	if err := json.Unmarshal(body, v.Interface()); err != nil {
		return badRequest("invalid request body", err.Error())
	}
	f.Set(v)
	return nil
}
