package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/maruel/plx/models"
)

// httpError is an error with an HTTP status, rendered as a RuntimeError
// payload.
type httpError struct {
	status  int
	msg     string
	details []any
}

func (e *httpError) Error() string { return e.msg }

func badRequest(msg string, details ...any) error {
	return &httpError{status: http.StatusBadRequest, msg: msg, details: details}
}

func forbidden(msg string) error {
	return &httpError{status: http.StatusForbidden, msg: msg}
}

func notFound(msg string) error {
	return &httpError{status: http.StatusNotFound, msg: msg}
}

func conflict(msg string) error {
	return &httpError{status: http.StatusConflict, msg: msg}
}

func tooLarge() error {
	return &httpError{status: http.StatusRequestEntityTooLarge, msg: "request body too large"}
}

func tooManyRequests() error {
	return &httpError{status: http.StatusTooManyRequests, msg: "rate limit exceeded"}
}

func internalError(msg string) error {
	return &httpError{status: http.StatusInternalServerError, msg: msg}
}

// writeError writes err as a RuntimeError JSON payload.
func writeError(w http.ResponseWriter, err error) {
	var he *httpError
	if !errors.As(err, &he) {
		slog.Error("internal error", "err", err)
		he = &httpError{status: http.StatusInternalServerError, msg: "internal error"}
	}
	re := models.NewRuntimeError().
		WithErrorText(http.StatusText(he.status)).
		WithCode(int32(he.status)).
		WithMessage(he.msg)
	if len(he.details) != 0 {
		re.SetDetails(he.details)
	}
	writeJSON(w, he.status, re)
}

// writeJSONResponse writes out, or err when set. A nil out is rendered as
// 204 No Content.
func writeJSONResponse[Out any](w http.ResponseWriter, out *Out, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to encode response", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
