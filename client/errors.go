package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/maruel/plx/models"
)

// RequiredError is returned before any I/O when a required parameter is
// missing.
type RequiredError struct {
	Op    string
	Param string
}

func (e *RequiredError) Error() string {
	return e.Op + ": " + e.Param + " is required"
}

// APIError is a non 2xx response.
type APIError struct {
	// Op is the operation, e.g. "getConnection".
	Op     string
	Method string
	// Path is the route template, e.g. "/api/v1/orgs/{owner}/connections/{uuid}".
	Path       string
	StatusCode int
	// Payload is the decoded error body. When the body is not a RuntimeError
	// it holds the status and the raw body as message.
	Payload *models.RuntimeError
}

func (e *APIError) Error() string {
	var suffix string
	switch e.StatusCode {
	case http.StatusForbidden:
		suffix = "Forbidden"
	case http.StatusNotFound:
		suffix = "NotFound"
	default:
		suffix = "Default"
	}
	msg := fmt.Sprintf("[%s %s][%d] %s%s", e.Method, e.Path, e.StatusCode, e.Op, suffix)
	if e.Payload != nil {
		msg += " " + e.Payload.Error()
	}
	return msg
}

func newAPIError(r *call, status int, data []byte) *APIError {
	e := &APIError{Op: r.op, Method: r.method, Path: r.route, StatusCode: status}
	p := models.NewRuntimeError()
	if err := json.Unmarshal(data, p); err != nil || (!p.HasCode() && !p.HasMessage() && !p.HasErrorText()) {
		p = models.NewRuntimeError().WithCode(int32(status)).WithErrorText(http.StatusText(status))
		if msg := strings.TrimSpace(string(data)); msg != "" {
			p.SetMessage(msg)
		}
	}
	e.Payload = p
	return e
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsForbidden reports whether err is an APIError with status 403.
func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

func statusOf(err error) int {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
