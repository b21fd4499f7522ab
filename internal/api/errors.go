package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrInvalidID = errors.New("invalid task ID")

// Error is a non-2xx response from the backend
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a 404 from the backend
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type errorBody struct {
	Error string `json:"error"`
}

// newError builds an Error from a response body. The backend sends
// {"error": "..."}; anything else is used verbatim.
func newError(status int, body []byte) *Error {
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil && eb.Error != "" {
		return &Error{StatusCode: status, Message: eb.Error}
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return &Error{StatusCode: status, Message: msg}
	}
	return &Error{StatusCode: status, Message: fmt.Sprintf("API Error: %d", status)}
}
