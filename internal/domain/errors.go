package domain

import (
	"fmt"
	"net/http"
)

// RequestError is a validation or lookup failure that the transport layer
// forwards to the caller verbatim: a status code plus a human-readable
// message. There is no machine-readable code beyond the message text.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

func BadRequest(format string, args ...any) *RequestError {
	return &RequestError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *RequestError {
	return &RequestError{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}
