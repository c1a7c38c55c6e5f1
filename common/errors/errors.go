package errors

import (
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it maps to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

func Unprocessable(message string, err error) *Error {
	return New(http.StatusUnprocessableEntity, message, err)
}

// Internal wraps a storage or encoding failure. Only message reaches the client.
func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}
