package api

import (
	"fmt"
	"net/http"
	"strings"
)

// ApiError is written to the client as {"error": Message}.
type ApiError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Err        error  `json:"-"`
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}

	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func lower(s string) string {
	return strings.ToLower(s)
}

func NewBadRequestError(err error) *ApiError {
	return &ApiError{
		StatusCode: http.StatusBadRequest,
		Message:    lower(http.StatusText(http.StatusBadRequest)),
		Err:        err,
	}
}

// NewNotFoundError names the missing resource, e.g. "creator not found".
func NewNotFoundError(resource string) *ApiError {
	return &ApiError{
		StatusCode: http.StatusNotFound,
		Message:    lower(resource) + " not found",
	}
}

func NewInternalServerError(err error) *ApiError {
	return &ApiError{
		StatusCode: http.StatusInternalServerError,
		Message:    lower(http.StatusText(http.StatusInternalServerError)),
		Err:        err,
	}
}
