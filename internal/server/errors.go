package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/smart-match/internal/types"
)

// ErrRecordNotFound indicates a candidate or job was not found in storage
type ErrRecordNotFound struct {
	Record string
	ID     string
}

func (e *ErrRecordNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Record, e.ID)
}

// ErrMalformedBody indicates a request body could not be decoded
type ErrMalformedBody struct {
	Cause error
}

func (e *ErrMalformedBody) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Cause)
}

func (e *ErrMalformedBody) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var invalidRecord *types.InvalidRecordError
	var notFound *ErrRecordNotFound
	var malformed *ErrMalformedBody
	switch {
	case errors.As(err, &invalidRecord), errors.As(err, &malformed):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
