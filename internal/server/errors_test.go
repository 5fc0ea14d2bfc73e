package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/smart-match/internal/types"
)

func TestHTTPStatus_InvalidRecord(t *testing.T) {
	err := &types.InvalidRecordError{Record: "candidate", ID: "cand_001", Cause: fmt.Errorf("bad")}

	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_MalformedBody(t *testing.T) {
	err := &ErrMalformedBody{Cause: fmt.Errorf("unexpected EOF")}

	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_NotFound(t *testing.T) {
	err := &ErrRecordNotFound{Record: "job", ID: "job_001"}

	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestHTTPStatus_WrappedError(t *testing.T) {
	inner := &ErrRecordNotFound{Record: "candidate", ID: "cand_002"}
	wrapped := fmt.Errorf("lookup failed: %w", inner)

	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestHTTPStatus_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("boom")))
}

func TestErrRecordNotFound_Message(t *testing.T) {
	err := &ErrRecordNotFound{Record: "job", ID: "job_404"}

	assert.Equal(t, "job not found: job_404", err.Error())
}
