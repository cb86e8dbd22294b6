package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := NewValidationError("bad input", "body is empty")
	assert.Equal(t, "validation: bad input (body is empty)", err.Error())

	err = NewProcessingError("could not extract", nil)
	assert.Equal(t, "processing: could not extract", err.Error())
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("service: %w", NewTimeoutError("too slow", nil))

	assert.True(t, IsType(err, ErrorTypeTimeout))
	assert.False(t, IsType(err, ErrorTypeProcessing))
	assert.False(t, IsType(stderrors.New("plain"), ErrorTypeInternal))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("deadline")
	err := NewInternalError("cancelled", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestGetStatusCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewValidationError("missing file"))
	assert.Equal(t, http.StatusBadRequest, GetStatusCode(err))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(stderrors.New("plain")))
}
