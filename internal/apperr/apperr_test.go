package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUnwrapsChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("checkout: %w", Submission("failed to submit order").WithError(cause))

	appErr, ok := From(err)
	require.True(t, ok)
	assert.Equal(t, CodeSubmission, appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	assert.True(t, errors.Is(err, cause))
}

func TestFromPlainError(t *testing.T) {
	_, ok := From(errors.New("plain"))
	assert.False(t, ok)
}

func TestIs(t *testing.T) {
	assert.True(t, Is(EmptyCart(), CodeEmptyCart))
	assert.False(t, Is(EmptyCart(), CodeValidation))
	assert.False(t, Is(errors.New("plain"), CodeValidation))
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("bad draft").StatusCode)
	assert.Equal(t, http.StatusBadRequest, EmptyCart().StatusCode)
	assert.Equal(t, http.StatusNotFound, NotFound("missing").StatusCode)
	assert.Equal(t, http.StatusInternalServerError, Internal("boom").StatusCode)
}
