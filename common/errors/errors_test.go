package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_WrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Internal("Failed to create order", cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "Failed to create order: connection refused", err.Error())
	assert.True(t, stderrors.Is(err, cause))
}

func TestError_Constructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("Amount mismatch").Code)
	assert.Equal(t, http.StatusNotFound, NotFound("Order not found").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, Unprocessable("Validation failed", nil).Code)
	assert.Equal(t, "Order not found", NotFound("Order not found").Error())
}
