package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationCarriesFieldAndType(t *testing.T) {
	err := Validation("nights", MsgNights)

	assert.Equal(t, TypeValidation, err.Type)
	assert.Equal(t, "nights", err.Field())
	assert.Equal(t, "[VALIDATION_ERROR] nights must be a positive integer", err.Error())
	assert.True(t, IsValidation(err))
}

func TestIsValidationSeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("hotel: %w", Validation("total_amount", MsgTotalAmount))

	require.True(t, IsValidation(wrapped))

	e, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, MsgTotalAmount, e.Message)
}

func TestIsTypeRejectsForeignErrors(t *testing.T) {
	assert.False(t, IsValidation(fmt.Errorf("plain")))
	assert.False(t, IsValidation(nil))
	assert.False(t, IsValidation(Internal("boom", nil)))
}

func TestWrapIncludesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Output("write xlsx", cause)

	assert.Equal(t, "[OUTPUT_ERROR] write xlsx: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}
