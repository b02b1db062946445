package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrParse", ErrParse},
		{"ErrValidation", ErrValidation},
		{"ErrNotFound", ErrNotFound},
		{"ErrMissingField", ErrMissingField},
		{"ErrType", ErrType},
		{"ErrNotConfigured", ErrNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	all := []error{ErrParse, ErrValidation, ErrNotFound, ErrMissingField, ErrType, ErrNotConfigured}
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}

func TestEventError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("%w: account %q", ErrNotFound, "Nobody")
	err := error(&EventError{Index: 3, Line: "Charge Nobody $5", Err: inner})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrParse))
	assert.Equal(t, `event 3 "Charge Nobody $5": not found: account "Nobody"`, err.Error())

	var eventErr *EventError
	require.True(t, errors.As(err, &eventErr))
	assert.Equal(t, 3, eventErr.Index)
}

func TestEventError_WithLine(t *testing.T) {
	err := &EventError{Index: 2, LineNo: 4, Line: "Refund Tom $5", Err: ErrParse}

	assert.Equal(t, `event 2 (line 4) "Refund Tom $5": parse error`, err.Error())
	assert.ErrorIs(t, err, ErrParse)
}
