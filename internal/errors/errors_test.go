package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection refused")

	err := NewLoadError("meta/loc.csv", cause)
	assert.Equal(t, "LOAD: failed to load meta/loc.csv (caused by: connection refused)", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.False(t, err.Timestamp.IsZero())

	notFound := NewResourceNotFoundError("commit", "abc")
	assert.Equal(t, "NOT_FOUND: commit not found: abc", notFound.Error())
}

func TestTypeChecks(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound bool
		invalid  bool
		load     bool
		upstream bool
	}{
		{name: "not found", err: NewNotFoundError("x", nil), notFound: true},
		{name: "validation", err: NewValidationError("x", nil), invalid: true},
		{name: "load", err: NewLoadError("x", nil), load: true},
		{name: "upstream", err: NewUpstreamError("x", nil), upstream: true},
		{name: "internal", err: NewInternalError("x", nil)},
		{name: "wrapped", err: fmt.Errorf("outer: %w", NewNotFoundError("x", nil)), notFound: true},
		{name: "plain", err: errors.New("x")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.invalid, IsInvalidInput(tt.err))
			assert.Equal(t, tt.load, IsLoad(tt.err))
			assert.Equal(t, tt.upstream, IsUpstream(tt.err))
		})
	}
}
