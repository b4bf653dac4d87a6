package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "validation", err: Validation("bad"), expected: http.StatusBadRequest},
		{name: "unauthenticated", err: Unauthenticated("who"), expected: http.StatusUnauthorized},
		{name: "forbidden", err: Forbidden("no"), expected: http.StatusForbidden},
		{name: "not found", err: NotFound("gone"), expected: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", NotFound("gone")), expected: http.StatusNotFound},
		{name: "plain error", err: errors.New("db is down"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusCode(tt.err))
		})
	}
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("x")))
	assert.False(t, IsNotFound(Validation("x")))
	assert.True(t, IsValidation(Validation("x")))
	assert.False(t, IsValidation(errors.New("x")))
}
