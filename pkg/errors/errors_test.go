package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind   Kind
		status int
	}{
		{KindInvalidArgument, http.StatusBadRequest},
		{KindInvalidToken, http.StatusUnauthorized},
		{KindUnauthorized, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindOperationFailed, http.StatusInternalServerError},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			err := &ServiceError{Kind: tc.kind, Message: "boom"}
			assert.Equal(t, tc.status, err.HTTPStatus())
		})
	}
}

func TestErrorString(t *testing.T) {
	err := NewNotFound("application")
	assert.Equal(t, "NOT_FOUND: application not found", err.Error())

	wrapped := NewInternal("storage failed").WithCause(errors.New("timeout"))
	assert.Equal(t, "INTERNAL: storage failed: timeout", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := NewOperationFailed("delete failed").WithCause(cause)

	assert.ErrorIs(t, err, cause)
}

func TestIsKind(t *testing.T) {
	err := NewInvalidToken("rejected")

	assert.True(t, IsKind(err, KindInvalidToken))
	assert.False(t, IsKind(err, KindUnauthorized))
	assert.False(t, IsKind(errors.New("plain"), KindInvalidToken))

	// classification survives wrapping
	wrapped := fmt.Errorf("call failed: %w", err)
	assert.True(t, IsKind(wrapped, KindInvalidToken))
}
