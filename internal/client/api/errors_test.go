package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackendError_Error(t *testing.T) {
	be := &BackendError{Status: ClassNotFound, Message: "no such profile"}
	require.Equal(t, "not_found: no such profile", be.Error())

	be = &BackendError{Status: ClassBadRequest, Messages: []string{"a", "b"}}
	require.Equal(t, "bad_request: a; b", be.Error())
}

func TestAsBackendError_Wrapped(t *testing.T) {
	inner := &BackendError{Status: ClassUnauthorized, Message: "nope"}
	wrapped := fmt.Errorf("login: %w", inner)

	be, ok := AsBackendError(wrapped)
	require.True(t, ok)
	require.Same(t, inner, be)
	require.True(t, IsUnauthorized(wrapped))
	require.False(t, IsUnauthorized(errors.New("plain")))
}

func TestFlattenFieldErrors_StringValues(t *testing.T) {
	got := flattenFieldErrors([]byte(`{"emailAddress":"Email is required","password":["too short","too simple"]}`))
	require.Equal(t, []string{"Email is required", "too short", "too simple"}, got)
}

func TestFlattenFieldErrors_NotAnObject(t *testing.T) {
	got := flattenFieldErrors([]byte(`"oops"`))
	require.Equal(t, []string{`"oops"`}, got)
}
