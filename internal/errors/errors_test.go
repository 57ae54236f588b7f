package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "tenant"}
		assert.Equal(t, "tenant not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "session"}
		err2 := &NotFoundError{Entity: "session"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTenantNotFound, ErrUserNotFound))
	})

	t.Run("IsNotFound helper through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup: %w", ErrTenantNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.False(t, IsNotFound(ErrInvalidCredentials))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tag-contract link"}
		assert.Equal(t, "tag-contract link already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTagExists))
		assert.False(t, IsAlreadyExists(ErrTagNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageError("validate session", cause)

	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage failure: validate session: connection refused", err.Error())
	assert.Nil(t, NewStorageError("noop", nil))
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"authentication", ErrInvalidToken, http.StatusUnauthorized},
		{"revoked session", ErrSessionRevoked, http.StatusUnauthorized},
		{"domain mismatch", ErrTenantDomainMismatch, http.StatusForbidden},
		{"not found", ErrTenantNotFound, http.StatusNotFound},
		{"conflict", ErrUserExists, http.StatusConflict},
		{"configuration", ErrInvalidSchemaName, http.StatusBadRequest},
		{"validation", NewValidationError("email", "required"), http.StatusBadRequest},
		{"status transition", fmt.Errorf("wrap: %w", ErrInvalidStatusTransition), http.StatusBadRequest},
		{"storage", NewStorageError("query", errors.New("boom")), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestAuthenticationMessagesDoNotLeakAccountExistence(t *testing.T) {
	// One error value covers both unknown email and wrong password.
	assert.Equal(t, "Incorrect email or password", ErrInvalidCredentials.Error())
}

func TestPublicMessageHidesServerSideDetails(t *testing.T) {
	dbErr := NewStorageError("load user", errors.New(`FATAL: password authentication failed for user "kubera"`))
	status, msg := PublicMessage(dbErr)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.NotContains(t, msg, "password authentication")
	assert.NotContains(t, msg, "load user")

	status, msg = PublicMessage(errors.New("dial tcp 10.0.0.3:5432: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", msg)

	status, msg = PublicMessage(ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, ErrInvalidCredentials.Error(), msg)
}
