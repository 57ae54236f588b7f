package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// StorageError wraps connectivity and transaction failures coming from the database layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage failure: %s", e.Op)
	}
	return fmt.Sprintf("storage failure: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrTenantNotFound     = &NotFoundError{Entity: "tenant"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrSessionNotFound    = &NotFoundError{Entity: "session"}
	ErrInvitationNotFound = &NotFoundError{Entity: "invitation"}
	ErrTagNotFound        = &NotFoundError{Entity: "tag"}
	ErrContractNotFound   = &NotFoundError{Entity: "contract"}
	ErrTagLinkNotFound    = &NotFoundError{Entity: "tag-contract link"}
)

// Already Exists Errors
var (
	ErrTenantExists          = &AlreadyExistsError{Entity: "tenant", Context: "with this subdomain"}
	ErrUserExists            = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrTagExists             = &AlreadyExistsError{Entity: "tag", Context: "with this name"}
	ErrContractExists        = &AlreadyExistsError{Entity: "contract", Context: "with this reference number"}
	ErrTagContractLinkExists = &AlreadyExistsError{Entity: "tag-contract link", Context: ""}
)

// Authentication Errors
var (
	ErrMissingAuthHeader   = &AuthenticationError{Message: "Missing or invalid authorization header"}
	ErrInvalidToken        = &AuthenticationError{Message: "Could not validate credentials"}
	ErrInvalidCredentials  = &AuthenticationError{Message: "Incorrect email or password"}
	ErrInvalidTenantToken  = &AuthenticationError{Message: "Invalid tenant in token"}
	ErrSessionRevoked      = &AuthenticationError{Message: "Session has been revoked or expired"}
	ErrSessionTrackingMiss = &AuthenticationError{Message: "Invalid token format - session tracking required"}
)

// Authorization Errors
var (
	ErrTenantDomainMismatch = &AuthorizationError{Message: "Access denied: Invalid tenant domain"}
	ErrTenantInactive       = &AuthorizationError{Message: "Tenant is not active"}
	ErrAdminRequired        = &AuthorizationError{Message: "Admin privileges required"}
	ErrWriteRequired        = &AuthorizationError{Message: "Write privileges required"}
)

// Configuration Errors
var (
	ErrSecretTooShort    = &ConfigurationError{Message: "JWT_SECRET_KEY must be at least 32 bytes long"}
	ErrInvalidSchemaName = &ConfigurationError{Message: "invalid tenant schema name"}
	ErrNoTenantContext   = &ConfigurationError{Message: "no tenant context set - tenant operations require explicit context"}
)

// Business Logic Errors
var (
	ErrInvalidStatus            = errors.New("invalid status")
	ErrInvalidStatusTransition  = errors.New("invalid tenant status transition")
	ErrInvitationInvalid        = errors.New("invitation is no longer valid")
	ErrTenantSubdomainRequired  = errors.New("please access via tenant subdomain")
	ErrCannotChangeOwnRole      = errors.New("cannot change your own role")
	ErrCannotDeleteSelf         = errors.New("cannot delete yourself")
	ErrCannotDeleteOwner        = errors.New("cannot delete tenant owner")
	ErrTenantNotPendingDeletion = errors.New("tenant must be soft deleted first")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewStorageError wraps a database failure. Returns nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// StatusCode maps an error from the taxonomy to its HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsAuthentication(err):
		return http.StatusUnauthorized
	case IsAuthorization(err):
		return http.StatusForbidden
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case IsValidation(err), IsConfiguration(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidStatusTransition),
		errors.Is(err, ErrInvitationInvalid),
		errors.Is(err, ErrTenantSubdomainRequired),
		errors.Is(err, ErrCannotChangeOwnRole),
		errors.Is(err, ErrCannotDeleteSelf),
		errors.Is(err, ErrCannotDeleteOwner),
		errors.Is(err, ErrTenantNotPendingDeletion):
		return http.StatusBadRequest
	case IsStorage(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the status for err and the message safe to show a
// client. Server side failures get a generic message so driver and network
// details stay in the logs.
func PublicMessage(err error) (int, string) {
	status := StatusCode(err)
	switch {
	case status == http.StatusServiceUnavailable:
		return status, "Storage temporarily unavailable"
	case status >= http.StatusInternalServerError:
		return status, "Internal server error"
	default:
		return status, err.Error()
	}
}
