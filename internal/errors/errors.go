package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionCorrupt ErrorCode = "SESSION-001"
	ErrCodeSessionStorage ErrorCode = "SESSION-002"
	ErrCodeSessionExpired ErrorCode = "SESSION-003"

	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthNotLoggedIn ErrorCode = "AUTH-001"
	ErrCodeAuthNotMember   ErrorCode = "AUTH-002"

	// API errors (API-001 to API-099)
	ErrCodeAPINetwork ErrorCode = "API-001"
	ErrCodeAPIRequest ErrorCode = "API-002"
	ErrCodeAPIDecode  ErrorCode = "API-003"

	// Company errors (COMPANY-001 to COMPANY-099)
	ErrCodeNoActiveCompany ErrorCode = "COMPANY-001"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeConfigWrite   ErrorCode = "CONFIG-002"
)

// Message keys used by display layers to localize errors. A backend-supplied
// message field is namespaced under "errors." when present.
const (
	KeyNetwork = "errors.NETWORK"
	KeyGeneric = "errors.GENERIC"
)

// LumeraError represents an enhanced error with code, suggestions, and the
// HTTP context callers need to classify failures.
type LumeraError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string

	// HTTPStatus is the status code of the failed response; 0 when no
	// response was received (network failure).
	HTTPStatus int

	// BackendMessage is the structured message field from the response
	// body, when the backend supplied one.
	BackendMessage string

	Cause error
}

// Error implements the error interface
func (e *LumeraError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *LumeraError) Unwrap() error {
	return e.Cause
}

// New creates a new LumeraError
func New(code ErrorCode, message string) *LumeraError {
	return &LumeraError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new LumeraError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *LumeraError {
	return &LumeraError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *LumeraError) WithSuggestion(suggestion string) *LumeraError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithStatus records the HTTP status of the failed response
func (e *LumeraError) WithStatus(status int) *LumeraError {
	e.HTTPStatus = status
	return e
}

// WithBackendMessage records the backend's structured message field
func (e *LumeraError) WithBackendMessage(message string) *LumeraError {
	e.BackendMessage = message
	return e
}

// Common error constructors

// NewNetworkError creates an error for a request that got no response
func NewNetworkError(cause error) *LumeraError {
	return Wrap(ErrCodeAPINetwork, "no response from the Lumera platform", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify the API URL with 'lumera config get api_url'")
}

// NewRequestError creates a business/validation error from a non-2xx
// response. backendMessage may be empty when the body carried none.
func NewRequestError(status int, backendMessage string) *LumeraError {
	msg := fmt.Sprintf("request failed with status %d", status)
	if backendMessage != "" {
		msg = fmt.Sprintf("%s: %s", msg, backendMessage)
	}
	return New(ErrCodeAPIRequest, msg).
		WithStatus(status).
		WithBackendMessage(backendMessage)
}

// NewSessionExpiredError creates the globally handled 401/403 error
func NewSessionExpiredError(status int) *LumeraError {
	return New(ErrCodeSessionExpired, "session is invalid or expired").
		WithStatus(status).
		WithSuggestion("Run 'lumera auth login' to re-authenticate")
}

// NewNotLoggedInError creates the guard error for anonymous callers
func NewNotLoggedInError() *LumeraError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'lumera auth login' to authenticate")
}

// NewNoActiveCompanyError creates the fail-fast error for operations that
// require a tenant scope
func NewNoActiveCompanyError() *LumeraError {
	return New(ErrCodeNoActiveCompany, "no active company selected").
		WithSuggestion("Run 'lumera company create' to onboard a company").
		WithSuggestion("Run 'lumera company switch <company-id>' to select one")
}

// NewNotMemberError creates the error for selecting a company the current
// user does not belong to
func NewNotMemberError(companyID string) *LumeraError {
	return New(ErrCodeAuthNotMember, fmt.Sprintf("not a member of company: %s", companyID)).
		WithSuggestion("Run 'lumera auth context' to list your companies")
}

// NewCorruptRecordError creates the error logged when a persisted slot
// cannot be parsed. Callers treat the record as absent.
func NewCorruptRecordError(key string, cause error) *LumeraError {
	return Wrap(ErrCodeSessionCorrupt, fmt.Sprintf("corrupt persisted record: %s", key), cause).
		WithSuggestion("Run 'lumera auth login' to establish a fresh session")
}

// MessageKey resolves the localization key for an error: network failures
// map to a fixed key, business errors expose the backend's message field,
// everything else falls back to the generic key.
func MessageKey(err error) string {
	if err == nil {
		return KeyGeneric
	}

	var le *LumeraError
	if !stderrors.As(err, &le) {
		return KeyGeneric
	}

	if le.Code == ErrCodeAPINetwork {
		return KeyNetwork
	}

	if le.BackendMessage != "" {
		return "errors." + le.BackendMessage
	}

	return KeyGeneric
}
