// Package exitcode maps errors to process exit codes so scripts can branch
// on failure classes without parsing stderr.
package exitcode

import (
	stderrors "errors"
	"os"

	"github.com/lumera-core/lumera-cli/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates a missing, invalid, or expired session
	AuthError = 3

	// CompanyError indicates a missing or invalid company selection
	CompanyError = 4

	// NetworkError indicates the platform could not be reached
	NetworkError = 5

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode classifies an error by its code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var le *errors.LumeraError
	if !stderrors.As(err, &le) {
		return GeneralError
	}

	switch le.Code {
	case errors.ErrCodeSessionExpired,
		errors.ErrCodeAuthNotLoggedIn,
		errors.ErrCodeSessionCorrupt:
		return AuthError
	case errors.ErrCodeNoActiveCompany,
		errors.ErrCodeAuthNotMember:
		return CompanyError
	case errors.ErrCodeAPINetwork:
		return NetworkError
	case errors.ErrCodeConfigInvalid:
		return UsageError
	default:
		return GeneralError
	}
}
