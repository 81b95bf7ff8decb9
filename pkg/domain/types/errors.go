package types

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")

	// Fatal for the whole process
	ErrInvalidCredential  = goerr.New("invalid GitHub credential")
	ErrRepositoryNotFound = goerr.New("repository not found")
	ErrNoWriteAccess      = goerr.New("no write access to repository")

	// Access check failed with an unexpected status; the current cycle stops but the loop goes on
	ErrAccessCheckFailed = goerr.New("repository access check failed")
)

// IsFatal returns true if err should terminate the process instead of being retried on the next cycle.
func IsFatal(err error) bool {
	for _, target := range []error{
		ErrInvalidOption,
		ErrValidationFailed,
		ErrInvalidCredential,
		ErrRepositoryNotFound,
		ErrNoWriteAccess,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type ErrorCategory string

const (
	ErrorCategoryNotFound     ErrorCategory = "not_found"
	ErrorCategoryUnauthorized ErrorCategory = "unauthorized"
	ErrorCategoryForbidden    ErrorCategory = "forbidden"
	ErrorCategoryUnknown      ErrorCategory = "unknown"
)
