package model

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/secmon-lab/pushloop/pkg/domain/types"
)

// APIError is a non-2xx answer (or transport failure, StatusCode 0) from the GitHub API.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (x *APIError) Error() string {
	if x.StatusCode == 0 {
		return fmt.Sprintf("GitHub API request failed: %s", x.Message)
	}
	return fmt.Sprintf("GitHub API returned %d: %s", x.StatusCode, x.Message)
}

func (x *APIError) Category() types.ErrorCategory {
	switch x.StatusCode {
	case http.StatusNotFound:
		return types.ErrorCategoryNotFound
	case http.StatusUnauthorized:
		return types.ErrorCategoryUnauthorized
	case http.StatusForbidden:
		return types.ErrorCategoryForbidden
	default:
		return types.ErrorCategoryUnknown
	}
}

// AsAPIError extracts an *APIError from err chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
