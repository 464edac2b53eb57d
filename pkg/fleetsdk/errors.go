package fleetsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fleetops/fleetcmd/pkg/httpx"
)

// APIError represents an error response from the fleet service. The wire
// format is a JSON object with a single "detail" field, matching what every
// endpoint returns on failure. It implements the error interface and is used
// both by the server (to write HTTP responses) and by the SDK client (to
// represent errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Detail is a human-readable description of the error
	Detail string `json:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

// WithDetail returns a copy of the error carrying a more specific detail
// message. The original predefined error is left untouched so that
// errors.Is comparisons against the predefined values keep working via Is.
func (e *APIError) WithDetail(detail string) *APIError {
	return &APIError{
		StatusCode: e.StatusCode,
		Detail:     detail,
	}
}

// Is reports whether target is an APIError with the same status code. This
// lets callers match errors.Is(err, fleetsdk.ErrNotFound) even when the
// detail message was customised via WithDetail.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"detail": e.Detail,
	})
}

// Predefined errors covering the service's failure taxonomy.
var (
	// ErrInvalidRequest is returned when the request body or query parameters
	// are malformed or missing required fields.
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "the request is malformed or missing required parameters",
	}

	// ErrUnauthorized is returned when credentials or tokens fail verification.
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "unauthorized",
	}

	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Detail:     "entity not found",
	}

	// ErrMethodNotAllowed is returned when the HTTP method is not supported
	// by the endpoint.
	ErrMethodNotAllowed = &APIError{
		StatusCode: http.StatusMethodNotAllowed,
		Detail:     "method not allowed",
	}

	// ErrConflict is returned when creating an entity that already exists,
	// such as registering an email twice.
	ErrConflict = &APIError{
		StatusCode: http.StatusConflict,
		Detail:     "entity already exists",
	}

	// ErrInvalidData is returned when the request parsed but its contents
	// fail domain validation.
	ErrInvalidData = &APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Detail:     "invalid data provided",
	}

	// ErrNotModified is returned when an update matched an entity but changed
	// nothing, such as setting a command to the status it already has.
	ErrNotModified = &APIError{
		StatusCode: http.StatusInternalServerError,
		Detail:     "database not modified",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Detail:     "internal server error",
	}
)

// NewAPIError creates an APIError with the given status code and detail.
func NewAPIError(statusCode int, detail string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// parseErrorResponse parses an HTTP error response body into a typed
// *APIError. Returns nil if the response indicates success.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Detail:     errResp.Detail,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
