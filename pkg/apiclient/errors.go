package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidInput is returned by endpoint helpers when a field fails
// sanitization before any request is made.
var ErrInvalidInput = errors.New("apiclient: invalid input")

// HTTPError is a non-2xx response from an endpoint helper. The status
// code lets callers distinguish 403 (authorization problem, e.g. an
// unverified email) from a failed call; 401 handling already happened
// inside the client by the time this error surfaces.
type HTTPError struct {
	Status   int
	Endpoint string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("apiclient: %s returned status %d", e.Endpoint, e.Status)
}

// IsForbidden reports whether err is an HTTPError with status 403.
// Forbidden is page-specific territory (verify-your-email flows) and
// must never be treated as a lost session.
func IsForbidden(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == http.StatusForbidden
}

// IsUnauthorized reports whether err is an HTTPError with status 401.
func IsUnauthorized(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == http.StatusUnauthorized
}
