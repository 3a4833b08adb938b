package upstream

import "fmt"

// StatusError indicates the upstream API answered with a non-success status.
// The response body is captured for logging; it is never forwarded to
// relay clients.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}
