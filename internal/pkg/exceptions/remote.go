package exceptions

import "fmt"

// RemoteAPIError is the decoded failure of a call to the reservation API.
// Detail carries the server's own message and is shown to users verbatim.
type RemoteAPIError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteAPIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("remote API status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote API status %d: %s", e.StatusCode, e.Detail)
}

// IsConflict reports whether the server refused the request because it
// collides with existing state.
func (e *RemoteAPIError) IsConflict() bool {
	return e.StatusCode == 409
}
