package sdamgia

import "fmt"

var ErrProblemNotFound = fmt.Errorf("problem block not found")
var ErrMissingRedirect = fmt.Errorf("generation endpoint did not answer with a location header")
var ErrRecognitionUnavailable = fmt.Errorf("no recognition backend is configured")

// StatusError reports a non-2xx response from the problem database.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %s", e.URL, e.Status)
}
