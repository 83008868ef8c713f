package errors

// StatusError is an error that carries the HTTP status the backend answered
// with. Callers that only care about success/failure treat it like any other
// error; callers that branch on the status (guards, views) type-assert.
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return e.Message
}

// StatusCode returns the status carried by err, or 0 when err is not a
// StatusError (network failures, decode failures).
func StatusCode(err error) int {
	if e, ok := err.(*StatusError); ok {
		return e.StatusCode
	}
	return 0
}
