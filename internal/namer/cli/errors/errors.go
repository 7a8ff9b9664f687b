package errors

// UsageError marks wrong command line arguments or flags. The CLI prints it with the
// usage text and exits with status 1.
type UsageError struct {
	err error
}

func (e *UsageError) Error() string {
	return e.err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.err
}

func NewUsageError(err error) error {
	return &UsageError{err: err}
}
