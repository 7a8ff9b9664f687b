package common

// ContextCancelError is returned when a task stops because its context was closed.
type ContextCancelError struct{}

func (e *ContextCancelError) Error() string {
	return "context canceled"
}
