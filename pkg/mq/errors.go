package mq

// TempError marks a handler failure as retryable. The consumer requeues the
// delivery instead of dropping it when the handler's error wraps a TempError.
type TempError struct {
	Err error
}

func (e TempError) Error() string {
	return e.Err.Error()
}

func (e TempError) Unwrap() error {
	return e.Err
}

func (e TempError) Temporary() bool {
	return true
}

// Temporary wraps err so the consumer treats the failure as transient.
func Temporary(err error) error {
	return TempError{Err: err}
}
