package throwing

// UncheckedError is the panic value raised by an Unchecked conversion when the
// wrapped callable reports a failure.
//
// Its message is the failure's message, copied verbatim (an empty message
// stays empty), and it unwraps to the failure itself.
type UncheckedError struct {
	cause error
}

func (e *UncheckedError) Error() string {
	return e.cause.Error()
}

func (e *UncheckedError) Unwrap() error {
	return e.cause
}

// Cause returns the failure reported by the wrapped callable.
func (e *UncheckedError) Cause() error {
	return e.cause
}

// AsUnchecked classifies a recovered panic value.
func AsUnchecked(v any) (*UncheckedError, bool) {
	ue, ok := v.(*UncheckedError)
	return ue, ok
}
