package throwing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errCustom = errors.New("custom exception message")

// escalation runs call and returns the *UncheckedError it panicked with.
func escalation(t *testing.T, call func()) (ue *UncheckedError) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected call to panic")

		var ok bool
		ue, ok = AsUnchecked(r)
		require.Truef(t, ok, "panic value %T is not *UncheckedError", r)
	}()

	call()
	return nil
}

// codeError is a value-kinded error: its zero value means success.
type codeError struct {
	code int
}

func (e codeError) Error() string {
	return "code error"
}

type emptyError struct{}

func (emptyError) Error() string {
	return "empty error"
}

type pathError struct {
	path string
}

func (e *pathError) Error() string {
	return "bad path " + e.path
}
