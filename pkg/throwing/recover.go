package throwing

// Logger is the minimal logging interface RecoverAndLog needs.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Errorf(format string, args ...any)
}

// Recover stops a panic raised by an Unchecked conversion and stores the
// *UncheckedError in *errp. Any other panic is re-raised with the same value,
// though the crash trace then starts here rather than at the original panic
// site. It must be deferred directly:
//
//	func run() (err error) {
//	    defer throwing.Recover(&err)
//	    // ...
//	}
func Recover(errp *error) {
	if r := recover(); r != nil {
		ue, ok := AsUnchecked(r)
		if !ok {
			panic(r)
		}
		if errp != nil {
			*errp = ue
		}
	}
}

// RecoverAndLog is like Recover but also logs the escalated failure under name.
func RecoverAndLog(logger Logger, name string, errp *error) {
	if r := recover(); r != nil {
		ue, ok := AsUnchecked(r)
		if !ok {
			panic(r)
		}
		if logger != nil {
			logger.Errorf("%s: unchecked failure: %v", name, ue.Cause())
		}
		if errp != nil {
			*errp = ue
		}
	}
}

// Checked calls f and returns an escalated failure as an error instead of
// panicking.
func Checked[R any](f func() R) (r R, err error) {
	defer Recover(&err)
	return f(), nil
}

// CheckedRun is Checked for callables without a result.
func CheckedRun(f func()) (err error) {
	defer Recover(&err)
	f()
	return nil
}
