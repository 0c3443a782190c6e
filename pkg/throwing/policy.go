package throwing

// must escalates a reported failure, otherwise it passes r through.
func must[R any, E error](r R, err E) R {
	if failed(err) {
		panic(&UncheckedError{cause: err})
	}
	return r
}

// mustDo is must for callables without a result.
func mustDo[E error](err E) {
	if failed(err) {
		panic(&UncheckedError{cause: err})
	}
}

// lift drops a reported failure. A nil r is indistinguishable from a failure.
func lift[R any, E error](r R, err E) Optional[R] {
	if failed(err) {
		return Empty[R]()
	}
	return OfNullable(r)
}
