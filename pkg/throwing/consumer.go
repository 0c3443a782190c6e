package throwing

import "github.com/ib-77/throwing/pkg/throwing/fn"

// Consumer accepts a T for its side effects and may report a failure E.
type Consumer[T any, E error] func(T) E

// BiConsumer accepts a (T1, T2) pair for its side effects and may report a
// failure E.
type BiConsumer[T1, T2 any, E error] func(T1, T2) E

// Unchecked returns a consumer that panics with *UncheckedError on failure.
// Side effects performed before the failure are not undone.
func (f Consumer[T, E]) Unchecked() fn.Consumer[T] {
	return func(t T) {
		mustDo(f(t))
	}
}

func (f BiConsumer[T1, T2, E]) Unchecked() fn.BiConsumer[T1, T2] {
	return func(t1 T1, t2 T2) {
		mustDo(f(t1, t2))
	}
}

func UncheckedConsumer[T any, E error](f func(T) E) fn.Consumer[T] {
	return Consumer[T, E](f).Unchecked()
}

func UncheckedBiConsumer[T1, T2 any, E error](f func(T1, T2) E) fn.BiConsumer[T1, T2] {
	return BiConsumer[T1, T2, E](f).Unchecked()
}
