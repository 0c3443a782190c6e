package throwing

import "github.com/ib-77/throwing/pkg/throwing/fn"

// Predicate tests a T or reports a failure E.
type Predicate[T any, E error] func(T) (bool, E)

// BiPredicate tests a (T1, T2) pair or reports a failure E.
type BiPredicate[T1, T2 any, E error] func(T1, T2) (bool, E)

func (f Predicate[T, E]) Unchecked() fn.Predicate[T] {
	return func(t T) bool {
		return must(f(t))
	}
}

func (f BiPredicate[T1, T2, E]) Unchecked() fn.BiPredicate[T1, T2] {
	return func(t1 T1, t2 T2) bool {
		return must(f(t1, t2))
	}
}

func UncheckedPredicate[T any, E error](f func(T) (bool, E)) fn.Predicate[T] {
	return Predicate[T, E](f).Unchecked()
}

func UncheckedBiPredicate[T1, T2 any, E error](f func(T1, T2) (bool, E)) fn.BiPredicate[T1, T2] {
	return BiPredicate[T1, T2, E](f).Unchecked()
}
