package throwing

import "github.com/ib-77/throwing/pkg/throwing/fn"

// BiFunction maps a (T1, T2) pair to an R or reports a failure E.
type BiFunction[T1, T2, R any, E error] func(T1, T2) (R, E)

// BinaryOperator is a BiFunction over a single type. It shares BiFunction's
// conversions.
type BinaryOperator[T any, E error] = BiFunction[T, T, T, E]

func (f BiFunction[T1, T2, R, E]) Unchecked() fn.BiFunction[T1, T2, R] {
	return func(t1 T1, t2 T2) R {
		return must(f(t1, t2))
	}
}

func (f BiFunction[T1, T2, R, E]) Lift() fn.BiFunction[T1, T2, Optional[R]] {
	return func(t1 T1, t2 T2) Optional[R] {
		return lift(f(t1, t2))
	}
}

func UncheckedBiFunction[T1, T2, R any, E error](f func(T1, T2) (R, E)) fn.BiFunction[T1, T2, R] {
	return BiFunction[T1, T2, R, E](f).Unchecked()
}

func LiftedBiFunction[T1, T2, R any, E error](f func(T1, T2) (R, E)) fn.BiFunction[T1, T2, Optional[R]] {
	return BiFunction[T1, T2, R, E](f).Lift()
}

func UncheckedBinaryOperator[T any, E error](f func(T, T) (T, E)) fn.BinaryOperator[T] {
	return BinaryOperator[T, E](f).Unchecked()
}

func LiftedBinaryOperator[T any, E error](f func(T, T) (T, E)) fn.BiFunction[T, T, Optional[T]] {
	return BinaryOperator[T, E](f).Lift()
}
