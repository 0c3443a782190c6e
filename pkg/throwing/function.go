package throwing

import "github.com/ib-77/throwing/pkg/throwing/fn"

// Function maps a T to an R or reports a failure E.
type Function[T, R any, E error] func(T) (R, E)

// UnaryOperator is a Function whose argument and result types coincide. It
// shares Function's conversions.
type UnaryOperator[T any, E error] = Function[T, T, E]

// Unchecked returns a function that panics with *UncheckedError on failure.
func (f Function[T, R, E]) Unchecked() fn.Function[T, R] {
	return func(t T) R {
		return must(f(t))
	}
}

// Lift returns a function yielding an empty Optional on failure or nil result.
func (f Function[T, R, E]) Lift() fn.Function[T, Optional[R]] {
	return func(t T) Optional[R] {
		return lift(f(t))
	}
}

func UncheckedFunction[T, R any, E error](f func(T) (R, E)) fn.Function[T, R] {
	return Function[T, R, E](f).Unchecked()
}

func LiftedFunction[T, R any, E error](f func(T) (R, E)) fn.Function[T, Optional[R]] {
	return Function[T, R, E](f).Lift()
}

func UncheckedUnaryOperator[T any, E error](f func(T) (T, E)) fn.UnaryOperator[T] {
	return UnaryOperator[T, E](f).Unchecked()
}

func LiftedUnaryOperator[T any, E error](f func(T) (T, E)) fn.Function[T, Optional[T]] {
	return UnaryOperator[T, E](f).Lift()
}
