package throwing

import "github.com/ib-77/throwing/pkg/throwing/fn"

// Supplier takes no arguments and produces an R or reports a failure E.
type Supplier[R any, E error] func() (R, E)

// BooleanSupplier takes no arguments and produces a bool or reports a failure E.
type BooleanSupplier[E error] func() (bool, E)

// Unchecked returns a supplier that panics with *UncheckedError on failure.
func (f Supplier[R, E]) Unchecked() fn.Supplier[R] {
	return func() R {
		return must(f())
	}
}

// Lift returns a supplier yielding an empty Optional on failure or nil result.
func (f Supplier[R, E]) Lift() fn.Supplier[Optional[R]] {
	return func() Optional[R] {
		return lift(f())
	}
}

func (f BooleanSupplier[E]) Unchecked() fn.BooleanSupplier {
	return func() bool {
		return must(f())
	}
}

func UncheckedSupplier[R any, E error](f func() (R, E)) fn.Supplier[R] {
	return Supplier[R, E](f).Unchecked()
}

func LiftedSupplier[R any, E error](f func() (R, E)) fn.Supplier[Optional[R]] {
	return Supplier[R, E](f).Lift()
}

func UncheckedBooleanSupplier[E error](f func() (bool, E)) fn.BooleanSupplier {
	return BooleanSupplier[E](f).Unchecked()
}
