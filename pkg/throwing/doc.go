// Package throwing adapts fallible callables, functions whose last result is
// an error, into the plain function shapes of package fn.
//
// Two failure policies are available on every value-producing shape:
// - Unchecked: a reported failure becomes a panic carrying *UncheckedError,
//   whose message is the failure's message and which wraps the failure
// - Lift/Lifted: a reported failure becomes an empty Optional and is dropped
//
// Each shape S has a static form (UncheckedS, LiftedS) and an instance form
// (S(f).Unchecked, S(f).Lift).
//
// Shapes:
// - Supplier, BooleanSupplier: no arguments
// - Function, UnaryOperator, Predicate, Consumer: one argument
// - BiFunction, BinaryOperator, BiPredicate, BiConsumer: two arguments
//
// Boolean-valued and no-result shapes only offer Unchecked.
//
// Recover, RecoverAndLog, Checked and CheckedRun turn an escalated failure
// back into an error at a boundary, leaving every other panic alone.
package throwing
