// Package fn declares the plain, infallible function shapes produced by the
// conversions in package throwing.
//
// Every type here has a func underlying type, so a value of any of them can be
// passed straight to APIs that expect the unnamed signature (slices.SortFunc,
// strings.Map, sort.Slice, callback registries).
//
// Shapes:
// - Supplier/BooleanSupplier: no arguments
// - Function/UnaryOperator/Predicate/Consumer: one argument
// - BiFunction/BinaryOperator/BiPredicate/BiConsumer: two arguments
package fn
