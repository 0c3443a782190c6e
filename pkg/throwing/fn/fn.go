package fn

type Supplier[R any] func() R

type BooleanSupplier func() bool

type Function[T, R any] func(T) R

// UnaryOperator is a Function whose argument and result types coincide.
type UnaryOperator[T any] = Function[T, T]

type Predicate[T any] func(T) bool

type Consumer[T any] func(T)

type BiFunction[T1, T2, R any] func(T1, T2) R

// BinaryOperator is a BiFunction whose arguments and result share one type.
type BinaryOperator[T any] = BiFunction[T, T, T]

type BiPredicate[T1, T2 any] func(T1, T2) bool

type BiConsumer[T1, T2 any] func(T1, T2)
