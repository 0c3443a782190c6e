package throwing

import "fmt"

// Optional holds either a present value or no value at all.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns a present Optional holding v. It does not check v for nil.
func Of[T any](v T) Optional[T] {
	return Optional[T]{
		value:   v,
		present: true,
	}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// OfNullable returns an empty Optional when v is nil, otherwise Of(v).
func OfNullable[T any](v T) Optional[T] {
	if IsNil(v) {
		return Empty[T]()
	}
	return Of(v)
}

// Map transforms a present value. The mapped value goes through OfNullable.
func Map[In, Out any](o Optional[In], mapper func(In) Out) Optional[Out] {
	if !o.present {
		return Empty[Out]()
	}
	return OfNullable(mapper(o.value))
}

// Get returns the held value, or the zero value of T when empty.
func (o Optional[T]) Get() T {
	return o.value
}

func (o Optional[T]) Unpack() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

func (o Optional[T]) OrElseGet(supply func() T) T {
	if o.present {
		return o.value
	}
	return supply()
}

func (o Optional[T]) IfPresent(consume func(T)) {
	if o.present {
		consume(o.value)
	}
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}
