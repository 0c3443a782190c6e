package throwing

import "reflect"

// IsNil reports whether i is nil, including a typed nil held in an interface.
// Zero values of non-nilable kinds (0, "", empty structs) are not nil.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// failed reports whether err signals a failure. Only when E itself is a
// value-kinded error type does its zero value mean success; any non-nil value
// held in an interface E is a failure, zero-valued or not.
func failed[E error](err E) bool {
	if IsNil(err) {
		return false
	}
	if reflect.TypeFor[E]().Kind() == reflect.Interface {
		return true
	}
	return !reflect.ValueOf(err).IsZero()
}
