package lynxstream

import (
	"errors"
	"reflect"
)

// ErrInvalidArgument indicates that a constructor or operator received an
// argument it cannot work with, such as a nil source function or a nil
// value passed to Of.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrIllegalState indicates that an operation was invoked on a state that
// forbids it, such as Get on an absent Optional.
var ErrIllegalState = errors.New("illegal state")

// isNilValue returns true if value is nil, or a nil pointer, map, slice,
// channel, function, or interface.
func isNilValue(value any) bool {
	if value == nil {
		return true
	}

	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()

	default:
		return false
	}
}
