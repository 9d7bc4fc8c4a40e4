package lynxstream

import "fmt"

// SupplierFunc produces a fallback value on demand.
type SupplierFunc[T any] func() T

// Optional is a container that either holds a single value or is absent.
// The zero value is absent, so absent optionals of a comparable payload
// type compare equal with ==. A present Optional never holds a nil value:
// Of rejects nil, and OfNullable collapses nil to absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns an Optional holding value.
// It panics with an error wrapping ErrInvalidArgument if value is nil, or
// a nil pointer, map, slice, channel, or function. Use OfNullable for
// values that may be nil.
func Of[T any](value T) Optional[T] {
	if isNilValue(value) {
		panic(fmt.Errorf("%w: Of called with nil value", ErrInvalidArgument))
	}

	return Optional[T]{value: value, present: true}
}

// OfNullable returns an Optional holding value, or the absent Optional if
// value is nil.
func OfNullable[T any](value T) Optional[T] {
	if isNilValue(value) {
		return Optional[T]{}
	}

	return Optional[T]{value: value, present: true}
}

// Empty returns the absent Optional for type T.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent returns true if o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IfPresent calls consume with the value if o holds one, and returns o
// unchanged. If o is absent, consume is not called.
func (o Optional[T]) IfPresent(consume ConsumerFunc[T]) Optional[T] {
	if o.present {
		consume(o.value)
	}

	return o
}

// Get returns the value.
// It returns an error wrapping ErrIllegalState if o is absent.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, fmt.Errorf("%w: Get called on absent Optional", ErrIllegalState)
	}

	return o.value, nil
}

// MustGet returns the value, and panics if o is absent.
func (o Optional[T]) MustGet() T {
	value, err := o.Get()
	if err != nil {
		panic(err)
	}

	return value
}

// Map returns an Optional holding the result of applying mapp to the value.
// The result is rewrapped with OfNullable, so a nil mapper result collapses
// to absent. If o is absent, mapp is not called.
// For mappers that change the payload type, use MapOptional.
func (o Optional[T]) Map(mapp MapperFunc[T, T]) Optional[T] {
	return MapOptional(o, mapp)
}

// MapOptional returns an Optional holding the result of applying mapp to
// the value of o. The result is rewrapped with OfNullable, so a nil mapper
// result collapses to absent. If o is absent, mapp is not called.
func MapOptional[T any, U any](o Optional[T], mapp MapperFunc[T, U]) Optional[U] {
	if !o.present {
		return Optional[U]{}
	}

	return OfNullable(mapp(o.value))
}

// FlatMapOptional returns the Optional produced by applying mapp to the
// value of o, without wrapping it again. If o is absent, mapp is not called.
func FlatMapOptional[T any, U any](o Optional[T], mapp MapperFunc[T, Optional[U]]) Optional[U] {
	if !o.present {
		return Optional[U]{}
	}

	return mapp(o.value)
}

// Filter returns o unchanged if it holds a value for which pred returns
// true, and the absent Optional otherwise. If o is absent, pred is not
// called.
func (o Optional[T]) Filter(pred PredicateFunc[T]) Optional[T] {
	if o.present && pred(o.value) {
		return o
	}

	return Optional[T]{}
}

// OrElse returns the value if present, and fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}

// OrElseGet returns the value if present. Otherwise it calls supply and
// returns its result; supply is only invoked when o is absent.
func (o Optional[T]) OrElseGet(supply SupplierFunc[T]) T {
	if o.present {
		return o.value
	}

	return supply()
}

// OrElseError returns the value if present. Otherwise it calls supply and
// returns the supplied error verbatim; if supply returns nil, it returns
// an error wrapping ErrIllegalState instead, never a nil error.
func (o Optional[T]) OrElseError(supply func() error) (T, error) {
	if o.present {
		return o.value, nil
	}

	err := supply()
	if err == nil {
		err = fmt.Errorf("%w: OrElseError supplier returned no error", ErrIllegalState)
	}

	var zero T
	return zero, err
}
