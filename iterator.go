package lynxstream

import "fmt"

// Iterator is the pull protocol shared by all sequence sources.
// Next advances the iterator and reports whether an element is available;
// Value returns the current element and is repeatable between calls to
// Next. Value is only valid after Next has returned true.
type Iterator[T any] interface {
	Next() bool
	Value() T
}

// SourceFunc returns a fresh iterator positioned at the first element.
// Each invocation must restart iteration from the beginning.
type SourceFunc[T any] func() Iterator[T]

// GeneratorFunc produces the next element of a one-shot computation,
// returning false once the computation is exhausted.
type GeneratorFunc[T any] func() (T, bool)

// sliceIterator iterates a slice by index.
type sliceIterator[T any] struct {
	elems []T
	pos   int
}

func (it *sliceIterator[T]) Next() bool {
	if it.pos >= len(it.elems) {
		return false
	}

	it.pos++

	return true
}

func (it *sliceIterator[T]) Value() T {
	return it.elems[it.pos-1]
}

// generatorIterator adapts a GeneratorFunc to the Iterator protocol.
type generatorIterator[T any] struct {
	generate GeneratorFunc[T]
	value    T
	done     bool
}

func (it *generatorIterator[T]) Next() bool {
	if it.done {
		return false
	}

	value, ok := it.generate()
	if !ok {
		it.done = true
		return false
	}

	it.value = value

	return true
}

func (it *generatorIterator[T]) Value() T {
	return it.value
}

// channelIterator receives elements from a channel until it is closed.
type channelIterator[T any] struct {
	ch    <-chan T
	value T
}

func (it *channelIterator[T]) Next() bool {
	value, ok := <-it.ch
	if !ok {
		return false
	}

	it.value = value

	return true
}

func (it *channelIterator[T]) Value() T {
	return it.value
}

// RewindableSource makes an inherently one-shot computation re-iterable by
// wrapping the iterator-producing function instead of an iterator instance.
// Restart discards the current one-shot iterator and invokes the function
// again; Next and Value delegate to the most recently produced iterator.
// Elements are recomputed on every restart, not memoized.
//
// A RewindableSource must not be consumed by concurrent goroutines.
type RewindableSource[T any] struct {
	source  SourceFunc[T]
	current Iterator[T]
}

// NewRewindableSource returns a RewindableSource over source.
// It panics with an error wrapping ErrInvalidArgument if source is nil.
func NewRewindableSource[T any](source SourceFunc[T]) *RewindableSource[T] {
	if source == nil {
		panic(fmt.Errorf("%w: NewRewindableSource called with nil source", ErrInvalidArgument))
	}

	return &RewindableSource[T]{source: source}
}

// Restart discards the current iterator and invokes the wrapped function
// again, so that the next call to Next pulls from the beginning.
func (r *RewindableSource[T]) Restart() {
	r.current = r.source()
}

// Next implements Iterator. The wrapped function is invoked on first use.
func (r *RewindableSource[T]) Next() bool {
	if r.current == nil {
		r.Restart()
	}

	return r.current.Next()
}

// Value implements Iterator.
func (r *RewindableSource[T]) Value() T {
	if r.current == nil {
		var zero T
		return zero
	}

	return r.current.Value()
}
