package lynxstream

import "fmt"

// RebuildFunc reconstructs a specialized sequence over a new source.
// Returning nil declines the rebuild, degrading that link of the chain to
// a base Sequence over the same source.
type RebuildFunc[T any] func(source SourceFunc[T]) *Sequence[T]

// Sequence is a lazily composed, replayable ordered view over an element
// source. Operators never mutate the receiver; each one returns a new
// Sequence wrapping a deferred computation over the upstream sequence.
//
// A Sequence may be handed around freely, but a single iteration must not
// be consumed by concurrent goroutines.
type Sequence[T any] struct {
	source  SourceFunc[T]
	rebuild RebuildFunc[T]
	count   int
	counted bool
}

func newSequence[T any](source SourceFunc[T]) *Sequence[T] {
	return &Sequence[T]{source: source}
}

// derive builds the next sequence in a chain, routing the new source
// through the rebuild capability when one is installed. The capability is
// carried over so that it survives arbitrarily long operator chains.
func (s *Sequence[T]) derive(source SourceFunc[T]) *Sequence[T] {
	var next *Sequence[T]

	if s.rebuild != nil {
		next = s.rebuild(source)
	}

	if next == nil {
		next = newSequence(source)
	}

	next.rebuild = s.rebuild

	return next
}

// WithRebuild returns a copy of s carrying rebuild as its reconstruction
// capability: every subsequent operator that keeps the element type routes
// its deferred source through rebuild instead of constructing a base
// Sequence. A nil capability, or a capability returning nil, falls back to
// the base construction path, so a chain never fails to produce a sequence.
// Operators that change the element type always produce base sequences.
func (s *Sequence[T]) WithRebuild(rebuild RebuildFunc[T]) *Sequence[T] {
	next := newSequence(s.source)
	next.rebuild = rebuild

	return next
}

// Iterator returns a fresh iterator over s, positioned before the first
// element. Every call restarts iteration from the beginning.
func (s *Sequence[T]) Iterator() Iterator[T] {
	return s.source()
}

// Over returns a Sequence of the given elements, in order.
func Over[T any](elems ...T) *Sequence[T] {
	return OverSlice(elems)
}

// OverSlice returns a Sequence over slice. The slice is not copied;
// mutating it changes the elements the sequence observes.
func OverSlice[T any](slice []T) *Sequence[T] {
	return newSequence(sliceSource(slice))
}

func sliceSource[T any](slice []T) SourceFunc[T] {
	return func() Iterator[T] {
		return &sliceIterator[T]{elems: slice}
	}
}

// OverSource returns a Sequence over the iterators produced by source.
// The sequence supports repeated iteration as long as source returns a
// fresh iterator on every invocation.
// It panics with an error wrapping ErrInvalidArgument if source is nil.
func OverSource[T any](source SourceFunc[T]) *Sequence[T] {
	if source == nil {
		panic(fmt.Errorf("%w: OverSource called with nil source", ErrInvalidArgument))
	}

	return newSequence(source)
}

// OverFunc returns a Sequence over the generators produced by generate.
// Each full iteration invokes generate again through a RewindableSource,
// so the same sequence can be iterated any number of times as long as
// generate restarts its computation from the beginning.
// It panics with an error wrapping ErrInvalidArgument if generate is nil.
func OverFunc[T any](generate func() GeneratorFunc[T]) *Sequence[T] {
	if generate == nil {
		panic(fmt.Errorf("%w: OverFunc called with nil generator function", ErrInvalidArgument))
	}

	return newSequence(func() Iterator[T] {
		return NewRewindableSource(func() Iterator[T] {
			return &generatorIterator[T]{generate: generate()}
		})
	})
}

// OverIterator returns a Sequence over an existing one-shot iterator.
// The sequence supports a single full iteration; once it is exhausted,
// further iterations observe no elements.
// It panics with an error wrapping ErrInvalidArgument if it is nil.
func OverIterator[T any](it Iterator[T]) *Sequence[T] {
	if it == nil {
		panic(fmt.Errorf("%w: OverIterator called with nil iterator", ErrInvalidArgument))
	}

	return newSequence(func() Iterator[T] {
		return it
	})
}

// OverChannel returns a Sequence that receives its elements from ch.
// Like OverIterator, the sequence is one-shot: elements are received as
// they are pulled, and a later iteration observes only what the channel
// still delivers.
func OverChannel[T any](ch <-chan T) *Sequence[T] {
	it := &channelIterator[T]{ch: ch}

	return newSequence(func() Iterator[T] {
		return it
	})
}

// Range returns a replayable Sequence of the integers from low to high,
// inclusive on both ends: ascending when low <= high, and descending
// otherwise.
func Range(low, high int) *Sequence[int] {
	return OverFunc(func() GeneratorFunc[int] {
		step := 1
		if low > high {
			step = -1
		}

		cursor := low

		return func() (int, bool) {
			if (step > 0 && cursor > high) || (step < 0 && cursor < high) {
				return 0, false
			}

			value := cursor
			cursor += step

			return value, true
		}
	})
}
