package lynxstream

// MapperFunc maps element elem to type U.
type MapperFunc[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// Map returns a sequence that applies mapp to each element of s, in order.
// The computation is deferred until the new sequence is iterated.
// For mappers that change the element type, use MapTo.
func (s *Sequence[T]) Map(mapp MapperFunc[T, T]) *Sequence[T] {
	return s.derive(mapSource(s, mapp))
}

// MapTo returns a sequence that applies mapp to each element of s, in
// order, mapping it to type U.
// The computation is deferred until the new sequence is iterated.
func MapTo[T any, U any](s *Sequence[T], mapp MapperFunc[T, U]) *Sequence[U] {
	return newSequence(mapSource(s, mapp))
}

func mapSource[T any, U any](s *Sequence[T], mapp MapperFunc[T, U]) SourceFunc[U] {
	return func() Iterator[U] {
		it := s.Iterator()

		return &generatorIterator[U]{generate: func() (U, bool) {
			if !it.Next() {
				var zero U
				return zero, false
			}

			return mapp(it.Value()), true
		}}
	}
}

// FlatMap returns a sequence that applies mapp to each element of s and
// produces the elements of each resulting sequence, flattened one level,
// preserving relative order.
// For mappers that change the element type, use FlatMapTo.
func (s *Sequence[T]) FlatMap(mapp MapperFunc[T, *Sequence[T]]) *Sequence[T] {
	return s.derive(flatMapSource(s, mapp))
}

// FlatMapTo returns a sequence that applies mapp to each element of s and
// produces the elements of each resulting sequence, flattened one level,
// preserving relative order.
func FlatMapTo[T any, U any](s *Sequence[T], mapp MapperFunc[T, *Sequence[U]]) *Sequence[U] {
	return newSequence(flatMapSource(s, mapp))
}

func flatMapSource[T any, U any](s *Sequence[T], mapp MapperFunc[T, *Sequence[U]]) SourceFunc[U] {
	return func() Iterator[U] {
		outer := s.Iterator()

		var inner Iterator[U]

		return &generatorIterator[U]{generate: func() (U, bool) {
			for {
				if inner != nil && inner.Next() {
					return inner.Value(), true
				}

				if !outer.Next() {
					var zero U
					return zero, false
				}

				inner = mapp(outer.Value()).Iterator()
			}
		}}
	}
}

// Filter returns a sequence of the elements of s for which pred returns
// true, preserving order.
func (s *Sequence[T]) Filter(pred PredicateFunc[T]) *Sequence[T] {
	return s.derive(func() Iterator[T] {
		it := s.Iterator()

		return &generatorIterator[T]{generate: func() (T, bool) {
			for it.Next() {
				if pred(it.Value()) {
					return it.Value(), true
				}
			}

			var zero T
			return zero, false
		}}
	})
}

// Take returns a sequence of the first n elements of s, or fewer if s is
// shorter. If n <= 0, the sequence is empty. The upstream sequence is not
// pulled beyond the nth element.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	return s.derive(func() Iterator[T] {
		it := s.Iterator()
		remaining := n

		return &generatorIterator[T]{generate: func() (T, bool) {
			if remaining <= 0 || !it.Next() {
				var zero T
				return zero, false
			}

			remaining--

			return it.Value(), true
		}}
	})
}

// TakeWhile returns a sequence of the elements of s up to, and excluding,
// the first element for which pred returns false. The upstream sequence is
// not pulled beyond that element.
func (s *Sequence[T]) TakeWhile(pred PredicateFunc[T]) *Sequence[T] {
	return s.derive(func() Iterator[T] {
		it := s.Iterator()
		done := false

		return &generatorIterator[T]{generate: func() (T, bool) {
			if done || !it.Next() || !pred(it.Value()) {
				done = true

				var zero T
				return zero, false
			}

			return it.Value(), true
		}}
	})
}

// Skip returns a sequence of the elements of s without the first n.
// If n is greater than or equal to the length of s, the sequence is empty.
func (s *Sequence[T]) Skip(n int) *Sequence[T] {
	return s.derive(func() Iterator[T] {
		it := s.Iterator()
		remaining := n

		return &generatorIterator[T]{generate: func() (T, bool) {
			for remaining > 0 {
				remaining--

				if !it.Next() {
					var zero T
					return zero, false
				}
			}

			if !it.Next() {
				var zero T
				return zero, false
			}

			return it.Value(), true
		}}
	})
}

// SkipWhile returns a sequence that drops the prefix of s for which pred
// returns true, and then produces the remainder, including the first
// element for which pred returned false.
func (s *Sequence[T]) SkipWhile(pred PredicateFunc[T]) *Sequence[T] {
	return s.derive(func() Iterator[T] {
		it := s.Iterator()
		skipping := true

		return &generatorIterator[T]{generate: func() (T, bool) {
			for it.Next() {
				if skipping && pred(it.Value()) {
					continue
				}

				skipping = false

				return it.Value(), true
			}

			var zero T
			return zero, false
		}}
	})
}

// Concat returns a sequence of the elements of s followed by the elements
// of each of the given sequences, in argument order. With no arguments, it
// returns s unchanged.
func (s *Sequence[T]) Concat(others ...*Sequence[T]) *Sequence[T] {
	if len(others) == 0 {
		return s
	}

	all := append([]*Sequence[T]{s}, others...)

	return s.derive(func() Iterator[T] {
		pos := 0

		var it Iterator[T]

		return &generatorIterator[T]{generate: func() (T, bool) {
			for {
				if it == nil {
					if pos >= len(all) {
						var zero T
						return zero, false
					}

					it = all[pos].Iterator()
					pos++
				}

				if it.Next() {
					return it.Value(), true
				}

				it = nil
			}
		}}
	})
}
