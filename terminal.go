package lynxstream

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ConsumerFunc consumes element elem.
type ConsumerFunc[T any] func(elem T)

// AccumulatorFunc folds element elem into the accumulator acc, returning
// acc, or a new accumulator.
type AccumulatorFunc[A any, T any] func(acc A, elem T) A

// Number constrains the element types supported by the numeric folds.
type Number interface {
	constraints.Integer | constraints.Float
}

// Count returns the number of elements of s, counting only elements that
// match all given predicates. The predicate-less count is computed once
// and cached on s; counts with predicates, and counts of sequences derived
// from s, are computed from scratch.
func (s *Sequence[T]) Count(preds ...PredicateFunc[T]) int {
	if len(preds) == 0 && s.counted {
		return s.count
	}

	count := 0

	for it := s.Iterator(); it.Next(); {
		if matchesAll(it.Value(), preds) {
			count++
		}
	}

	if len(preds) == 0 {
		s.count = count
		s.counted = true
	}

	return count
}

func matchesAll[T any](elem T, preds []PredicateFunc[T]) bool {
	for _, pred := range preds {
		if !pred(elem) {
			return false
		}
	}

	return true
}

// Sum returns the sum of the elements of s, or an absent Optional if s is
// empty.
func Sum[T Number](s *Sequence[T]) Optional[T] {
	it := s.Iterator()

	if !it.Next() {
		return Empty[T]()
	}

	total := it.Value()

	for it.Next() {
		total += it.Value()
	}

	return OfNullable(total)
}

// SumBy returns the sum of selector(elem) over the elements of s, or an
// absent Optional if s is empty.
func (s *Sequence[T]) SumBy(selector SelectorFunc[T]) Optional[float64] {
	it := s.Iterator()

	if !it.Next() {
		return Empty[float64]()
	}

	total := selector(it.Value())

	for it.Next() {
		total += selector(it.Value())
	}

	return OfNullable(total)
}

// Min returns the smallest element of s, or an absent Optional if s is
// empty.
func Min[T constraints.Ordered](s *Sequence[T]) Optional[T] {
	it := s.Iterator()

	if !it.Next() {
		return Empty[T]()
	}

	best := it.Value()

	for it.Next() {
		if it.Value() < best {
			best = it.Value()
		}
	}

	return OfNullable(best)
}

// Max returns the largest element of s, or an absent Optional if s is
// empty.
func Max[T constraints.Ordered](s *Sequence[T]) Optional[T] {
	it := s.Iterator()

	if !it.Next() {
		return Empty[T]()
	}

	best := it.Value()

	for it.Next() {
		if best < it.Value() {
			best = it.Value()
		}
	}

	return OfNullable(best)
}

// MinBy returns the smallest value of selector(elem) over the elements of
// s, or an absent Optional if s is empty.
func (s *Sequence[T]) MinBy(selector SelectorFunc[T]) Optional[float64] {
	it := s.Iterator()

	if !it.Next() {
		return Empty[float64]()
	}

	best := selector(it.Value())

	for it.Next() {
		if value := selector(it.Value()); value < best {
			best = value
		}
	}

	return OfNullable(best)
}

// MaxBy returns the largest value of selector(elem) over the elements of
// s, or an absent Optional if s is empty.
func (s *Sequence[T]) MaxBy(selector SelectorFunc[T]) Optional[float64] {
	it := s.Iterator()

	if !it.Next() {
		return Empty[float64]()
	}

	best := selector(it.Value())

	for it.Next() {
		if value := selector(it.Value()); best < value {
			best = value
		}
	}

	return OfNullable(best)
}

// Average returns the arithmetic mean of the elements of s, or an absent
// Optional if s is empty.
func Average[T Number](s *Sequence[T]) Optional[float64] {
	it := s.Iterator()

	if !it.Next() {
		return Empty[float64]()
	}

	total := float64(it.Value())
	count := 1

	for it.Next() {
		total += float64(it.Value())
		count++
	}

	return OfNullable(total / float64(count))
}

// AverageBy returns the arithmetic mean of selector(elem) over the
// elements of s, or an absent Optional if s is empty.
func (s *Sequence[T]) AverageBy(selector SelectorFunc[T]) Optional[float64] {
	it := s.Iterator()

	if !it.Next() {
		return Empty[float64]()
	}

	total := selector(it.Value())
	count := 1

	for it.Next() {
		total += selector(it.Value())
		count++
	}

	return OfNullable(total / float64(count))
}

// Median returns the median of the elements of s, or an absent Optional if
// s is empty. An odd element count yields the middle element of the sorted
// elements, an even count the mean of the two middle elements.
// It drains s immediately.
func Median[T Number](s *Sequence[T]) Optional[float64] {
	values := []float64{}

	for it := s.Iterator(); it.Next(); {
		values = append(values, float64(it.Value()))
	}

	return medianOf(values)
}

// MedianBy returns the median of selector(elem) over the elements of s, or
// an absent Optional if s is empty. The selector is applied exactly once
// per element; the selected values are sorted and the middle value, or the
// mean of the two middle values, is returned directly.
// It drains s immediately.
func (s *Sequence[T]) MedianBy(selector SelectorFunc[T]) Optional[float64] {
	values := []float64{}

	for it := s.Iterator(); it.Next(); {
		values = append(values, selector(it.Value()))
	}

	return medianOf(values)
}

func medianOf(values []float64) Optional[float64] {
	if len(values) == 0 {
		return Empty[float64]()
	}

	slices.Sort(values)

	middle := len(values) / 2

	if len(values)%2 == 1 {
		return OfNullable(values[middle])
	}

	return OfNullable((values[middle-1] + values[middle]) / 2)
}

// Reduce folds the elements of s left to right, seeding the accumulator
// with the first element. It returns an absent Optional if s is empty.
func (s *Sequence[T]) Reduce(accumulate AccumulatorFunc[T, T]) Optional[T] {
	it := s.Iterator()

	if !it.Next() {
		return Empty[T]()
	}

	acc := it.Value()

	for it.Next() {
		acc = accumulate(acc, it.Value())
	}

	return OfNullable(acc)
}

// ReduceWith folds the elements of s left to right into seed, returning
// the final accumulator.
func ReduceWith[T any, A any](s *Sequence[T], seed A, accumulate AccumulatorFunc[A, T]) A {
	acc := seed

	for it := s.Iterator(); it.Next(); {
		acc = accumulate(acc, it.Value())
	}

	return acc
}

// First returns the first element of s matching all given predicates, or
// an absent Optional if there is none. It stops pulling elements as soon
// as a match is found.
func (s *Sequence[T]) First(preds ...PredicateFunc[T]) Optional[T] {
	for it := s.Iterator(); it.Next(); {
		if matchesAll(it.Value(), preds) {
			return OfNullable(it.Value())
		}
	}

	return Empty[T]()
}

// Last returns the last element of s matching all given predicates, or an
// absent Optional if there is none. It always scans the full sequence.
func (s *Sequence[T]) Last(preds ...PredicateFunc[T]) Optional[T] {
	result := Empty[T]()

	for it := s.Iterator(); it.Next(); {
		if matchesAll(it.Value(), preds) {
			result = OfNullable(it.Value())
		}
	}

	return result
}

// AnyMatch returns true as soon as pred returns true for an element of s,
// that is, an element matches. No further elements are pulled after a
// match.
func (s *Sequence[T]) AnyMatch(pred PredicateFunc[T]) bool {
	for it := s.Iterator(); it.Next(); {
		if pred(it.Value()) {
			return true
		}
	}

	return false
}

// AllMatch returns true if pred returns true for all elements of s, that
// is, all elements match. No further elements are pulled after the first
// mismatch.
func (s *Sequence[T]) AllMatch(pred PredicateFunc[T]) bool {
	for it := s.Iterator(); it.Next(); {
		if !pred(it.Value()) {
			return false
		}
	}

	return true
}

// Contains reports whether s contains elem, compared with ==. This is the
// single equality definition used for element lookup; use ContainsFunc for
// any other comparison. It stops pulling elements as soon as a match is
// found.
func Contains[T comparable](s *Sequence[T], elem T) bool {
	for it := s.Iterator(); it.Next(); {
		if it.Value() == elem {
			return true
		}
	}

	return false
}

// ContainsFunc reports whether s contains an element for which
// eq(elem, candidate) returns true. It stops pulling elements as soon as a
// match is found.
func (s *Sequence[T]) ContainsFunc(elem T, eq func(a T, b T) bool) bool {
	for it := s.Iterator(); it.Next(); {
		if eq(elem, it.Value()) {
			return true
		}
	}

	return false
}

// Each calls consume for each element of s, in order, and returns s
// unchanged.
func (s *Sequence[T]) Each(consume ConsumerFunc[T]) *Sequence[T] {
	for it := s.Iterator(); it.Next(); {
		consume(it.Value())
	}

	return s
}
