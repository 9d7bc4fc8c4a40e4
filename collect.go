package lynxstream

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SelectorFunc projects an element to a numeric sort or aggregation key.
type SelectorFunc[T any] func(elem T) float64

// A Group holds the elements of a sequence that share a key, in the order
// they were produced by the upstream sequence.
type Group[K comparable, T any] struct {
	Key     K
	Members []T
}

// ToSlice drains s into a new slice, preserving iteration order.
func (s *Sequence[T]) ToSlice() []T {
	elems := []T{}

	for it := s.Iterator(); it.Next(); {
		elems = append(elems, it.Value())
	}

	return elems
}

// Sort returns a sequence of the elements of s in ascending natural order.
// It drains s immediately.
func Sort[T constraints.Ordered](s *Sequence[T]) *Sequence[T] {
	elems := s.ToSlice()
	slices.Sort(elems)

	return s.derive(sliceSource(elems))
}

// SortDescending returns a sequence of the elements of s in descending
// natural order. It drains s immediately.
func SortDescending[T constraints.Ordered](s *Sequence[T]) *Sequence[T] {
	elems := s.ToSlice()
	slices.SortFunc(elems, func(a T, b T) bool {
		return b < a
	})

	return s.derive(sliceSource(elems))
}

// SortBy returns a sequence of the elements of s ordered by key(elem),
// ascending. The sort is stable: elements with equal keys keep their
// upstream relative order. It drains s immediately.
func (s *Sequence[T]) SortBy(key SelectorFunc[T]) *Sequence[T] {
	elems := s.ToSlice()
	slices.SortStableFunc(elems, func(a T, b T) bool {
		return key(a) < key(b)
	})

	return s.derive(sliceSource(elems))
}

// SortByDescending returns a sequence of the elements of s ordered by
// key(elem), descending. The sort is stable: elements with equal keys keep
// their upstream relative order. It drains s immediately.
func (s *Sequence[T]) SortByDescending(key SelectorFunc[T]) *Sequence[T] {
	elems := s.ToSlice()
	slices.SortStableFunc(elems, func(a T, b T) bool {
		return key(b) < key(a)
	})

	return s.derive(sliceSource(elems))
}

// Reverse returns a sequence of the elements of s in reverse order.
// It drains s immediately.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	elems := s.ToSlice()

	for i, j := 0, len(elems)-1; i < j; i, j = i+1, j-1 {
		elems[i], elems[j] = elems[j], elems[i]
	}

	return s.derive(sliceSource(elems))
}

// Distinct returns a sequence of the elements of s with duplicates removed,
// keeping the first occurrence of each value in upstream order.
// It drains s immediately.
func Distinct[T comparable](s *Sequence[T]) *Sequence[T] {
	return DistinctBy(s, func(elem T) T {
		return elem
	})
}

// DistinctBy returns a sequence of the elements of s, dropping every
// element whose key was already seen, in upstream order.
// It drains s immediately.
func DistinctBy[T any, K comparable](s *Sequence[T], key MapperFunc[T, K]) *Sequence[T] {
	elems := []T{}
	seen := map[K]struct{}{}

	for it := s.Iterator(); it.Next(); {
		k := key(it.Value())

		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		elems = append(elems, it.Value())
	}

	return s.derive(sliceSource(elems))
}

// GroupBy collects the elements of s into groups keyed by key(elem).
// Groups appear in first-seen key order, and each group's members keep
// their upstream order. Grouping drains s immediately; the returned
// sequence of groups is itself lazily iterable.
func GroupBy[T any, K comparable](s *Sequence[T], key MapperFunc[T, K]) *Sequence[Group[K, T]] {
	groups := []Group[K, T]{}
	index := map[K]int{}

	for it := s.Iterator(); it.Next(); {
		k := key(it.Value())

		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}

		groups[i].Members = append(groups[i].Members, it.Value())
	}

	return OverSlice(groups)
}

// Join concatenates the string representations of the elements of s,
// separated by sep. Elements are formatted with fmt.Sprint.
func (s *Sequence[T]) Join(sep string) string {
	b := strings.Builder{}

	first := true

	for it := s.Iterator(); it.Next(); {
		if !first {
			b.WriteString(sep)
		}

		first = false

		b.WriteString(fmt.Sprint(it.Value()))
	}

	return b.String()
}
