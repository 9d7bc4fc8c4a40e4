package lynxstream

import (
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestOver(t *testing.T) {
	is := is.New(t)

	is.Equal(Over(1, 2, 3).ToSlice(), []int{1, 2, 3})
	is.Equal(Over[int]().ToSlice(), []int{})
}

func TestOverSlice(t *testing.T) {
	is := is.New(t)

	seq := OverSlice([]string{"a", "b"})

	is.Equal(seq.ToSlice(), []string{"a", "b"})
	is.Equal(seq.ToSlice(), []string{"a", "b"})
}

func TestOverFunc(t *testing.T) {
	is := is.New(t)

	starts := 0

	seq := OverFunc(func() GeneratorFunc[int] {
		starts++

		cursor := 0

		return func() (int, bool) {
			if cursor >= 3 {
				return 0, false
			}

			cursor++

			return cursor, true
		}
	})

	is.Equal(starts, 0) // no iteration requested yet

	// a generator-backed sequence replays from the beginning on every iteration
	is.Equal(seq.ToSlice(), []int{1, 2, 3})
	is.Equal(seq.ToSlice(), []int{1, 2, 3})
	is.Equal(starts, 2)
}

func TestOverFunc_NilGenerator(t *testing.T) {
	is := is.New(t)

	defer func() {
		err, ok := recover().(error)

		is.True(ok)
		is.True(errors.Is(err, ErrInvalidArgument))
	}()

	OverFunc[int](nil)

	is.Fail() // OverFunc must panic on nil
}

func TestOverSource(t *testing.T) {
	is := is.New(t)

	seq := OverSource(func() Iterator[int] {
		return &sliceIterator[int]{elems: []int{4, 5}}
	})

	is.Equal(seq.ToSlice(), []int{4, 5})
	is.Equal(seq.ToSlice(), []int{4, 5})
}

func TestOverSource_NilSource(t *testing.T) {
	is := is.New(t)

	defer func() {
		err, ok := recover().(error)

		is.True(ok)
		is.True(errors.Is(err, ErrInvalidArgument))
	}()

	OverSource[int](nil)

	is.Fail() // OverSource must panic on nil
}

func TestOverIterator(t *testing.T) {
	is := is.New(t)

	seq := OverIterator[int](&sliceIterator[int]{elems: []int{1, 2, 3}})

	is.Equal(seq.ToSlice(), []int{1, 2, 3})

	// the iterator is one-shot, a second iteration observes nothing
	is.Equal(seq.ToSlice(), []int{})
}

func TestOverIterator_NilIterator(t *testing.T) {
	is := is.New(t)

	defer func() {
		err, ok := recover().(error)

		is.True(ok)
		is.True(errors.Is(err, ErrInvalidArgument))
	}()

	OverIterator[int](nil)

	is.Fail() // OverIterator must panic on nil
}

func TestOverChannel(t *testing.T) {
	is := is.New(t)

	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	is.Equal(OverChannel[int](ch).ToSlice(), []int{1, 2, 3})
}

func TestRange(t *testing.T) {
	tests := []struct {
		low  int
		high int
		want []int
	}{
		{
			low:  1,
			high: 5,
			want: []int{1, 2, 3, 4, 5},
		},
		{
			low:  5,
			high: 1,
			want: []int{5, 4, 3, 2, 1},
		},
		{
			low:  3,
			high: 3,
			want: []int{3},
		},
		{
			low:  -2,
			high: 2,
			want: []int{-2, -1, 0, 1, 2},
		},
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			is := is.New(t)

			seq := Range(test.low, test.high)

			is.Equal(seq.ToSlice(), test.want)
			is.Equal(seq.ToSlice(), test.want) // ranges are replayable
		})
	}
}

func TestWithRebuild(t *testing.T) {
	is := is.New(t)

	rebuilds := 0

	seq := Over(1, 2, 3, 4).WithRebuild(func(source SourceFunc[int]) *Sequence[int] {
		rebuilds++
		return OverSource(source)
	})

	result := seq.
		Filter(func(elem int) bool {
			return elem%2 == 0
		}).
		Map(func(elem int) int {
			return elem * 10
		}).
		ToSlice()

	is.Equal(result, []int{20, 40})

	// both chained operators routed their new source through the capability
	is.Equal(rebuilds, 2)
}

func TestWithRebuild_Decline(t *testing.T) {
	is := is.New(t)

	declined := 0

	seq := Over(1, 2, 3).WithRebuild(func(source SourceFunc[int]) *Sequence[int] {
		declined++
		return nil
	})

	result := seq.
		Map(func(elem int) int {
			return elem + 1
		}).
		Take(2).
		ToSlice()

	// a declining capability degrades to the base sequence, but stays
	// installed for the rest of the chain
	is.Equal(result, []int{2, 3})
	is.Equal(declined, 2)
}
