package lynxstream

import (
	"testing"

	"github.com/matryer/is"
)

type ranked struct {
	name string
	rank float64
}

func TestToSlice(t *testing.T) {
	is := is.New(t)

	seq := Over("a", "b", "c")

	is.Equal(seq.ToSlice(), []string{"a", "b", "c"})
	is.Equal(seq.Count(), len(seq.ToSlice()))
}

func TestSort(t *testing.T) {
	is := is.New(t)

	is.Equal(Sort(Over(2, 3, 1)).ToSlice(), []int{1, 2, 3})
	is.Equal(Sort(Over[int]()).ToSlice(), []int{})
}

func TestSortDescending(t *testing.T) {
	is := is.New(t)

	is.Equal(SortDescending(Over(2, 3, 1)).ToSlice(), []int{3, 2, 1})
}

func TestSort_ReverseAgreement(t *testing.T) {
	is := is.New(t)

	seq := Over(4, 1, 3, 2)

	is.Equal(Sort(seq).ToSlice(), SortDescending(seq).Reverse().ToSlice())
}

func TestSortBy(t *testing.T) {
	is := is.New(t)

	seq := Over(
		ranked{name: "a", rank: 2},
		ranked{name: "b", rank: 1},
		ranked{name: "c", rank: 2},
		ranked{name: "d", rank: 1},
	)

	sorted := seq.SortBy(func(elem ranked) float64 {
		return elem.rank
	})

	// the sort is stable, elements with equal ranks keep their order
	is.Equal(sorted.ToSlice(), []ranked{
		{name: "b", rank: 1},
		{name: "d", rank: 1},
		{name: "a", rank: 2},
		{name: "c", rank: 2},
	})
}

func TestSortByDescending(t *testing.T) {
	is := is.New(t)

	seq := Over(
		ranked{name: "a", rank: 2},
		ranked{name: "b", rank: 1},
		ranked{name: "c", rank: 2},
		ranked{name: "d", rank: 1},
	)

	sorted := seq.SortByDescending(func(elem ranked) float64 {
		return elem.rank
	})

	is.Equal(sorted.ToSlice(), []ranked{
		{name: "a", rank: 2},
		{name: "c", rank: 2},
		{name: "b", rank: 1},
		{name: "d", rank: 1},
	})
}

func TestReverse(t *testing.T) {
	is := is.New(t)

	is.Equal(Over(1, 2, 3).Reverse().ToSlice(), []int{3, 2, 1})
	is.Equal(Over[int]().Reverse().ToSlice(), []int{})
}

func TestDistinct(t *testing.T) {
	is := is.New(t)

	is.Equal(Distinct(Over(1, 1, 2, 2, 3)).ToSlice(), []int{1, 2, 3})
	is.Equal(Distinct(Over(3, 1, 3, 2, 1)).ToSlice(), []int{3, 1, 2})
}

func TestDistinctBy(t *testing.T) {
	is := is.New(t)

	seq := Over(
		ranked{name: "a", rank: 2},
		ranked{name: "b", rank: 1},
		ranked{name: "c", rank: 2},
	)

	deduped := DistinctBy(seq, func(elem ranked) float64 {
		return elem.rank
	})

	// the first occurrence of each rank wins
	is.Equal(deduped.ToSlice(), []ranked{
		{name: "a", rank: 2},
		{name: "b", rank: 1},
	})
}

func TestGroupBy(t *testing.T) {
	is := is.New(t)

	groups := GroupBy(Over(1, 2, 3, 4, 5, 6), func(elem int) int {
		return elem % 3
	})

	// groups appear in first-seen key order, members in upstream order
	is.Equal(groups.ToSlice(), []Group[int, int]{
		{Key: 1, Members: []int{1, 4}},
		{Key: 2, Members: []int{2, 5}},
		{Key: 0, Members: []int{3, 6}},
	})
}

func TestJoin(t *testing.T) {
	is := is.New(t)

	is.Equal(Over(1, 2, 3).Join("-"), "1-2-3")
	is.Equal(Over("a").Join(", "), "a")
	is.Equal(Over[int]().Join("-"), "")
}
