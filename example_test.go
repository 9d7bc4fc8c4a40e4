package lynxstream

import "fmt"

func Example() {
	// construct a sequence from fixed elements
	ints := Over(5, 3, 1, 4, 2)

	// double each element, drop everything greater than six,
	// and sort what is left
	result := Sort(ints.
		Map(func(elem int) int {
			return elem * 2
		}).
		Filter(func(elem int) bool {
			return elem <= 6
		})).
		ToSlice()

	fmt.Printf("%+v\n", result)
	// Output: [2 4 6]
}
