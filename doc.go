// Package lynxstream provides lazily composed, replayable sequences over
// in-memory element sources, together with an Optional container for values
// that may be absent.
//
// Sequences are constructed from fixed elements, slices, existing iterators,
// channels, or generator-producing functions, and normalized to a single
// pull-based iteration protocol.
//
// Operators chain without materializing elements: mapping, filtering, and
// slicing operators only wrap the upstream sequence in a new deferred
// computation. Operators whose result inherently requires knowledge of all
// elements (the sort family, Reverse, Distinct, GroupBy, Median) drain the
// upstream into a temporary slice first.
//
// A sequence backed by a generator-producing function can be iterated any
// number of times: the function is invoked again for every fresh iteration,
// restarting the computation from the beginning.
//
// Operators that may legitimately produce nothing, such as First, Reduce,
// and the numeric folds, return an Optional instead of a zero value.
//
// Sequences are immutable handles and may be shared freely, but a single
// iteration must not be consumed by multiple goroutines. The engine is
// synchronous and single-threaded; short-circuiting operators such as
// AnyMatch, First, and Take simply stop pulling elements.
package lynxstream
