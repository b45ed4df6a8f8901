// Package arr provides helpers for Go slices: loose coercion of arbitrary
// values to []any, array predicates, in-place and copying reorderings,
// deduplication, hole removal, and shallow or deep equality. It is inspired
// by Laravel's Arr facade and PHP's array_* functions.
//
// # Generic helpers
//
// Most helpers are generic and operate on plain []T values:
//
//	arr.Deduplicate([]int{3, 1, 3, 2, 1})     // → [3 1 2]
//	arr.Chunk([]int{1, 2, 3, 4, 5}, 2)        // → [[1 2] [3 4] [5]]
//	v, ok := arr.At([]string{"a", "b"}, -1)   // → "b", true
//
// # In place versus copy
//
// [Reverse], [Sort], [Shuffle], [Deduplicate], [DeduplicateBy], [Collapse]
// and [Remove] reorder or compact the slice they are given and return it.
// Helpers that drop elements return a shorter slice over the same backing
// array and zero the vacated tail, like [slices.DeleteFunc]. The To* variants
// ([ToReversed], [ToSorted], [ToShuffled]) leave their input untouched.
//
// # Loosely typed values
//
// [Array] turns any value into a []any, and the *Any helpers accept an
// arbitrary value, failing with [ErrNotArray] (which wraps [prim.ErrType])
// when it is not a slice or array:
//
//	arr.Array(nil)          // → []
//	arr.Array("x")          // → [x]
//	_, err := arr.ReverseAny(42)
//	errors.Is(err, prim.ErrType) // → true
package arr
