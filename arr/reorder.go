package arr

import (
	"math/rand/v2"
	"reflect"
	"slices"

	"github.com/hasbyte1/go-primitive-kit/prim"
)

// ─────────────────────────────────────────────────────────────────────────────
// In place
// ─────────────────────────────────────────────────────────────────────────────

// Reverse reverses items in place and returns it.
func Reverse[T any](items []T) []T {
	slices.Reverse(items)
	return items
}

// Sort stably sorts items in place with cmp, which returns a negative number
// when a sorts before b, a positive number when it sorts after and zero
// otherwise (see [cmp.Compare]). It returns items.
func Sort[T any](items []T, cmp func(a, b T) int) []T {
	slices.SortStableFunc(items, cmp)
	return items
}

// Shuffle randomly permutes items in place and returns it.
func Shuffle[T any](items []T) []T {
	rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return items
}

// Deduplicate removes every element equal to an earlier one, keeping the
// first occurrence and the relative order. It compacts items in place and
// returns the shortened slice.
//
//	Deduplicate([]int{3, 1, 3, 2, 1}) // → [3 1 2]
func Deduplicate[T comparable](items []T) []T {
	return DeduplicateBy(items, func(item T) T { return item })
}

// DeduplicateBy is like [Deduplicate] but compares the keys returned by key.
// Keys holding a non-comparable dynamic value, such as a slice inside an
// interface, are never considered duplicates.
func DeduplicateBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	return slices.DeleteFunc(items, func(item T) bool {
		k := key(item)
		if !hashable(k) {
			return false
		}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}

func hashable(k any) bool {
	return k == nil || reflect.ValueOf(k).Comparable()
}

// Collapse removes the holes (nullish elements, see [prim.IsNullish]) from
// items in place, keeping the order of the others, and returns the
// shortened slice.
func Collapse[T any](items []T) []T {
	return slices.DeleteFunc(items, func(item T) bool { return prim.IsNullish(item) })
}

// Remove deletes the elements matching fn in place and returns the
// shortened slice.
func Remove[T any](items []T, fn func(T) bool) []T {
	return slices.DeleteFunc(items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Copying
// ─────────────────────────────────────────────────────────────────────────────

// ToReversed returns a reversed copy of items.
func ToReversed[T any](items []T) []T { return Reverse(slices.Clone(items)) }

// ToSorted returns a stably sorted copy of items; see [Sort].
func ToSorted[T any](items []T, cmp func(a, b T) int) []T {
	return Sort(slices.Clone(items), cmp)
}

// ToShuffled returns a randomly permuted copy of items.
func ToShuffled[T any](items []T) []T { return Shuffle(slices.Clone(items)) }

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Random returns one uniformly selected element without modifying items.
// Returns the zero value and false if items is empty.
func Random[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[rand.IntN(len(items))], true
}

// Sample returns n elements taken from distinct positions of items, in
// random order. n is clamped to [0, len(items)].
func Sample[T any](items []T, n int) []T {
	n = min(max(n, 0), len(items))
	out := make([]T, n)
	for i, p := range rand.Perm(len(items))[:n] {
		out[i] = items[p]
	}
	return out
}
