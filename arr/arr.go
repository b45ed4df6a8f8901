package arr

import (
	"reflect"

	"github.com/hasbyte1/go-primitive-kit/prim"
)

// ─────────────────────────────────────────────────────────────────────────────
// Coercion & testing
// ─────────────────────────────────────────────────────────────────────────────

// Array returns v as a []any:
//
//   - a []any is returned as is;
//   - other slices and arrays (also behind pointers) are copied element by
//     element;
//   - nullish values give an empty slice;
//   - anything else is wrapped in a one-element slice.
func Array(v any) []any {
	if items, ok := v.([]any); ok {
		return items
	}
	if prim.IsNullish(v) {
		return []any{}
	}
	if rv, ok := arrayValue(v); ok {
		return toAny(rv)
	}
	return []any{v}
}

// Wrap is an alias for [Array].
func Wrap(v any) []any { return Array(v) }

// FromAny converts a slice or array to []any and fails with [ErrNotArray]
// for any other value.
func FromAny(v any) ([]any, error) {
	if items, ok := v.([]any); ok {
		return items, nil
	}
	rv, ok := arrayValue(v)
	if !ok {
		return nil, notArray(v)
	}
	return toAny(rv), nil
}

// Len returns the number of elements of a slice or array.
func Len(v any) (int, error) {
	rv, ok := arrayValue(v)
	if !ok {
		return 0, notArray(v)
	}
	return rv.Len(), nil
}

// IsArray reports whether v is a slice or array, directly or behind non-nil
// pointers. Strings are not arrays.
func IsArray(v any) bool { return prim.KindOf(v) == prim.KindArray }

// IsNotArray is the negation of [IsArray].
func IsNotArray(v any) bool { return !IsArray(v) }

// IsEmpty reports whether [Array] yields no elements for v, which holds for
// empty slices and nullish values.
func IsEmpty(v any) bool { return len(Array(v)) == 0 }

// IsNotEmpty is the negation of [IsEmpty].
func IsNotEmpty(v any) bool { return !IsEmpty(v) }

// arrayValue follows non-nil pointers and returns the slice or array found.
func arrayValue(v any) (reflect.Value, bool) {
	if prim.IsNullish(v) {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	}
	return reflect.Value{}, false
}

func toAny(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

// At returns the element at index i. A negative i counts from the end, -1
// being the last element. It returns the zero value and false when i is out
// of range.
func At[T any](items []T, i int) (T, bool) {
	if i < 0 {
		i += len(items)
	}
	if i < 0 || i >= len(items) {
		var zero T
		return zero, false
	}
	return items[i], true
}

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	if len(fns) == 0 {
		return At(items, 0)
	}
	for _, item := range items {
		if fns[0](item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	if len(fns) == 0 {
		return At(items, -1)
	}
	for i := len(items) - 1; i >= 0; i-- {
		if fns[0](items[i]) {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Flatten concatenates a slice of slices into a new flat slice.
func Flatten[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}
