package arr

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Equals compares a and b shallowly. Identical values are equal, so a slice
// always equals itself even when it holds NaN. Two slices
// or arrays are equal when they have the same length and their elements
// are pairwise identical, where identical means == for comparable values
// and same storage for slices, maps and funcs. A slice or array never
// equals a value that is not one.
//
//	Equals([]any{1, "a"}, []int{1})      // → false
//	Equals([]any{1, "a"}, [2]any{1, "a"}) // → true
//	Equals([]any{[]int{1}}, []any{[]int{1}}) // → false, use EqualsDeep
func Equals(a, b any) bool {
	av, aok := arrayValue(a)
	bv, bok := arrayValue(b)
	if aok != bok {
		return false
	}
	if !aok {
		return identical(reflect.ValueOf(a), reflect.ValueOf(b))
	}
	if av.Len() != bv.Len() {
		return false
	}
	if sameStorage(av, bv) {
		return true
	}
	for i := 0; i < av.Len(); i++ {
		if !identical(av.Index(i), bv.Index(i)) {
			return false
		}
	}
	return true
}

// EqualsDeep compares a and b recursively with github.com/google/go-cmp,
// including unexported struct fields. A slice or array never equals a value
// that is not one.
func EqualsDeep(a, b any) bool {
	if IsArray(a) != IsArray(b) {
		return false
	}
	return cmp.Equal(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}

// sameStorage reports whether av and bv are views of the same elements:
// slices sharing their first element or one addressable array.
func sameStorage(av, bv reflect.Value) bool {
	if av.Type() != bv.Type() {
		return false
	}
	switch {
	case av.Kind() == reflect.Slice:
		return av.UnsafePointer() == bv.UnsafePointer()
	case av.CanAddr() && bv.CanAddr():
		return av.UnsafeAddr() == bv.UnsafeAddr()
	}
	return false
}

func identical(x, y reflect.Value) bool {
	for x.Kind() == reflect.Interface && !x.IsNil() {
		x = x.Elem()
	}
	for y.Kind() == reflect.Interface && !y.IsNil() {
		y = y.Elem()
	}
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	if x.Type() != y.Type() {
		return false
	}
	switch x.Kind() {
	case reflect.Slice:
		return x.Len() == y.Len() && x.UnsafePointer() == y.UnsafePointer()
	case reflect.Map, reflect.Func:
		return x.UnsafePointer() == y.UnsafePointer()
	}
	if !x.Comparable() || !y.Comparable() {
		return false
	}
	return x.Equal(y)
}
