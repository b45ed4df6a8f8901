package arr

import (
	"reflect"
	"strings"

	"github.com/hasbyte1/go-primitive-kit/prim"
	"github.com/hasbyte1/go-primitive-kit/str"
)

// ─────────────────────────────────────────────────────────────────────────────
// Loosely typed in-place helpers
// ─────────────────────────────────────────────────────────────────────────────
//
// The *Any helpers work on a value of unknown type. Slices and pointers to
// slices or arrays are modified through their shared storage; an array
// passed by value is copied first. The result is always a slice, and when v
// is a pointer to a slice the pointed-to slice is updated too.

// ReverseAny reverses a slice or array in place.
func ReverseAny(v any) (any, error) {
	return withSlice(v, func(s reflect.Value) reflect.Value {
		swap := reflect.Swapper(s.Interface())
		for i, j := 0, s.Len()-1; i < j; i, j = i+1, j-1 {
			swap(i, j)
		}
		return s
	})
}

// SortAny stably sorts a slice or array in place with cmp. A nil cmp
// compares elements by their string form ([str.String]), ordering nullish
// elements last.
func SortAny(v any, cmp func(a, b any) int) (any, error) {
	if cmp == nil {
		cmp = compareStrings
	}
	return withSlice(v, func(s reflect.Value) reflect.Value {
		items := toAny(s)
		Sort(items, cmp)
		for i, item := range items {
			set(s.Index(i), item)
		}
		return s
	})
}

// DeduplicateAny removes later duplicates from a slice or array in place.
// Elements of non-comparable dynamic types are never considered duplicates.
func DeduplicateAny(v any) (any, error) {
	return withSlice(v, func(s reflect.Value) reflect.Value {
		seen := make(map[any]struct{}, s.Len())
		return compact(s, func(e reflect.Value) bool {
			if !e.Comparable() {
				return false
			}
			k := e.Interface()
			if _, dup := seen[k]; dup {
				return true
			}
			seen[k] = struct{}{}
			return false
		})
	})
}

// CollapseAny removes nullish elements from a slice or array in place.
func CollapseAny(v any) (any, error) {
	return withSlice(v, func(s reflect.Value) reflect.Value {
		return compact(s, func(e reflect.Value) bool { return prim.IsNullish(e.Interface()) })
	})
}

// withSlice resolves v to a settable slice, applies fn and publishes the
// result back through a slice pointer.
func withSlice(v any, fn func(reflect.Value) reflect.Value) (any, error) {
	if prim.IsNullish(v) {
		return nil, notArray(v)
	}
	rv := reflect.ValueOf(v)
	var ptr reflect.Value
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		ptr, rv = rv, rv.Elem()
	}

	var s reflect.Value
	switch rv.Kind() {
	case reflect.Slice:
		s = rv
	case reflect.Array:
		if !rv.CanAddr() {
			cp := reflect.New(rv.Type()).Elem()
			cp.Set(rv)
			rv = cp
		}
		s = rv.Slice(0, rv.Len())
	default:
		return nil, notArray(v)
	}

	out := fn(s)
	if ptr.IsValid() && ptr.Elem().Kind() == reflect.Slice && ptr.Elem().CanSet() {
		ptr.Elem().Set(out)
	}
	return out.Interface(), nil
}

// compact keeps the elements for which drop returns false, zeroes the tail
// and returns the shortened slice.
func compact(s reflect.Value, drop func(reflect.Value) bool) reflect.Value {
	w := 0
	for i := 0; i < s.Len(); i++ {
		e := s.Index(i)
		if drop(e) {
			continue
		}
		if w != i {
			s.Index(w).Set(e)
		}
		w++
	}
	for i := w; i < s.Len(); i++ {
		s.Index(i).SetZero()
	}
	return s.Slice(0, w)
}

func set(dst reflect.Value, v any) {
	if v == nil {
		dst.SetZero()
		return
	}
	dst.Set(reflect.ValueOf(v))
}

func compareStrings(a, b any) int {
	na, nb := prim.IsNullish(a), prim.IsNullish(b)
	switch {
	case na && nb:
		return 0
	case na:
		return 1
	case nb:
		return -1
	}
	return strings.Compare(str.String(a), str.String(b))
}
