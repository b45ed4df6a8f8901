package obj

import (
	"cmp"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/hasbyte1/go-primitive-kit/prim"
)

// ─────────────────────────────────────────────────────────────────────────────
// Coercion & testing
// ─────────────────────────────────────────────────────────────────────────────

// Object converts v to a new map[string]any.
//
//   - maps keyed by a string type are copied;
//   - structs become a map of their exported fields, named by their json
//     tag when one is present ("-" skips the field) and with the fields of
//     untagged exported embedded structs promoted;
//   - pointers are followed.
//
// Any other value fails with [ErrNotObject].
func Object(v any) (map[string]any, error) {
	rv, ok := objectValue(v)
	if !ok {
		return nil, fmt.Errorf("%w (got %s %T)", ErrNotObject, prim.KindOf(v), v)
	}
	out := make(map[string]any)
	if rv.Kind() == reflect.Map {
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, nil
	}
	structFields(rv, out)
	return out, nil
}

// ToMap is an alias for [Object].
func ToMap(v any) (map[string]any, error) { return Object(v) }

// IsObject reports whether v is a string-keyed map or a struct, directly or
// behind non-nil pointers.
func IsObject(v any) bool { return prim.IsPlainObject(v) }

// IsNotObject is the negation of [IsObject].
func IsNotObject(v any) bool { return !IsObject(v) }

// IsEmpty reports whether v is nullish or an object without entries.
func IsEmpty(v any) bool {
	if prim.IsNullish(v) {
		return true
	}
	m, err := Object(v)
	return err == nil && len(m) == 0
}

func objectValue(v any) (reflect.Value, bool) {
	if !prim.IsPlainObject(v) {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	return rv, true
}

func structFields(rv reflect.Value, out map[string]any) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || !f.IsExported() {
			continue
		}
		if f.Anonymous && name == "" {
			fv := rv.Field(i)
			for fv.Kind() == reflect.Pointer && !fv.IsNil() {
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				structFields(fv, out)
				continue
			}
		}
		if name == "" {
			name = f.Name
		}
		out[name] = rv.Field(i).Interface()
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns a new map holding only the given keys of m. Keys missing
// from m are ignored.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// PickFunc is like [Pick] but stores fn(key, value) for every kept entry.
func PickFunc[K comparable, V, W any](m map[K]V, fn func(K, V) W, keys ...K) map[K]W {
	out := make(map[K]W, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = fn(k, v)
		}
	}
	return out
}

// Omit returns a shallow copy of m without the given keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	return OmitFunc(m, func(_ K, v V) V { return v }, keys...)
}

// OmitFunc is like [Omit] but stores fn(key, value) for every kept entry.
func OmitFunc[K comparable, V, W any](m map[K]V, fn func(K, V) W, keys ...K) map[K]W {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[K]W, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = fn(k, v)
		}
	}
	return out
}

// Pull deletes the given keys from m and returns the removed entries.
func Pull[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
			delete(m, k)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Enumeration
// ─────────────────────────────────────────────────────────────────────────────

// Entry is a key/value pair of a map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Keys returns the keys of m in ascending order.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

// Values returns the values of m ordered by their keys.
func Values[K cmp.Ordered, V any](m map[K]V) []V {
	keys := Keys(m)
	out := make([]V, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}

// Entries returns the entries of m ordered by key.
func Entries[K cmp.Ordered, V any](m map[K]V) []Entry[K, V] {
	keys := Keys(m)
	out := make([]Entry[K, V], len(keys))
	for i, k := range keys {
		out[i] = Entry[K, V]{Key: k, Value: m[k]}
	}
	return out
}
