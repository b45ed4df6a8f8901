package prim

import (
	"math"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Presence
// ─────────────────────────────────────────────────────────────────────────────

// IsNullish reports whether v is an untyped nil or a typed nil pointer,
// interface, func or channel.
//
// Nil maps and nil slices are empty containers and are not nullish.
func IsNullish(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsNotNullish is the negation of [IsNullish].
func IsNotNullish(v any) bool { return !IsNullish(v) }

// IsSet reports whether v holds a value, in the sense of PHP's isset.
// It is the negation of [IsNullish].
func IsSet(v any) bool { return !IsNullish(v) }

// ─────────────────────────────────────────────────────────────────────────────
// Shape
// ─────────────────────────────────────────────────────────────────────────────

// IsObject reports whether v is a non-nullish map, struct, slice or array,
// or a non-nil pointer to one.
func IsObject(v any) bool {
	switch KindOf(v) {
	case KindObject, KindArray:
		return true
	}
	return false
}

// IsPlainObject reports whether v is a map keyed by strings or a struct,
// directly or behind non-nil pointers.
func IsPlainObject(v any) bool {
	rv, ok := indirect(v)
	if !ok {
		return false
	}
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	}
	return false
}

// IsPropertyKey reports whether v can name a property: a string, an
// integer, or a float holding an integral value.
func IsPropertyKey(v any) bool {
	switch b := Base(v).(type) {
	case string, int64, uint64:
		return true
	case float64:
		return !math.IsInf(b, 0) && b == math.Trunc(b)
	}
	return false
}

// IsPrimitive reports whether v is nil, a bool, a string or a number.
// Pointers are not primitives; see [ValueOf] for unboxing.
func IsPrimitive(v any) bool {
	if v == nil {
		return true
	}
	switch KindOf(v) {
	case KindBoolean, KindNumber, KindString:
		return reflect.ValueOf(v).Kind() != reflect.Pointer
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Normalisation
// ─────────────────────────────────────────────────────────────────────────────

// Base converts a primitive of any named type to its canonical Go type:
// bool, string, int64, uint64 or float64. Non-primitives are returned
// unchanged.
//
//	type Meters int
//	Base(Meters(3)) // → int64(3)
func Base(v any) any {
	switch x := v.(type) {
	case nil, bool, string, int64, uint64, float64:
		return x
	case int:
		return int64(x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}

// indirect follows pointers to the first non-pointer value.
// ok is false when v is nullish or a nil pointer is reached.
func indirect(v any) (reflect.Value, bool) {
	if IsNullish(v) {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}
