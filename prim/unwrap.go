package prim

import (
	"fmt"
	"reflect"
)

// Hint tells a [Primitiver] which primitive type the caller prefers.
type Hint uint8

const (
	HintDefault Hint = iota
	HintNumber
	HintString
)

// Primitiver is implemented by values that control their own conversion to
// a primitive. It takes precedence over [Valuer] and [fmt.Stringer].
type Primitiver interface {
	ToPrimitive(hint Hint) any
}

// Valuer is implemented by wrapper values that expose an underlying
// primitive.
type Valuer interface {
	ValueOf() any
}

// ValueOf unboxes v without consulting [fmt.Stringer]:
//
//  1. nullish values become nil;
//  2. a [Primitiver] result is used if it is primitive;
//  3. a [Valuer] result is used if it is primitive;
//  4. primitives, named primitive types included, are normalised with [Base];
//  5. non-nil pointers are followed and the pointee unboxed.
//
// When none of the steps yields a primitive, v is returned unchanged.
func ValueOf(v any, hint Hint) any {
	if IsNullish(v) {
		return nil
	}
	if p, ok := v.(Primitiver); ok {
		if r := Base(p.ToPrimitive(hint)); IsPrimitive(r) {
			return r
		}
	}
	if p, ok := v.(Valuer); ok {
		if r := Base(p.ValueOf()); IsPrimitive(r) {
			return r
		}
	}
	if IsPrimitive(v) {
		return Base(v)
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		if r := ValueOf(rv.Elem().Interface(), hint); IsPrimitive(r) {
			return r
		}
	}
	return v
}

// Unwrap is [ValueOf] followed by a [fmt.Stringer] fallback, giving the
// full ToPrimitive → ValueOf → String priority used by number and string
// coercion.
func Unwrap(v any, hint Hint) any {
	r := ValueOf(v, hint)
	if IsPrimitive(r) {
		return r
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v
}
