package prim

import "reflect"

// Kind is the loose type category of a value.
type Kind uint8

const (
	KindNullish Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
	KindFunction
	KindOther
)

var kindNames = [...]string{
	KindNullish:  "nullish",
	KindBoolean:  "boolean",
	KindNumber:   "number",
	KindString:   "string",
	KindArray:    "array",
	KindObject:   "object",
	KindFunction: "function",
	KindOther:    "other",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "other"
}

// KindOf classifies v. Pointers are classified by what they point to, so a
// boxed number reports [KindNumber].
func KindOf(v any) Kind {
	if IsNullish(v) {
		return KindNullish
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return KindNullish
		}
		rv = rv.Elem()
	}
	return kindOfReflect(rv.Kind())
}

func kindOfReflect(k reflect.Kind) Kind {
	switch k {
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.Func:
		return KindFunction
	default:
		return KindOther
	}
}
