package str

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/hasbyte1/go-primitive-kit/num"
	"github.com/hasbyte1/go-primitive-kit/prim"
)

// ─────────────────────────────────────────────────────────────────────────────
// Coercion
// ─────────────────────────────────────────────────────────────────────────────

// String coerces v to a string and never fails.
//
//   - nullish values yield "";
//   - bools yield "true" or "false";
//   - numbers are rendered with [num.ToString];
//   - other values are unwrapped with [prim.Unwrap] (ToPrimitive, then
//     ValueOf, then String) and the primitive rendered as above;
//   - byte slices and errors are converted by github.com/spf13/cast;
//   - slices and arrays are rendered element by element and joined with
//     ",", nullish elements rendering as "";
//   - anything else is formatted with fmt.Sprint.
func String(v any) string {
	switch x := prim.Unwrap(v, prim.HintString).(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return num.ToString(x)
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	if prim.KindOf(v) == prim.KindArray {
		return join(v)
	}
	return fmt.Sprint(v)
}

// ToString is an alias for [String].
func ToString(v any) string { return String(v) }

func join(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = String(rv.Index(i).Interface())
	}
	return strings.Join(parts, ",")
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// IsString reports whether v is a string of any named string type.
func IsString(v any) bool {
	_, ok := prim.Base(v).(string)
	return ok
}

// IsNotString is the negation of [IsString].
func IsNotString(v any) bool { return !IsString(v) }

// IsLooseString reports whether v stands for a string: a string, a boxed
// string, a value whose primitive form is a string (see [prim.Unwrap]), a
// byte slice, or an error.
func IsLooseString(v any) bool {
	switch v.(type) {
	case []byte, error:
		return true
	}
	_, ok := prim.Unwrap(v, prim.HintString).(string)
	return ok
}

// IsNotLooseString is the negation of [IsLooseString].
func IsNotLooseString(v any) bool { return !IsLooseString(v) }

// IsEmpty reports whether v coerces to the empty string.
func IsEmpty(v any) bool { return String(v) == "" }

// IsNotEmpty is the negation of [IsEmpty].
func IsNotEmpty(v any) bool { return !IsEmpty(v) }

// IsBlank reports whether v coerces to a string holding only whitespace.
func IsBlank(v any) bool { return strings.TrimSpace(String(v)) == "" }

// IsNotBlank is the negation of [IsBlank].
func IsNotBlank(v any) bool { return !IsBlank(v) }
