package logic

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/hasbyte1/go-primitive-kit/prim"
)

// ─────────────────────────────────────────────────────────────────────────────
// Coercion
// ─────────────────────────────────────────────────────────────────────────────

// Bool coerces v to a bool. It returns false for nullish values, false, 0,
// NaN, the empty string, and the strings "false" and "0" (case-insensitive,
// surrounding whitespace ignored). Boxed values are unwrapped first through
// [prim.ValueOf]. Every other value, including every map, struct and slice,
// is true.
func Bool(v any) bool {
	switch x := prim.ValueOf(v, prim.HintDefault).(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		return s != "" && s != "false" && s != "0"
	case int64:
		return x != 0
	case uint64:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	}
	return true
}

// ToBoolean is an alias for [Bool].
func ToBoolean(v any) bool { return Bool(v) }

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// IsBoolean reports whether v is a bool (of any named type).
func IsBoolean(v any) bool {
	_, ok := prim.Base(v).(bool)
	return ok
}

// IsNotBoolean is the negation of [IsBoolean].
func IsNotBoolean(v any) bool { return !IsBoolean(v) }

// IsLooseBoolean reports whether v could stand for a boolean: a bool, a
// boxed bool, the strings "true" or "false" in any case, or the numbers 0
// and 1.
func IsLooseBoolean(v any) bool {
	switch x := prim.ValueOf(v, prim.HintDefault).(type) {
	case bool:
		return true
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		return s == "true" || s == "false"
	case int64:
		return x == 0 || x == 1
	case uint64:
		return x == 0 || x == 1
	case float64:
		return x == 0 || x == 1
	}
	return false
}

// IsNotLooseBoolean is the negation of [IsLooseBoolean].
func IsNotLooseBoolean(v any) bool { return !IsLooseBoolean(v) }

// IsTruthy reports whether [Bool] returns true for v.
func IsTruthy(v any) bool { return Bool(v) }

// IsFalsy reports whether [Bool] returns false for v.
func IsFalsy(v any) bool { return !Bool(v) }

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// Not returns the negation of Bool(v).
func Not(v any) bool { return !Bool(v) }

// And reports whether both operands are truthy.
func And(a, b any) bool { return Bool(a) && Bool(b) }

// Or reports whether at least one operand is truthy.
func Or(a, b any) bool { return Bool(a) || Bool(b) }

// Xor reports whether exactly one operand is truthy.
func Xor(a, b any) bool { return Bool(a) != Bool(b) }

// Nand is the negation of [And].
func Nand(a, b any) bool { return !And(a, b) }

// Nor is the negation of [Or].
func Nor(a, b any) bool { return !Or(a, b) }

// Xnor is the negation of [Xor].
func Xnor(a, b any) bool { return !Xor(a, b) }

// All reports whether every value is truthy. It is true for no values.
func All(values ...any) bool {
	for _, v := range values {
		if !Bool(v) {
			return false
		}
	}
	return true
}

// Some reports whether at least one value is truthy. It is false for no
// values.
func Some(values ...any) bool {
	for _, v := range values {
		if Bool(v) {
			return true
		}
	}
	return false
}

// None reports whether no value is truthy. It is true for no values.
func None(values ...any) bool { return !Some(values...) }

// Count returns the number of truthy values.
func Count(values ...any) int {
	n := 0
	for _, v := range values {
		if Bool(v) {
			n++
		}
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Random returns true or false with equal probability.
func Random() bool { return rand.IntN(2) == 1 }

// RandomWithProbability returns true with probability p, clamped to [0, 1].
// A NaN probability is treated as 0.
func RandomWithProbability(p float64) bool {
	if math.IsNaN(p) || p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rand.Float64() < p
}
