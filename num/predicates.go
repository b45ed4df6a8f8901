package num

import (
	"math"

	"github.com/hasbyte1/go-primitive-kit/prim"
)

// maxSafeInteger is 2^53 - 1, the largest integer a float64 holds exactly
// together with all its neighbours.
const maxSafeInteger = 1<<53 - 1

// strict returns v as a float64 when v is a number of any numeric kind.
func strict(v any) (float64, bool) {
	switch x := prim.Base(v).(type) {
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// loose returns the numeric value of v when v is a number, a boxed or
// wrapped number, or a numeral string. Bools do not count.
func loose(v any) (float64, bool) {
	switch x := prim.Unwrap(v, prim.HintNumber).(type) {
	case int64, uint64, float64:
		return strict(x)
	case string:
		return Parse(x), true
	}
	return 0, false
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// IsNumber reports whether v is a finite number of any numeric kind.
// NaN and the infinities are excluded.
func IsNumber(v any) bool {
	f, ok := strict(v)
	return ok && finite(f)
}

// IsNotNumber is the negation of [IsNumber].
func IsNotNumber(v any) bool { return !IsNumber(v) }

// IsLooseNumber reports whether v represents a finite number: a number, a
// boxed or wrapped number, or a string [Parse] accepts. Bools, NaN and the
// infinities are excluded.
func IsLooseNumber(v any) bool {
	f, ok := loose(v)
	return ok && finite(f)
}

// IsNotLooseNumber is the negation of [IsLooseNumber].
func IsNotLooseNumber(v any) bool { return !IsLooseNumber(v) }

// IsInteger reports whether v is a strict number with no fractional part.
func IsInteger(v any) bool {
	f, ok := strict(v)
	return ok && finite(f) && f == math.Trunc(f)
}

// IsSafeInteger reports whether v is an integer within ±(2^53 - 1).
func IsSafeInteger(v any) bool {
	if !IsInteger(v) {
		return false
	}
	switch x := prim.Base(v).(type) {
	case int64:
		return x >= -maxSafeInteger && x <= maxSafeInteger
	case uint64:
		return x <= maxSafeInteger
	}
	f, _ := strict(v)
	return math.Abs(f) <= maxSafeInteger
}

// IsFinite reports whether the loose numeric value of v is finite.
func IsFinite(v any) bool { return finite(Number(v)) }

// IsNaN reports whether v coerces to NaN.
func IsNaN(v any) bool { return math.IsNaN(Number(v)) }

// IsPositive reports whether v coerces to a number greater than zero.
func IsPositive(v any) bool { return Number(v) > 0 }

// IsNegative reports whether v coerces to a number less than zero.
func IsNegative(v any) bool { return Number(v) < 0 }
