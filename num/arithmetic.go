package num

import (
	"math"

	"github.com/shopspring/decimal"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reducers
//
// Every operand is coerced with [Number]; a NaN operand makes the result NaN.
// ─────────────────────────────────────────────────────────────────────────────

func reduce(values []any, fn func(acc, v float64) float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	acc := Number(values[0])
	for _, v := range values[1:] {
		acc = fn(acc, Number(v))
	}
	return acc
}

// Sum adds all values. It returns 0 for no values.
func Sum(values ...any) float64 {
	if len(values) == 0 {
		return 0
	}
	return reduce(values, func(acc, v float64) float64 { return acc + v })
}

// Subtract subtracts every following value from the first. It returns NaN
// for no values.
func Subtract(values ...any) float64 {
	return reduce(values, func(acc, v float64) float64 { return acc - v })
}

// Multiply multiplies all values. It returns NaN for no values.
func Multiply(values ...any) float64 {
	return reduce(values, func(acc, v float64) float64 { return acc * v })
}

// Divide divides the first value by every following value. Division by zero
// follows IEEE 754 (±Inf, or NaN for 0/0). It returns NaN for no values.
func Divide(values ...any) float64 {
	return reduce(values, func(acc, v float64) float64 { return acc / v })
}

// Average returns the arithmetic mean, or NaN for no values.
func Average(values ...any) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return Sum(values...) / float64(len(values))
}

// Min returns the smallest value, or NaN for no values.
func Min(values ...any) float64 {
	return reduce(values, func(acc, v float64) float64 {
		if math.IsNaN(acc) || math.IsNaN(v) {
			return math.NaN()
		}
		return math.Min(acc, v)
	})
}

// Max returns the largest value, or NaN for no values.
func Max(values ...any) float64 {
	return reduce(values, func(acc, v float64) float64 {
		if math.IsNaN(acc) || math.IsNaN(v) {
			return math.NaN()
		}
		return math.Max(acc, v)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Ranges
// ─────────────────────────────────────────────────────────────────────────────

func ordered(lo, hi float64) (float64, float64) {
	if lo > hi {
		return hi, lo
	}
	return lo, hi
}

// Clamp limits v to [lo, hi]. The bounds may be given in either order.
// A NaN v stays NaN.
func Clamp(v, lo, hi float64) float64 {
	lo, hi = ordered(lo, hi)
	if math.IsNaN(v) {
		return v
	}
	return math.Max(lo, math.Min(v, hi))
}

// InRange reports whether v lies within [lo, hi], bounds inclusive and
// given in either order.
func InRange(v, lo, hi float64) bool {
	lo, hi = ordered(lo, hi)
	return v >= lo && v <= hi
}

// ─────────────────────────────────────────────────────────────────────────────
// Rounding
// ─────────────────────────────────────────────────────────────────────────────

// Round rounds v to places decimal places, halves away from zero, using
// decimal arithmetic so that Round(1.005, 2) is 1.01. Negative places round
// to tens, hundreds and so on. Non-finite values are returned unchanged.
func Round(v float64, places int) float64 {
	if !finite(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(int32(places)).Float64()
	return f
}

// ToFixed formats v with exactly places decimal places (negative places are
// treated as 0), rounding halves away from zero. Non-finite values render
// as [ToString] does.
func ToFixed(v float64, places int) string {
	if !finite(v) {
		return ToString(v)
	}
	if places < 0 {
		places = 0
	}
	return decimal.NewFromFloat(v).StringFixed(int32(places))
}
