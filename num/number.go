package num

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-primitive-kit/prim"
)

// decimalNumeral matches the decimal literal forms accepted by [Parse].
// strconv.ParseFloat alone is too lenient ("inf", "nan", hex floats).
var decimalNumeral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ─────────────────────────────────────────────────────────────────────────────
// Coercion
// ─────────────────────────────────────────────────────────────────────────────

// Number coerces v to a float64 and never fails.
//
//   - nullish values yield NaN;
//   - bools yield 1 or 0;
//   - numbers are converted directly;
//   - strings are parsed with [Parse];
//   - other values are unwrapped with [prim.Unwrap] (ToPrimitive, then
//     ValueOf, then String) and the primitive converted as above.
//
// Anything else yields NaN.
func Number(v any) float64 {
	switch x := prim.Unwrap(v, prim.HintNumber).(type) {
	case nil:
		return math.NaN()
	case bool:
		if x {
			return 1
		}
		return 0
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float64:
		return x
	case string:
		return Parse(x)
	}
	return math.NaN()
}

// ToNumber is an alias for [Number].
func ToNumber(v any) float64 { return Number(v) }

// Parse parses a numeral after trimming surrounding whitespace.
//
// Accepted forms are unsigned 0x, 0o and 0b prefixed integers of any length
// (prefix letter in either case), signed decimal numbers with optional
// fraction and exponent, and the exact words "Infinity", "+Infinity" and
// "-Infinity". The empty string and everything else yield NaN.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		}
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if !decimalNumeral.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN()
	}
	// ParseFloat yields ±Inf on overflow.
	return f
}

func parseRadix(digits string, base int) float64 {
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return math.NaN()
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// Int coerces v with [Number] and truncates toward zero. NaN becomes 0 and
// out-of-range values saturate at the int bounds.
func Int(v any) int {
	f := math.Trunc(Number(v))
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// ─────────────────────────────────────────────────────────────────────────────
// Rendering
// ─────────────────────────────────────────────────────────────────────────────

// ToString renders f the way a JavaScript engine does: "NaN", "Infinity",
// "-Infinity", "0" for both zeros, the shortest round-trip digits in plain
// notation for magnitudes in [1e-6, 1e21), and exponent notation ("1e+21",
// "1.5e-7") outside that range.
func ToString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
