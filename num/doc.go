// Package num provides loose-to-strict numeric coercion, numeric
// predicates, arithmetic reducers over loose operands, and number
// formatting.
//
// # Coercion
//
// [Number] is the package entry point. It unwraps boxed and wrapper values,
// then parses strings as decimal, hexadecimal (0x), octal (0o) or binary
// (0b) numerals. It never fails; unrecognised input yields NaN.
//
//	num.Number("0x1F")   // → 31
//	num.Number(" 1e3 ")  // → 1000
//	num.Number(true)     // → 1
//	num.Number("12px")   // → NaN
//	num.Number(nil)      // → NaN
//
// # Formatting
//
// [Format] renders numbers for a locale using golang.org/x/text, [ToFixed]
// and [Round] use decimal arithmetic, and [Comma], [Ordinal] and [Bytes]
// produce human-friendly strings:
//
//	num.Format(1234567.891, num.DefaultFormatOptions()) // → "1,234,567.891"
//	num.ToFixed(2.345, 2)                               // → "2.35"
//	num.Ordinal(22)                                     // → "22nd"
package num
