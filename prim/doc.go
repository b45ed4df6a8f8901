// Package prim provides the leaf predicates and coercion plumbing shared by
// every other package in this module.
//
// Go has no null, undefined or boxed primitives, so the kit models them with
// ordinary Go values:
//
//   - "nullish" is an untyped nil, or a typed nil pointer, interface, func or
//     channel ([IsNullish]).
//   - A "boxed primitive" is a non-nil pointer to a bool, string or number.
//   - Objects take part in primitive coercion by implementing [Primitiver],
//     [Valuer] or [fmt.Stringer], consulted in that order by [Unwrap].
//
// # Coercion path
//
//	type Celsius struct{ deg float64 }
//	func (c Celsius) ValueOf() any { return c.deg }
//
//	prim.Unwrap(Celsius{21.5}, prim.HintNumber) // → 21.5
//	prim.Unwrap(ptr("x"), prim.HintString)      // → "x"
//
// # Errors
//
// [ErrType] and [ErrRange] are the two error categories of the kit. Every
// sentinel error declared by a sibling package wraps one of them:
//
//	if errors.Is(err, prim.ErrRange) { ... }
package prim
