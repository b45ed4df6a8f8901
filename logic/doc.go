// Package logic provides loose-to-strict boolean coercion, boolean
// predicates and logical combinators over arbitrary values.
//
// [Bool] is the package entry point: it turns any value into a bool and
// never fails.
//
//	logic.Bool("FALSE")       // → false
//	logic.Bool(" 0 ")         // → false
//	logic.Bool([]int{})       // → true (objects are truthy)
//	logic.Bool(math.NaN())    // → false
//
// Every combinator coerces its operands with [Bool] first:
//
//	logic.And(1, "true")      // → true
//	logic.Xor("yes", 0)       // → true
//	logic.All()               // → true
package logic
