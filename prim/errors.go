package prim

import "errors"

// Error categories shared by the whole kit.
//
// Package-level sentinels elsewhere in the module wrap these with %w, so a
// caller can test either the precise sentinel or the category:
//
//	_, err := str.Random(-1)
//	errors.Is(err, str.ErrInvalidLength) // true
//	errors.Is(err, prim.ErrRange)        // true
var (
	// ErrType is the category for values that do not have the shape an
	// operation requires, such as a non-slice passed to an array helper.
	ErrType = errors.New("type error")

	// ErrRange is the category for arguments outside the accepted domain,
	// such as a negative length.
	ErrRange = errors.New("range error")
)
