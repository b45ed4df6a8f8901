package str

import (
	"fmt"

	"github.com/hasbyte1/go-primitive-kit/prim"
)

// Sentinel errors returned by [Random]. All of them wrap [prim.ErrRange]:
//
//	_, err := str.Random(-1)
//	if errors.Is(err, str.ErrInvalidLength) {
//	    // negative length requested
//	}
var (
	// ErrInvalidLength is returned when a negative length is requested.
	ErrInvalidLength = fmt.Errorf("str: length must not be negative: %w", prim.ErrRange)

	// ErrEmptyCharset is returned when an explicitly supplied character
	// pool contains no characters.
	ErrEmptyCharset = fmt.Errorf("str: character pool must not be empty: %w", prim.ErrRange)

	// ErrInvalidBase is returned when a numeral base outside 2..36 is
	// requested.
	ErrInvalidBase = fmt.Errorf("str: base must be between 2 and 36: %w", prim.ErrRange)
)
