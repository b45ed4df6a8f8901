package arr

import (
	"fmt"

	"github.com/hasbyte1/go-primitive-kit/prim"
)

// Sentinel errors returned by the any-typed helpers.
var (
	// ErrNotArray is returned when an operation that needs a slice or array
	// receives some other value. It wraps [prim.ErrType].
	ErrNotArray = fmt.Errorf("arr: value is not an array: %w", prim.ErrType)
)

func notArray(v any) error {
	return fmt.Errorf("%w (got %s %T)", ErrNotArray, prim.KindOf(v), v)
}
