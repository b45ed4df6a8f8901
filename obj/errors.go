package obj

import (
	"fmt"

	"github.com/hasbyte1/go-primitive-kit/prim"
)

// Sentinel errors returned by [Object].
var (
	// ErrNotObject is returned when a value is neither a string-keyed map
	// nor a struct. It wraps [prim.ErrType].
	ErrNotObject = fmt.Errorf("obj: value is not an object: %w", prim.ErrType)
)
