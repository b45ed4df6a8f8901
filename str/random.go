package str

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

const (
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	digits36     = "0123456789abcdefghijklmnopqrstuvwxyz"
)

type randomConfig struct {
	pool     string
	explicit bool
	base     int
	hasBase  bool
}

// RandomOption configures [Random].
type RandomOption func(*randomConfig)

// WithChars draws characters from pool instead of the default ASCII
// letters and digits. An empty pool makes [Random] fail with
// [ErrEmptyCharset].
func WithChars(pool string) RandomOption {
	return func(c *randomConfig) {
		c.pool = pool
		c.explicit = true
		c.hasBase = false
	}
}

// WithBase draws digits of the given numeral base (2 to 36), using
// 0-9 followed by a-z.
func WithBase(base int) RandomOption {
	return func(c *randomConfig) {
		c.base = base
		c.hasBase = true
		c.explicit = false
	}
}

// Random returns a string of length runes drawn uniformly from the
// configured pool.
//
//	s, _ := str.Random(16)                    // e.g. "q3ZbT0fJw9LxAe1C"
//	hex, _ := str.Random(8, str.WithBase(16)) // e.g. "9f03bc1e"
//
// It fails with [ErrInvalidLength] for a negative length, [ErrEmptyCharset]
// for an empty explicit pool and [ErrInvalidBase] for a base outside 2..36.
// Options are validated before a zero length yields "". The result is
// built in one allocation of at least length bytes.
func Random(length int, opts ...RandomOption) (string, error) {
	cfg := randomConfig{pool: alphanumeric}
	for _, opt := range opts {
		opt(&cfg)
	}

	if length < 0 {
		return "", ErrInvalidLength
	}
	pool := []rune(cfg.pool)
	switch {
	case cfg.hasBase:
		if cfg.base < 2 || cfg.base > 36 {
			return "", ErrInvalidBase
		}
		pool = []rune(digits36[:cfg.base])
	case cfg.explicit && len(pool) == 0:
		return "", ErrEmptyCharset
	}
	if length == 0 {
		return "", nil
	}

	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteRune(pool[rand.IntN(len(pool))])
	}
	return b.String(), nil
}

// UUID returns a random (version 4) UUID in its canonical textual form.
func UUID() string { return uuid.NewString() }
