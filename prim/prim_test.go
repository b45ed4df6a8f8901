package prim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-primitive-kit/prim"
)

type meters int

type celsius struct{ deg float64 }

func (c celsius) ValueOf() any { return c.deg }

type label struct{ name string }

func (l label) String() string { return l.name }

// all three hooks; ToPrimitive must win.
type layered struct{}

func (layered) ToPrimitive(h prim.Hint) any {
	if h == prim.HintString {
		return "primitive-string"
	}
	return 1
}
func (layered) ValueOf() any   { return 2 }
func (layered) String() string { return "3" }

// ValueOf returns a non-primitive, so String must be used.
type opaque struct{}

func (opaque) ValueOf() any   { return struct{}{} }
func (opaque) String() string { return "opaque" }

// cents is a named primitive with its own conversion.
type cents int

func (c cents) ToPrimitive(prim.Hint) any { return float64(c) / 100 }

func ptr[T any](v T) *T { return &v }

// ─── Presence ────────────────────────────────────────────────────────────────

func TestIsNullish(t *testing.T) {
	var nilPtr *int
	var nilFunc func()
	var nilErr error
	var nilMap map[string]int
	var nilSlice []int

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"nil func", nilFunc, true},
		{"nil interface", nilErr, true},
		{"nil map", nilMap, false},
		{"nil slice", nilSlice, false},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"pointer", ptr(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prim.IsNullish(tt.in))
			assert.Equal(t, !tt.want, prim.IsNotNullish(tt.in))
			assert.Equal(t, !tt.want, prim.IsSet(tt.in))
		})
	}
}

// ─── Shape ───────────────────────────────────────────────────────────────────

func TestIsObject(t *testing.T) {
	assert.True(t, prim.IsObject(map[string]int{}))
	assert.True(t, prim.IsObject(struct{}{}))
	assert.True(t, prim.IsObject([]int{}))
	assert.True(t, prim.IsObject(&struct{ A int }{}))
	assert.False(t, prim.IsObject(nil))
	assert.False(t, prim.IsObject("x"))
	assert.False(t, prim.IsObject(3))
	assert.False(t, prim.IsObject(func() {}))
}

func TestIsPlainObject(t *testing.T) {
	assert.True(t, prim.IsPlainObject(map[string]any{}))
	assert.True(t, prim.IsPlainObject(celsius{}))
	assert.True(t, prim.IsPlainObject(&celsius{}))
	assert.False(t, prim.IsPlainObject(map[int]any{}))
	assert.False(t, prim.IsPlainObject([]any{}))
	assert.False(t, prim.IsPlainObject((*celsius)(nil)))
}

func TestIsPropertyKey(t *testing.T) {
	assert.True(t, prim.IsPropertyKey("name"))
	assert.True(t, prim.IsPropertyKey(3))
	assert.True(t, prim.IsPropertyKey(uint8(3)))
	assert.True(t, prim.IsPropertyKey(meters(2)))
	assert.True(t, prim.IsPropertyKey(2.0))
	assert.False(t, prim.IsPropertyKey(2.5))
	assert.False(t, prim.IsPropertyKey(math.Inf(1)))
	assert.False(t, prim.IsPropertyKey(math.NaN()))
	assert.False(t, prim.IsPropertyKey(true))
	assert.False(t, prim.IsPropertyKey(nil))
	assert.False(t, prim.IsPropertyKey(ptr("x")))
}

func TestIsPrimitive(t *testing.T) {
	assert.True(t, prim.IsPrimitive(nil))
	assert.True(t, prim.IsPrimitive(true))
	assert.True(t, prim.IsPrimitive(meters(1)))
	assert.True(t, prim.IsPrimitive(""))
	assert.False(t, prim.IsPrimitive(ptr(1)))
	assert.False(t, prim.IsPrimitive([]int{}))
	assert.False(t, prim.IsPrimitive(celsius{}))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		in   any
		want prim.Kind
	}{
		{nil, prim.KindNullish},
		{(*int)(nil), prim.KindNullish},
		{false, prim.KindBoolean},
		{ptr(1.5), prim.KindNumber},
		{"s", prim.KindString},
		{[2]int{}, prim.KindArray},
		{map[string]int{}, prim.KindObject},
		{func() {}, prim.KindFunction},
		{make(chan int), prim.KindOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, prim.KindOf(tt.in), "%#v", tt.in)
	}
	assert.Equal(t, "number", prim.KindNumber.String())
}

// ─── Normalisation ───────────────────────────────────────────────────────────

func TestBase(t *testing.T) {
	assert.Equal(t, int64(3), prim.Base(meters(3)))
	assert.Equal(t, int64(3), prim.Base(3))
	assert.Equal(t, uint64(7), prim.Base(uint16(7)))
	assert.Equal(t, float64(float32(0.5)), prim.Base(float32(0.5)))
	assert.Equal(t, "x", prim.Base("x"))
	assert.Equal(t, true, prim.Base(true))
	c := celsius{1}
	assert.Equal(t, c, prim.Base(c))
}

func TestValueOf(t *testing.T) {
	assert.Nil(t, prim.ValueOf(nil, prim.HintDefault))
	assert.Nil(t, prim.ValueOf((*int)(nil), prim.HintDefault))
	assert.Equal(t, int64(4), prim.ValueOf(ptr(4), prim.HintDefault))
	assert.Equal(t, "x", prim.ValueOf(ptr(ptr("x")), prim.HintDefault))
	assert.Equal(t, 21.5, prim.ValueOf(celsius{21.5}, prim.HintNumber))
	assert.Equal(t, 21.5, prim.ValueOf(&celsius{21.5}, prim.HintNumber))

	// Stringer is not consulted.
	l := label{"a"}
	assert.Equal(t, l, prim.ValueOf(l, prim.HintString))
}

func TestUnwrapPriority(t *testing.T) {
	assert.Equal(t, int64(1), prim.Unwrap(layered{}, prim.HintNumber))
	assert.Equal(t, "primitive-string", prim.Unwrap(layered{}, prim.HintString))
	assert.Equal(t, "opaque", prim.Unwrap(opaque{}, prim.HintNumber))
	assert.Equal(t, "a", prim.Unwrap(label{"a"}, prim.HintString))
	assert.Equal(t, 21.5, prim.Unwrap(celsius{21.5}, prim.HintString))

	plain := struct{ A int }{1}
	assert.Equal(t, plain, prim.Unwrap(plain, prim.HintDefault))
}

func TestNamedPrimitiveHooksWin(t *testing.T) {
	assert.Equal(t, 2.5, prim.ValueOf(cents(250), prim.HintNumber))
	assert.Equal(t, 2.5, prim.Unwrap(ptr(cents(250)), prim.HintNumber))
	assert.Equal(t, int64(3), prim.ValueOf(meters(3), prim.HintNumber))
}
