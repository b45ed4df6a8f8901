package obj_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-primitive-kit/obj"
)

func makeNested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
		},
		"score":       42,
		"literal.key": "verbatim",
	}
}

func TestGet(t *testing.T) {
	m := makeNested()

	assert.Equal(t, "Alice", obj.Get(m, "user.name"))
	assert.Equal(t, "London", obj.Get(m, "user.address.city"))
	assert.Equal(t, 42, obj.Get(m, "score"))
	assert.Equal(t, "verbatim", obj.Get(m, "literal.key"))
	assert.Nil(t, obj.Get(m, "missing"))
	assert.Nil(t, obj.Get(m, "score.deeper"))
	assert.Equal(t, "default", obj.Get(m, "user.missing", "default"))
}

func TestSet(t *testing.T) {
	m := map[string]any{}
	obj.Set(m, "a.b.c", 42)
	assert.Equal(t, 42, obj.Get(m, "a.b.c"))

	m = makeNested()
	obj.Set(m, "score.value", 1)
	assert.Equal(t, map[string]any{"value": 1}, m["score"], "scalar replaced by a map")

	obj.Set(m, "user.name", "Bob")
	assert.Equal(t, "Bob", obj.Get(m, "user.name"))
	assert.Equal(t, "London", obj.Get(m, "user.address.city"))
}

func TestHas(t *testing.T) {
	m := makeNested()

	assert.True(t, obj.Has(m, "user.address"))
	assert.False(t, obj.Has(m, "user.phone"))
	assert.True(t, obj.HasAll(m, "user.name", "score"))
	assert.False(t, obj.HasAll(m, "user.name", "nope"))
	assert.False(t, obj.HasAll(m))
	assert.True(t, obj.HasAny(m, "nope", "score"))
	assert.False(t, obj.HasAny(m, "nope"))
}

func TestForget(t *testing.T) {
	m := makeNested()

	obj.Forget(m, "user.address.city")
	assert.False(t, obj.Has(m, "user.address.city"))
	assert.True(t, obj.Has(m, "user.address.country"))

	obj.Forget(m, "literal.key")
	assert.False(t, obj.Has(m, "literal.key"))

	obj.Forget(m, "user.missing.deep")
	assert.True(t, obj.Has(m, "user.name"))
}

func TestDotUndot(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{"b": 1, "c": map[string]any{"d": 2}},
		"e": map[string]any{},
		"f": 3,
	}
	flat := obj.Dot(nested)
	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": 2, "e": map[string]any{}, "f": 3}, flat)
	assert.Equal(t, nested, obj.Undot(flat))
}

func TestMerge(t *testing.T) {
	dst := map[string]any{"a": map[string]any{"x": 1, "y": 2}, "b": 1}
	src := map[string]any{"a": map[string]any{"y": 3, "z": 4}, "b": map[string]any{"n": 1}}

	got := obj.Merge(dst, src)
	assert.Equal(t, map[string]any{
		"a": map[string]any{"x": 1, "y": 3, "z": 4},
		"b": map[string]any{"n": 1},
	}, got)
}
