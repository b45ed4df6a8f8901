package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-primitive-kit/arr"
)

// makeInts creates a slice of n ints with every value repeated twice.
func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i / 2
	}
	return items
}

func BenchmarkDeduplicate(b *testing.B) {
	src := makeInts(10_000)
	buf := make([]int, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		arr.Deduplicate(buf)
	}
}

func BenchmarkDeduplicateAny(b *testing.B) {
	src := arr.Array(makeInts(10_000))
	buf := make([]any, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		_, _ = arr.DeduplicateAny(buf)
	}
}

func BenchmarkEqualsDeep(b *testing.B) {
	x, y := arr.Array(makeInts(1_000)), arr.Array(makeInts(1_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.EqualsDeep(x, y)
	}
}
