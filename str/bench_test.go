package str_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-primitive-kit/str"
)

var dotted = strings.Repeat("segment.", 1_000)

func BenchmarkNthIndexOfForward(b *testing.B) {
	for i := 0; i < b.N; i++ {
		str.NthIndexOf(dotted, ".", 500)
	}
}

func BenchmarkNthIndexOfBackward(b *testing.B) {
	for i := 0; i < b.N; i++ {
		str.NthIndexOf(dotted, ".", -500)
	}
}

func BenchmarkUnaccent(b *testing.B) {
	s := strings.Repeat("Crème brûlée à la façon Ærøskøbing ", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		str.Unaccent(s)
	}
}

func BenchmarkString(b *testing.B) {
	v := []any{1, 2.5, "x", nil, true, []int{1, 2, 3}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		str.String(v)
	}
}

func BenchmarkRandom(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = str.Random(32)
	}
}
