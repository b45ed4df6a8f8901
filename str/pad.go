package str

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Insert inserts fragment into s before the rune at index. A negative index
// counts from the end, -1 meaning after the last rune. Indexes past either
// end are clamped, so a large index appends and a very negative one
// prepends.
//
//	Insert("world", "hello", -1) // → "worldhello"
//	Insert("world", "hello ", 0) // → "hello world"
func Insert(s, fragment string, index int) string {
	runes := []rune(s)
	n := len(runes)
	if index < 0 {
		index = max(n+1+index, 0)
	}
	index = min(index, n)
	return string(runes[:index]) + fragment + string(runes[index:])
}

// PadStart left-pads s with repetitions of pad until it is width runes long.
// The last repetition is truncated when it does not fit. s is returned
// unchanged when it is already wide enough or pad is empty. The padding is
// allocated in full, at least width-len(s) bytes, so width should come from
// a trusted bound.
//
//	PadStart("5", 3, "0")    // → "005"
//	PadStart("abc", 6, "12") // → "121abc"
func PadStart(s string, width int, pad string) string {
	p := padding(s, width, pad)
	if p == "" {
		return s
	}
	return p + s
}

// PadEnd right-pads s; see [PadStart].
func PadEnd(s string, width int, pad string) string {
	p := padding(s, width, pad)
	if p == "" {
		return s
	}
	return s + p
}

func padding(s string, width int, pad string) string {
	need := width - utf8.RuneCountInString(s)
	if need <= 0 || pad == "" {
		return ""
	}
	n := utf8.RuneCountInString(pad)
	rem := need % n

	var b strings.Builder
	b.Grow((need/n + 1) * len(pad))
	for range need / n {
		b.WriteString(pad)
	}
	for _, r := range pad {
		if rem == 0 {
			break
		}
		b.WriteRune(r)
		rem--
	}
	return b.String()
}

// Truncate shortens s to at most limit runes, trims trailing whitespace
// from the cut and appends end. Strings that already fit are returned
// unchanged.
//
//	Truncate("The quick brown fox", 9, "...") // → "The quick..."
func Truncate(s string, limit int, end string) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimRightFunc(string(runes[:max(limit, 0)]), unicode.IsSpace) + end
}
