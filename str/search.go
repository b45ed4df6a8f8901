package str

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Occurrence indexing
// ─────────────────────────────────────────────────────────────────────────────

// occurrences returns the byte offsets of every non-overlapping occurrence
// of sep in s, scanning left to right.
func occurrences(s, sep string) []int {
	var idx []int
	for offset := 0; ; {
		j := strings.Index(s[offset:], sep)
		if j < 0 {
			return idx
		}
		idx = append(idx, offset+j)
		offset += j + len(sep)
	}
}

// NthIndexOf returns the byte offset of the n-th (zero-based) non-overlapping
// occurrence of sep in s, or -1 if there is no such occurrence. A negative n
// counts from the end, -1 being the last occurrence. An empty sep matches
// nothing.
//
//	NthIndexOf("1.2.0", ".", 1)  // → 3
//	NthIndexOf("1.2.0", ".", -1) // → 3
//	NthIndexOf("1.2.0", ".", -3) // → -1
func NthIndexOf(s, sep string, n int) int {
	if sep == "" {
		return -1
	}
	if n >= 0 {
		offset := 0
		for i := 0; ; i++ {
			j := strings.Index(s[offset:], sep)
			if j < 0 {
				return -1
			}
			if i == n {
				return offset + j
			}
			offset += j + len(sep)
		}
	}
	idx := occurrences(s, sep)
	k := len(idx) + n
	if k < 0 {
		return -1
	}
	return idx[k]
}

// Count returns the number of non-overlapping occurrences of sep in s. An
// empty sep matches nothing.
func Count(s, sep string) int {
	if sep == "" {
		return 0
	}
	return strings.Count(s, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Before / After
// ─────────────────────────────────────────────────────────────────────────────

// BeforeNth returns the part of s preceding the n-th occurrence of sep (see
// [NthIndexOf]), or "" if that occurrence does not exist.
func BeforeNth(s, sep string, n int) string {
	i := NthIndexOf(s, sep, n)
	if i < 0 {
		return ""
	}
	return s[:i]
}

// AfterNth returns the part of s following the n-th occurrence of sep (see
// [NthIndexOf]), or "" if that occurrence does not exist.
func AfterNth(s, sep string, n int) string {
	i := NthIndexOf(s, sep, n)
	if i < 0 {
		return ""
	}
	return s[i+len(sep):]
}

// Before returns the part of s preceding the first occurrence of sep.
func Before(s, sep string) string { return BeforeNth(s, sep, 0) }

// After returns the part of s following the first occurrence of sep.
func After(s, sep string) string { return AfterNth(s, sep, 0) }

// BeforeLast returns the part of s preceding the last occurrence of sep.
func BeforeLast(s, sep string) string { return BeforeNth(s, sep, -1) }

// AfterLast returns the part of s following the last occurrence of sep.
func AfterLast(s, sep string) string { return AfterNth(s, sep, -1) }

// ─────────────────────────────────────────────────────────────────────────────
// Splitting
// ─────────────────────────────────────────────────────────────────────────────

// SplitFirst splits s around the first occurrence of sep. When sep is empty
// or absent the result is [s, ""].
//
//	SplitFirst("foo:bar:baz", ":") // → ["foo", "bar:baz"]
func SplitFirst(s, sep string) [2]string {
	return splitAt(s, sep, NthIndexOf(s, sep, 0))
}

// SplitLast splits s around the last occurrence of sep. When sep is empty
// or absent the result is [s, ""].
//
//	SplitLast("foo:bar:baz", ":") // → ["foo:bar", "baz"]
func SplitLast(s, sep string) [2]string {
	return splitAt(s, sep, NthIndexOf(s, sep, -1))
}

func splitAt(s, sep string, i int) [2]string {
	if i < 0 {
		return [2]string{s, ""}
	}
	return [2]string{s[:i], s[i+len(sep):]}
}

// ─────────────────────────────────────────────────────────────────────────────
// Between
// ─────────────────────────────────────────────────────────────────────────────

// Between returns the text after the first occurrence of start and before
// the first occurrence of end that follows it. It returns "" when either
// boundary is missing or empty.
//
//	Between("foo bar foo", "foo", "foo") // → " bar "
func Between(s, start, end string) string {
	return betweenFrom(s, start, end, NthIndexOf(s, start, 0))
}

// BetweenLast is like [Between] but starts after the last occurrence of
// start.
func BetweenLast(s, start, end string) string {
	return betweenFrom(s, start, end, NthIndexOf(s, start, -1))
}

func betweenFrom(s, start, end string, i int) string {
	if i < 0 {
		return ""
	}
	rest := s[i+len(start):]
	j := NthIndexOf(rest, end, 0)
	if j < 0 {
		return ""
	}
	return rest[:j]
}

// Balanced returns the content of the first balanced left…right pair in s,
// honouring nesting, and whether such a pair was found.
//
//	Balanced("f(a(b)c)d", "(", ")") // → "a(b)c", true
//
// When left and right are equal nesting is impossible and Balanced behaves
// like [Between].
func Balanced(s, left, right string) (string, bool) {
	if left == "" || right == "" {
		return "", false
	}
	i := strings.Index(s, left)
	if i < 0 {
		return "", false
	}
	from := i + len(left)
	if left == right {
		j := strings.Index(s[from:], right)
		if j < 0 {
			return "", false
		}
		return s[from : from+j], true
	}
	depth := 1
	for k := from; k < len(s); {
		switch {
		case strings.HasPrefix(s[k:], right):
			depth--
			if depth == 0 {
				return s[from:k], true
			}
			k += len(right)
		case strings.HasPrefix(s[k:], left):
			depth++
			k += len(left)
		default:
			k++
		}
	}
	return "", false
}
