package str

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/huandu/xstrings"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ─────────────────────────────────────────────────────────────────────────────
// First rune
// ─────────────────────────────────────────────────────────────────────────────

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string { return mapFirst(s, unicode.ToUpper) }

// Decapitalize lower-cases the first rune of s and leaves the rest untouched.
func Decapitalize(s string) string { return mapFirst(s, unicode.ToLower) }

func mapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	m := fn(r)
	if m == r {
		return s
	}
	return string(m) + s[size:]
}

// ─────────────────────────────────────────────────────────────────────────────
// Words
// ─────────────────────────────────────────────────────────────────────────────

// isBoundary reports whether r ends a word for the *Words helpers.
func isBoundary(r rune) bool { return r == '-' || unicode.IsSpace(r) }

// CapitalizeWords upper-cases the first rune of every word. A word starts
// at the beginning of s or right after whitespace or a hyphen. Invalid
// UTF-8 bytes are copied verbatim.
//
//	CapitalizeWords("jean-luc picard") // → "Jean-Luc Picard"
func CapitalizeWords(s string) string { return mapWordStarts(s, unicode.ToUpper) }

// DecapitalizeWords lower-cases the first rune of every word, using the same
// word boundaries as [CapitalizeWords].
func DecapitalizeWords(s string) string { return mapWordStarts(s, unicode.ToLower) }

func mapWordStarts(s string, fn func(rune) rune) string {
	var b strings.Builder
	b.Grow(len(s))
	start := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteByte(s[i])
		case start && !isBoundary(r):
			b.WriteRune(fn(r))
		default:
			b.WriteRune(r)
		}
		start = isBoundary(r)
		i += size
	}
	return b.String()
}

// TitleCase title-cases every word of s using the language rules of the
// first tag given (language.Und when none is). Words are delimited as in
// [CapitalizeWords]; interior casing such as acronyms is kept.
//
//	TitleCase("the NASA way")               // → "The NASA Way"
//	TitleCase("ijssel", language.Dutch)     // → "IJssel"
func TitleCase(s string, tags ...language.Tag) string {
	tag := language.Und
	if len(tags) > 0 {
		tag = tags[0]
	}
	caser := cases.Title(tag, cases.NoLower)

	var b, word strings.Builder
	b.Grow(len(s))
	flush := func() {
		if word.Len() > 0 {
			b.WriteString(caser.String(word.String()))
			word.Reset()
		}
	}
	// Invalid bytes are copied verbatim and end the word they interrupt.
	raw := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			flush()
			b.WriteByte(s[i])
			raw = true
		case isBoundary(r):
			flush()
			b.WriteRune(r)
			raw = false
		case raw:
			b.WriteRune(r)
		default:
			word.WriteRune(r)
		}
		i += size
	}
	flush()
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Identifier styles
// ─────────────────────────────────────────────────────────────────────────────

// SnakeCase converts s to snake_case.
//
//	SnakeCase("HTTPServer") // → "http_server"
func SnakeCase(s string) string { return xstrings.ToSnakeCase(s) }

// KebabCase converts s to kebab-case.
func KebabCase(s string) string { return xstrings.ToKebabCase(s) }

// PascalCase converts s to PascalCase.
//
//	PascalCase("some_words") // → "SomeWords"
func PascalCase(s string) string { return xstrings.ToCamelCase(SnakeCase(s)) }

// CamelCase converts s to camelCase.
//
//	CamelCase("some_words") // → "someWords"
func CamelCase(s string) string { return Decapitalize(PascalCase(s)) }

// SwapCase inverts the case of every rune.
func SwapCase(s string) string { return xstrings.SwapCase(s) }

// Reverse reverses s rune by rune.
func Reverse(s string) string { return xstrings.Reverse(s) }
