package str

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ligatures maps letters that have no canonical decomposition to their
// plain Latin spelling.
var ligatures = map[rune]string{
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'ß': "ss", 'ẞ': "SS",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'ł': "l", 'Ł': "L",
	'þ': "th", 'Þ': "TH",
	'ı': "i",
	'ħ': "h", 'Ħ': "H",
	'ŧ': "t", 'Ŧ': "T",
}

// Unaccent strips diacritics from letters and expands ligatures:
//
//	Unaccent("éàç")    // → "eac"
//	Unaccent("ﬁèﬂ")    // → "fiefl"
//	Unaccent("Ærøskøbing") // → "AEroskobing"
//
// Letters are compatibility-decomposed, stripped of nonspacing marks and
// recomposed. Standalone nonspacing marks are dropped. Every other rune
// (digits, punctuation, symbols) is kept as is. Unaccent is idempotent.
func Unaccent(s string) string {
	chain := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := ligatures[r]; ok {
			b.WriteString(repl)
			continue
		}
		switch {
		case unicode.Is(unicode.Mn, r):
		case unicode.IsLetter(r) && r >= 0x80:
			out, _, err := transform.String(chain, string(r))
			if err != nil {
				b.WriteRune(r)
				continue
			}
			// ǽ decomposes to æ plus a mark.
			for _, d := range out {
				if repl, ok := ligatures[d]; ok {
					b.WriteString(repl)
				} else {
					b.WriteRune(d)
				}
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
