// Package str provides loose-to-strict string coercion, string predicates,
// literal-separator search and extraction, case conversion, padding, accent
// normalisation and random string generation, in the spirit of Laravel's
// Str facade.
//
// # Coercion
//
// [String] is the package entry point. It never fails:
//
//	str.String(nil)            // → ""
//	str.String(1e21)           // → "1e+21"
//	str.String([]any{1, "a"})  // → "1,a"
//
// # Occurrence indexing
//
// The search helpers work on literal separators and count non-overlapping
// occurrences from the left. A negative occurrence index counts from the
// end, -1 being the last occurrence. Returned positions are byte offsets.
//
//	str.NthIndexOf("1.2.0", ".", 1)   // → 3
//	str.BeforeNth("a/b/c", "/", -1)   // → "a/b"
//	str.SplitFirst("foo:bar:baz", ":") // → ["foo", "bar:baz"]
//	str.Between("foo bar foo", "foo", "foo") // → " bar "
//
// # Unicode
//
// Character-oriented helpers ([Insert], [PadStart], [PadEnd], [Truncate],
// [Capitalize]) count runes, not bytes. [Unaccent] and [TitleCase] are built
// on golang.org/x/text.
package str
