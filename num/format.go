package num

import (
	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatOptions controls locale-aware number formatting.
type FormatOptions struct {
	// Locale selects grouping and decimal separators.
	// Defaults to English when left as the zero tag.
	Locale language.Tag

	// MinFractionDigits is the minimum number of fraction digits shown;
	// trailing zeros are added to reach it.
	MinFractionDigits int

	// MaxFractionDigits is the maximum number of fraction digits shown;
	// the value is rounded to fit. Values below MinFractionDigits are
	// raised to it.
	MaxFractionDigits int

	// NoGrouping disables the thousands separator.
	NoGrouping bool
}

// DefaultFormatOptions returns English formatting with between 0 and 3
// fraction digits and grouping enabled.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Locale:            language.English,
		MinFractionDigits: 0,
		MaxFractionDigits: 3,
	}
}

func (o FormatOptions) numberOptions() (language.Tag, []number.Option) {
	tag := o.Locale
	if tag == language.Und {
		tag = language.English
	}
	lo, hi := o.MinFractionDigits, o.MaxFractionDigits
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	opts := []number.Option{number.MinFractionDigits(lo), number.MaxFractionDigits(hi)}
	if o.NoGrouping {
		opts = append(opts, number.NoSeparator())
	}
	return tag, opts
}

// Format renders the loose number v for opts.Locale.
//
//	Format(1234567.891, DefaultFormatOptions())                  // → "1,234,567.891"
//	Format(1234.5, FormatOptions{Locale: language.German,
//	    MinFractionDigits: 2, MaxFractionDigits: 2})              // → "1.234,50"
//
// Values that coerce to NaN or ±Inf render as [ToString] does.
func Format(v any, opts FormatOptions) string {
	f := Number(v)
	if !finite(f) {
		return ToString(f)
	}
	tag, nopts := opts.numberOptions()
	return message.NewPrinter(tag).Sprint(number.Decimal(f, nopts...))
}

// FormatPercent renders the loose number v as a percentage of 1 for
// opts.Locale: 0.256 → "25.6%".
func FormatPercent(v any, opts FormatOptions) string {
	f := Number(v)
	if !finite(f) {
		return ToString(f)
	}
	tag, nopts := opts.numberOptions()
	return message.NewPrinter(tag).Sprint(number.Percent(f, nopts...))
}

// ─────────────────────────────────────────────────────────────────────────────
// Human-friendly forms
// ─────────────────────────────────────────────────────────────────────────────

// Comma renders v with comma thousands separators and no rounding:
// 1234567.25 → "1,234,567.25".
func Comma(v any) string {
	f := Number(v)
	if !finite(f) {
		return ToString(f)
	}
	return humanize.Commaf(f)
}

// Ordinal renders n with its English ordinal suffix: 1 → "1st", 12 → "12th".
func Ordinal(n int) string { return humanize.Ordinal(n) }

// Bytes renders a byte count with SI units: 82854982 → "83 MB".
func Bytes(n uint64) string { return humanize.Bytes(n) }
