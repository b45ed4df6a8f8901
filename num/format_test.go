package num_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-primitive-kit/num"
)

func TestFormat(t *testing.T) {
	two := func(tag language.Tag) num.FormatOptions {
		return num.FormatOptions{Locale: tag, MinFractionDigits: 2, MaxFractionDigits: 2}
	}
	tests := []struct {
		name string
		in   any
		opts num.FormatOptions
		want string
	}{
		{"default grouping", 1234567.891, num.DefaultFormatOptions(), "1,234,567.891"},
		{"default integer", 1234567, num.DefaultFormatOptions(), "1,234,567"},
		{"default rounds to three", 0.12345, num.DefaultFormatOptions(), "0.123"},
		{"loose input", "1234", num.DefaultFormatOptions(), "1,234"},
		{"fixed fraction", 1234.5, two(language.English), "1,234.50"},
		{"german", 1234.5, two(language.German), "1.234,50"},
		{"zero tag is english", 1234.5, num.FormatOptions{MaxFractionDigits: 1}, "1,234.5"},
		{"no grouping", 1234.5, num.FormatOptions{MaxFractionDigits: 1, NoGrouping: true}, "1234.5"},
		{"max below min", 1.5, num.FormatOptions{MinFractionDigits: 2, MaxFractionDigits: 0}, "1.50"},
		{"not a number", "abc", num.DefaultFormatOptions(), "NaN"},
		{"infinite", math.Inf(-1), num.DefaultFormatOptions(), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, num.Format(tt.in, tt.opts))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "25%", num.FormatPercent(0.25, num.DefaultFormatOptions()))
	assert.Equal(t, "NaN", num.FormatPercent(nil, num.DefaultFormatOptions()))
}

func TestHumanForms(t *testing.T) {
	assert.Equal(t, "1,234,567.25", num.Comma(1234567.25))
	assert.Equal(t, "-1,234", num.Comma("-1234"))
	assert.Equal(t, "NaN", num.Comma("x"))

	assert.Equal(t, "1st", num.Ordinal(1))
	assert.Equal(t, "11th", num.Ordinal(11))
	assert.Equal(t, "22nd", num.Ordinal(22))
	assert.Equal(t, "103rd", num.Ordinal(103))

	assert.Equal(t, "83 MB", num.Bytes(82854982))
}
