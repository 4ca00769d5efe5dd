package ui

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// RuneWidth returns the number of text cells used to display r with a
// monospaced font. Ambiguous East Asian runes are counted as narrow.
func RuneWidth(r rune) int {
	if !unicode.IsGraphic(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	}
	return 1
}

// Width computes the width in text cells of s.
func Width(s []byte) int {
	w := 0
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRune(s[i:])
		i += n
		w += RuneWidth(r)
	}
	return w
}

// Clip quotes s as a Go string and clips the result to max cells, with a
// trailing ellipsis. A max of zero or less disables clipping.
func Clip(s string, max int) string {
	q := strconv.QuoteToGraphic(s)
	if max <= 0 || Width([]byte(q)) <= max {
		return q
	}
	var b strings.Builder
	w := 0
	for _, r := range q {
		rw := RuneWidth(r)
		if w+rw > max-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	b.WriteRune('…')
	return b.String()
}

// Caret returns a line of spaces ending with a caret under the byte column
// col (1-based) of line.
func Caret(line []byte, col int) string {
	b := col - 1
	if b > len(line) {
		b = len(line)
	}
	if b < 0 {
		b = 0
	}
	return strings.Repeat(" ", Width(line[:b])) + "^"
}
