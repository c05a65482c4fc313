// Package render provides display-width utilities for the statusline
// Render Layer: escape-aware measurement and filling
package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Strip removes ANSI escape sequences from a string
func Strip(s string) string {
	return ansi.Strip(s)
}

// Measure returns the display width of a string, ignoring escape sequences.
// This correctly handles emoji and wide characters (e.g., CJK)
func Measure(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// Sub returns a-b, saturating at zero
func Sub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// Spaces returns n spaces; non-positive n yields an empty string
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Fill repeats fill until it spans exactly width columns. A wide fill that
// cannot land on width exactly is padded with spaces.
func Fill(fill string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(fill)
	if w == 0 {
		return Spaces(width)
	}
	n := width / w
	return strings.Repeat(fill, n) + Spaces(width-n*w)
}

// Truncate truncates a string to the given display width. Escape
// sequences are kept intact and do not count towards the width.
func Truncate(s string, width int) string {
	return ansi.Truncate(s, width, "")
}
