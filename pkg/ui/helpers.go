package ui

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// truncateCells truncates a string to max visual width (cells), adding suffix
// if needed. Uses go-runewidth so wide characters count correctly.
func truncateCells(s string, maxWidth int, suffix string) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	suffixWidth := runewidth.StringWidth(suffix)
	if suffixWidth > maxWidth {
		return runewidth.Truncate(suffix, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth-suffixWidth, "") + suffix
}

// padRight pads s with spaces to the given rune count.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	for n < width {
		s += " "
		n++
	}
	return s
}
