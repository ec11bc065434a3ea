// Package textutil provides unicode-aware truncation for card rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks elided text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, ending with an ellipsis when
// anything was removed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	avail := maxWidth - Width(Ellipsis)
	if avail <= 0 {
		return Ellipsis
	}
	return takeLeft(s, avail) + Ellipsis
}

// TruncateMiddle cuts s to at most maxWidth columns by eliding its middle.
// Image URLs keep both the host and the file name this way.
func TruncateMiddle(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	avail := maxWidth - Width(Ellipsis)
	if avail <= 0 {
		return Ellipsis
	}
	right := avail / 2
	left := avail - right
	return takeLeft(s, left) + Ellipsis + takeRight(s, right)
}

func takeLeft(s string, width int) string {
	out := make([]rune, 0, width)
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out)
}

func takeRight(s string, width int) string {
	runes := []rune(s)
	i := len(runes)
	w := 0
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > width {
			break
		}
		w += rw
		i--
	}
	return string(runes[i:])
}
