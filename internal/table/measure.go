package table

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// measurer counts content length either in runes or in terminal cells.
type measurer struct {
	wide bool
}

// width measures content in runes, or in terminal cells when wide is set.
func (m measurer) width(s string) int {
	if m.wide {
		return runewidth.StringWidth(s)
	}
	return utf8.RuneCountInString(s)
}

// truncate drops characters past n. No ellipsis is added.
func (m measurer) truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if m.width(s) <= n {
		return s
	}
	if m.wide {
		return runewidth.Truncate(s, n, "")
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// fit truncates s to n and pads it according to align.
func (m measurer) fit(s string, n int, align Align) string {
	s = m.truncate(s, n)
	extra := n - m.width(s)
	if extra <= 0 {
		return s
	}

	switch align {
	case AlignCenter:
		left := (extra + 1) / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", extra-left)
	case AlignRight:
		return strings.Repeat(" ", extra) + s
	default:
		return s + strings.Repeat(" ", extra)
	}
}
