package table

import "strings"

// Align is the horizontal alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the name used in option files and flags.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign maps a name onto an Align. Unknown names fall back to left.
func ParseAlign(s string) Align {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre", "middle":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// Style controls colors and spacing for the whole table.
type Style struct {
	// Head colors header cells that carry no style of their own.
	Head []string
	// Border colors every border glyph.
	Border []string
	// NoBorder drops the top and bottom border lines. The header separator
	// and vertical glyphs stay.
	NoBorder bool
	// Compact removes the spaces around cell content.
	Compact bool
	// Padding is the number of spaces on each side of cell content when not
	// compact. Zero means the default of 1.
	Padding int
}

// Options configures a single Render call.
type Options struct {
	Chars     CharsOverride
	Style     Style
	Head      []string
	ColWidths []int
	ColAligns []Align

	// WideChars measures content by terminal display width instead of rune
	// count, for CJK and emoji content.
	WideChars bool
	// BalanceSpans sizes columns so every spanning cell fits its columns,
	// spreading any shortfall across them, instead of estimating each
	// swallowed column at a fixed width.
	BalanceSpans bool
}

const (
	// cellPadding is added to every computed or fixed column width.
	cellPadding = 2
	// spanEstimate stands in for a swallowed column's unknown width.
	spanEstimate = 10
	defaultPad   = 1
)

func (o *Options) pad() int {
	if o.Style.Compact {
		return 0
	}
	if o.Style.Padding > 0 {
		return o.Style.Padding
	}
	return defaultPad
}

func (o *Options) align(col int) Align {
	if col >= 0 && col < len(o.ColAligns) {
		return o.ColAligns[col]
	}
	return AlignLeft
}

// fixedWidth returns the caller's width for col, or 0 when none was given.
func fixedWidth(colWidths []int, col int) int {
	if col < len(colWidths) && colWidths[col] > 0 {
		return colWidths[col]
	}
	return 0
}
