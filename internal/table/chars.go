package table

import "sort"

// Glyph names one border position.
type Glyph string

// Border positions, named the way table option files spell them.
const (
	GlyphTop         Glyph = "top"
	GlyphTopMid      Glyph = "top-mid"
	GlyphTopLeft     Glyph = "top-left"
	GlyphTopRight    Glyph = "top-right"
	GlyphBottom      Glyph = "bottom"
	GlyphBottomMid   Glyph = "bottom-mid"
	GlyphBottomLeft  Glyph = "bottom-left"
	GlyphBottomRight Glyph = "bottom-right"
	GlyphLeft        Glyph = "left"
	GlyphLeftMid     Glyph = "left-mid"
	GlyphMid         Glyph = "mid"
	GlyphMidMid      Glyph = "mid-mid"
	GlyphRight       Glyph = "right"
	GlyphRightMid    Glyph = "right-mid"
	GlyphMiddle      Glyph = "middle"
)

// Chars is a complete border glyph set.
type Chars struct {
	Top         string
	TopMid      string
	TopLeft     string
	TopRight    string
	Bottom      string
	BottomMid   string
	BottomLeft  string
	BottomRight string
	Left        string
	LeftMid     string
	Mid         string
	MidMid      string
	Right       string
	RightMid    string
	Middle      string
}

// CharsOverride replaces individual glyphs of a set. Missing keys keep the
// base glyph; an empty value removes the glyph.
type CharsOverride map[Glyph]string

// DefaultChars draws light box-drawing borders.
var DefaultChars = Chars{
	Top: "─", TopMid: "┬", TopLeft: "┌", TopRight: "┐",
	Bottom: "─", BottomMid: "┴", BottomLeft: "└", BottomRight: "┘",
	Left: "│", LeftMid: "├", Mid: "─", MidMid: "┼",
	Right: "│", RightMid: "┤", Middle: "│",
}

// ASCIIChars draws borders with plain ASCII.
var ASCIIChars = Chars{
	Top: "-", TopMid: "+", TopLeft: "+", TopRight: "+",
	Bottom: "-", BottomMid: "+", BottomLeft: "+", BottomRight: "+",
	Left: "|", LeftMid: "+", Mid: "-", MidMid: "+",
	Right: "|", RightMid: "+", Middle: "|",
}

// MarkdownChars produces a pipe table. Top and bottom lines are empty and
// therefore omitted.
var MarkdownChars = Chars{
	Left: "|", LeftMid: "|", Mid: "-", MidMid: "|",
	Right: "|", RightMid: "|", Middle: "|",
}

// RoundedChars is DefaultChars with rounded corners.
var RoundedChars = Chars{
	Top: "─", TopMid: "┬", TopLeft: "╭", TopRight: "╮",
	Bottom: "─", BottomMid: "┴", BottomLeft: "╰", BottomRight: "╯",
	Left: "│", LeftMid: "├", Mid: "─", MidMid: "┼",
	Right: "│", RightMid: "┤", Middle: "│",
}

// DoubleChars draws double-line borders.
var DoubleChars = Chars{
	Top: "═", TopMid: "╦", TopLeft: "╔", TopRight: "╗",
	Bottom: "═", BottomMid: "╩", BottomLeft: "╚", BottomRight: "╝",
	Left: "║", LeftMid: "╠", Mid: "═", MidMid: "╬",
	Right: "║", RightMid: "╣", Middle: "║",
}

var presets = map[string]Chars{
	"default":  DefaultChars,
	"ascii":    ASCIIChars,
	"markdown": MarkdownChars,
	"rounded":  RoundedChars,
	"double":   DoubleChars,
}

// Preset returns the named glyph set.
func Preset(name string) (Chars, bool) {
	c, ok := presets[name]
	return c, ok
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Glyphs lists every border position.
func Glyphs() []Glyph {
	return []Glyph{
		GlyphTop, GlyphTopMid, GlyphTopLeft, GlyphTopRight,
		GlyphBottom, GlyphBottomMid, GlyphBottomLeft, GlyphBottomRight,
		GlyphLeft, GlyphLeftMid, GlyphMid, GlyphMidMid,
		GlyphRight, GlyphRightMid, GlyphMiddle,
	}
}

// Override returns every glyph of c keyed by position, so a preset can be
// passed wherever an override is expected.
func (c Chars) Override() CharsOverride {
	o := make(CharsOverride, 15)
	for _, g := range Glyphs() {
		o[g] = *c.field(g)
	}
	return o
}

// With returns a copy of c with the glyphs in o replaced. Unknown keys are ignored.
func (c Chars) With(o CharsOverride) Chars {
	for g, v := range o {
		if f := c.field(g); f != nil {
			*f = v
		}
	}
	return c
}

func (c *Chars) field(g Glyph) *string {
	switch g {
	case GlyphTop:
		return &c.Top
	case GlyphTopMid:
		return &c.TopMid
	case GlyphTopLeft:
		return &c.TopLeft
	case GlyphTopRight:
		return &c.TopRight
	case GlyphBottom:
		return &c.Bottom
	case GlyphBottomMid:
		return &c.BottomMid
	case GlyphBottomLeft:
		return &c.BottomLeft
	case GlyphBottomRight:
		return &c.BottomRight
	case GlyphLeft:
		return &c.Left
	case GlyphLeftMid:
		return &c.LeftMid
	case GlyphMid:
		return &c.Mid
	case GlyphMidMid:
		return &c.MidMid
	case GlyphRight:
		return &c.Right
	case GlyphRightMid:
		return &c.RightMid
	case GlyphMiddle:
		return &c.Middle
	default:
		return nil
	}
}
