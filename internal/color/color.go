// Package color resolves color tokens into terminal escape sequences.
package color

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Reset is the sequence that clears every attribute set by a style.
const Reset = termenv.CSI + termenv.ResetSeq + "m"

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// named holds the fixed vocabulary. Colors carry foreground and background
// variants; decorations ignore the background flag.
type named struct {
	color      termenv.Color
	decoration string
}

var vocabulary = map[string]named{
	"black":   {color: termenv.ANSIBlack},
	"red":     {color: termenv.ANSIRed},
	"green":   {color: termenv.ANSIGreen},
	"yellow":  {color: termenv.ANSIYellow},
	"blue":    {color: termenv.ANSIBlue},
	"magenta": {color: termenv.ANSIMagenta},
	"cyan":    {color: termenv.ANSICyan},
	"white":   {color: termenv.ANSIWhite},
	"gray":    {color: termenv.ANSIBrightBlack},
	"grey":    {color: termenv.ANSIBrightBlack},

	"brightblack":   {color: termenv.ANSIBrightBlack},
	"brightred":     {color: termenv.ANSIBrightRed},
	"brightgreen":   {color: termenv.ANSIBrightGreen},
	"brightyellow":  {color: termenv.ANSIBrightYellow},
	"brightblue":    {color: termenv.ANSIBrightBlue},
	"brightmagenta": {color: termenv.ANSIBrightMagenta},
	"brightcyan":    {color: termenv.ANSIBrightCyan},
	"brightwhite":   {color: termenv.ANSIBrightWhite},

	"bold":          {decoration: termenv.BoldSeq},
	"dim":           {decoration: termenv.FaintSeq},
	"italic":        {decoration: termenv.ItalicSeq},
	"underline":     {decoration: termenv.UnderlineSeq},
	"blink":         {decoration: termenv.BlinkSeq},
	"inverse":       {decoration: termenv.ReverseSeq},
	"hidden":        {decoration: "8"},
	"strikethrough": {decoration: termenv.CrossOutSeq},
	"overline":      {decoration: termenv.OverlineSeq},
}

// Style is a set of foreground and background tokens. Each list is applied
// in order, so a color can be combined with decorations.
type Style struct {
	Color      []string `json:"color,omitempty"`
	Background []string `json:"background,omitempty"`
}

// IsZero reports whether the style carries no tokens.
func (s *Style) IsZero() bool {
	return s == nil || (len(s.Color) == 0 && len(s.Background) == 0)
}

// Resolve converts a named token or a #RRGGBB string into an escape sequence.
func Resolve(token string, background bool) (string, error) {
	if strings.HasPrefix(token, "#") {
		return hexSequence(token, background)
	}

	n, ok := vocabulary[normalizeName(token)]
	if !ok {
		return "", &InvalidColorFormatError{Input: token}
	}
	if n.decoration != "" {
		return termenv.CSI + n.decoration + "m", nil
	}
	return termenv.CSI + n.color.Sequence(background) + "m", nil
}

// HexToForeground converts #RRGGBB into a 256-color foreground sequence.
func HexToForeground(hex string) (string, error) {
	return hexSequence(hex, false)
}

// HexToBackground converts #RRGGBB into a 256-color background sequence.
func HexToBackground(hex string) (string, error) {
	return hexSequence(hex, true)
}

// Sequence resolves every token and concatenates the results in order.
func Sequence(tokens []string, background bool) (string, error) {
	var sb strings.Builder
	for _, t := range tokens {
		seq, err := Resolve(t, background)
		if err != nil {
			return "", err
		}
		sb.WriteString(seq)
	}
	return sb.String(), nil
}

// Apply wraps text in the style's sequences followed by a reset.
// A nil or empty style returns text unchanged.
func Apply(text string, style *Style) (string, error) {
	if style.IsZero() {
		return text, nil
	}

	fg, err := Sequence(style.Color, false)
	if err != nil {
		return "", err
	}
	bg, err := Sequence(style.Background, true)
	if err != nil {
		return "", err
	}
	return fg + bg + text + Reset, nil
}

// Validate checks every token of the style without producing output.
func Validate(style *Style) error {
	_, err := Apply("", style)
	return err
}

// Names returns the named tokens in sorted order.
func Names() []string {
	names := make([]string, 0, len(vocabulary))
	for name := range vocabulary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PaletteIndex maps an RGB triple onto the 6x6x6 cube of the 256-color palette.
func PaletteIndex(r, g, b uint8) int {
	level := func(v uint8) int {
		return int(math.Round(float64(v) / 51))
	}
	return 16 + 36*level(r) + 6*level(g) + level(b)
}

// HexIndex returns the 256-color palette index for #RRGGBB.
func HexIndex(hex string) (int, error) {
	if !hexPattern.MatchString(hex) {
		return 0, &InvalidColorFormatError{Input: hex}
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, &InvalidColorFormatError{Input: hex}
	}
	r, g, b := c.RGB255()
	return PaletteIndex(r, g, b), nil
}

func hexSequence(hex string, background bool) (string, error) {
	i, err := HexIndex(hex)
	if err != nil {
		return "", err
	}
	return termenv.CSI + termenv.ANSI256Color(i).Sequence(background) + "m", nil
}

// normalizeName folds case and the separators people use in multi-word names
// (brightRed, bright-red, bright_red).
func normalizeName(token string) string {
	s := strings.ToLower(strings.TrimSpace(token))
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

// describe is used in error messages to keep control bytes out of them.
func describe(s string) string {
	return strconv.Quote(s)
}
