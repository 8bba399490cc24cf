// Package table renders rows of cells as a bordered text table for terminals.
//
// Cells may span several columns or rows. Layout is greedy and left to right:
// a cell lands on the first column of its row not already taken by a row span
// from above, so spans compose across rows without explicit coordinates.
package table

import (
	"strings"

	"github.com/dedene/termtable/internal/color"
)

// Render lays out rows and returns the table as lines joined by "\n", with
// no trailing newline. The only error is a malformed color token, which
// aborts the whole call.
func Render(rows [][]any, opts Options) (string, error) {
	headStyle := &color.Style{Color: opts.Style.Head}
	borderStyle := &color.Style{Color: opts.Style.Border}
	if err := color.Validate(headStyle); err != nil {
		return "", err
	}
	if err := color.Validate(borderStyle); err != nil {
		return "", err
	}

	m := measurer{wide: opts.WideChars}
	chars := DefaultChars.With(opts.Chars)
	pad := opts.pad()
	sep := m.width(chars.Middle)

	g := layoutGrid(opts.Head, rows)

	var widths []int
	if opts.BalanceSpans {
		widths = computeBalancedWidths(g, opts.ColWidths, pad, sep, m)
	} else {
		widths = computeWidths(g, opts.ColWidths, m)
	}

	r := &renderer{
		chars:  chars,
		widths: widths,
		pad:    pad,
		sep:    sep,
		m:      m,
		opts:   &opts,
		head:   headStyle,
		border: borderStyle,
	}

	var lines []string
	emit := func(line string, err error) error {
		if err != nil {
			return err
		}
		if line != "" {
			lines = append(lines, line)
		}
		return nil
	}

	if !opts.Style.NoBorder {
		if err := emit(r.top()); err != nil {
			return "", err
		}
	}

	if g.header != nil {
		if err := emit(r.renderRow(g.header, nil, true)); err != nil {
			return "", err
		}
		if err := emit(r.separator()); err != nil {
			return "", err
		}
	}

	for i, row := range g.body {
		if err := emit(r.renderRow(row, g.covered(i), false)); err != nil {
			return "", err
		}
	}

	if !opts.Style.NoBorder {
		if err := emit(r.bottom()); err != nil {
			return "", err
		}
	}

	return strings.Join(lines, "\n"), nil
}
