package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dedene/termtable/internal/color"
	"github.com/dedene/termtable/internal/errfmt"
	"github.com/dedene/termtable/internal/output"
	"github.com/dedene/termtable/internal/table"
	"github.com/dedene/termtable/internal/ui"
)

// ColorsCmd groups color subcommands.
type ColorsCmd struct {
	List ColorsListCmd `cmd:"" default:"1" help:"List the named color tokens"`
	Hex  ColorsHexCmd  `cmd:"" help:"Show the escape sequence for a #RRGGBB color"`
}

// ColorsListCmd lists the named tokens.
type ColorsListCmd struct{}

type namedColor struct {
	Name       string `json:"name"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

func (c *ColorsListCmd) Run(ctx context.Context, cli *CLI, log *logrus.Logger) error {
	names := color.Names()
	entries := make([]namedColor, len(names))
	for i, name := range names {
		fg, err := color.Resolve(name, false)
		if err != nil {
			return err
		}
		bg, err := color.Resolve(name, true)
		if err != nil {
			return err
		}
		entries[i] = namedColor{Name: name, Foreground: fg, Background: bg}
	}

	switch output.GetMode(ctx) {
	case output.ModeJSON:
		return output.WriteJSON(stdout, entries)
	case output.ModePlain:
		rows := make([][]string, len(entries))
		for i, e := range entries {
			rows[i] = []string{e.Name, fmt.Sprintf("%q", e.Foreground), fmt.Sprintf("%q", e.Background)}
		}
		return output.WriteTSV(stdout, []string{"NAME", "FOREGROUND", "BACKGROUND"}, rows)
	}

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}
	colors, err := cli.colors(cfg)
	if err != nil {
		return err
	}

	t := output.NewTable(stdout, "Name", "Sample", "Sequence")
	for _, e := range entries {
		sample := table.Rich{Content: "sample"}
		if colors.Enabled() {
			sample.Style = &color.Style{Color: []string{e.Name}}
		}
		t.AddRow(e.Name, sample, fmt.Sprintf("%q", e.Foreground))
	}
	log.WithField("count", t.RowCount()).Debug("listing named colors")
	return t.Render()
}

// ColorsHexCmd prints the 256-color sequence for a hex color.
type ColorsHexCmd struct {
	Hex        string `arg:"" help:"Color as #RRGGBB"`
	Background bool   `help:"Show the background sequence" short:"b"`
}

type hexColor struct {
	Hex      string `json:"hex"`
	Index    int    `json:"index"`
	Sequence string `json:"sequence"`
}

func (c *ColorsHexCmd) Run(ctx context.Context, cli *CLI, log *logrus.Logger) error {
	index, err := color.HexIndex(c.Hex)
	if err != nil {
		return errfmt.WrapWithSuggestion(err, "Use six hex digits, e.g. 'termtable colors hex #ff8800'")
	}

	seq, err := color.HexToForeground(c.Hex)
	if c.Background {
		seq, err = color.HexToBackground(c.Hex)
	}
	if err != nil {
		return err
	}

	result := hexColor{Hex: c.Hex, Index: index, Sequence: seq}
	switch output.GetMode(ctx) {
	case output.ModeJSON:
		return output.WriteJSON(stdout, result)
	case output.ModePlain:
		return output.WriteTSV(stdout, nil, [][]string{{result.Hex, fmt.Sprint(result.Index), fmt.Sprintf("%q", result.Sequence)}})
	}

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}
	colors, err := cli.colors(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s  %s  %q  %s\n", c.Hex, ui.Note(fmt.Sprintf("palette %d", index)), seq, colors.Swatch(c.Hex, 4))
	return nil
}
