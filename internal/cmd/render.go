package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dedene/termtable/internal/color"
	"github.com/dedene/termtable/internal/config"
	"github.com/dedene/termtable/internal/input"
	"github.com/dedene/termtable/internal/output"
	"github.com/dedene/termtable/internal/table"
)

// RenderCmd renders a table document.
type RenderCmd struct {
	File string `arg:"" optional:"" help:"Input file; '-' or omitted reads stdin"`

	Format      string   `help:"Input format: json5, csv, tsv (default: by extension, json5 on stdin)" short:"f"`
	Header      bool     `help:"Use the first CSV/TSV record as the header"`
	Head        []string `help:"Header cells, comma separated"`
	Preset      string   `help:"Border preset (default: TERMTABLE_PRESET, config or default)" short:"p"`
	Align       []string `help:"Column alignments: left, center, right"`
	Widths      []int    `help:"Fixed column widths; 0 keeps the computed width"`
	Compact     bool     `help:"Remove the spaces around cell content"`
	Padding     int      `help:"Spaces on each side of cell content"`
	NoBorder    bool     `help:"Drop the top and bottom border lines"`
	HeadColor   []string `help:"Header color tokens, e.g. cyan,bold"`
	BorderColor []string `help:"Border color tokens, e.g. gray"`
	Wide        bool     `help:"Measure East Asian wide characters as two columns"`
	Balance     bool     `help:"Widen columns so spanning cells fit their content"`
}

func (c *RenderCmd) Run(ctx context.Context, cli *CLI, log *logrus.Logger) error {
	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	doc, err := c.decode(log)
	if err != nil {
		return err
	}

	opts, err := c.options(doc, cfg, log)
	if err != nil {
		return err
	}

	colors, err := cli.colors(cfg)
	if err != nil {
		return err
	}
	rows := doc.Rows
	if !colors.Enabled() {
		if rows, err = stripStyles(rows, &opts); err != nil {
			return err
		}
	}

	switch output.GetMode(ctx) {
	case output.ModeJSON:
		return output.WriteJSON(stdout, documentView(opts.Head, rows, doc.Columns()))
	case output.ModePlain:
		return output.WriteTSV(stdout, opts.Head, plainRows(rows))
	}

	t := output.NewTable(stdout)
	*t.Options() = opts
	for _, row := range rows {
		t.AddRow(row...)
	}
	return t.Render()
}

// decode reads the document from the file argument or stdin.
func (c *RenderCmd) decode(log *logrus.Logger) (*input.Document, error) {
	var (
		r      io.Reader = stdin
		format           = input.FormatJSON5
		source           = "stdin"
	)

	if c.File != "" && c.File != "-" {
		path := config.ExpandPath(c.File)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r, format, source = f, input.DetectFormat(path), path
	}

	if c.Format != "" {
		parsed, err := input.ParseFormat(c.Format)
		if err != nil {
			return nil, err
		}
		format = parsed
	}

	doc, err := input.Decode(r, format, input.DecodeOptions{Header: c.Header})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"source":  source,
		"format":  format,
		"rows":    len(doc.Rows),
		"columns": doc.Columns(),
	}).Debug("decoded input")
	return doc, nil
}

// options layers config defaults, the document's own options and flags, in
// increasing priority.
func (c *RenderCmd) options(doc *input.Document, cfg *config.File, log *logrus.Logger) (table.Options, error) {
	opts := doc.Options
	cfg.Apply(&opts)
	if doc.Border != nil {
		opts.Style.NoBorder = !*doc.Border
	}

	name, chars, err := config.ResolvePreset(c.Preset, cfg)
	if err != nil {
		return opts, err
	}
	opts.Chars = chars.With(doc.Options.Chars).Override()
	log.WithField("preset", name).Debug("resolved preset")

	if len(c.Head) > 0 {
		opts.Head = c.Head
	}
	if len(c.Align) > 0 {
		opts.ColAligns = make([]table.Align, len(c.Align))
		for i, a := range c.Align {
			opts.ColAligns[i] = table.ParseAlign(a)
		}
	}
	if len(c.Widths) > 0 {
		opts.ColWidths = c.Widths
	}
	if c.Padding < 0 {
		return opts, &ExitError{Code: exitUsage, Err: fmt.Errorf("--padding must not be negative")}
	}
	if c.Padding > 0 {
		opts.Style.Padding = c.Padding
	}
	if len(c.HeadColor) > 0 {
		opts.Style.Head = c.HeadColor
	}
	if len(c.BorderColor) > 0 {
		opts.Style.Border = c.BorderColor
	}
	opts.Style.Compact = opts.Style.Compact || c.Compact
	opts.Style.NoBorder = opts.Style.NoBorder || c.NoBorder
	opts.WideChars = opts.WideChars || c.Wide
	opts.BalanceSpans = opts.BalanceSpans || c.Balance

	return opts, nil
}

// stripStyles validates every color token, then returns rows and options
// without any, so the output carries no escape sequences.
func stripStyles(rows [][]any, opts *table.Options) ([][]any, error) {
	for _, tokens := range [][]string{opts.Style.Head, opts.Style.Border} {
		if err := color.Validate(&color.Style{Color: tokens}); err != nil {
			return nil, err
		}
	}
	opts.Style.Head = nil
	opts.Style.Border = nil

	out := make([][]any, len(rows))
	for i, row := range rows {
		plain := make([]any, len(row))
		for j, cell := range row {
			var r table.Rich
			switch v := cell.(type) {
			case table.Rich:
				r = v
			case *table.Rich:
				if v == nil {
					plain[j] = cell
					continue
				}
				r = *v
			default:
				plain[j] = cell
				continue
			}
			if err := color.Validate(r.Style); err != nil {
				return nil, err
			}
			r.Style = nil
			plain[j] = r
		}
		out[i] = plain
	}
	return out, nil
}

func plainRows(rows [][]any) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = table.Text(cell)
		}
		out[i] = cells
	}
	return out
}

type docView struct {
	Head    []string `json:"head,omitempty"`
	Rows    [][]any  `json:"rows"`
	Columns int      `json:"columns"`
}

func documentView(head []string, rows [][]any, columns int) docView {
	if rows == nil {
		rows = [][]any{}
	}
	return docView{Head: head, Rows: rows, Columns: columns}
}
