package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dedene/termtable/internal/config"
	"github.com/dedene/termtable/internal/output"
	"github.com/dedene/termtable/internal/table"
	"github.com/dedene/termtable/internal/ui"
)

// PresetsCmd shows every border preset, or one, on a sample table.
type PresetsCmd struct {
	Name    string `arg:"" optional:"" help:"Preset to show"`
	Compact bool   `help:"Draw the samples without cell padding"`
}

func (c *PresetsCmd) Run(ctx context.Context, cli *CLI, log *logrus.Logger) error {
	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	names := table.PresetNames()
	if c.Name != "" {
		name, _, err := config.ResolvePreset(c.Name, nil)
		if err != nil {
			return err
		}
		names = []string{name}
	}

	switch output.GetMode(ctx) {
	case output.ModeJSON:
		glyphs := make(map[string]table.CharsOverride, len(names))
		for _, name := range names {
			chars, _ := table.Preset(name)
			glyphs[name] = chars.Override()
		}
		return output.WriteJSON(stdout, glyphs)
	case output.ModePlain:
		rows := make([][]string, len(names))
		for i, name := range names {
			rows[i] = []string{name}
		}
		return output.WriteTSV(stdout, nil, rows)
	}

	colors, err := cli.colors(cfg)
	if err != nil {
		return err
	}
	active, _, err := config.ResolvePreset("", cfg)
	if err != nil {
		return err
	}

	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		title := ui.Title(name)
		if name == active && len(names) > 1 {
			title += " " + colors.Paint("(active)", "green")
		}
		fmt.Fprintln(stdout, title)

		chars, _ := table.Preset(name)
		if err := presetSample(chars, colors.Enabled(), c.Compact).Render(); err != nil {
			return err
		}
	}
	return nil
}

func presetSample(chars table.Chars, colored, compact bool) *output.Table {
	b := output.NewTableBuilder(stdout).
		Chars(chars).
		Headers("Name", "Role", "Since").
		Align(table.AlignLeft, table.AlignLeft, table.AlignRight).
		Balance()
	if colored {
		b.HeadColor("cyan", "bold").BorderColor("gray")
	}
	if compact {
		b.Compact()
	}
	return b.
		Row("Ada", "Engineer", 1843).
		Row("Grace", table.Rich{Content: "Rear admiral", ColSpan: 2}).
		Build()
}
