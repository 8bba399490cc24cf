package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"
)

const examples = `
Examples:
  termtable render people.csv --header
  termtable render table.json5 --preset rounded --head-color cyan,bold
  cat rows.tsv | termtable render --format tsv --align left,right
  termtable presets markdown
  termtable colors hex '#ff8800'`

func helpOptions() kong.HelpOptions {
	return kong.HelpOptions{
		Compact:             true,
		NoExpandSubcommands: true,
	}
}

// helpPrinter prints kong's help and appends usage examples at the top level.
func helpPrinter(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if ctx.Selected() == nil {
		_, _ = fmt.Fprintln(ctx.Stdout, examples)
	}
	return nil
}
