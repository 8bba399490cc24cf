package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/dedene/termtable/internal/config"
	"github.com/dedene/termtable/internal/errfmt"
	"github.com/dedene/termtable/internal/logging"
	"github.com/dedene/termtable/internal/output"
	"github.com/dedene/termtable/internal/ui"
)

// Streams used by every command. Tests replace them.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// RootFlags are global flags available to all commands.
type RootFlags struct {
	Color   string `help:"Color output: auto, always, never (default: config or auto)" env:"TERMTABLE_COLOR" placeholder:"MODE"`
	JSON    bool   `help:"Output as JSON" short:"j"`
	Plain   bool   `help:"Output as TSV (plain text)"`
	Verbose bool   `help:"Verbose output" short:"v"`
}

// CLI is the root command structure.
type CLI struct {
	RootFlags `embed:""`

	Version    kong.VersionFlag `help:"Print version and exit"`
	Render     RenderCmd        `cmd:"" help:"Render a table from a file or stdin"`
	Presets    PresetsCmd       `cmd:"" help:"Show the border presets"`
	Colors     ColorsCmd        `cmd:"" help:"Inspect color tokens"`
	Config     ConfigCmd        `cmd:"" help:"Configuration commands"`
	VersionCmd VersionCmd       `cmd:"" name:"version" help:"Show version information"`
	Completion CompletionCmd    `cmd:"" help:"Generate shell completions"`
}

// mode returns the output mode selected by the global flags.
func (f *RootFlags) mode() output.Mode {
	return output.ModeFromFlags(f.JSON, f.Plain)
}

// colors resolves the color mode. Priority: flag > config > auto.
func (f *RootFlags) colors(cfg *config.File) (*output.Colors, error) {
	mode := f.Color
	if mode == "" && cfg != nil {
		mode = cfg.Color
	}
	if mode == "" {
		mode = "auto"
	}
	if err := output.ValidateColorMode(mode); err != nil {
		return nil, &ExitError{Code: exitUsage, Err: err}
	}

	c := output.NewColors(mode)
	ui.SetColorEnabled(c.Enabled())
	return c, nil
}

type exitPanic struct{ code int }

// Execute parses args and runs the appropriate command.
func Execute(args []string) (err error) {
	parser, cli, err := newParser()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if ep, ok := r.(exitPanic); ok {
				if ep.code == 0 {
					err = nil
					return
				}
				err = &ExitError{Code: ep.code, Err: errors.New("exited")}
				return
			}
			panic(r)
		}
	}()

	// Show help when no command provided
	if len(args) == 0 {
		args = []string{"--help"}
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parsedErr := wrapParseError(err)
		_, _ = fmt.Fprintln(stderr, parsedErr)
		return parsedErr
	}

	log := logging.New(stderr, cli.Verbose)
	log.WithField("command", kctx.Command()).Debug("parsed arguments")

	ctx := output.WithMode(context.Background(), cli.mode())
	kctx.BindTo(ctx, (*context.Context)(nil))

	err = kctx.Run(log)
	if err != nil {
		for _, line := range errfmt.ErrorContext(err) {
			log.Debug(line)
		}
		_, _ = fmt.Fprintln(stderr, errfmt.FormatError(err))
		return err
	}

	return nil
}

func wrapParseError(err error) error {
	if err == nil {
		return nil
	}

	var parseErr *kong.ParseError
	if errors.As(err, &parseErr) {
		return &ExitError{Code: exitUsage, Err: parseErr}
	}

	return err
}

func newParser() (*kong.Kong, *CLI, error) {
	cli := &CLI{}
	parser, err := kong.New(
		cli,
		kong.Name("termtable"),
		kong.Description("Render tables with borders, spans and colors in the terminal"),
		kong.Vars{"version": VersionString()},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitPanic{code: code}) }),
		kong.BindTo(cli, (*CLI)(nil)),
		kong.Help(helpPrinter),
		kong.ConfigureHelp(helpOptions()),
	)
	if err != nil {
		return nil, nil, err
	}

	return parser, cli, nil
}

// loadConfig reads the config file, logging where it came from.
func loadConfig(log *logrus.Logger) (*config.File, error) {
	cfg, err := config.ReadConfig()
	if err != nil {
		return nil, err
	}
	entry := log.WithField("path", config.ConfigPath())
	if !config.ConfigExists() {
		entry.Debug("no config file, using defaults")
		return cfg, nil
	}
	entry.Debug("loaded config")
	return cfg, nil
}
