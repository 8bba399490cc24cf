package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dedene/termtable/internal/config"
	"github.com/dedene/termtable/internal/output"
	"github.com/dedene/termtable/internal/table"
)

// ConfigCmd groups configuration subcommands.
type ConfigCmd struct {
	Show  ConfigShowCmd  `cmd:"" default:"1" help:"Show current configuration"`
	Set   ConfigSetCmd   `cmd:"" help:"Set a configuration value"`
	Unset ConfigUnsetCmd `cmd:"" help:"Remove a configuration value"`
	Path  ConfigPathCmd  `cmd:"" help:"Show configuration directory path"`
}

// ConfigShowCmd shows current configuration.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx context.Context, cli *CLI, log *logrus.Logger) error {
	cfg, err := loadConfig(log)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	rows := make([][]string, 0, len(config.Keys()))
	for _, key := range config.Keys() {
		if v := cfg.Get(key); v != "" {
			rows = append(rows, []string{key, v})
		}
	}

	f := output.NewFormatter(stdout, output.GetMode(ctx))
	if f.Mode != output.ModeTable {
		return f.Output(cfg, []string{"KEY", "VALUE"}, rows)
	}

	colors, err := cli.colors(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, colors.Dim("Config file: "+config.ConfigPath()))
	if len(rows) == 0 {
		fmt.Fprintln(stdout, "No values set.")
		return nil
	}

	chars, _ := table.Preset("rounded")
	f.Table = &table.Options{Chars: chars.Override()}
	return f.Output(cfg, []string{"Key", "Value"}, rows)
}

// ConfigSetCmd sets a configuration value.
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Configuration key"`
	Value string `arg:"" help:"Configuration value"`
}

func (c *ConfigSetCmd) Run(cli *CLI, log *logrus.Logger) error {
	cfg, err := loadConfig(log)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Set(c.Key, c.Value); err != nil {
		return err
	}

	if err := config.WriteConfig(cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	colors, err := cli.colors(cfg)
	if err != nil {
		return err
	}
	key := config.NormalizeKey(c.Key)
	fmt.Fprintln(stdout, colors.Success(fmt.Sprintf("Set %s = %s", key, cfg.Get(key))))

	return nil
}

// ConfigUnsetCmd removes a configuration value.
type ConfigUnsetCmd struct {
	Key string `arg:"" help:"Configuration key to remove"`
}

func (c *ConfigUnsetCmd) Run(cli *CLI, log *logrus.Logger) error {
	cfg, err := loadConfig(log)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Unset(c.Key); err != nil {
		return err
	}

	if err := config.WriteConfig(cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	colors, err := cli.colors(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, colors.Success("Unset "+config.NormalizeKey(c.Key)))

	return nil
}

// ConfigPathCmd shows configuration paths.
type ConfigPathCmd struct{}

func (c *ConfigPathCmd) Run() error {
	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	fmt.Fprintf(stdout, "Config dir:  %s\n", dir)
	fmt.Fprintf(stdout, "Config file: %s\n", config.ConfigPath())

	return nil
}
