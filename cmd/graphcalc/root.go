package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/graphcalc"
)

// options holds the settings shared by all commands.
type options struct {
	Var     string
	Format  string
	Config  string
	Verbose bool

	From, To float64
	Steps    int
	Workers  int

	log *slog.Logger
}

// fileConfig is the layout of a YAML config file. Unset fields leave the
// defaults alone.
type fileConfig struct {
	Var     string   `yaml:"var"`
	Format  string   `yaml:"format"`
	From    *float64 `yaml:"from"`
	To      *float64 `yaml:"to"`
	Steps   *int     `yaml:"steps"`
	Workers *int     `yaml:"workers"`
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "graphcalc",
		Short: "Compile and sample expressions of one variable",
		Long: `graphcalc compiles expressions like "sin(x)^2 + 1" and evaluates them.

Expressions use numbers, the variable, pi, e, the operators + - * / ^,
parentheses, and the functions listed by "graphcalc funcs".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Var, "var", graphcalc.DefaultVar, "name of the free variable")
	cmd.PersistentFlags().StringVar(&opts.Format, "fmt", "%g", "result formatting verb")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log compilation details")

	cmd.AddCommand(newEvalCommand(opts))
	cmd.AddCommand(newRPNCommand(opts))
	cmd.AddCommand(newTableCommand(opts))
	cmd.AddCommand(newFuncsCommand(opts))
	return cmd
}

// setup applies the config file, validates options, and creates the logger.
func (opts *options) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	opts.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if opts.Config != "" {
		if err := opts.load(cmd, opts.Config); err != nil {
			return err
		}
	}
	if opts.Steps < 0 {
		return fmt.Errorf("steps (%d) must not be negative", opts.Steps)
	}
	if !graphcalc.ValidVar(opts.Var) {
		return fmt.Errorf("invalid variable name %q", opts.Var)
	}
	return nil
}

// load reads a config file. Values from flags given on the command line
// take precedence over the file.
func (opts *options) load(cmd *cobra.Command, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	opts.log.Debug("loaded config", "path", path)
	flags := cmd.Flags()
	if cfg.Var != "" && !flags.Changed("var") {
		opts.Var = cfg.Var
	}
	if cfg.Format != "" && !flags.Changed("fmt") {
		opts.Format = cfg.Format
	}
	if cfg.From != nil && !flags.Changed("from") {
		opts.From = *cfg.From
	}
	if cfg.To != nil && !flags.Changed("to") {
		opts.To = *cfg.To
	}
	if cfg.Steps != nil && !flags.Changed("steps") {
		opts.Steps = *cfg.Steps
	}
	if cfg.Workers != nil && !flags.Changed("workers") {
		opts.Workers = *cfg.Workers
	}
	return nil
}
