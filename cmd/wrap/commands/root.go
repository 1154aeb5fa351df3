// Package commands provides the CLI commands for the wrap tool.
package commands

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"martianoff/wrap/internal/config"
	"martianoff/wrap/value"
	"martianoff/wrap/wrap"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	debug      bool
	logLevel   string

	cfg *config.Config
}

// NewRootCmd builds the wrap command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wrap",
		Short: "Inspect values through a wrap box",
		Long: `wrap boxes a JSON document and reports what the box sees.

Every command reads one JSON document, given as the last argument or on
stdin when the argument is missing or "-".

Usage:
  wrap type '[1,2,3]'          Print the type tag
  wrap is array '[1,2,3]'      Check the type tag
  wrap hash '{"a":1}'          Print the structural hash code
  wrap string '[1,2,3]'        Print the string form
  wrap json -o cbor '{"a":1}'  Re-encode as JSON or hex CBOR
  wrap iter '{"a":1,"b":2}'    List the entries of an array or object
  wrap clone '{"a":1}'         Clone the value and print the copy
  wrap version                 Print version`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to the config file (default $WRAP_HOME/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Trace every Get and Set of the box")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (overrides the config file)")

	rootCmd.AddCommand(newTypeCmd(a))
	rootCmd.AddCommand(newIsCmd(a))
	rootCmd.AddCommand(newHashCmd(a))
	rootCmd.AddCommand(newStringCmd(a))
	rootCmd.AddCommand(newJSONCmd(a))
	rootCmd.AddCommand(newIterCmd(a))
	rootCmd.AddCommand(newCloneCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = a.debug
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(cfg.Level())
	if cfg.Debug && cfg.Level() < log.DebugLevel {
		log.SetLevel(log.DebugLevel)
	}
	log.Debugf("Loaded configuration: level=%s output=%s debug=%v", cfg.LogLevel, cfg.Output, cfg.Debug)

	a.cfg = cfg
	return nil
}

// box starts an undefined box with the logger and trace settings of this
// invocation and sets v into it.
func (a *app) box(v any) *wrap.Box[any] {
	opts := []wrap.Option{wrap.WithLogger(log.StandardLogger())}
	if a.cfg != nil && a.cfg.Debug {
		opts = append(opts, wrap.WithDebug())
	}
	b := wrap.New(value.Undefined, opts...)
	b.Set(v)
	return b
}
