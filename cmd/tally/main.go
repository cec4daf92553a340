package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/tally/internal/cli"
	"github.com/studiowebux/tally/internal/config"
	"github.com/studiowebux/tally/internal/keybinds"
	"github.com/studiowebux/tally/internal/logging"
	"github.com/studiowebux/tally/internal/storage"
	"github.com/studiowebux/tally/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the command line and always closes the log afterwards
func execute(args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	teardown()
	return err
}

var rootCmd = &cobra.Command{
	Use:   "tally [file]",
	Short: "tally - keep count of things from the terminal",
	Long: `tally keeps a list of named counters in an interactive TUI.

Run without arguments for a session that is never saved, or provide a file
name to load it and save after every change. The extension is always
replaced with .json - 'workout' and 'workout.txt' both use 'workout.json'
in the current directory.

Examples:
  tally                              # Ephemeral session
  tally workout                      # Load and save ./workout.json
  tally show workout                 # Print counters without the TUI
  tally show workout -o yaml         # Print as YAML
  tally show workout --filter '[?count > ` + "`10`" + `].name'
  tally keybinds --validate          # Print and check key bindings`,
	Version:           version,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return runTUI(cmd, name)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the counters stored in a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Show(cmd.OutOrStdout(), cli.ShowOptions{
			Name:         args[0],
			OutputFormat: flagOutput,
			Filter:       flagFilter,
			Color:        flagColor,
		})
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Print the effective key bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ShowKeybinds(cmd.OutOrStdout(), registry, flagValidate)
	},
}

// Global flags
var (
	flagConfig string
	flagDebug  bool
)

// Flags for show
var (
	flagOutput string
	flagFilter string
	flagColor  bool
)

// Flags for keybinds
var (
	flagValidate bool
)

// State prepared by setup
var (
	registry *keybinds.Registry
	closeLog = func() error { return nil }
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.tally/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs (default ~/.tally/tally.log)")

	showCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text/json/yaml)")
	showCmd.Flags().StringVar(&flagFilter, "filter", "", "JMESPath expression applied to the JSON form")
	showCmd.Flags().BoolVar(&flagColor, "color", false, "Syntax highlight json/yaml output")

	keybindsCmd.Flags().BoolVar(&flagValidate, "validate", false, "Report conflicts and shadowed keys")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(keybindsCmd)
}

// setup loads configuration, logging and key bindings for every command
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logFile, logLevel := cfg.Log.File, cfg.Log.Level
	if flagDebug {
		logLevel = "debug"
		if logFile == "" {
			if err := config.EnsureDir(); err != nil {
				return err
			}
			logFile = config.LogFile
		}
	}

	closeFn, err := logging.Setup(logFile, logLevel)
	if err != nil {
		return err
	}
	closeLog = closeFn

	registry, err = keybinds.LoadOrDefault(cfg.Keybinds)
	if err != nil {
		return err
	}

	return nil
}

// teardown closes the log file opened by setup
func teardown() {
	if err := closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log: %v\n", err)
	}
}

// runTUI starts the interactive TUI. An empty name runs an ephemeral
// session.
func runTUI(cmd *cobra.Command, name string) error {
	opts := tui.Options{Keybinds: registry}

	if name != "" {
		file, counters, err := storage.Open(name)
		if err != nil {
			return err
		}
		opts.Counters = counters
		opts.Saver = file
	}

	msg, err := tui.Run(opts)
	if err != nil {
		return err
	}

	if msg != "" {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	return nil
}
