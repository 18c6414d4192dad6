package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/output"
	"github.com/raphi011/tuikit/internal/ui/styles"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	traceFile string

	// trace receives widget transitions while a program owns the terminal.
	// nil unless --trace is set.
	trace     *log.Logger
	traceDest io.Closer
)

// Command group IDs for organizing help output
const (
	GroupWidget = "widget"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tuikit",
		Short: "Interactive terminal widgets: text field, navigation menu, notifications",
		Long: `tuikit runs small interactive terminal widgets from the shell.

Widgets render to stderr; results (submitted values, selected items) are
printed to stdout so they can be captured:

  name=$(tuikit field --label Name --required)`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			ctx := cmd.Context()
			if cfg := config.FromContext(ctx); cfg != nil {
				styles.Init(cfg.Theme)
			}
			cmd.SetContext(log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet)))

			if traceFile != "" {
				f, err := os.OpenFile(traceFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return fmt.Errorf("open trace file: %w", err)
				}
				trace = log.New(f, true, false)
				traceDest = f
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if traceDest == nil {
				return nil
			}
			err := traceDest.Close()
			trace, traceDest = nil, nil
			return err
		},
		// Run is not set - shows help when no subcommand provided
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.PersistentFlags().StringVar(&traceFile, "trace", "", "Append widget state transitions to `FILE`")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupWidget, Title: "Widget Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Widget commands
	cmd.AddCommand(newFieldCmd())
	cmd.AddCommand(newMenuCmd())
	cmd.AddCommand(newToastCmd())
	cmd.AddCommand(newDemoCmd())

	// Config commands
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// Execute loads config, wires the context and runs the root command.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &loadedCfg)
	ctx = output.WithPrinter(ctx, os.Stdout)
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'tuikit -h' for help")
		cancel()
		os.Exit(1)
	}
}

// configFrom returns the config attached to ctx, or the defaults.
func configFrom(ctx context.Context) config.Config {
	if cfg := config.FromContext(ctx); cfg != nil {
		return *cfg
	}
	return config.Default()
}
