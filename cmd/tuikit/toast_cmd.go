package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/ui/apps"
	"github.com/raphi011/tuikit/internal/ui/notice"
)

func newToastCmd() *cobra.Command {
	var (
		variant  string
		duration time.Duration
		position string
		noClose  bool
		width    int
	)

	cmd := &cobra.Command{
		Use:     "toast <message>",
		Short:   "Show a transient notification",
		Aliases: []string{"notify"},
		GroupID: GroupWidget,
		Args:    cobra.MinimumNArgs(1),
		Long: `Show a notification that dismisses itself after --duration.

The notice fades out for 300ms before it is removed. A duration of 0 keeps
it until closed with x/esc, or with --no-close until the command exits.
Enter, q or ctrl+c exit immediately.`,
		Example: `  tuikit toast "Saved"
  tuikit toast --variant error "Build failed"
  tuikit toast -d 0 --position top-center "Press x to close"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())

			v, err := notice.ParseVariant(variant)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("duration") {
				duration = time.Duration(cfg.Toast.DurationMs) * time.Millisecond
			}
			if duration < 0 {
				return fmt.Errorf("invalid duration %s: must not be negative", duration)
			}
			if !cmd.Flags().Changed("position") {
				position = cfg.Toast.Position
			}
			if err := config.ValidateToastPosition(position); err != nil {
				return err
			}

			return apps.RunToast(apps.ToastParams{
				Message:   strings.Join(args, " "),
				Variant:   v,
				Duration:  duration,
				Position:  notice.Position(position),
				ShowClose: cfg.Toast.ShowClose && !noClose,
				Width:     width,
				Logger:    trace,
			})
		},
	}

	cmd.Flags().StringVar(&variant, "variant", string(notice.VariantInfo), "Notice variant: success, error, warning, info")
	cmd.Flags().DurationVarP(&duration, "duration", "d", notice.DefaultDuration, "Time until the notice dismisses itself, 0 to keep it")
	cmd.Flags().StringVarP(&position, "position", "p", config.DefaultToastPosition, "Screen position")
	cmd.Flags().BoolVar(&noClose, "no-close", false, "Hide the close button")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Notice width in columns")

	variants := make([]string, len(notice.ValidVariants))
	for i, v := range notice.ValidVariants {
		variants[i] = string(v)
	}
	cmd.RegisterFlagCompletionFunc("variant", cobra.FixedCompletions(variants, cobra.ShellCompDirectiveNoFileComp))
	cmd.RegisterFlagCompletionFunc("position", cobra.FixedCompletions(config.ValidToastPositions, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
