package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/output"
	"github.com/raphi011/tuikit/internal/ui/apps"
	"github.com/raphi011/tuikit/internal/ui/field"
)

func newFieldCmd() *cobra.Command {
	var (
		label       string
		placeholder string
		helper      string
		initial     string
		size        string
		required    bool
		password    bool
		noClear     bool
		controlled  bool
		upper       bool
		charLimit   int
		minLength   int
	)

	cmd := &cobra.Command{
		Use:     "field",
		Short:   "Prompt for a single value",
		Aliases: []string{"input"},
		GroupID: GroupWidget,
		Args:    cobra.NoArgs,
		Long: `Prompt for a single value in a labelled text field.

The submitted value is printed to stdout. Esc clears the field; esc on an
empty field cancels and exits with an error.

Password fields are concealed until revealed with ctrl+r. With --controlled
the command owns the value and pushes it back after filtering (e.g.
--upper), otherwise the field keeps whatever was typed.`,
		Example: `  tuikit field --label Name --required
  tuikit field --label Token --password --min-length 8
  tuikit field --label Code --controlled --upper
  branch=$(tuikit field --label Branch --initial main)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFrom(ctx)

			if !cmd.Flags().Changed("size") {
				size = cfg.Field.Size
			}
			if err := config.ValidateFieldSize(size); err != nil {
				return err
			}
			if !cmd.Flags().Changed("char-limit") {
				charLimit = cfg.Field.CharLimit
			}

			res, err := apps.RunField(apps.FieldParams{
				Label:       label,
				Placeholder: placeholder,
				Helper:      helper,
				Initial:     initial,
				Required:    required,
				Password:    password,
				Clearable:   cfg.Field.Clearable && !noClear,
				Size:        field.Size(size),
				CharLimit:   charLimit,
				Controlled:  controlled || upper,
				Upper:       upper,
				MinLength:   minLength,
				Logger:      trace,
			})
			if err != nil {
				return err
			}
			output.FromContext(ctx).Result(res.Value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Field label")
	cmd.Flags().StringVar(&placeholder, "placeholder", "", "Placeholder shown while empty")
	cmd.Flags().StringVar(&helper, "helper", "", "Helper text below the field")
	cmd.Flags().StringVarP(&initial, "initial", "i", "", "Initial value")
	cmd.Flags().StringVar(&size, "size", config.DefaultFieldSize, "Field size: sm, md, lg")
	cmd.Flags().BoolVarP(&required, "required", "r", false, "Refuse to submit an empty value")
	cmd.Flags().BoolVarP(&password, "password", "p", false, "Conceal input (ctrl+r reveals)")
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "Hide the clear affordance")
	cmd.Flags().BoolVar(&controlled, "controlled", false, "Let the command own the value")
	cmd.Flags().BoolVar(&upper, "upper", false, "Uppercase the value (implies --controlled)")
	cmd.Flags().IntVar(&charLimit, "char-limit", config.DefaultCharLimit, "Maximum characters, 0 for unlimited")
	cmd.Flags().IntVar(&minLength, "min-length", 0, "Minimum characters to submit")

	cmd.RegisterFlagCompletionFunc("size", cobra.FixedCompletions(config.ValidFieldSizes, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
