package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/output"
	"github.com/raphi011/tuikit/internal/ui/apps"
	"github.com/raphi011/tuikit/internal/ui/navtree"
)

func newMenuCmd() *cobra.Command {
	var (
		file        string
		title       string
		position    string
		width       int
		resetOnOpen bool
		noOverlay   bool
	)

	cmd := &cobra.Command{
		Use:     "menu",
		Short:   "Pick an item from a navigation panel",
		Aliases: []string{"nav"},
		GroupID: GroupWidget,
		Args:    cobra.NoArgs,
		Long: `Pick an item from a collapsible navigation panel.

Items come from a TOML file of nested [[item]] tables, or a built-in demo
menu when --file is not given. The selected item's id is printed to stdout,
followed by a tab and its href for links.

Keys: up/down (k/j) move, enter activates, right/left (l/h) expand and
collapse, / searches by label, esc cancels.`,
		Example: `  tuikit menu
  tuikit menu --file menu.toml --title Settings --position left
  tuikit menu -f menu.toml | cut -f1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFrom(ctx)

			items := apps.DemoItems()
			if file != "" {
				var err error
				if items, err = apps.LoadItems(file); err != nil {
					return err
				}
			}

			if !cmd.Flags().Changed("title") {
				title = cfg.Menu.Title
			}
			if !cmd.Flags().Changed("position") {
				position = cfg.Menu.Position
			}
			if err := config.ValidateMenuPosition(position); err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.Menu.Width
			}

			res, err := apps.RunMenu(apps.MenuParams{
				Title:       title,
				Items:       items,
				Side:        navtree.Side(position),
				Width:       width,
				ResetOnOpen: resetOnOpen || cfg.Menu.ResetOnOpen,
				ShowOverlay: cfg.Menu.ShowOverlay && !noOverlay,
				Logger:      trace,
			})
			if err != nil {
				return err
			}
			output.FromContext(ctx).Result(res.ID, res.Href)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML menu file")
	cmd.Flags().StringVarP(&title, "title", "t", config.DefaultMenuTitle, "Panel title")
	cmd.Flags().StringVarP(&position, "position", "p", config.DefaultMenuPosition, "Panel side: left, right")
	cmd.Flags().IntVarP(&width, "width", "w", config.DefaultMenuWidth, "Panel width in columns")
	cmd.Flags().BoolVar(&resetOnOpen, "reset-on-open", false, "Collapse all items when the panel opens")
	cmd.Flags().BoolVar(&noOverlay, "no-overlay", false, "Do not dim the background")

	cmd.RegisterFlagCompletionFunc("position", cobra.FixedCompletions(config.ValidMenuPositions, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
