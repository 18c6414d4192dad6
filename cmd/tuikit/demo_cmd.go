package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/tuikit/internal/ui/apps"
)

func newDemoCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "demo",
		Short:   "Run all widgets together",
		GroupID: GroupWidget,
		Args:    cobra.NoArgs,
		Long: `Run a profile form with a navigation panel and notifications.

The username field is controlled (lowercased by the form), the password
field is uncontrolled. ctrl+o opens the menu, ctrl+s saves, tab moves
between fields, ctrl+c quits. Widget defaults come from the config file.`,
		Example: `  tuikit demo
  tuikit demo --file menu.toml --trace /tmp/tuikit.log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := apps.DemoItems()
			if file != "" {
				var err error
				if items, err = apps.LoadItems(file); err != nil {
					return err
				}
			}
			return apps.RunDemo(configFrom(cmd.Context()), items, trace)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML menu file")

	return cmd
}
