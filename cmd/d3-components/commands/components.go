package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kinggod/d3-components/tree"
)

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components [component]",
		Short: "List chart components, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, id := range a.registry.IDs() {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}

				return nil
			}

			c, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}

			return a.write(cmd, tree.Tree{
				"id":       c.ID,
				"schema":   c.Schema,
				"defaults": c.Defaults,
			})
		},
	}
}
