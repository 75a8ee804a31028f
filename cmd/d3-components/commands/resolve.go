package commands

import (
	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		optionsFile string
		assignments []string
	)

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Print the resolved options of a chart",
		Long: `Resolve layers the global defaults, the component defaults and the
given options, then coerces units and derives the margins and inner size.

Examples:
  d3-components resolve bar-chart
  d3-components resolve pie-chart --options pie.jsonc --set width=600
  d3-components resolve line-chart --set title.show=true -f yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := loadOptions(cmd, optionsFile, assignments)
			if err != nil {
				return err
			}

			opts, err := a.resolver().Resolve(args[0], user)
			if err != nil {
				return err
			}

			a.report()

			return a.write(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&optionsFile, "options", "o", "", "Options file (JSON, JSONC or YAML)")
	cmd.Flags().StringArrayVar(&assignments, "set", nil, "Set an option, as path=value (repeatable)")

	return cmd
}

func (a *app) write(cmd *cobra.Command, v any) error {
	enc, err := newEncoder(a.settings.Format)
	if err != nil {
		return err
	}

	return enc(cmd.OutOrStdout(), v)
}
