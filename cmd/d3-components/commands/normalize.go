package commands

import (
	"github.com/spf13/cobra"

	"github.com/kinggod/d3-components/normalize"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var (
		dataFile   string
		dataFormat string
	)

	cmd := &cobra.Command{
		Use:   "normalize <component>",
		Short: "Map data onto the fields a component declares",
		Long: `Normalize reads a data file and maps every record onto the schema of
the component. Nested arrays are flattened into series and scalars are
wrapped as {index, value}.

Examples:
  d3-components normalize pie-chart --data sales.csv
  cat tree.json | d3-components normalize sunburst-chart --data -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}

			data, err := decodeInput(cmd, dataFile, dataFormat)
			if err != nil {
				return err
			}

			n := normalize.New(c.Schema,
				normalize.WithComponent(c.ID),
				normalize.WithDiagnostics(&a.diags),
				normalize.WithLogger(a.log),
			)
			records := n.Normalize(data)

			a.report()

			return a.write(cmd, records)
		},
	}

	cmd.Flags().StringVarP(&dataFile, "data", "d", "-", "Data file, or - for standard input")
	cmd.Flags().StringVar(&dataFormat, "data-format", "", "Data format (json|yaml|csv|tsv), default from extension")

	return cmd
}
