package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kinggod/d3-components/chart"
	"github.com/kinggod/d3-components/tree"
)

func newPrepareCmd(a *app) *cobra.Command {
	var (
		dataFile    string
		optionsFile string
		assignments []string
	)

	cmd := &cobra.Command{
		Use:   "prepare <request.yaml | component>",
		Short: "Resolve options and normalize data for one chart",
		Long: `Prepare runs a whole chart request and prints {records, options}.

The argument is either a request file with type, data and options keys,
where data may name a file under --data-dir, or a component id combined
with --data and --options.

Examples:
  d3-components prepare chart.yaml --data-dir ./data
  d3-components prepare bar-chart --data sales.json --set width=800`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.request(cmd, args[0], dataFile, optionsFile, assignments)
			if err != nil {
				return err
			}

			out, err := a.pipeline().Prepare(cmd.Context(), req)
			if err != nil {
				return err
			}

			a.report()

			return a.write(cmd, tree.Tree{"records": out.Records, "options": out.Options})
		},
	}

	cmd.Flags().StringVarP(&dataFile, "data", "d", "", "Data file")
	cmd.Flags().StringVarP(&optionsFile, "options", "o", "", "Options file (JSON, JSONC or YAML)")
	cmd.Flags().StringArrayVar(&assignments, "set", nil, "Set an option, as path=value (repeatable)")

	return cmd
}

// request builds a chart request from a request file or a component id.
func (a *app) request(cmd *cobra.Command, arg, dataFile, optionsFile string, assignments []string) (chart.Request, error) {
	var req chart.Request

	if a.registry.Has(arg) {
		req.Type = arg
	} else {
		raw, err := readInput(cmd, arg)
		if err != nil {
			_, lookupErr := a.registry.Lookup(arg)
			return req, fmt.Errorf("%w (and no request file %s)", lookupErr, arg)
		}

		if err := yaml.Unmarshal(raw, &req); err != nil {
			return req, fmt.Errorf("failed to parse request %s: %w", arg, err)
		}
	}

	if dataFile != "" {
		data, err := decodeInput(cmd, dataFile, "")
		if err != nil {
			return req, err
		}

		req.Data = data
	}

	if optionsFile != "" || len(assignments) > 0 {
		opts, err := loadOptions(cmd, optionsFile, assignments)
		if err != nil {
			return req, err
		}

		req.Options = tree.Merge(req.Options, opts)
	}

	return req, nil
}
