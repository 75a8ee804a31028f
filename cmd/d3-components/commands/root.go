// Package commands provides the CLI commands for d3-components.
package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kinggod/d3-components/chart"
	"github.com/kinggod/d3-components/internal/diagnostic"
	"github.com/kinggod/d3-components/internal/logging"
	"github.com/kinggod/d3-components/registry"
	"github.com/kinggod/d3-components/resolve"
)

var Version = "0.1.0"

// app is the state shared by the commands of one invocation.
type app struct {
	settings Settings
	log      zerolog.Logger
	registry *registry.Registry
	diags    diagnostic.Diagnostics

	flags struct {
		settingsFile string
		envFile      string
		logLevel     string
		logPretty    bool
		format       string
		dataDir      string
		components   []string
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Nop()}

	root := &cobra.Command{
		Use:   "d3-components",
		Short: "Resolve chart options and normalize chart data",
		Long: `d3-components layers global, component and user options into the
fully resolved options tree a renderer draws from, and maps loosely shaped
data onto the fields a chart component declares.

Run 'd3-components components' to list the chart types.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.flags.settingsFile, "config", "", "YAML settings file")
	flags.StringVar(&a.flags.envFile, "env-file", ".env", "Environment file loaded before reading D3C_* variables")
	flags.StringVar(&a.flags.logLevel, "log-level", "", "Log level (DEBUG|INFO|WARN|ERROR|OFF)")
	flags.BoolVar(&a.flags.logPretty, "log-pretty", false, "Human-readable logs")
	flags.StringVarP(&a.flags.format, "format", "f", "", "Output format (json|yaml|dump)")
	flags.StringVar(&a.flags.dataDir, "data-dir", "", "Directory remote data locations are read from")
	flags.StringSliceVar(&a.flags.components, "component-file", nil, "Extra component YAML files to register")

	root.AddCommand(
		newResolveCmd(a),
		newNormalizeCmd(a),
		newPrepareCmd(a),
		newComponentsCmd(a),
	)

	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// setup layers the settings, configures logging and builds the registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	if err := loadEnvFile(a.flags.envFile, flags.Changed("env-file")); err != nil {
		return err
	}

	env, err := envSettings()
	if err != nil {
		return err
	}

	file, err := fileSettings(a.flags.settingsFile)
	if err != nil {
		return err
	}

	a.settings = Settings{
		LogLevel:   a.flags.logLevel,
		LogPretty:  a.flags.logPretty,
		Format:     a.flags.format,
		DataDir:    a.flags.dataDir,
		Components: a.flags.components,
	}

	if err := layer(&a.settings, env, file, defaultSettings()); err != nil {
		return err
	}

	if _, err := newEncoder(a.settings.Format); err != nil {
		return err
	}

	a.log = logging.Init(logging.Config{
		Level:  logging.ParseLevel(a.settings.LogLevel),
		Output: cmd.ErrOrStderr(),
		Pretty: a.settings.LogPretty,
	})

	return a.buildRegistry()
}

// buildRegistry registers the built-ins and any extra component files.
func (a *app) buildRegistry() error {
	if len(a.settings.Components) == 0 {
		a.registry = registry.Default()
		return nil
	}

	builtins, err := registry.Builtins()
	if err != nil {
		return err
	}

	a.registry = registry.New()
	for _, c := range builtins {
		a.registry.MustRegister(c)
	}

	for _, path := range a.settings.Components {
		c, err := registry.LoadComponentFile(path)
		if err != nil {
			return err
		}

		if err := a.registry.Register(c); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		a.log.Debug().Str("component", c.ID).Str("file", path).Msg("component registered")
	}

	return nil
}

func (a *app) resolver() *resolve.Resolver {
	return resolve.New(
		resolve.WithRegistry(a.registry),
		resolve.WithMeasurer(resolve.StaticMeasurer{Default: a.settings.Measure}),
		resolve.WithLogger(a.log),
		resolve.WithDiagnostics(&a.diags),
	)
}

func (a *app) pipeline() *chart.Pipeline {
	return chart.New(
		chart.WithRegistry(a.registry),
		chart.WithResolver(a.resolver()),
		chart.WithFetcher(chart.DirFetcher{Root: a.settings.DataDir}),
		chart.WithLogger(a.log),
		chart.WithDiagnostics(&a.diags),
	)
}

// report logs the collected diagnostics.
func (a *app) report() {
	for _, d := range a.diags.All() {
		var ev *zerolog.Event

		switch d.Severity {
		case diagnostic.DiagnosticError:
			ev = a.log.Error()
		case diagnostic.DiagnosticWarning:
			ev = a.log.Warn()
		default:
			ev = a.log.Info()
		}

		ev.Str("code", d.Code).
			Str("component", d.Component).
			Str("path", d.FieldPath).
			Strs("suggestions", d.Suggestions).
			Msg(d.Message)
	}
}
