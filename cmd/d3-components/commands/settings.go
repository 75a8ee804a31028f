package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/kinggod/d3-components/resolve"
)

// Settings are the command line's own configuration. Flags win over
// environment variables, which win over the settings file.
type Settings struct {
	LogLevel   string              `yaml:"logLevel"`
	LogPretty  bool                `yaml:"logPretty"`
	Format     string              `yaml:"format"`
	DataDir    string              `yaml:"dataDir"`
	Components []string            `yaml:"components"`
	Measure    resolve.Measurement `yaml:"measure"`
}

const (
	envLogLevel   = "D3C_LOG_LEVEL"
	envFormat     = "D3C_FORMAT"
	envWidth      = "D3C_WIDTH"
	envHeight     = "D3C_HEIGHT"
	envFontSize   = "D3C_FONT_SIZE"
	envLineHeight = "D3C_LINE_HEIGHT"
)

func defaultSettings() Settings {
	return Settings{LogLevel: "WARN", Format: formatJSON, DataDir: "."}
}

// loadEnvFile loads path into the environment. A missing default file is
// not an error.
func loadEnvFile(path string, explicit bool) error {
	err := godotenv.Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// envSettings reads the D3C_* variables.
func envSettings() (Settings, error) {
	s := Settings{
		LogLevel: os.Getenv(envLogLevel),
		Format:   os.Getenv(envFormat),
	}

	dims := []struct {
		name string
		dst  *float64
	}{
		{envWidth, &s.Measure.Width},
		{envHeight, &s.Measure.Height},
		{envFontSize, &s.Measure.FontSize},
		{envLineHeight, &s.Measure.LineHeight},
	}

	for _, d := range dims {
		raw := os.Getenv(d.name)
		if raw == "" {
			continue
		}

		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", d.name, err)
		}

		*d.dst = f
	}

	return s, nil
}

// fileSettings reads a YAML settings file.
func fileSettings(path string) (Settings, error) {
	var s Settings
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return s, nil
}

// layer fills the unset fields of dst from each source in turn.
func layer(dst *Settings, sources ...Settings) error {
	for _, src := range sources {
		if err := mergo.Merge(dst, src); err != nil {
			return fmt.Errorf("failed to merge settings: %w", err)
		}
	}

	return nil
}
