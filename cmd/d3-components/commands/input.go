package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kinggod/d3-components/internal/dataset"
	"github.com/kinggod/d3-components/kind"
	"github.com/kinggod/d3-components/tree"
	"github.com/kinggod/d3-components/utils"
)

var ErrBadAssignment = errors.New("expected key=value")

// readInput reads a file, or standard input for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(path)
}

// decodeInput reads path and decodes it. The format comes from the
// extension unless named; standard input defaults to JSON.
func decodeInput(cmd *cobra.Command, path, formatName string) (any, error) {
	format, err := inputFormat(path, formatName)
	if err != nil {
		return nil, err
	}

	raw, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	v, err := dataset.Decode(raw, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

func inputFormat(path, name string) (dataset.Format, error) {
	switch {
	case name != "":
		return dataset.ParseFormat(name)
	case path == "-":
		return dataset.FormatJSON, nil
	default:
		return dataset.FormatOf(path)
	}
}

// loadOptions reads an options file, when given, and applies key=value
// assignments on top. Values are read as YAML scalars, so "600" is a number
// and "50%" a string.
func loadOptions(cmd *cobra.Command, path string, assignments []string) (tree.Tree, error) {
	opts := tree.Tree{}

	if path != "" {
		v, err := decodeInput(cmd, path, "")
		if err != nil {
			return nil, err
		}

		obj, ok := kind.AsObject(v)
		if !ok {
			return nil, fmt.Errorf("%s: options must be an object, got %s", path, kind.Classify(v).Name())
		}

		opts = tree.Clone(obj)
	}

	for _, a := range assignments {
		key, raw := utils.Unpack2(strings.SplitN(a, "=", 2))
		if key == "" || !strings.Contains(a, "=") {
			return nil, fmt.Errorf("%w: %q", ErrBadAssignment, a)
		}

		var v any = raw
		if raw != "" {
			if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
				v = raw
			}
		}

		tree.Set(opts, key, v)
	}

	return opts, nil
}
