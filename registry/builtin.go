package registry

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := New()
	for _, c := range mustBuiltins() {
		r.MustRegister(c)
	}

	return r
})

// Default returns the process-wide registry of built-in components.
func Default() *Registry {
	return defaultRegistry()
}

// Builtins decodes a fresh copy of every built-in component.
func Builtins() ([]*Component, error) {
	paths, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		return nil, err
	}

	out := make([]*Component, 0, len(paths))
	for _, path := range paths {
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, err
		}

		c, err := LoadComponent(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		out = append(out, c)
	}

	return out, nil
}

func mustBuiltins() []*Component {
	cs, err := Builtins()
	if err != nil {
		panic(err)
	}

	return cs
}
