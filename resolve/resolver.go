// Package resolve produces the final options tree a renderer consumes.
//
// Resolution layers the global defaults, the component defaults and the
// caller's options, fills in responsive size from an injected Measurer,
// coerces unit and comparator strings, applies map presets and derives the
// margins and inner dimensions.
package resolve

import (
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/kinggod/d3-components/coerce"
	"github.com/kinggod/d3-components/internal/diagnostic"
	"github.com/kinggod/d3-components/kind"
	"github.com/kinggod/d3-components/registry"
	"github.com/kinggod/d3-components/tree"
)

// Resolver resolves options for registered components. A Resolver is safe
// for concurrent use when its Diagnostics collector is not shared.
type Resolver struct {
	registry *registry.Registry
	measurer Measurer
	globals  tree.Tree
	presets  map[string]tree.Tree
	log      zerolog.Logger
	diags    *diagnostic.Diagnostics
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRegistry sets the component registry. Defaults to registry.Default().
func WithRegistry(r *registry.Registry) Option {
	return func(res *Resolver) { res.registry = r }
}

// WithMeasurer sets the container measurement provider.
func WithMeasurer(m Measurer) Option {
	return func(res *Resolver) { res.measurer = m }
}

// WithGlobals layers g over GlobalDefaults.
func WithGlobals(g map[string]any) Option {
	return func(res *Resolver) { res.globals = tree.Merge(res.globals, g) }
}

// WithMapPreset adds or replaces a named map preset.
func WithMapPreset(name string, preset map[string]any) Option {
	return func(res *Resolver) { res.presets[name] = tree.Clone(preset) }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(res *Resolver) { res.log = l }
}

// WithDiagnostics collects non-fatal findings into d.
func WithDiagnostics(d *diagnostic.Diagnostics) Option {
	return func(res *Resolver) { res.diags = d }
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		registry: registry.Default(),
		measurer: noMeasurer{},
		globals:  GlobalDefaults(),
		presets:  MapPresets(),
		log:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve resolves user options for componentID with a default Resolver.
func Resolve(componentID string, user map[string]any) (tree.Tree, error) {
	return New().Resolve(componentID, user)
}

// Globals returns a copy of the global defaults this resolver starts from.
func (r *Resolver) Globals() tree.Tree {
	return tree.Clone(r.globals)
}

// Resolve returns the resolved options for componentID. Unknown components
// yield a *registry.ConfigurationError. Neither user nor any registered
// tree is modified.
func (r *Resolver) Resolve(componentID string, user map[string]any) (tree.Tree, error) {
	c, err := r.registry.Lookup(componentID)
	if err != nil {
		return nil, err
	}

	opts := tree.Merge(c.Defaults, user)
	id := r.chartID(opts)

	if kind.Truthy(r.globals["responsive"]) {
		if _, set := opts["responsive"]; !set {
			r.applyResponsive(id, opts)
		}
	}

	out := tree.Merge(r.globals, opts)
	tooltip, _ := kind.AsObject(out["tooltip"])
	out["tooltip"] = tree.Merge(tree.Tree{"id": id + "-tooltip"}, tooltip)

	out = coerce.Tree(out)
	r.applyMap(out)
	r.applyGeometry(componentID, out)

	r.log.Debug().
		Str("component", componentID).
		Str("id", id).
		Any("width", out["width"]).
		Any("height", out["height"]).
		Msg("options resolved")

	return out, nil
}

func (r *Resolver) chartID(opts tree.Tree) string {
	for _, src := range []map[string]any{opts, r.globals} {
		if v, ok := src["id"]; ok && kind.Truthy(v) {
			return kind.ToString(v)
		}
	}

	return DefaultID
}

// applyMap layers the tree's map settings over the preset they name.
func (r *Resolver) applyMap(out tree.Tree) {
	raw, ok := out["map"]
	if !ok {
		return
	}

	m, _ := kind.AsObject(raw)

	name := DefaultMapName
	if v, ok := m["name"]; ok && kind.Truthy(v) {
		name = kind.ToString(v)
	}

	preset, known := r.presets[name]
	if !known {
		r.diags.AddWarning("unknown_map", "no preset for map "+name, "", "map.name")
	}

	out["map"] = tree.Merge(preset, m)
}

// MapPresetNames lists the presets a resolver knows, sorted.
func (r *Resolver) MapPresetNames() []string {
	return slices.Sorted(maps.Keys(r.presets))
}
