// Package chart runs a chart request end to end: it resolves the options
// for the requested component, fetches and decodes remote data when the
// request points at it, and normalizes the data against the component
// schema.
package chart

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kinggod/d3-components/internal/dataset"
	"github.com/kinggod/d3-components/internal/diagnostic"
	"github.com/kinggod/d3-components/kind"
	"github.com/kinggod/d3-components/normalize"
	"github.com/kinggod/d3-components/registry"
	"github.com/kinggod/d3-components/resolve"
	"github.com/kinggod/d3-components/tree"
)

var (
	ErrNoFetcher     = errors.New("request data is remote but no fetcher is configured")
	ErrNoRenderer    = errors.New("component has no renderer")
	ErrUnknownSource = errors.New("unknown data source type")
)

// Request is one chart to prepare. Data is either the data itself, a
// location string naming JSON data, or an object {api, type} where type is
// "json" or "csv".
type Request struct {
	Type    string         `json:"type" yaml:"type"`
	Data    any            `json:"data" yaml:"data"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Output is what a renderer receives. Records is a []normalize.Record, a
// single normalize.Record for a lone object, or the data unchanged when it
// is neither.
type Output struct {
	Records any       `json:"records" yaml:"records"`
	Options tree.Tree `json:"options" yaml:"options"`
}

// Pipeline prepares chart requests.
type Pipeline struct {
	registry *registry.Registry
	resolver *resolve.Resolver
	fetcher  Fetcher
	log      zerolog.Logger
	diags    *diagnostic.Diagnostics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRegistry sets the component registry for the pipeline and for the
// default resolver.
func WithRegistry(r *registry.Registry) Option {
	return func(p *Pipeline) { p.registry = r }
}

// WithResolver replaces the options resolver. Its registry should match
// the pipeline's.
func WithResolver(r *resolve.Resolver) Option {
	return func(p *Pipeline) { p.resolver = r }
}

// WithFetcher sets the fetcher used for remote data.
func WithFetcher(f Fetcher) Option {
	return func(p *Pipeline) { p.fetcher = f }
}

// WithLogger sets the logger for the pipeline and its normalizers.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// WithDiagnostics collects normalization findings into d.
func WithDiagnostics(d *diagnostic.Diagnostics) Option {
	return func(p *Pipeline) { p.diags = d }
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		registry: registry.Default(),
		log:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.resolver == nil {
		p.resolver = resolve.New(
			resolve.WithRegistry(p.registry),
			resolve.WithLogger(p.log),
			resolve.WithDiagnostics(p.diags),
		)
	}

	return p
}

// Prepare resolves the options and normalizes the data of req.
func (p *Pipeline) Prepare(ctx context.Context, req Request) (*Output, error) {
	c, err := p.registry.Lookup(req.Type)
	if err != nil {
		return nil, err
	}

	options, err := p.resolver.Resolve(req.Type, req.Options)
	if err != nil {
		return nil, err
	}

	data, err := p.load(ctx, req.Data)
	if err != nil {
		return nil, fmt.Errorf("%s data: %w", req.Type, err)
	}

	n := normalize.New(c.Schema,
		normalize.WithComponent(c.ID),
		normalize.WithDiagnostics(p.diags),
		normalize.WithLogger(p.log),
	)

	return &Output{Records: n.Normalize(data), Options: options}, nil
}

// Render prepares req and hands the result to the component's renderer.
func (p *Pipeline) Render(ctx context.Context, req Request) error {
	c, err := p.registry.Lookup(req.Type)
	if err != nil {
		return err
	}

	if c.Render == nil {
		return fmt.Errorf("%w: %q", ErrNoRenderer, c.ID)
	}

	out, err := p.Prepare(ctx, req)
	if err != nil {
		return err
	}

	return c.Render(out.Records, out.Options)
}

// load returns the request data, fetching and decoding it when it names a
// remote source.
func (p *Pipeline) load(ctx context.Context, data any) (any, error) {
	if location, ok := data.(string); ok {
		return p.fetch(ctx, location, dataset.FormatJSON)
	}

	src, ok := kind.AsObject(data)
	if !ok {
		return data, nil
	}

	api, ok := src["api"]
	if !ok {
		return data, nil
	}

	format := dataset.FormatJSON
	if t, ok := src["type"]; ok {
		f, err := dataset.ParseFormat(kind.ToString(t))
		if err != nil || (f != dataset.FormatJSON && f != dataset.FormatCSV) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSource, kind.ToString(t))
		}

		format = f
	}

	return p.fetch(ctx, kind.ToString(api), format)
}

func (p *Pipeline) fetch(ctx context.Context, location string, format dataset.Format) (any, error) {
	if p.fetcher == nil {
		return nil, ErrNoFetcher
	}

	p.log.Debug().Str("location", location).Str("format", string(format)).Msg("fetching data")

	raw, err := p.fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	return dataset.Decode(raw, format)
}
