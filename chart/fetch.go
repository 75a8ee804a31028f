package chart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Fetcher retrieves remote chart data. Fetching belongs to the host; the
// pipeline only decodes what a Fetcher returns.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc func(ctx context.Context, location string) ([]byte, error)

func (f FetchFunc) Fetch(ctx context.Context, location string) ([]byte, error) {
	return f(ctx, location)
}

// DirFetcher reads locations as paths relative to a directory.
type DirFetcher struct {
	Root string
}

func (d DirFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := location
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.Root, location)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}

	return data, nil
}
