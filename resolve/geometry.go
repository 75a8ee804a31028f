package resolve

import (
	"math"
	"strings"

	"github.com/kinggod/d3-components/coerce"
	"github.com/kinggod/d3-components/kind"
	"github.com/kinggod/d3-components/tree"
)

// applyResponsive fills the size keys opts leaves unset from the measured
// container. A missing width falls back to the global width and a missing
// height to width times the aspect ratio. Font size and line height are
// only taken from a measurement.
func (r *Resolver) applyResponsive(id string, opts tree.Tree) {
	m, _ := r.measurer.Measure(id)
	var fallback []string

	if _, set := opts["width"]; !set {
		if m.Width > 0 {
			opts["width"] = math.Trunc(m.Width)
		} else {
			opts["width"] = math.Round(r.globalNumber("width", DefaultWidth))
			fallback = append(fallback, "width")
		}
	}

	if _, set := opts["height"]; !set {
		if m.Height > 0 {
			opts["height"] = math.Trunc(m.Height)
		} else {
			opts["height"] = math.Round(r.baseWidth(opts) * r.aspectRatio(opts))
			fallback = append(fallback, "height")
		}
	}

	if _, set := opts["fontSize"]; !set && m.FontSize > 0 {
		opts["fontSize"] = math.Trunc(m.FontSize)
	}

	if _, set := opts["lineHeight"]; !set && m.LineHeight > 0 {
		opts["lineHeight"] = math.Trunc(m.LineHeight)
	}

	if len(fallback) > 0 {
		r.log.Debug().Str("id", id).Strs("keys", fallback).Msg("no measurement, using defaults")
		r.diags.AddInfo("no_measurement",
			"container "+id+" was not measured, "+strings.Join(fallback, " and ")+" derived from defaults", "", "")
	}
}

// baseWidth reads the width the height is derived from. An explicit width
// may still be a unit string at this point.
func (r *Resolver) baseWidth(opts tree.Tree) float64 {
	if f, ok := kind.Float(coerce.Value(opts["width"], opts)); ok && !math.IsNaN(f) {
		return f
	}

	return r.globalNumber("width", DefaultWidth)
}

func (r *Resolver) aspectRatio(opts tree.Tree) float64 {
	if f, ok := kind.Float(opts["aspectRatio"]); ok && f != 0 && !math.IsNaN(f) {
		return f
	}

	return r.globalNumber("aspectRatio", DefaultAspectRatio)
}

func (r *Resolver) globalNumber(key string, fallback float64) float64 {
	if f, ok := kind.Float(r.globals[key]); ok && !math.IsNaN(f) {
		return f
	}

	return fallback
}

// Margins returns the default margins for a font size and line height.
func Margins(fontSize, lineHeight float64) tree.Tree {
	return tree.Tree{
		"top":    lineHeight,
		"right":  2 * fontSize,
		"bottom": 2 * lineHeight,
		"left":   4 * fontSize,
	}
}

// applyGeometry sets margin, innerWidth and innerHeight on a coerced tree.
// Negative inner dimensions are kept.
func (r *Resolver) applyGeometry(component string, out tree.Tree) {
	explicit, _ := kind.AsObject(out["margin"])
	margin := tree.Merge(Margins(kind.ToNumber(out["fontSize"]), kind.ToNumber(out["lineHeight"])), explicit)
	out["margin"] = margin

	width, height := kind.ToNumber(out["width"]), kind.ToNumber(out["height"])
	out["innerWidth"] = width - kind.ToNumber(margin["left"]) - kind.ToNumber(margin["right"])
	out["innerHeight"] = height - kind.ToNumber(margin["top"]) - kind.ToNumber(margin["bottom"])

	for _, key := range []string{"innerWidth", "innerHeight"} {
		if f, _ := kind.Float(out[key]); math.IsNaN(f) {
			r.diags.AddWarning("invalid_geometry", key+" is not a number", component, key)
		}
	}
}
