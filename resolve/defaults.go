package resolve

import (
	"strconv"

	"github.com/kinggod/d3-components/tree"
)

const (
	DefaultID          = "chart"
	DefaultWidth       = 400
	DefaultHeight      = 250
	DefaultAspectRatio = 0.618034
	DefaultMapName     = "world"
)

// Category10 is the default color scheme.
var Category10 = []any{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// TooltipHTML is the default tooltip content.
func TooltipHTML(_ any, i int) string {
	return "Datum " + strconv.Itoa(i)
}

// GlobalDefaults returns a fresh copy of the options every chart starts
// from.
func GlobalDefaults() tree.Tree {
	return tree.Tree{
		"id":          DefaultID,
		"renderer":    "svg",
		"standalone":  true,
		"responsive":  true,
		"width":       DefaultWidth,
		"height":      DefaultHeight,
		"aspectRatio": DefaultAspectRatio,
		"color":       "#1f77b4",
		"colorScheme": append([]any(nil), Category10...),
		"stroke":      "none",
		"strokeWidth": 1,
		"fontSize":    14,
		"lineHeight":  20,
		"title": tree.Tree{
			"show":       false,
			"x":          "50%",
			"y":          "1.6em",
			"height":     "2em",
			"wrapText":   true,
			"wrapWidth":  "90%",
			"lineHeight": "2em",
			"stroke":     "none",
			"fill":       "currentColor",
			"fontSize":   "1.4em",
			"fontWeight": "bold",
			"textAnchor": "middle",
			"text":       "",
		},
		"tooltip": tree.Tree{
			"show":     true,
			"autoplay": false,
			"carousel": carousel(),
			"html":     TooltipHTML,
			"style": tree.Tree{
				"display":         "none",
				"boxSizing":       "border-box",
				"position":        "absolute",
				"pointerEvents":   "none",
				"padding":         "0.2em 0.6em",
				"backgroundColor": "#fff",
				"border":          "1px solid #999",
				"borderRadius":    "0.2em",
				"color":           "#333",
				"fontSize":        "85%",
				"opacity":         0.8,
			},
		},
		"legend": tree.Tree{
			"autoplay":          false,
			"carousel":          carousel(),
			"type":              "checkbox",
			"display":           "block",
			"maxWidth":          "6.8em",
			"columns":           5,
			"symbol":            tree.Tree{"shape": "rect", "width": "0.8em", "height": "0.8em"},
			"dx":                "0.4em",
			"transform":         "scale(0.85)",
			"lineHeight":        "1.6em",
			"textColor":         "currentColor",
			"disabledTextColor": "#ccc",
		},
		"axisX":  axis("bottom", 8),
		"axisY":  axis("left", 6),
		"gridX":  grid(),
		"gridY":  grid(),
		"labelX": tree.Tree{"show": false, "text": "X", "dy": "2.8em", "fill": "currentColor", "textAnchor": "end"},
		"labelY": tree.Tree{
			"show":       false,
			"text":       "Y",
			"dy":         "-3em",
			"fill":       "currentColor",
			"textAnchor": "end",
			"transform":  "rotate(-90)",
		},
	}
}

func carousel() tree.Tree {
	return tree.Tree{"delay": 2000, "interval": 2000}
}

func axis(orient string, ticks int) tree.Tree {
	return tree.Tree{
		"show":   true,
		"orient": orient,
		"ticks": tree.Tree{
			"number":    ticks,
			"sizeInner": 6,
			"sizeOuter": 0,
			"padding":   4,
		},
		"domain":   tree.Tree{"stroke": "currentColor", "strokeWidth": 1},
		"fontSize": "0.85em",
		"stroke":   "currentColor",
		"fill":     "currentColor",
	}
}

func grid() tree.Tree {
	return tree.Tree{"show": false, "stroke": "#ccc", "strokeDash": []any{6, 4}}
}

// MapPresets returns a fresh copy of the built-in map settings by name.
func MapPresets() map[string]tree.Tree {
	return map[string]tree.Tree{
		"world": {
			"center": []any{0, 0},
			"scale":  1.0,
		},
		"china": {
			"key":    "name",
			"center": []any{103.3886, 35.5636},
			"scale":  1.0,
		},
	}
}
