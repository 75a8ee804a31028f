package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for comparison: camel case humps and
// the separators _, - and space are dropped and the result is lower case.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lower case tokens at separators
// and camel case boundaries.
//
//	"lineHeight"   -> ["line", "height"]
//	"choropleth-map" -> ["choropleth", "map"]
//	"SVGTooltip"   -> ["svg", "tooltip"]
func TokenizeIdent(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, strings.ToLower(current.String()))
				current.Reset()
			}

			continue
		}

		if i > 0 && startsToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, strings.ToLower(current.String()))
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken reports a camel case boundary before runes[i]: a lower to
// upper transition, or the last capital of an acronym followed by lower case.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
