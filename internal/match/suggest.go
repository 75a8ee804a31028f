package match

import (
	"cmp"
	"slices"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the lowest Similarity Suggest accepts.
const DefaultThreshold = 0.6

// MaxSuggestions caps the number of names Suggest returns.
const MaxSuggestions = 3

// Distance is the edit distance between two normalized identifiers.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(NormalizeIdent(a), NormalizeIdent(b))
}

// Similarity scores two identifiers between 0 and 1, where 1 means they
// normalize to the same name.
func Similarity(a, b string) float64 {
	na, nb := NormalizeIdent(a), NormalizeIdent(b)
	if na == nb {
		return 1
	}

	longest := max(len([]rune(na)), len([]rune(nb)))

	return 1 - float64(levenshtein.ComputeDistance(na, nb))/float64(longest)
}

type scored struct {
	name  string
	score float64
}

// Suggest returns the candidates closest to name, best first. Candidates
// scoring below DefaultThreshold are left out; ties keep candidate order.
func Suggest(name string, candidates []string) []string {
	var ranked []scored
	for _, c := range candidates {
		if s := Similarity(name, c); s >= DefaultThreshold {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(len(ranked), MaxSuggestions))
	for _, r := range ranked {
		if len(out) == MaxSuggestions {
			break
		}

		out = append(out, r.name)
	}

	return out
}
