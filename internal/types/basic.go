package types

import (
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// typeNames maps the recognized type spellings to their data types.
// vec2 and struct exist as data types but have no spelling.
var typeNames = map[string]DataType{
	"int":   Int,
	"float": Float,
	"bool":  Bool,
	"vec3":  Vec3,
	"vec4":  Vec4,
	"void":  Void,
}

// LookupType resolves a type name. Unrecognized names resolve to Unknown.
func LookupType(name string) DataType {
	if t, ok := typeNames[name]; ok {
		return t
	}
	return Unknown
}

// maxSuggestDistance bounds how far a misspelling may be from a suggestion.
const maxSuggestDistance = 2

// SuggestType returns the recognized type name closest to name, if one is
// within a small edit distance.
func SuggestType(name string) (string, bool) {
	candidates := make([]string, 0, len(typeNames))
	for n := range typeNames {
		candidates = append(candidates, n)
	}
	sort.Strings(candidates)

	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		d := levenshtein.DistanceForStrings([]rune(name), []rune(c), levenshtein.DefaultOptions)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}
