package search

import (
	"strings"
	"unicode"

	"github.com/matst80/slask-photos/pkg/types"
)

var commonIssues = map[rune]rune{
	'ö': 'o',
	'ä': 'a',
	'å': 'a',
	'é': 'e',
	'è': 'e',
	'ê': 'e',
	'ë': 'e',
	'ï': 'i',
	'î': 'i',
	'ô': 'o',
	'ü': 'u',
	'û': 'u',
	'ÿ': 'y',
	'ç': 'c',
	'ñ': 'n',
	'ß': 's',
	'æ': 'a',
	'ø': 'o',
}

// Normalize lowercases and folds the diacritics people rarely type.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		r = unicode.ToLower(r)
		if replacement, ok := commonIssues[r]; ok {
			r = replacement
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// MatchesQuery is the free text clause of the evaluator: substring match
// of the query against the joined search fields of the photo. An empty
// query matches everything.
func MatchesQuery(p *types.Photo, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(Normalize(p.SearchText()), Normalize(query))
}
