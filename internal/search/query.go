package search

import (
	"strings"
	"unicode"
)

// techRunes survive normalization so terms like "c++", "c#", "node.js" and
// "ci/cd" keep their meaning.
const techRunes = "+#./-"

type QueryContext struct {
	Original   string
	Normalized string
	Fallback   string
}

// NormalizeQuery lowercases input, keeps letters, digits and techRunes, and
// collapses every run of whitespace to a single space.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || strings.ContainsRune(techRunes, r) {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// FallbackFirstWord returns the first word of a multi-word query, or "" when
// the query has one word or none.
func FallbackFirstWord(normalized string) string {
	words := strings.Fields(normalized)
	if len(words) < 2 {
		return ""
	}
	return words[0]
}

func ProcessQuery(input string) QueryContext {
	q := QueryContext{Original: input}
	q.Normalized = NormalizeQuery(input)
	q.Fallback = FallbackFirstWord(q.Normalized)
	return q
}
