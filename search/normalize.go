// Package search implements the medicine relevance search engine:
// keyword normalization, eligibility filtering, relevance scoring and
// ranking over the read-only medicine catalog.
package search

import (
	"strings"
	"unicode/utf8"
)

// minTokenLength is exclusive: tokens must be longer than this to survive
// normalization, which drops articles and other noise words ("le", "de").
const minTokenLength = 2

// Normalize lowercases free text, splits it on whitespace, comma and
// semicolon runs and discards tokens of 2 runes or fewer. Matching
// downstream is plain substring containment, so the tokens stay accented.
func Normalize(text string) []string {
	lowered := strings.ToLower(strings.TrimSpace(text))

	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		switch r {
		case ',', ';':
			return true
		}
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > minTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// keywords holds the three independently matched keyword groups of a query.
type keywords struct {
	composition []string
	therapeutic []string
	symptoms    []string
}

// newKeywords normalizes the query's free-text fields. Symptom text falls
// back to the condition text when the symptoms field is empty.
func newKeywords(q Query) keywords {
	symptomText := q.Symptoms
	if symptomText == "" {
		symptomText = q.Condition
	}

	return keywords{
		composition: Normalize(q.Composition),
		therapeutic: Normalize(q.TherapeuticClass),
		symptoms:    Normalize(symptomText),
	}
}

// anyContains reports whether any token appears as a substring of text.
// text must already be lowercased.
func anyContains(text string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}

// countContains returns how many tokens appear as substrings of text.
func countContains(text string, tokens []string) int {
	count := 0
	for _, token := range tokens {
		if strings.Contains(text, token) {
			count++
		}
	}
	return count
}
