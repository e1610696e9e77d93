// Package scoring computes weighted multi-criteria assessment scores for
// candidate records against job requirement records.
package scoring

import (
	"strings"
	"unicode"
)

// stopwords are function words and requirement boilerplate that carry no
// matching signal on their own.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "any": true, "are": true,
	"at": true, "be": true, "by": true, "for": true, "from": true,
	"have": true, "in": true, "is": true, "its": true, "least": true,
	"must": true, "of": true, "on": true, "or": true, "other": true,
	"per": true, "preferably": true, "the": true, "to": true,
	"with": true,
}

// Keywords tokenizes a requirement or bucket string into normalized keyword
// tokens: lower-cased, punctuation stripped, stopwords and single-character
// tokens dropped, first occurrence order preserved, duplicates removed.
func Keywords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]bool, len(fields))
	keywords := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) < 2 || stopwords[field] || seen[field] {
			continue
		}
		seen[field] = true
		keywords = append(keywords, field)
	}
	return keywords
}
