// Package parsing turns free-text skills and job titles into comparable stemmed tokens.
package parsing

import (
	"strings"
	"unicode"

	"github.com/surgebase/porter2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize splits text on word boundaries, lower-cases it and reduces every
// token to its Porter2 stem, so "developing", "developer" and "develops" compare equal.
// Token order follows the input and duplicates are kept. Empty or blank input
// yields an empty, non-nil slice.
func Normalize(text string) []string {
	words := Tokenize(text)
	for i, w := range words {
		words[i] = porter2.Stem(w)
	}
	return words
}

// Tokenize lower-cases text, folds diacritics and splits it into words.
// A word is a run of letters, digits or underscores; everything else separates words.
func Tokenize(text string) []string {
	folded := strings.ToLower(foldDiacritics(text))
	words := strings.FieldsFunc(folded, isSeparator)
	if words == nil {
		return []string{}
	}
	return words
}

// TokenSet normalizes every text and returns the union of their tokens.
func TokenSet(texts ...string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, text := range texts {
		for _, token := range Normalize(text) {
			set[token] = struct{}{}
		}
	}
	return set
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

// foldDiacritics strips combining marks ("café" -> "cafe").
// A fresh transformer is built per call because transform.Transformer carries state.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
