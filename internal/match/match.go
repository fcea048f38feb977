// Package match grades free-text trivia answers with a deterministic,
// explainable heuristic: normalize both sides, then accept exact matches,
// alias matches, non-trivial abbreviations, and token-level partial matches.
package match

import (
	"strings"
	"unicode/utf8"
)

const punctuation = ".,/#!$%^&*;:{}=-_`~()"

// Normalize lowercases, trims, strips punctuation, and collapses internal
// whitespace runs to a single space. Punctuation acts as a token separator
// so "DA-VINCI" normalizes to "da vinci", not "davinci". It is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// IsCorrect reports whether candidate should be accepted as an answer for
// correct, given an optional set of aliases. The comparison is
// case-, whitespace-, and punctuation-insensitive. First match wins:
//
//  1. normalized candidate equals normalized correct answer;
//  2. normalized candidate equals a normalized alias;
//  3. normalized correct answer contains the normalized candidate and the
//     raw candidate is longer than 3 characters, so "lisa" matches
//     "Mona Lisa" but "da" does not match "Leonardo da Vinci";
//  4. every candidate token is longer than 2 characters and a substring of
//     some correct-answer token.
//
// A candidate that normalizes to the empty string never matches a
// non-empty correct answer.
func IsCorrect(candidate, correct string, aliases []string) bool {
	normCandidate := Normalize(candidate)
	normCorrect := Normalize(correct)

	if normCandidate == normCorrect {
		return true
	}

	for _, alias := range aliases {
		if Normalize(alias) == normCandidate {
			return true
		}
	}

	if normCandidate == "" {
		return false
	}

	// Abbreviated answers: containment counts only when the raw input is
	// long enough not to match almost anything.
	if strings.Contains(normCorrect, normCandidate) && utf8.RuneCountInString(candidate) > 3 {
		return true
	}

	return tokenSubset(normCandidate, normCorrect)
}

// tokenSubset accepts partial matches such as "leonardo" against
// "leonardo da vinci": every candidate token must be non-trivial and
// contained in at least one correct-answer token.
func tokenSubset(normCandidate, normCorrect string) bool {
	candidateTokens := strings.Fields(normCandidate)
	if len(candidateTokens) == 0 {
		return false
	}
	correctTokens := strings.Fields(normCorrect)

	for _, token := range candidateTokens {
		if utf8.RuneCountInString(token) <= 2 {
			return false
		}
		found := false
		for _, ct := range correctTokens {
			if strings.Contains(ct, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
