// Package match implements word-boundary term matching over free text.
//
// Raw substring checks misreport short terms: "r" matches inside "career"
// and "c" inside "coffee". Contains only accepts an occurrence when it is
// not glued to surrounding letters or digits, while still handling terms
// with punctuation such as "c++", "node.js" or "a/b testing".
package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Contains reports whether term occurs in text delimited by word boundaries.
// Matching is case-insensitive. An empty term never matches.
func Contains(text, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	text = strings.ToLower(text)

	firstBound := boundaryRune(firstRune(term))
	lastBound := boundaryRune(lastRune(term))

	for offset := 0; ; {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(term)

		leftOK := !firstBound || start == 0 || !isWordRune(runeBefore(text, start))
		rightOK := !lastBound || end == len(text) || !isWordRune(runeAt(text, end))
		if leftOK && rightOK {
			return true
		}

		offset = start + 1
		if offset >= len(text) {
			return false
		}
	}
}

// ContainsAny reports whether any of the terms occurs in text as a whole word.
func ContainsAny(text string, terms []string) bool {
	for _, term := range terms {
		if Contains(text, term) {
			return true
		}
	}
	return false
}

// boundaryRune tells whether a boundary check is needed on the given edge
// rune. Terms starting or ending with punctuation carry their own boundary.
func boundaryRune(r rune) bool {
	return isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func runeBefore(s string, idx int) rune {
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return r
}

func runeAt(s string, idx int) rune {
	r, _ := utf8.DecodeRuneInString(s[idx:])
	return r
}
