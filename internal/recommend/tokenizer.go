// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9#+]{3,}`)

// stopwords are dropped from tokens and interests. Read-only.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "with": {}, "for": {}, "to": {}, "of": {}, "a": {},
	"an": {}, "in": {}, "on": {}, "at": {}, "is": {}, "are": {}, "as": {},
	"from": {}, "it": {}, "this": {}, "that": {}, "be": {}, "by": {}, "or": {},
	"my": {}, "your": {}, "our": {}, "we": {}, "you": {},
}

// IsStopword reports whether word (already lowercased) is a stopword.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// Tokenize lowercases text and returns its runs of [a-z0-9#+] that are at
// least three characters long, minus stopwords.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	matches := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := matches[:0]
	for _, m := range matches {
		if !IsStopword(m) {
			tokens = append(tokens, m)
		}
	}
	return tokens
}
