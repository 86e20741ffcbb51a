package core

import "strings"

// Score computes a lexical overlap score in [0,1] between a query and a
// document's text. Both sides are lowercased and split on whitespace; a
// query token matches when any document token contains it or is contained
// within it, which tolerates simple morphological variants without any
// stemming. The score is the fraction of query tokens that found a match.
//
// An empty query scores 0. strings.Fields already discards the empty tokens
// that double spaces would otherwise produce, so no document can match
// trivially.
func Score(query, documentText string) float64 {
	queryTokens := strings.Fields(strings.ToLower(query))
	if len(queryTokens) == 0 {
		return 0
	}
	docTokens := strings.Fields(strings.ToLower(documentText))

	matched := 0
	for _, qt := range queryTokens {
		for _, dt := range docTokens {
			if strings.Contains(dt, qt) || strings.Contains(qt, dt) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(queryTokens))
}
