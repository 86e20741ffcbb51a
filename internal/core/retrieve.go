package core

import (
	"sort"
	"strings"

	"arogya-chatbot/pkg"
)

// relevanceFloor is the minimum score a document must exceed to be
// returned. It keeps retrieval from surfacing noise when nothing in the
// corpus actually matches the question.
const relevanceFloor = 0.1

// Retriever ranks knowledge-base documents against a free-text query using
// lexical overlap. It is purely functional over the injected corpus.
type Retriever struct {
	KB *KnowledgeBase
}

// NewRetriever constructs a Retriever over the given knowledge base.
func NewRetriever(kb *KnowledgeBase) *Retriever {
	return &Retriever{KB: kb}
}

// Retrieve returns up to limit documents in the requested language, ranked
// by descending relevance to the query. Ties keep corpus order so results
// are deterministic. An empty result is a valid outcome, not an error: it
// simply means nothing cleared the relevance floor.
func (r *Retriever) Retrieve(query string, language pkg.Language, limit int) []pkg.MedicalDocument {
	candidates := r.KB.ByLanguage(language)

	type scored struct {
		doc   pkg.MedicalDocument
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, doc := range candidates {
		text := doc.Title + " " + doc.Content + " " + strings.Join(doc.Tags, " ")
		s := Score(query, text)
		if s <= relevanceFloor {
			continue
		}
		ranked = append(ranked, scored{doc: doc, score: s})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]pkg.MedicalDocument, len(ranked))
	for i, s := range ranked {
		out[i] = s.doc
	}
	return out
}
