package core

import (
	"strings"
	"testing"

	"arogya-chatbot/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieveLanguageIsolation(t *testing.T) {
	r := NewRetriever(DefaultKnowledgeBase())

	for _, lang := range pkg.SupportedLanguages {
		docs := r.Retrieve("fever", lang, 5)
		for _, d := range docs {
			assert.Equal(t, lang, d.Language, "document %s leaked across languages", d.ID)
		}
	}
}

func TestRetrieveHindiFeverNeverReturnsOtherLanguages(t *testing.T) {
	// fever-1 (en), fever-2 (hi) and fever-3 (te) all carry the English tag
	// "fever"; only the Hindi one may come back for a Hindi query.
	r := NewRetriever(DefaultKnowledgeBase())

	docs := r.Retrieve("fever", pkg.LangHindi, 5)
	require.Len(t, docs, 1)
	assert.Equal(t, "fever-2", docs[0].ID)
}

func TestRetrieveEnglishFeverRanksFeverDocFirst(t *testing.T) {
	r := NewRetriever(DefaultKnowledgeBase())

	docs := r.Retrieve("I have a fever", pkg.LangEnglish, 5)
	require.NotEmpty(t, docs)
	assert.Equal(t, "fever-1", docs[0].ID)

	text := docs[0].Title + " " + docs[0].Content + " " + strings.Join(docs[0].Tags, " ")
	assert.GreaterOrEqual(t, Score("I have a fever", text), 0.5)
}

func TestRetrieveRespectsLimit(t *testing.T) {
	r := NewRetriever(DefaultKnowledgeBase())

	docs := r.Retrieve("I have a fever", pkg.LangEnglish, 2)
	assert.LessOrEqual(t, len(docs), 2)

	docs = r.Retrieve("I have a fever", pkg.LangEnglish, 0)
	assert.Empty(t, docs)
}

func TestRetrieveRelevanceFloor(t *testing.T) {
	r := NewRetriever(DefaultKnowledgeBase())

	docs := r.Retrieve("qzxwv", pkg.LangEnglish, 5)
	assert.Empty(t, docs, "nothing should clear the relevance floor for gibberish")

	// every returned document must sit strictly above the floor
	for _, d := range r.Retrieve("vaccination for children", pkg.LangEnglish, 5) {
		text := d.Title + " " + d.Content + " " + strings.Join(d.Tags, " ")
		assert.Greater(t, Score("vaccination for children", text), relevanceFloor)
	}
}

func TestRetrieveEmptyForUnpopulatedLanguages(t *testing.T) {
	// Tamil, Odia and Kannada content is not authored yet; retrieval must
	// come back empty, not fail.
	r := NewRetriever(DefaultKnowledgeBase())

	for _, lang := range []pkg.Language{pkg.LangTamil, pkg.LangOdia, pkg.LangKannada} {
		assert.Empty(t, r.Retrieve("what is good nutrition", lang, 5))
	}
}

func TestRetrieveDeterministic(t *testing.T) {
	r := NewRetriever(DefaultKnowledgeBase())

	first := r.Retrieve("fever in a child", pkg.LangEnglish, 5)
	second := r.Retrieve("fever in a child", pkg.LangEnglish, 5)
	assert.Equal(t, first, second)
}

func TestRetrieveStableTieOrder(t *testing.T) {
	kb := NewKnowledgeBase([]pkg.MedicalDocument{
		{ID: "a", Title: "cough care", Content: "cough", Language: pkg.LangEnglish},
		{ID: "b", Title: "cough relief", Content: "cough", Language: pkg.LangEnglish},
	})
	docs := NewRetriever(kb).Retrieve("cough", pkg.LangEnglish, 5)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
}
