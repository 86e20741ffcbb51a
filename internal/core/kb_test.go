package core

import (
	"testing"

	"arogya-chatbot/pkg"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKnowledgeBaseIDsAreUnique(t *testing.T) {
	kb := DefaultKnowledgeBase()
	seen := make(map[string]bool)
	for _, d := range kb.Documents() {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
		assert.True(t, d.Language.Valid())
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.Content)
		assert.NotEmpty(t, d.Category)
	}
}

func TestDefaultKnowledgeBaseLanguageCoverage(t *testing.T) {
	kb := DefaultKnowledgeBase()

	// content exists for en/hi/te; ta/or/kn are intentionally still empty
	for _, lang := range []pkg.Language{pkg.LangEnglish, pkg.LangHindi, pkg.LangTelugu} {
		assert.NotEmpty(t, kb.ByLanguage(lang), "expected documents for %s", lang)
	}
	for _, lang := range []pkg.Language{pkg.LangTamil, pkg.LangOdia, pkg.LangKannada} {
		assert.Empty(t, kb.ByLanguage(lang))
	}
}

func TestByLanguagePreservesCorpusOrder(t *testing.T) {
	kb := DefaultKnowledgeBase()
	docs := kb.ByLanguage(pkg.LangEnglish)

	var positions []int
	for _, d := range docs {
		for i, all := range kb.Documents() {
			if all.ID == d.ID {
				positions = append(positions, i)
			}
		}
	}
	for i := 1; i < len(positions); i++ {
		assert.Greater(t, positions[i], positions[i-1])
	}
}
